package entities

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScript_In(t *testing.T) {
	assert.True(t, ScriptHan.In("塞尔达传说"))
	assert.True(t, ScriptHan.In("Zelda 传说"))
	assert.False(t, ScriptHan.In("Zelda"))
	assert.False(t, ScriptHan.In("ゼルダ"))
	assert.True(t, ScriptKana.In("ゼルダ"))
	assert.False(t, ScriptHan.In(""))
}

func TestParseTargetLanguage(t *testing.T) {
	tests := []struct {
		tag    string
		script Script
	}{
		{tag: "zh-Hans", script: ScriptHan},
		{tag: "zh-TW", script: ScriptHan},
		{tag: "ja", script: ScriptKana},
		{tag: "ko", script: ScriptHangul},
		{tag: "ru", script: ScriptCyrillic},
	}

	for _, tt := range tests {
		t.Run(tt.tag, func(t *testing.T) {
			lang, err := ParseTargetLanguage(tt.tag)
			require.NoError(t, err)
			assert.Equal(t, tt.script, lang.Script)
		})
	}

	_, err := ParseTargetLanguage("fr")
	assert.Error(t, err)
	_, err = ParseTargetLanguage("!!")
	assert.Error(t, err)
}

func TestTargetLanguage_DisplayName(t *testing.T) {
	assert.Equal(t, "Simplified Chinese", DefaultTargetLanguage().DisplayName())
}
