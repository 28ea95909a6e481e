package entities

import (
	"fmt"

	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
)

// Script is a contiguous Unicode block that localized names must draw from.
type Script struct {
	Name string
	Lo   rune
	Hi   rune
}

// Known target scripts.
var (
	ScriptHan      = Script{Name: "CJK Unified Ideographs", Lo: 0x4E00, Hi: 0x9FFF}
	ScriptKana     = Script{Name: "Hiragana and Katakana", Lo: 0x3040, Hi: 0x30FF}
	ScriptHangul   = Script{Name: "Hangul Syllables", Lo: 0xAC00, Hi: 0xD7AF}
	ScriptCyrillic = Script{Name: "Cyrillic", Lo: 0x0400, Hi: 0x04FF}
)

// In reports whether s contains at least one rune from the script's block.
func (sc Script) In(s string) bool {
	for _, r := range s {
		if r >= sc.Lo && r <= sc.Hi {
			return true
		}
	}
	return false
}

// TargetLanguage describes the language localized names are requested in.
type TargetLanguage struct {
	Tag    language.Tag
	Script Script
	// AltNameHints are substrings of alternative-name comments that mark a
	// catalog alternative name as being in this language.
	AltNameHints []string
}

// DisplayName returns the English name of the language, e.g. "Simplified Chinese".
func (t TargetLanguage) DisplayName() string {
	if name := display.English.Tags().Name(t.Tag); name != "" {
		return name
	}
	return t.Tag.String()
}

// ParseTargetLanguage resolves a BCP 47 tag to a target language with its script.
func ParseTargetLanguage(tag string) (TargetLanguage, error) {
	parsed, err := language.Parse(tag)
	if err != nil {
		return TargetLanguage{}, fmt.Errorf("parsing language %q: %w", tag, err)
	}

	base, _ := parsed.Base()
	switch base.String() {
	case "zh":
		return TargetLanguage{
			Tag:          parsed,
			Script:       ScriptHan,
			AltNameHints: []string{"chinese", "中文", "简体", "繁体"},
		}, nil
	case "ja":
		return TargetLanguage{
			Tag:          parsed,
			Script:       ScriptKana,
			AltNameHints: []string{"japanese", "日本語"},
		}, nil
	case "ko":
		return TargetLanguage{
			Tag:          parsed,
			Script:       ScriptHangul,
			AltNameHints: []string{"korean", "한국어"},
		}, nil
	case "ru", "uk":
		return TargetLanguage{
			Tag:          parsed,
			Script:       ScriptCyrillic,
			AltNameHints: []string{"russian", "ukrainian", "cyrillic"},
		}, nil
	default:
		return TargetLanguage{}, fmt.Errorf("unsupported target language %q", tag)
	}
}

// DefaultTargetLanguage returns Simplified Chinese.
func DefaultTargetLanguage() TargetLanguage {
	lang, _ := ParseTargetLanguage("zh-Hans")
	return lang
}
