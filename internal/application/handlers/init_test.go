package handlers

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ersonp/vgame-horizon/internal/domain/mocks"
	"github.com/ersonp/vgame-horizon/internal/domain/ports"
	"github.com/ersonp/vgame-horizon/internal/infrastructure/config"
)

func TestInitHandler_Handle_Success(t *testing.T) {
	tmpDir := t.TempDir()

	var openedPath string
	handler := NewInitHandler(func(path string) (ports.LookupLog, error) {
		openedPath = path
		return &mocks.LookupLog{}, nil
	})

	result, err := handler.Handle(t.Context(), tmpDir)

	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Contains(t, result.ConfigPath, "config.yaml")
	assert.Contains(t, result.HistoryPath, "history.db")
	assert.Equal(t, result.HistoryPath, openedPath)
	assert.True(t, config.Exists(tmpDir))
}

func TestInitHandler_Handle_NoHistory(t *testing.T) {
	result, err := NewInitHandler(nil).Handle(t.Context(), t.TempDir())

	require.NoError(t, err)
	assert.Empty(t, result.HistoryPath)
}

func TestInitHandler_Handle_AlreadyInitialized(t *testing.T) {
	tmpDir := t.TempDir()
	require.NoError(t, config.WriteDefault(tmpDir))

	_, err := NewInitHandler(nil).Handle(t.Context(), tmpDir)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "already initialized")
}

func TestInitHandler_Handle_HistoryErrors(t *testing.T) {
	t.Run("open fails", func(t *testing.T) {
		handler := NewInitHandler(func(string) (ports.LookupLog, error) {
			return nil, errors.New("read-only filesystem")
		})
		_, err := handler.Handle(t.Context(), t.TempDir())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "opening history")
	})

	t.Run("schema fails", func(t *testing.T) {
		handler := NewInitHandler(func(string) (ports.LookupLog, error) {
			return &mocks.LookupLog{Err: errors.New("disk I/O error")}, nil
		})
		_, err := handler.Handle(t.Context(), t.TempDir())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "creating history schema")
		assert.Contains(t, err.Error(), "disk I/O error")
	})
}
