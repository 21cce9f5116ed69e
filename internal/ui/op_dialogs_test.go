package ui

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOutputPath(t *testing.T) {
	tests := []struct {
		dir, name, ext string
		expected       string
	}{
		{"/out", "merged_video.mp4", ".mp4", "/out/merged_video.mp4"},
		{"/out", "merged", ".mp4", "/out/merged.mp4"},
		{" /out ", " take2.mkv ", ".mp4", "/out/take2.mkv"},
		{"/out", "voice", ".MP3", "/out/voice.mp3"},
		{"/out", "notes", "", "/out/notes"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, outputPath(tt.dir, tt.name, tt.ext))
	}
}

func TestChooseOutputPathTouchesNothing(t *testing.T) {
	ui, _, w, _ := newTestUI(t, "")
	dir := t.TempDir()
	song := filepath.Join(dir, "song.mp3")
	require.NoError(t, os.WriteFile(song, []byte("original"), 0o600))
	ui.settings.SetLastDirectory(dir)

	called := false
	ui.chooseOutputPath("song", ".mp3", func(string) { called = true })

	assert.NotNil(t, w.Canvas().Overlays().Top(), "output form is shown")
	assert.False(t, called)
	data, err := os.ReadFile(song)
	require.NoError(t, err)
	assert.Equal(t, "original", string(data))
}

func TestConfirmOverwrite(t *testing.T) {
	ui, _, w, _ := newTestUI(t, "")
	dir := t.TempDir()

	called := 0
	ui.confirmOverwrite(filepath.Join(dir, "new.mp4"), func() { called++ })
	assert.Equal(t, 1, called, "a new file needs no confirmation")
	assert.Nil(t, w.Canvas().Overlays().Top())

	existing := filepath.Join(dir, "old.mp4")
	require.NoError(t, os.WriteFile(existing, []byte("x"), 0o600))
	ui.confirmOverwrite(existing, func() { called++ })
	assert.Equal(t, 1, called, "an existing file waits for the user")
	assert.NotNil(t, w.Canvas().Overlays().Top())
}
