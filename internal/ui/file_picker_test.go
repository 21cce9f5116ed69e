package ui

import (
	"log/slog"
	"testing"

	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
)

func newTestPicker(t *testing.T) (*FilePicker, *[][]string) {
	t.Helper()
	app := test.NewApp()
	t.Cleanup(app.Quit)

	got := &[][]string{}
	fp := NewFilePicker(test.NewWindow(nil), NewLocalization(), slog.Default(), "", func(paths []string) {
		*got = append(*got, paths)
	})
	return fp, got
}

func TestFilePicker_ConfirmHandsPendingInOrder(t *testing.T) {
	fp, got := newTestPicker(t)

	var dirs []string
	fp.SetDirChangedCallback(func(dir string) { dirs = append(dirs, dir) })

	fp.Add("/m/b.mp4")
	fp.Add("/clips/a.mp4")
	fp.Add("")
	fp.confirm(true)

	assert.Equal(t, [][]string{{"/m/b.mp4", "/clips/a.mp4"}}, *got)
	assert.Equal(t, []string{"/m", "/clips"}, dirs)
	assert.Empty(t, fp.Pending())
}

func TestFilePicker_CancelOrEmptyHandsNothing(t *testing.T) {
	fp, got := newTestPicker(t)

	fp.Add("/m/a.mp4")
	fp.confirm(false)
	assert.Empty(t, *got)
	assert.Empty(t, fp.Pending())

	fp.confirm(true)
	assert.Empty(t, *got)
}

func TestFilePicker_RemoveAndClear(t *testing.T) {
	fp, _ := newTestPicker(t)

	fp.RemoveLast()
	fp.Add("/m/a.mp4")
	fp.Add("/m/b.mp4")
	fp.RemoveLast()
	assert.Equal(t, []string{"/m/a.mp4"}, fp.Pending())

	fp.Clear()
	assert.Empty(t, fp.Pending())
}

func TestFilePicker_GroupSelection(t *testing.T) {
	fp, _ := newTestPicker(t)
	assert.Equal(t, "All media", fp.group.Name)

	fp.groupSelect.SetSelected("Audio")
	assert.Contains(t, fp.group.Extensions, ".flac")
	assert.NotContains(t, fp.group.Extensions, ".mp4")

	fp.groupSelect.SetSelected("All files")
	assert.Nil(t, fp.group.Extensions)
}
