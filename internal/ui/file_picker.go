package ui

import (
	"log/slog"
	"path/filepath"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/media-editor/internal/media"
)

// FilePicker collects several files one by one, since the Fyne file dialog
// picks a single file. Confirming hands the pending list to onConfirm;
// cancelling or confirming an empty list hands nothing.
type FilePicker struct {
	window       fyne.Window
	localization *Localization
	logger       *slog.Logger
	startDir     string

	groups       []media.FilterGroup
	group        media.FilterGroup
	pending      []string
	onConfirm    func(paths []string)
	onDirChanged func(dir string)

	list        *widget.List
	groupSelect *widget.Select
	dialog      *dialog.ConfirmDialog
}

// NewFilePicker creates the selection dialog
func NewFilePicker(window fyne.Window, localization *Localization, logger *slog.Logger, startDir string, onConfirm func(paths []string)) *FilePicker {
	groups := media.FilterGroups()
	fp := &FilePicker{
		window:       window,
		localization: localization,
		logger:       logger,
		startDir:     startDir,
		groups:       groups,
		group:        groups[0],
		onConfirm:    onConfirm,
	}
	fp.createUI()
	return fp
}

// SetDirChangedCallback reports the directory of each added file
func (fp *FilePicker) SetDirChangedCallback(cb func(dir string)) {
	fp.onDirChanged = cb
}

// Show displays the dialog with an empty pending list
func (fp *FilePicker) Show() {
	fp.pending = nil
	fp.list.Refresh()
	fp.dialog.Show()
}

// Add appends a file to the pending list
func (fp *FilePicker) Add(path string) {
	if path == "" {
		return
	}
	fp.pending = append(fp.pending, path)
	fp.startDir = filepath.Dir(path)
	if fp.onDirChanged != nil {
		fp.onDirChanged(fp.startDir)
	}
	fp.list.Refresh()
}

// RemoveLast drops the most recently added file
func (fp *FilePicker) RemoveLast() {
	if len(fp.pending) == 0 {
		return
	}
	fp.pending = fp.pending[:len(fp.pending)-1]
	fp.list.Refresh()
}

// Clear empties the pending list
func (fp *FilePicker) Clear() {
	fp.pending = nil
	fp.list.Refresh()
}

// Pending returns a copy of the pending list
func (fp *FilePicker) Pending() []string {
	return append([]string(nil), fp.pending...)
}

// createUI builds the dialog content
func (fp *FilePicker) createUI() {
	fp.list = widget.NewList(
		func() int { return len(fp.pending) },
		func() fyne.CanvasObject { return widget.NewLabel("") },
		func(id widget.ListItemID, obj fyne.CanvasObject) {
			if id < len(fp.pending) {
				obj.(*widget.Label).SetText(IconCheck + " " + filepath.Base(fp.pending[id]))
			}
		},
	)

	names := make([]string, 0, len(fp.groups))
	for _, g := range fp.groups {
		names = append(names, g.Name)
	}
	fp.groupSelect = widget.NewSelect(names, func(name string) {
		for _, g := range fp.groups {
			if g.Name == name {
				fp.group = g
				return
			}
		}
	})
	fp.groupSelect.SetSelected(fp.group.Name)

	addBtn := widget.NewButton(fp.localization.GetText(KeyAddFile), fp.browse)
	addBtn.Importance = widget.HighImportance
	removeBtn := widget.NewButton(fp.localization.GetText(KeyRemoveLast), fp.RemoveLast)
	clearBtn := widget.NewButton(fp.localization.GetText(KeyClear), fp.Clear)

	top := container.NewVBox(
		container.NewBorder(nil, nil, widget.NewLabel(fp.localization.GetText(KeyFileTypes)), nil, fp.groupSelect),
		container.NewHBox(addBtn, removeBtn, clearBtn),
	)
	content := container.NewBorder(top, nil, nil, nil, fp.list)

	fp.dialog = dialog.NewCustomConfirm(
		fp.localization.GetText(KeyPickerTitle),
		fp.localization.GetText(KeyOK),
		fp.localization.GetText(KeyCancel),
		content,
		fp.confirm,
		fp.window,
	)
	fp.dialog.Resize(fyne.NewSize(PickerDialogWidth, PickerDialogHeight))
}

// confirm hands the pending list over when the user accepted a non-empty list
func (fp *FilePicker) confirm(ok bool) {
	paths := fp.Pending()
	fp.pending = nil
	if !ok || len(paths) == 0 {
		return
	}
	if fp.onConfirm != nil {
		fp.onConfirm(paths)
	}
}

// browse opens the native single-file dialog filtered by the chosen group
func (fp *FilePicker) browse() {
	open := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil {
			fp.logger.Warn("file dialog failed", slog.Any("error", err))
			return
		}
		if reader == nil {
			return
		}
		path := reader.URI().Path()
		_ = reader.Close()
		fp.Add(path)
	}, fp.window)

	if len(fp.group.Extensions) > 0 {
		open.SetFilter(storage.NewExtensionFileFilter(fp.group.Extensions))
	}
	if fp.startDir != "" {
		if lister, err := storage.ListerForURI(storage.NewFileURI(fp.startDir)); err == nil {
			open.SetLocation(lister)
		}
	}
	open.Show()
}
