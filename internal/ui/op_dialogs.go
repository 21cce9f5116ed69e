package ui

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/media-editor/internal/edit"
	"github.com/ytget/media-editor/internal/media"
	"github.com/ytget/media-editor/internal/model"
)

// numberEntry returns an entry prefilled with text that only accepts numbers
func numberEntry(text string) *widget.Entry {
	e := widget.NewEntry()
	e.SetText(text)
	e.Validator = func(s string) error {
		_, err := edit.ParseNumber(s)
		return err
	}
	return e
}

// showTrimDialog asks for the start and end seconds of a trim
func (ui *RootUI) showTrimDialog(op model.Operation, onDone func(edit.TrimParams)) {
	titleKey := KeyTrimVideoTitle
	if op == model.OpTrimAudio {
		titleKey = KeyTrimAudioTitle
	}

	startEntry := numberEntry(edit.DefaultTrimStart)
	endEntry := numberEntry(edit.DefaultTrimEnd)
	items := []*widget.FormItem{
		widget.NewFormItem(ui.localization.GetText(KeyStartSeconds), startEntry),
		widget.NewFormItem(ui.localization.GetText(KeyEndSeconds), endEntry),
	}

	d := dialog.NewForm(ui.localization.GetText(titleKey), ui.localization.GetText(KeyTrim),
		ui.localization.GetText(KeyCancel), items, func(ok bool) {
			if !ok {
				return
			}
			params, err := edit.ParseTrim(startEntry.Text, endEntry.Text)
			if err != nil {
				ui.showWarning(op, err)
				return
			}
			onDone(params)
		}, ui.window)
	d.Resize(fyne.NewSize(ParamDialogWidth, d.MinSize().Height))
	d.Show()
}

// showVolumeDialog asks for the gain factor
func (ui *RootUI) showVolumeDialog(onDone func(edit.VolumeParams)) {
	factorEntry := numberEntry(edit.DefaultVolumeFactor)
	items := []*widget.FormItem{
		widget.NewFormItem(ui.localization.GetText(KeyVolumeFactor), factorEntry),
	}

	d := dialog.NewForm(ui.localization.GetText(KeyVolumeTitle), ui.localization.GetText(KeyApply),
		ui.localization.GetText(KeyCancel), items, func(ok bool) {
			if !ok {
				return
			}
			params, err := edit.ParseVolume(factorEntry.Text)
			if err != nil {
				ui.showWarning(model.OpAdjustVolume, err)
				return
			}
			onDone(params)
		}, ui.window)
	d.Resize(fyne.NewSize(ParamDialogWidth, d.MinSize().Height))
	d.Show()
}

// showConvertDialog asks for the target format
func (ui *RootUI) showConvertDialog(onDone func(edit.ConvertParams)) {
	radio := widget.NewRadioGroup(media.ConversionTargets, nil)
	radio.Required = true
	radio.SetSelected(edit.DefaultConvertTo)

	items := []*widget.FormItem{
		widget.NewFormItem(ui.localization.GetText(KeyTargetFormat), radio),
	}

	d := dialog.NewForm(ui.localization.GetText(KeyConvertTitle), ui.localization.GetText(KeyConvert),
		ui.localization.GetText(KeyCancel), items, func(ok bool) {
			if !ok {
				return
			}
			params, err := edit.ParseConvert(radio.Selected)
			if err != nil {
				ui.showWarning(model.OpConvert, err)
				return
			}
			onDone(params)
		}, ui.window)
	d.Resize(fyne.NewSize(ParamDialogWidth, d.MinSize().Height))
	d.Show()
}

// errEmptyFileName rejects a blank or path-like file name
var errEmptyFileName = errors.New("enter a file name")

// chooseOutputPath asks for a file name and folder prefilled with name+ext and
// the last directory. Nothing is written until the operation runs; an existing
// file needs confirmation. onChosen is not called when the user cancels.
func (ui *RootUI) chooseOutputPath(name, ext string, onChosen func(path string)) {
	nameEntry := widget.NewEntry()
	nameEntry.SetText(name + ext)
	nameEntry.Validator = func(s string) error {
		s = strings.TrimSpace(s)
		if s == "" || s == "." || s == ".." || strings.ContainsAny(s, `/\`) {
			return errEmptyFileName
		}
		return nil
	}

	dirEntry := widget.NewEntry()
	dirEntry.SetText(ui.settings.GetLastDirectory())
	browseBtn := widget.NewButton(ui.localization.GetText(KeyBrowse), func() {
		folder := dialog.NewFolderOpen(func(uri fyne.ListableURI, err error) {
			if err != nil {
				ui.logger.Warn("folder dialog failed", slog.Any("error", err))
				return
			}
			if uri != nil {
				dirEntry.SetText(uri.Path())
			}
		}, ui.window)
		if lister, err := storage.ListerForURI(storage.NewFileURI(dirEntry.Text)); err == nil {
			folder.SetLocation(lister)
		}
		folder.Show()
	})

	items := []*widget.FormItem{
		widget.NewFormItem(ui.localization.GetText(KeyFileName), nameEntry),
		widget.NewFormItem(ui.localization.GetText(KeyFolder), container.NewBorder(nil, nil, nil, browseBtn, dirEntry)),
	}

	d := dialog.NewForm(ui.localization.GetText(KeyOutputTitle), ui.localization.GetText(KeySave),
		ui.localization.GetText(KeyCancel), items, func(ok bool) {
			if !ok {
				return
			}
			path := outputPath(dirEntry.Text, nameEntry.Text, ext)
			ui.confirmOverwrite(path, func() {
				ui.settings.SetLastDirectory(filepath.Dir(path))
				onChosen(path)
			})
		}, ui.window)
	d.Resize(fyne.NewSize(ParamDialogWidth*1.5, d.MinSize().Height))
	d.Show()
}

// confirmOverwrite calls onConfirmed at once for a new path and after the
// user agreed for an existing one
func (ui *RootUI) confirmOverwrite(path string, onConfirmed func()) {
	if _, err := os.Stat(path); err != nil {
		onConfirmed()
		return
	}
	dialog.ShowConfirm(ui.localization.GetText(KeyOverwriteTitle),
		fmt.Sprintf(ui.localization.GetText(KeyOverwriteFormat), filepath.Base(path)),
		func(ok bool) {
			if ok {
				onConfirmed()
			}
		}, ui.window)
}

// outputPath joins dir and name, appending ext when name has none
func outputPath(dir, name, ext string) string {
	return withDefaultExt(filepath.Join(strings.TrimSpace(dir), strings.TrimSpace(name)), ext)
}

// withDefaultExt appends ext when path has no extension
func withDefaultExt(path, ext string) string {
	if ext == "" || filepath.Ext(path) != "" {
		return path
	}
	return path + strings.ToLower(ext)
}
