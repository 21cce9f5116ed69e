package ui

import (
	"errors"
	"log/slog"
	"path/filepath"
	"sync"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/media-editor/internal/config"
	"github.com/ytget/media-editor/internal/edit"
	"github.com/ytget/media-editor/internal/media"
	"github.com/ytget/media-editor/internal/model"
	"github.com/ytget/media-editor/internal/platform"
)

// RootUI represents the main UI structure
type RootUI struct {
	window       fyne.Window
	runner       edit.Runner
	settings     *config.Settings
	localization *Localization
	logger       *slog.Logger

	selection  *model.Selection
	fileLabels []string

	// UI components
	titleLabel     *widget.Label
	selectBtn      *widget.Button
	filesHeader    *widget.Label
	emptyLabel     *widget.Label
	fileList       *widget.List
	operationLabel *widget.Label
	opButtons      map[model.Operation]*widget.Button
	taskRow        *TaskRow
	picker         *FilePicker

	// outputChooser asks for the output path; replaced in tests
	outputChooser   func(name, ext string, onChosen func(path string))
	onSettingsSaved func()

	// reported holds IDs of tasks whose result was already shown
	reported map[string]bool

	// UI update debouncing
	lastUIUpdate  time.Time
	uiUpdateMutex sync.Mutex
}

// NewRootUI creates and initializes the main UI
func NewRootUI(window fyne.Window, runner edit.Runner, settings *config.Settings, logger *slog.Logger) *RootUI {
	if logger == nil {
		logger = slog.Default()
	}

	localization := NewLocalization()
	localization.SetLanguage(settings.GetLanguage())

	ui := &RootUI{
		window:       window,
		runner:       runner,
		settings:     settings,
		localization: localization,
		logger:       logger,
		selection:    model.NewSelection(),
		opButtons:    make(map[model.Operation]*widget.Button),
		reported:     make(map[string]bool),
	}
	ui.outputChooser = ui.chooseOutputPath

	window.SetTitle(localization.GetText(KeyAppTitle))
	ui.runner.SetUpdateCallback(ui.onTaskUpdate)

	ui.setupUI()
	return ui
}

// SetSettingsSavedCallback is called after the settings dialog saved
func (ui *RootUI) SetSettingsSavedCallback(cb func()) {
	ui.onSettingsSaved = cb
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI() {
	ui.createMenu()

	ui.titleLabel = widget.NewLabelWithStyle(ui.localization.GetText(KeyAppTitle), fyne.TextAlignCenter, fyne.TextStyle{Bold: true})
	ui.titleLabel.SizeName = theme.SizeNameHeadingText

	ui.selectBtn = widget.NewButton(ui.localization.GetText(KeySelectFiles), ui.onSelectFiles)
	ui.selectBtn.Importance = widget.HighImportance

	settingsBtn := widget.NewButton(IconSettings, ui.onShowSettings)
	settingsBtn.Importance = widget.LowImportance

	ui.filesHeader = widget.NewLabel(ui.localization.GetText(KeySelectedFiles))
	ui.filesHeader.TextStyle = fyne.TextStyle{Bold: true}

	ui.emptyLabel = widget.NewLabelWithStyle(ui.localization.GetText(KeyNoFiles), fyne.TextAlignCenter, fyne.TextStyle{Italic: true})
	ui.fileList = widget.NewList(
		func() int { return len(ui.fileLabels) },
		func() fyne.CanvasObject {
			l := widget.NewLabel("")
			l.TextStyle = fyne.TextStyle{Monospace: true}
			l.Truncation = fyne.TextTruncateEllipsis
			return l
		},
		func(id widget.ListItemID, obj fyne.CanvasObject) {
			if id < len(ui.fileLabels) {
				obj.(*widget.Label).SetText(ui.fileLabels[id])
			}
		},
	)

	ui.operationLabel = widget.NewLabel(ui.localization.GetText(KeySelectOperation))
	ui.operationLabel.TextStyle = fyne.TextStyle{Bold: true}

	grid := container.NewGridWithColumns(OperationColumns)
	for _, op := range model.AllOperations() {
		op := op
		btn := widget.NewButton(ui.localization.OperationText(op), func() { ui.onOperation(op) })
		ui.opButtons[op] = btn
		grid.Add(btn)
	}

	ui.taskRow = NewTaskRow(ui.localization)
	ui.taskRow.SetCallbacks(ui.onStopTask, ui.onRevealFile, ui.onOpenFile)

	ui.picker = NewFilePicker(ui.window, ui.localization, ui.logger, ui.settings.GetLastDirectory(), ui.replaceSelection)
	ui.picker.SetDirChangedCallback(ui.settings.SetLastDirectory)

	top := container.NewVBox(
		container.NewBorder(nil, nil, nil, settingsBtn, ui.titleLabel),
		container.NewCenter(ui.selectBtn),
		ui.filesHeader,
	)
	files := container.NewStack(ui.fileList, container.NewCenter(ui.emptyLabel))
	bottom := container.NewVBox(
		widget.NewSeparator(),
		ui.operationLabel,
		grid,
		ui.taskRow,
	)

	ui.window.SetContent(container.NewBorder(top, bottom, nil, nil, files))
	ui.logger.Debug("UI setup completed")
}

// createMenu creates the application menu
func (ui *RootUI) createMenu() {
	settingsItem := fyne.NewMenuItem(ui.localization.GetText(KeySettings), ui.onShowSettings)

	languageMenu := fyne.NewMenu(ui.localization.GetText(KeyLanguage))
	for code, name := range ui.localization.GetAvailableLanguages() {
		langCode := code
		langItem := fyne.NewMenuItem(name, func() {
			ui.onLanguageChange(langCode)
		})
		langItem.Checked = ui.localization.GetCurrentLanguage() == code
		languageMenu.Items = append(languageMenu.Items, langItem)
	}

	ui.window.SetMainMenu(fyne.NewMainMenu(
		fyne.NewMenu(ui.localization.GetText(KeyFile), settingsItem),
		languageMenu,
	))
}

// onLanguageChange handles language change
func (ui *RootUI) onLanguageChange(langCode string) {
	ui.localization.SetLanguage(langCode)
	ui.settings.SetLanguage(langCode)
	ui.refreshUITexts()
	ui.createMenu()
}

// refreshUITexts updates all UI texts with current language
func (ui *RootUI) refreshUITexts() {
	ui.window.SetTitle(ui.localization.GetText(KeyAppTitle))
	ui.titleLabel.SetText(ui.localization.GetText(KeyAppTitle))
	ui.selectBtn.SetText(ui.localization.GetText(KeySelectFiles))
	ui.filesHeader.SetText(ui.localization.GetText(KeySelectedFiles))
	ui.emptyLabel.SetText(ui.localization.GetText(KeyNoFiles))
	ui.operationLabel.SetText(ui.localization.GetText(KeySelectOperation))
	for op, btn := range ui.opButtons {
		btn.SetText(ui.localization.OperationText(op))
	}
	ui.taskRow.RefreshTexts()

	// The picker is rebuilt so its buttons pick up the new language
	ui.picker = NewFilePicker(ui.window, ui.localization, ui.logger, ui.settings.GetLastDirectory(), ui.replaceSelection)
	ui.picker.SetDirChangedCallback(ui.settings.SetLastDirectory)
}

// CheckTools warns when the configured ffmpeg executable cannot be found
func (ui *RootUI) CheckTools() {
	for _, tool := range []string{ui.settings.GetFFmpegPath(), ui.settings.GetFFprobePath()} {
		if _, err := platform.LookupTool(tool); err != nil {
			ui.logger.Warn("media tool not found", slog.String("tool", tool), slog.Any("error", err))
			dialog.ShowInformation(ui.localization.GetText(KeyWarning), ui.localization.GetText(KeyToolMissing), ui.window)
			return
		}
	}
}

// onSelectFiles opens the multi-file selection dialog
func (ui *RootUI) onSelectFiles() {
	ui.picker.Show()
}

// replaceSelection swaps the selection for paths; an empty list changes nothing
func (ui *RootUI) replaceSelection(paths []string) {
	if !ui.selection.Replace(paths) {
		return
	}
	ui.fileLabels = ui.buildFileLabels(ui.selection.Paths())
	ui.logger.Info("selection replaced", slog.Int("files", len(ui.fileLabels)))

	if len(ui.fileLabels) > 0 {
		ui.emptyLabel.Hide()
	}
	ui.fileList.Refresh()
}

// buildFileLabels renders "✓ name" rows, adding ID3 artist and title for mp3 files
func (ui *RootUI) buildFileLabels(paths []string) []string {
	labels := make([]string, 0, len(paths))
	for _, p := range paths {
		label := IconCheck + " " + filepath.Base(p)
		tags, err := media.ReadTags(p)
		if err != nil {
			ui.logger.Debug("id3 tags unavailable", slog.String("path", p), slog.Any("error", err))
		}
		if tl := tags.Label(); tl != "" {
			label += MiddleDotSeparator + tl
		}
		labels = append(labels, label)
	}
	return labels
}

// onOperation runs the precondition check, parameter dialogs and output
// chooser for op, then starts it
func (ui *RootUI) onOperation(op model.Operation) {
	files := ui.selection.Paths()
	if err := edit.Check(op, files); err != nil {
		ui.logger.Info("operation refused", slog.String("operation", op.String()), slog.Any("reason", err))
		ui.showWarning(op, err)
		return
	}
	if _, busy := ui.runner.ActiveTask(); busy {
		ui.showWarning(op, edit.ErrBusy)
		return
	}

	req := edit.Request{Operation: op, Files: files}
	switch op {
	case model.OpTrimVideo, model.OpTrimAudio:
		ui.showTrimDialog(op, func(p edit.TrimParams) {
			req.Trim = &p
			ui.askOutput(req)
		})
	case model.OpAdjustVolume:
		ui.showVolumeDialog(func(p edit.VolumeParams) {
			req.Volume = &p
			ui.askOutput(req)
		})
	case model.OpConvert:
		ui.showConvertDialog(func(p edit.ConvertParams) {
			if _, err := edit.CheckConversion(files, p.Target); err != nil {
				ui.showWarning(op, err)
				return
			}
			req.Convert = &p
			ui.askOutput(req)
		})
	default:
		ui.askOutput(req)
	}
}

// askOutput asks for the output path; cancelling aborts silently
func (ui *RootUI) askOutput(req edit.Request) {
	name, ext := edit.DefaultOutput(req.Operation, req.Files, req.Convert)
	ui.outputChooser(name, ext, func(path string) {
		req.Output = path
		ui.startRequest(req)
	})
}

// startRequest hands req to the edit service
func (ui *RootUI) startRequest(req edit.Request) {
	task, err := ui.runner.Start(req)
	if err != nil {
		if errors.Is(err, edit.ErrPrecondition) || errors.Is(err, edit.ErrBusy) {
			ui.showWarning(req.Operation, err)
		} else {
			ui.showError(err)
		}
		return
	}

	// Updates from the service may already have arrived for this task
	if ui.taskRow.Task().ID != task.ID {
		ui.taskRow.UpdateTask(task)
	}
}

// onTaskUpdate handles task updates from the edit service
func (ui *RootUI) onTaskUpdate(task *model.EditTask) {
	if !task.Status.IsFinished() && !ui.debouncedUIUpdate() {
		return
	}

	fyne.Do(func() {
		ui.taskRow.UpdateTask(task)

		result, finished := task.Result()
		if !finished || ui.reported[task.ID] {
			return
		}
		ui.reported[task.ID] = true
		ui.showResult(task, result)
	})
}

// debouncedUIUpdate reports whether enough time passed since the last render
func (ui *RootUI) debouncedUIUpdate() bool {
	ui.uiUpdateMutex.Lock()
	defer ui.uiUpdateMutex.Unlock()

	now := time.Now()
	if now.Sub(ui.lastUIUpdate) < UIUpdateDebounce {
		return false
	}
	ui.lastUIUpdate = now
	return true
}

// showResult reports a finished task
func (ui *RootUI) showResult(task *model.EditTask, result model.Result) {
	switch result.Kind {
	case model.ResultSucceeded:
		ui.logger.Info("operation succeeded",
			slog.String("operation", task.Operation.String()),
			slog.String("output", result.OutputPath))
		fyne.CurrentApp().SendNotification(&fyne.Notification{
			Title:   ui.localization.GetText(KeySuccess),
			Content: task.GetDisplayTitle(),
		})
		ui.showSuccess(result.OutputPath)
		if ui.settings.GetAutoRevealOnComplete() {
			ui.onRevealFile(result.OutputPath)
		}
	case model.ResultFailed:
		dialog.ShowInformation(ui.localization.GetText(KeyError),
			ui.localization.GetText(KeyOperationFailed)+"\n"+result.Reason, ui.window)
	case model.ResultCancelled:
		ui.logger.Info("operation stopped", slog.String("operation", task.Operation.String()))
	}
}

// showSuccess shows the output path with reveal and open actions
func (ui *RootUI) showSuccess(outputPath string) {
	message := widget.NewLabel(ui.localization.GetText(KeyOutputWritten) + "\n" + outputPath)
	message.Wrapping = fyne.TextWrapBreak

	revealBtn := widget.NewButton(ui.localization.GetText(KeyReveal), func() { ui.onRevealFile(outputPath) })
	revealBtn.Importance = widget.HighImportance
	openBtn := widget.NewButton(ui.localization.GetText(KeyOpen), func() { ui.onOpenFile(outputPath) })

	content := container.NewVBox(message, container.NewHBox(revealBtn, openBtn))
	d := dialog.NewCustom(ui.localization.GetText(KeySuccess), ui.localization.GetText(KeyOK), content, ui.window)
	d.Resize(fyne.NewSize(ParamDialogWidth*1.5, d.MinSize().Height))
	d.Show()
}

// showWarning reports a refused operation
func (ui *RootUI) showWarning(op model.Operation, err error) {
	dialog.ShowInformation(ui.localization.GetText(KeyWarning), ui.localization.PreconditionText(op, err), ui.window)
}

// showError reports an unexpected error
func (ui *RootUI) showError(err error) {
	ui.logger.Error("ui error", slog.Any("error", err))
	dialog.ShowInformation(ui.localization.GetText(KeyError), err.Error(), ui.window)
}

// onStopTask cancels the running task
func (ui *RootUI) onStopTask(taskID string) {
	if err := ui.runner.Stop(taskID); err != nil {
		ui.logger.Warn("stop failed", slog.String("task_id", taskID), slog.Any("error", err))
		dialog.ShowInformation(ui.localization.GetText(KeyError),
			ui.localization.GetText(KeyErrorStoppingTask)+": "+err.Error(), ui.window)
	}
}

// onRevealFile handles revealing a file in the system file manager
func (ui *RootUI) onRevealFile(filePath string) {
	if err := platform.OpenFileInManager(filePath); err != nil {
		ui.logger.Warn("reveal failed", slog.String("path", filePath), slog.Any("error", err))
		dialog.ShowInformation(ui.localization.GetText(KeyError),
			ui.localization.GetText(KeyErrorOpeningFile)+": "+err.Error(), ui.window)
	}
}

// onOpenFile handles opening an output file with the default application
func (ui *RootUI) onOpenFile(filePath string) {
	if err := platform.OpenFileWithDefaultApp(filePath); err != nil {
		ui.logger.Warn("open failed", slog.String("path", filePath), slog.Any("error", err))
		dialog.ShowInformation(ui.localization.GetText(KeyError),
			ui.localization.GetText(KeyErrorOpeningFile)+": "+err.Error(), ui.window)
	}
}

// onShowSettings shows the settings dialog
func (ui *RootUI) onShowSettings() {
	ShowSettingsDialog(ui.window, ui.settings, ui.localization, func() {
		ui.onLanguageChange(ui.settings.GetLanguage())
		if ui.onSettingsSaved != nil {
			ui.onSettingsSaved()
		}
	})
}
