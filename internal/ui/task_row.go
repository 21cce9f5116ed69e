package ui

import (
	"fmt"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/media-editor/internal/model"
)

// Progress calculation constants
const (
	MaxProgressPercent = 100
	MinProgressPercent = 1
)

// TaskRow shows the current edit task with its progress and actions
type TaskRow struct {
	widget.BaseWidget

	task         *model.EditTask
	localization *Localization
	now          func() time.Time

	// UI components
	titleLabel   *widget.Label
	statusLabel  *widget.Label
	progressBar  *widget.ProgressBar
	percentLabel *widget.Label
	elapsedLabel *widget.Label
	stopBtn      *widget.Button
	revealBtn    *widget.Button
	openBtn      *widget.Button
	content      *fyne.Container

	// Callbacks
	onStop   func(taskID string)
	onReveal func(filePath string)
	onOpen   func(filePath string)
}

// NewTaskRow creates an empty task row; it stays hidden until a task is set
func NewTaskRow(localization *Localization) *TaskRow {
	tr := &TaskRow{
		task:         &model.EditTask{Status: model.TaskStatusPending},
		localization: localization,
		now:          time.Now,
	}
	tr.ExtendBaseWidget(tr)
	tr.createUI()
	tr.Hide()
	return tr
}

// SetCallbacks sets the action callbacks
func (tr *TaskRow) SetCallbacks(onStop func(taskID string), onReveal, onOpen func(filePath string)) {
	tr.onStop = onStop
	tr.onReveal = onReveal
	tr.onOpen = onOpen
}

// Task returns the task currently shown
func (tr *TaskRow) Task() *model.EditTask {
	return tr.task
}

// UpdateTask shows task; call from the UI goroutine
func (tr *TaskRow) UpdateTask(task *model.EditTask) {
	if task == nil {
		return
	}
	tr.task = task
	tr.updateFromTask()
	tr.Show()
	tr.Refresh()
}

// RefreshTexts re-applies localized button labels
func (tr *TaskRow) RefreshTexts() {
	tr.stopBtn.SetText(IconStop + " " + tr.localization.GetText(KeyStop))
	tr.revealBtn.SetText(tr.localization.GetText(KeyReveal))
	tr.openBtn.SetText(tr.localization.GetText(KeyOpen))
}

// createUI creates the UI components
func (tr *TaskRow) createUI() {
	tr.titleLabel = widget.NewLabel("")
	tr.titleLabel.TextStyle = fyne.TextStyle{Bold: true}
	tr.titleLabel.Truncation = fyne.TextTruncateEllipsis

	tr.statusLabel = widget.NewLabel("")
	tr.statusLabel.Alignment = fyne.TextAlignTrailing
	tr.percentLabel = widget.NewLabel("")
	tr.percentLabel.Alignment = fyne.TextAlignTrailing
	tr.elapsedLabel = widget.NewLabel("")
	tr.elapsedLabel.TextStyle = fyne.TextStyle{Monospace: true}

	tr.progressBar = widget.NewProgressBar()
	tr.progressBar.TextFormatter = func() string { return "" }

	tr.stopBtn = widget.NewButton("", func() {
		if tr.onStop != nil && tr.task.Status.IsActive() {
			tr.onStop(tr.task.ID)
		}
	})
	tr.stopBtn.Importance = widget.DangerImportance

	tr.revealBtn = widget.NewButton("", func() {
		if tr.onReveal != nil && tr.task.OutputPath != "" {
			tr.onReveal(tr.task.OutputPath)
		}
	})
	tr.openBtn = widget.NewButton("", func() {
		if tr.onOpen != nil && tr.task.OutputPath != "" {
			tr.onOpen(tr.task.OutputPath)
		}
	})
	tr.RefreshTexts()

	header := container.NewBorder(nil, nil, nil, tr.statusLabel, tr.titleLabel)
	bar := container.NewBorder(nil, nil, nil, tr.percentLabel, tr.progressBar)
	actions := container.NewHBox(tr.elapsedLabel, layout.NewSpacer(), tr.stopBtn, tr.revealBtn, tr.openBtn)
	tr.content = container.NewVBox(header, bar, actions)
}

// updateFromTask updates UI components based on task state
func (tr *TaskRow) updateFromTask() {
	task := tr.task

	tr.titleLabel.SetText(task.GetDisplayTitle())
	tr.elapsedLabel.SetText(task.GetElapsedString(tr.now()))

	switch task.Status {
	case model.TaskStatusError:
		tr.statusLabel.Importance = widget.DangerImportance
		tr.statusLabel.SetText(IconError + " " + task.Status.String())
	case model.TaskStatusCompleted:
		tr.statusLabel.Importance = widget.SuccessImportance
		tr.statusLabel.SetText(IconCheck + " " + task.Status.String())
	case model.TaskStatusRunning:
		tr.statusLabel.Importance = widget.HighImportance
		tr.statusLabel.SetText(IconPlay + " " + task.Status.String())
	case model.TaskStatusPending, model.TaskStatusStarting:
		tr.statusLabel.Importance = widget.MediumImportance
		tr.statusLabel.SetText(IconPending + " " + task.Status.String())
	case model.TaskStatusStopping, model.TaskStatusStopped:
		tr.statusLabel.Importance = widget.WarningImportance
		tr.statusLabel.SetText(IconStop + " " + task.Status.String())
	default:
		tr.statusLabel.Importance = widget.MediumImportance
		tr.statusLabel.SetText(task.Status.String())
	}

	percent := effectivePercent(task)
	tr.progressBar.SetValue(float64(percent) / MaxProgressPercent)
	tr.percentLabel.SetText(fmt.Sprintf(ProgressLabelFormat, percent))

	tr.updateButtons()
}

// effectivePercent derives a 0..100 percent that never shows 0 once work started
func effectivePercent(task *model.EditTask) int {
	if task.Status == model.TaskStatusCompleted {
		return MaxProgressPercent
	}
	percent := task.Percent
	if percent <= 0 && task.Progress > 0 {
		percent = int(task.Progress * MaxProgressPercent)
		if percent == 0 {
			percent = MinProgressPercent
		}
	}
	if percent < 0 {
		percent = 0
	}
	if percent > MaxProgressPercent {
		percent = MaxProgressPercent
	}
	return percent
}

// updateButtons updates button states based on task status
func (tr *TaskRow) updateButtons() {
	switch tr.task.Status {
	case model.TaskStatusStarting, model.TaskStatusRunning, model.TaskStatusPending:
		tr.stopBtn.Enable()
	default:
		tr.stopBtn.Disable()
	}

	if tr.task.Status == model.TaskStatusCompleted && tr.task.OutputPath != "" {
		tr.revealBtn.Enable()
		tr.openBtn.Enable()
	} else {
		tr.revealBtn.Disable()
		tr.openBtn.Disable()
	}
}

// MinSize keeps the row readable when the window shrinks
func (tr *TaskRow) MinSize() fyne.Size {
	size := tr.BaseWidget.MinSize()
	if size.Width < RowMinWidth {
		size.Width = RowMinWidth
	}
	if size.Height < RowMinHeight {
		size.Height = RowMinHeight
	}
	return size
}

// CreateRenderer creates the widget renderer
func (tr *TaskRow) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(tr.content)
}
