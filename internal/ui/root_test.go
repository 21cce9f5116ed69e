package ui

import (
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ytget/media-editor/internal/config"
	"github.com/ytget/media-editor/internal/edit"
	"github.com/ytget/media-editor/internal/model"
)

// fakeRunner records started requests instead of running them
type fakeRunner struct {
	mu       sync.Mutex
	started  []edit.Request
	stopped  []string
	active   *model.EditTask
	startErr error
	onUpdate func(*model.EditTask)
}

func (f *fakeRunner) SetUpdateCallback(cb func(*model.EditTask)) { f.onUpdate = cb }

func (f *fakeRunner) Start(req edit.Request) (*model.EditTask, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.startErr != nil {
		return nil, f.startErr
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}
	f.started = append(f.started, req)
	return &model.EditTask{ID: "edit-test", Operation: req.Operation, OutputPath: req.Output, Status: model.TaskStatusPending}, nil
}

func (f *fakeRunner) Stop(taskID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.stopped = append(f.stopped, taskID)
	return nil
}

func (f *fakeRunner) GetTask(string) (*model.EditTask, bool) { return nil, false }

func (f *fakeRunner) ActiveTask() (*model.EditTask, bool) {
	if f.active == nil {
		return nil, false
	}
	return f.active, true
}

func (f *fakeRunner) Started() []edit.Request {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]edit.Request(nil), f.started...)
}

type chooserCall struct {
	name, ext string
}

// newTestUI builds a RootUI whose output chooser answers with output ("" cancels)
func newTestUI(t *testing.T, output string) (*RootUI, *fakeRunner, fyne.Window, *[]chooserCall) {
	t.Helper()
	app := test.NewApp()
	t.Cleanup(app.Quit)

	w := test.NewWindow(nil)
	runner := &fakeRunner{}
	settings := config.NewSettings(app, config.DefaultEnv())
	ui := NewRootUI(w, runner, settings, nil)

	calls := &[]chooserCall{}
	ui.outputChooser = func(name, ext string, onChosen func(string)) {
		*calls = append(*calls, chooserCall{name, ext})
		if output != "" {
			onChosen(output)
		}
	}
	return ui, runner, w, calls
}

func TestOperationWithoutFilesWarns(t *testing.T) {
	for _, op := range model.AllOperations() {
		t.Run(op.String(), func(t *testing.T) {
			ui, runner, w, calls := newTestUI(t, "/tmp/out.mp4")

			ui.onOperation(op)

			assert.Empty(t, runner.Started())
			assert.Empty(t, *calls)
			assert.NotNil(t, w.Canvas().Overlays().Top(), "expected a warning dialog")
		})
	}
}

func TestCombineSameClassWarns(t *testing.T) {
	ui, runner, w, calls := newTestUI(t, "/tmp/out.mp4")
	ui.replaceSelection([]string{"/m/a.mp4", "/m/b.mkv"})

	ui.onOperation(model.OpCombine)

	assert.Empty(t, runner.Started())
	assert.Empty(t, *calls)
	assert.NotNil(t, w.Canvas().Overlays().Top())
}

func TestCancelledOutputChooserIsSilent(t *testing.T) {
	ui, runner, w, calls := newTestUI(t, "")
	ui.replaceSelection([]string{"/m/clip.mp4"})

	ui.onOperation(model.OpExtractAudio)

	require.Len(t, *calls, 1)
	assert.Equal(t, chooserCall{"extracted_audio", ".mp3"}, (*calls)[0])
	assert.Empty(t, runner.Started())
	assert.Nil(t, w.Canvas().Overlays().Top(), "cancelling must not show a message")
}

func TestChosenOutputStartsRequest(t *testing.T) {
	ui, runner, _, calls := newTestUI(t, "/tmp/combined.mp4")
	ui.replaceSelection([]string{"/m/voice.wav", "/m/clip.mov"})

	ui.onOperation(model.OpCombine)

	require.Len(t, *calls, 1)
	assert.Equal(t, chooserCall{"combined_video", ".mp4"}, (*calls)[0])

	started := runner.Started()
	require.Len(t, started, 1)
	assert.Equal(t, model.OpCombine, started[0].Operation)
	assert.Equal(t, []string{"/m/voice.wav", "/m/clip.mov"}, started[0].Files)
	assert.Equal(t, "/tmp/combined.mp4", started[0].Output)

	assert.Equal(t, "edit-test", ui.taskRow.Task().ID)
	assert.True(t, ui.taskRow.Visible())
}

func TestBusyServiceWarns(t *testing.T) {
	ui, runner, w, calls := newTestUI(t, "/tmp/out.mp4")
	runner.active = &model.EditTask{ID: "edit-running", Status: model.TaskStatusRunning}
	ui.replaceSelection([]string{"/m/a.mp4", "/m/b.mp4"})

	ui.onOperation(model.OpMergeVideos)

	assert.Empty(t, runner.Started())
	assert.Empty(t, *calls)
	assert.NotNil(t, w.Canvas().Overlays().Top())
}

func TestStartErrorWarns(t *testing.T) {
	ui, runner, w, _ := newTestUI(t, "/tmp/out.mp4")
	runner.startErr = errors.New("disk full")
	ui.replaceSelection([]string{"/m/a.mp4", "/m/b.mp4"})

	ui.onOperation(model.OpMergeVideos)

	assert.NotNil(t, w.Canvas().Overlays().Top())
}

func TestReplaceSelection(t *testing.T) {
	ui, _, _, _ := newTestUI(t, "")

	ui.replaceSelection([]string{"/m/b.mp4", "/m/a.mp3"})
	assert.Equal(t, []string{IconCheck + " b.mp4", IconCheck + " a.mp3"}, ui.fileLabels)
	assert.False(t, ui.emptyLabel.Visible())

	// An empty replacement keeps the previous selection and rows
	ui.replaceSelection(nil)
	assert.Equal(t, []string{"/m/b.mp4", "/m/a.mp3"}, ui.selection.Paths())
	assert.Len(t, ui.fileLabels, 2)

	ui.replaceSelection([]string{"/m/c.wav"})
	assert.Equal(t, []string{"/m/c.wav"}, ui.selection.Paths())
	assert.Equal(t, []string{IconCheck + " c.wav"}, ui.fileLabels)
}

func TestOnTaskUpdateReportsOnce(t *testing.T) {
	ui, _, w, _ := newTestUI(t, "")

	done := &model.EditTask{ID: "edit-1", Operation: model.OpMergeAudio, Status: model.TaskStatusError, LastError: "exit status 1"}
	ui.onTaskUpdate(done)

	top := w.Canvas().Overlays().Top()
	require.NotNil(t, top)
	assert.True(t, ui.reported["edit-1"])
	assert.Equal(t, model.TaskStatusError, ui.taskRow.Task().Status)

	ui.onTaskUpdate(done)
	assert.Equal(t, top, w.Canvas().Overlays().Top(), "a result is shown once")
}

func TestStoppedTaskIsSilent(t *testing.T) {
	ui, _, w, _ := newTestUI(t, "")

	ui.onTaskUpdate(&model.EditTask{ID: "edit-2", Operation: model.OpTrimVideo, Status: model.TaskStatusStopped})

	assert.Nil(t, w.Canvas().Overlays().Top())
	assert.Equal(t, model.TaskStatusStopped, ui.taskRow.Task().Status)
}

func TestStopButtonStopsTask(t *testing.T) {
	ui, runner, _, _ := newTestUI(t, "")
	ui.taskRow.UpdateTask(&model.EditTask{ID: "edit-3", Status: model.TaskStatusRunning})

	test.Tap(ui.taskRow.stopBtn)

	assert.Equal(t, []string{"edit-3"}, runner.stopped)
}

func TestLanguageChangeRelabelsButtons(t *testing.T) {
	ui, _, w, _ := newTestUI(t, "")

	ui.onLanguageChange("tr")

	assert.Equal(t, "tr", ui.settings.GetLanguage())
	assert.Equal(t, "🔗 Video Birleştir", ui.opButtons[model.OpMergeVideos].Text)
	assert.Equal(t, ui.localization.GetText(KeyAppTitle), w.Title())
}

func TestOutputOverInputIsRefused(t *testing.T) {
	dir := t.TempDir()
	song := filepath.Join(dir, "song.mp3")
	require.NoError(t, os.WriteFile(song, []byte("original"), 0o600))

	ui, runner, w, _ := newTestUI(t, song)
	ui.replaceSelection([]string{song, filepath.Join(dir, "b.mp3")})

	ui.onOperation(model.OpMergeAudio)

	assert.Empty(t, runner.Started())
	assert.NotNil(t, w.Canvas().Overlays().Top())
	data, err := os.ReadFile(song)
	require.NoError(t, err)
	assert.Equal(t, "original", string(data))
}
