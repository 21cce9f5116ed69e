package edit

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/ytget/media-editor/internal/model"
)

const (
	// TaskIDPrefix prefixes every edit task ID
	TaskIDPrefix = "edit-"
)

// Service runs one editing operation at a time in the background
type Service struct {
	editor   Editor
	logger   *slog.Logger
	tasks    map[string]*model.EditTask
	cancels  map[string]context.CancelFunc
	mu       sync.RWMutex
	onUpdate func(*model.EditTask) // callback for UI updates, receives snapshots
}

// NewService creates a new edit service
func NewService(editor Editor, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		editor:  editor,
		logger:  logger,
		tasks:   make(map[string]*model.EditTask),
		cancels: make(map[string]context.CancelFunc),
	}
}

// SetUpdateCallback sets the callback function for task updates
func (s *Service) SetUpdateCallback(callback func(*model.EditTask)) {
	s.mu.Lock()
	s.onUpdate = callback
	s.mu.Unlock()
}

// Start validates req and runs it in the background. Precondition failures
// and a running operation are reported without creating a task. Tasks that
// finished earlier are forgotten.
func (s *Service) Start(req Request) (*model.EditTask, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, task := range s.tasks {
		if task.Status.IsActive() || task.Status == model.TaskStatusPending {
			return nil, fmt.Errorf("%w: %s", ErrBusy, task.GetDisplayTitle())
		}
	}

	s.pruneFinished()

	task := &model.EditTask{
		ID:         generateTaskID(),
		Operation:  req.Operation,
		Inputs:     append([]string(nil), req.Files...),
		OutputPath: req.Output,
		Status:     model.TaskStatusPending,
		StartedAt:  time.Now(),
	}
	req.Files = task.Inputs

	ctx, cancel := context.WithCancel(context.Background())
	s.tasks[task.ID] = task
	s.cancels[task.ID] = cancel

	s.logger.Info("edit task created",
		slog.String("task_id", task.ID),
		slog.String("operation", task.Operation.String()),
		slog.Int("inputs", len(task.Inputs)),
		slog.String("output", task.OutputPath))

	go s.run(ctx, task, req)

	return task.Snapshot(), nil
}

// pruneFinished forgets finished tasks; callers hold s.mu
func (s *Service) pruneFinished() {
	for id, task := range s.tasks {
		if task.Status.IsFinished() {
			delete(s.tasks, id)
		}
	}
}

// Stop cancels a running task; ffmpeg is killed and the partial output removed
func (s *Service) Stop(taskID string) error {
	s.mu.Lock()
	task, exists := s.tasks[taskID]
	if !exists {
		s.mu.Unlock()
		return fmt.Errorf("%w: %s", ErrTaskNotFound, taskID)
	}
	if !task.Status.IsActive() && task.Status != model.TaskStatusPending {
		status := task.Status
		s.mu.Unlock()
		return fmt.Errorf("%w: %s", ErrTaskNotActive, status)
	}
	task.Status = model.TaskStatusStopping
	cancel := s.cancels[taskID]
	snap := task.Snapshot()
	s.mu.Unlock()

	s.logger.Info("stopping edit task", slog.String("task_id", taskID))
	s.notifyUpdate(snap)
	if cancel != nil {
		cancel()
	}
	return nil
}

// GetTask returns a snapshot of a task by ID
func (s *Service) GetTask(taskID string) (*model.EditTask, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	task, exists := s.tasks[taskID]
	if !exists {
		return nil, false
	}
	return task.Snapshot(), true
}

// ActiveTask returns the task currently running, if any
func (s *Service) ActiveTask() (*model.EditTask, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, task := range s.tasks {
		if task.Status.IsActive() || task.Status == model.TaskStatusPending {
			return task.Snapshot(), true
		}
	}
	return nil, false
}

// run performs the operation and records its outcome
func (s *Service) run(ctx context.Context, task *model.EditTask, req Request) {
	defer s.release(task.ID)

	if !s.transition(task, model.TaskStatusStarting) {
		s.finish(task, context.Canceled)
		return
	}

	onProgress := func(progress float64) {
		s.mu.Lock()
		if task.Status == model.TaskStatusStarting {
			task.Status = model.TaskStatusRunning
		}
		task.Progress = progress
		task.Percent = int(progress * 100)
		snap := task.Snapshot()
		s.mu.Unlock()
		s.notifyUpdate(snap)
	}

	err := Execute(ctx, s.editor, req, onProgress)
	if err == nil && ctx.Err() != nil {
		err = ctx.Err()
	}
	s.finish(task, err)
}

// transition moves a task to status unless it is already stopping
func (s *Service) transition(task *model.EditTask, status model.TaskStatus) bool {
	s.mu.Lock()
	if task.Status == model.TaskStatusStopping {
		s.mu.Unlock()
		return false
	}
	task.Status = status
	snap := task.Snapshot()
	s.mu.Unlock()

	s.notifyUpdate(snap)
	return true
}

// finish sets the terminal status for err
func (s *Service) finish(task *model.EditTask, err error) {
	s.mu.Lock()
	switch {
	case err == nil:
		task.Status = model.TaskStatusCompleted
		task.Progress = 1.0
		task.Percent = 100
	case errors.Is(err, context.Canceled):
		task.Status = model.TaskStatusStopped
	default:
		task.Status = model.TaskStatusError
		task.LastError = err.Error()
	}
	task.FinishedAt = time.Now()
	snap := task.Snapshot()
	s.mu.Unlock()

	if err != nil && !errors.Is(err, context.Canceled) {
		s.logger.Error("edit task failed",
			slog.String("task_id", task.ID),
			slog.String("operation", task.Operation.String()),
			slog.Any("error", err))
	} else {
		s.logger.Info("edit task finished",
			slog.String("task_id", task.ID),
			slog.String("status", snap.Status.String()),
			slog.Duration("elapsed", snap.FinishedAt.Sub(snap.StartedAt)))
	}

	s.notifyUpdate(snap)
}

// release drops the cancel func of a finished task
func (s *Service) release(taskID string) {
	s.mu.Lock()
	cancel := s.cancels[taskID]
	delete(s.cancels, taskID)
	s.mu.Unlock()
	if cancel != nil {
		cancel()
	}
}

// notifyUpdate calls the update callback if set
func (s *Service) notifyUpdate(task *model.EditTask) {
	s.mu.RLock()
	callback := s.onUpdate
	s.mu.RUnlock()
	if callback != nil {
		callback(task)
	}
}

// generateTaskID generates a unique task ID using UUID v7 for time ordering
func generateTaskID() string {
	id, err := uuid.NewV7()
	if err != nil {
		// Fallback to timestamp if UUID generation fails
		return fmt.Sprintf(TaskIDPrefix+"%d", time.Now().UnixNano())
	}
	return TaskIDPrefix + id.String()
}
