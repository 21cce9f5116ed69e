package edit

import (
	"github.com/ytget/media-editor/internal/model"
)

// Runner defines the interface for the background edit service.
type Runner interface {
	SetUpdateCallback(func(*model.EditTask))
	Start(req Request) (*model.EditTask, error)
	Stop(taskID string) error
	GetTask(taskID string) (*model.EditTask, bool)
	ActiveTask() (*model.EditTask, bool)
}
