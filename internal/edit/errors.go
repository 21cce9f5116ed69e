package edit

import (
	"errors"
	"fmt"
)

// ErrPrecondition marks requests refused before the media engine is called
var ErrPrecondition = errors.New("precondition not met")

// Precondition failures, all wrapping ErrPrecondition
var (
	ErrNeedFile           = fmt.Errorf("%w: select a file first", ErrPrecondition)
	ErrNeedTwoFiles       = fmt.Errorf("%w: select at least 2 files", ErrPrecondition)
	ErrNeedVideoAndAudio  = fmt.Errorf("%w: select exactly one video and one audio file", ErrPrecondition)
	ErrUnknownExtension   = fmt.Errorf("%w: unsupported file type", ErrPrecondition)
	ErrUnsupportedConvert = fmt.Errorf("%w: this format conversion is not supported", ErrPrecondition)
	ErrInvalidParams      = fmt.Errorf("%w: invalid parameters", ErrPrecondition)
	ErrNoOutput           = fmt.Errorf("%w: no output path", ErrPrecondition)
	ErrOutputIsInput      = fmt.Errorf("%w: output would overwrite an input file", ErrPrecondition)
	ErrUnknownOperation   = fmt.Errorf("%w: unknown operation", ErrPrecondition)
)

// Service errors
var (
	ErrBusy          = errors.New("another operation is already running")
	ErrTaskNotFound  = errors.New("edit task not found")
	ErrTaskNotActive = errors.New("edit task is not active")
)
