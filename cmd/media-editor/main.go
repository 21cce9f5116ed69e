package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/ytget/media-editor/internal/edit"
)

// Exit codes
const (
	exitFailure      = 1
	exitPrecondition = 2
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cmd := newRootCommand(newFFmpegEngine)
	if err := cmd.ExecuteContext(ctx); err != nil {
		os.Exit(exitCode(err))
	}
}

// exitCode prints err and maps it to the process exit code
func exitCode(err error) int {
	if !errors.Is(err, context.Canceled) {
		fmt.Fprintln(os.Stderr, err)
	}
	if errors.Is(err, edit.ErrPrecondition) {
		return exitPrecondition
	}
	return exitFailure
}
