package edit

import (
	"context"
	"sync"

	"github.com/ytget/media-editor/internal/media"
)

type call struct {
	Method string
	Inputs []string
	Output string
	Start  float64
	End    float64
	Factor float64
	Video  bool
	Conv   media.Conversion
}

// fakeEditor records calls instead of running ffmpeg
type fakeEditor struct {
	mu    sync.Mutex
	calls []call
	err   error
	// block, when set, makes every call wait for ctx cancellation or release
	block   chan struct{}
	started chan struct{}
}

func (f *fakeEditor) record(ctx context.Context, c call, onProgress media.ProgressFunc) error {
	f.mu.Lock()
	f.calls = append(f.calls, c)
	f.mu.Unlock()

	if onProgress != nil {
		onProgress(0.5)
	}
	if f.started != nil {
		close(f.started)
	}
	if f.block != nil {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-f.block:
		}
	}
	if f.err == nil && onProgress != nil {
		onProgress(1.0)
	}
	return f.err
}

func (f *fakeEditor) Calls() []call {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]call(nil), f.calls...)
}

func (f *fakeEditor) MergeVideos(ctx context.Context, inputs []string, out string, p media.ProgressFunc) error {
	return f.record(ctx, call{Method: "MergeVideos", Inputs: inputs, Output: out}, p)
}

func (f *fakeEditor) MergeAudio(ctx context.Context, inputs []string, out string, p media.ProgressFunc) error {
	return f.record(ctx, call{Method: "MergeAudio", Inputs: inputs, Output: out}, p)
}

func (f *fakeEditor) Trim(ctx context.Context, in, out string, start, end float64, video bool, p media.ProgressFunc) error {
	return f.record(ctx, call{Method: "Trim", Inputs: []string{in}, Output: out, Start: start, End: end, Video: video}, p)
}

func (f *fakeEditor) ExtractAudio(ctx context.Context, in, out string, p media.ProgressFunc) error {
	return f.record(ctx, call{Method: "ExtractAudio", Inputs: []string{in}, Output: out}, p)
}

func (f *fakeEditor) AdjustVolume(ctx context.Context, in, out string, factor float64, video bool, p media.ProgressFunc) error {
	return f.record(ctx, call{Method: "AdjustVolume", Inputs: []string{in}, Output: out, Factor: factor, Video: video}, p)
}

func (f *fakeEditor) Convert(ctx context.Context, in, out string, conv media.Conversion, p media.ProgressFunc) error {
	return f.record(ctx, call{Method: "Convert", Inputs: []string{in}, Output: out, Conv: conv}, p)
}

func (f *fakeEditor) Combine(ctx context.Context, video, audio, out string, p media.ProgressFunc) error {
	return f.record(ctx, call{Method: "Combine", Inputs: []string{video, audio}, Output: out}, p)
}
