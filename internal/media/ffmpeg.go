package media

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"strings"
	"sync"
)

// Static errors for media operations.
var (
	// ErrNoInputs is returned when an operation receives no input files.
	ErrNoInputs = errors.New("no input files provided")
	// ErrInvalidRange is returned when a trim range is empty or negative.
	ErrInvalidRange = errors.New("invalid time range: start must be >= 0 and less than end")
	// ErrInvalidFactor is returned when a volume factor is not positive.
	ErrInvalidFactor = errors.New("invalid volume factor: must be positive")
	// ErrNoAudioStream is returned when an input has no audio to extract.
	ErrNoAudioStream = errors.New("input has no audio stream")
	// ErrNoVideoStream is returned when a merged input has no video.
	ErrNoVideoStream = errors.New("input has no video stream")
)

// Default executable names, found via PATH
const (
	FFmpegCommand  = "ffmpeg"
	FFprobeCommand = "ffprobe"
)

// FFmpegProcessor runs editing operations through the ffmpeg CLI
type FFmpegProcessor struct {
	mu          sync.RWMutex
	ffmpegPath  string
	ffprobePath string
	logger      *slog.Logger
}

// NewFFmpegProcessor creates a new FFmpegProcessor.
// Empty paths default to "ffmpeg" and "ffprobe" found via PATH.
func NewFFmpegProcessor(ffmpegPath, ffprobePath string, logger *slog.Logger) *FFmpegProcessor {
	if ffmpegPath == "" {
		ffmpegPath = FFmpegCommand
	}
	if ffprobePath == "" {
		ffprobePath = FFprobeCommand
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &FFmpegProcessor{ffmpegPath: ffmpegPath, ffprobePath: ffprobePath, logger: logger}
}

// SetToolPaths switches the executables used by later operations.
// Empty paths keep the current value.
func (p *FFmpegProcessor) SetToolPaths(ffmpegPath, ffprobePath string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if ffmpegPath != "" {
		p.ffmpegPath = ffmpegPath
	}
	if ffprobePath != "" {
		p.ffprobePath = ffprobePath
	}
}

// tools returns the current ffmpeg and ffprobe executables
func (p *FFmpegProcessor) tools() (ffmpeg, ffprobe string) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.ffmpegPath, p.ffprobePath
}

// MergeVideos concatenates videos in order and re-encodes them. Inputs may
// differ in codec, size and audio layout.
func (p *FFmpegProcessor) MergeVideos(ctx context.Context, inputs []string, outputPath string, onProgress ProgressFunc) error {
	if len(inputs) == 0 {
		return ErrNoInputs
	}

	segments := make([]MergeSegment, 0, len(inputs))
	var total float64
	for _, in := range inputs {
		info, err := p.Probe(ctx, in)
		if err != nil {
			return err
		}
		if !info.HasVideo {
			return fmt.Errorf("%w: %s", ErrNoVideoStream, in)
		}
		segments = append(segments, MergeSegment{
			Path:     in,
			Width:    info.Width,
			Height:   info.Height,
			Duration: info.Duration,
			HasAudio: info.HasAudio,
		})
		total += info.Duration
	}

	return p.encode(ctx, mergeVideosArgs(segments, outputPath), outputPath, total, onProgress)
}

// MergeAudio concatenates the audio of every input in order
func (p *FFmpegProcessor) MergeAudio(ctx context.Context, inputs []string, outputPath string, onProgress ProgressFunc) error {
	if len(inputs) == 0 {
		return ErrNoInputs
	}
	total, err := p.totalDuration(ctx, inputs)
	if err != nil {
		return err
	}
	return p.encode(ctx, mergeAudioArgs(inputs, outputPath), outputPath, total, onProgress)
}

// Trim keeps [start, end) of the input. video selects video re-encoding,
// otherwise only the audio is written.
func (p *FFmpegProcessor) Trim(ctx context.Context, inputPath, outputPath string, start, end float64, video bool, onProgress ProgressFunc) error {
	if start < 0 || end <= start {
		return fmt.Errorf("%w: start=%.3f end=%.3f", ErrInvalidRange, start, end)
	}
	info, err := p.Probe(ctx, inputPath)
	if err != nil {
		return err
	}

	total := end - start
	if info.Duration > 0 && end > info.Duration {
		total = info.Duration - start
	}
	return p.encode(ctx, trimArgs(inputPath, outputPath, start, end, video), outputPath, total, onProgress)
}

// ExtractAudio writes the audio track of a video to an audio file
func (p *FFmpegProcessor) ExtractAudio(ctx context.Context, inputPath, outputPath string, onProgress ProgressFunc) error {
	info, err := p.Probe(ctx, inputPath)
	if err != nil {
		return err
	}
	if !info.HasAudio {
		return fmt.Errorf("%w: %s", ErrNoAudioStream, inputPath)
	}
	return p.encode(ctx, extractAudioArgs(inputPath, outputPath), outputPath, info.Duration, onProgress)
}

// AdjustVolume scales the gain of the input by factor
func (p *FFmpegProcessor) AdjustVolume(ctx context.Context, inputPath, outputPath string, factor float64, video bool, onProgress ProgressFunc) error {
	if factor <= 0 {
		return fmt.Errorf("%w: got %g", ErrInvalidFactor, factor)
	}
	info, err := p.Probe(ctx, inputPath)
	if err != nil {
		return err
	}
	return p.encode(ctx, volumeArgs(inputPath, outputPath, factor, video), outputPath, info.Duration, onProgress)
}

// Convert re-encodes the input into the container of outputPath
func (p *FFmpegProcessor) Convert(ctx context.Context, inputPath, outputPath string, conv Conversion, onProgress ProgressFunc) error {
	info, err := p.Probe(ctx, inputPath)
	if err != nil {
		return err
	}
	if conv == ConvertVideoToAudio && !info.HasAudio {
		return fmt.Errorf("%w: %s", ErrNoAudioStream, inputPath)
	}
	return p.encode(ctx, convertArgs(inputPath, outputPath, conv), outputPath, info.Duration, onProgress)
}

// Combine replaces the audio track of videoPath with audioPath.
// The output keeps the length of the video.
func (p *FFmpegProcessor) Combine(ctx context.Context, videoPath, audioPath, outputPath string, onProgress ProgressFunc) error {
	info, err := p.Probe(ctx, videoPath)
	if err != nil {
		return err
	}
	if _, err := p.Probe(ctx, audioPath); err != nil {
		return err
	}
	return p.encode(ctx, combineArgs(videoPath, audioPath, outputPath, info.Duration), outputPath, info.Duration, onProgress)
}

// totalDuration sums the probed durations of inputs
func (p *FFmpegProcessor) totalDuration(ctx context.Context, inputs []string) (float64, error) {
	var total float64
	for _, in := range inputs {
		info, err := p.Probe(ctx, in)
		if err != nil {
			return 0, err
		}
		total += info.Duration
	}
	return total, nil
}

// encode runs ffmpeg and removes the partial output when it does not finish.
// A file that existed before the run is only removed once ffmpeg has written
// to it.
func (p *FFmpegProcessor) encode(ctx context.Context, args []string, outputPath string, total float64, onProgress ProgressFunc) error {
	p.logger.Debug("running ffmpeg", slog.String("output", outputPath), slog.Any("args", args))

	before, statErr := os.Stat(outputPath)
	if err := p.runFFmpeg(ctx, args, total, onProgress); err != nil {
		if statErr == nil && unchangedFile(before, outputPath) {
			// ffmpeg failed before opening the output; the file is not ours
			return err
		}
		if rmErr := os.Remove(outputPath); rmErr != nil && !os.IsNotExist(rmErr) {
			p.logger.Warn("failed to remove partial output", slog.String("output", outputPath), slog.Any("error", rmErr))
		}
		return err
	}
	return nil
}

// unchangedFile reports whether path is still the file described by before,
// with the same size and modification time
func unchangedFile(before os.FileInfo, path string) bool {
	after, err := os.Stat(path)
	if err != nil {
		return false
	}
	return os.SameFile(before, after) &&
		after.Size() == before.Size() &&
		after.ModTime().Equal(before.ModTime())
}

// runFFmpeg executes ffmpeg, streaming progress, and returns an error
// containing the stderr tail if the command fails.
func (p *FFmpegProcessor) runFFmpeg(ctx context.Context, args []string, total float64, onProgress ProgressFunc) error {
	ffmpeg, _ := p.tools()
	// #nosec G204 - ffmpeg is set by the application, not user input
	cmd := exec.CommandContext(ctx, ffmpeg, args...)

	stderr, err := cmd.StderrPipe()
	if err != nil {
		return fmt.Errorf("failed to create stderr pipe: %w", err)
	}
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("failed to start ffmpeg: %w", err)
	}

	errLines := scanProgress(stderr, total, onProgress)
	err = cmd.Wait()
	if err != nil {
		// Check if context was cancelled
		if ctx.Err() != nil {
			return fmt.Errorf("ffmpeg cancelled: %w", ctx.Err())
		}
		return &FFmpegError{
			Args:   args,
			Stderr: strings.Join(errLines, "\n"),
			Err:    err,
		}
	}

	return nil
}

// FFmpegError represents an error from running ffmpeg, including the stderr output.
type FFmpegError struct {
	Args   []string
	Stderr string
	Err    error
}

func (e *FFmpegError) Error() string {
	if e.Stderr == "" {
		return fmt.Sprintf("ffmpeg error: %v", e.Err)
	}
	return fmt.Sprintf("ffmpeg error: %v: %s", e.Err, e.Stderr)
}

func (e *FFmpegError) Unwrap() error {
	return e.Err
}
