package edit

import (
	"context"

	"github.com/ytget/media-editor/internal/media"
)

// Editor is the media engine the dispatcher sequences calls on.
// media.FFmpegProcessor implements it.
type Editor interface {
	MergeVideos(ctx context.Context, inputs []string, outputPath string, onProgress media.ProgressFunc) error
	MergeAudio(ctx context.Context, inputs []string, outputPath string, onProgress media.ProgressFunc) error
	Trim(ctx context.Context, inputPath, outputPath string, start, end float64, video bool, onProgress media.ProgressFunc) error
	ExtractAudio(ctx context.Context, inputPath, outputPath string, onProgress media.ProgressFunc) error
	AdjustVolume(ctx context.Context, inputPath, outputPath string, factor float64, video bool, onProgress media.ProgressFunc) error
	Convert(ctx context.Context, inputPath, outputPath string, conv media.Conversion, onProgress media.ProgressFunc) error
	Combine(ctx context.Context, videoPath, audioPath, outputPath string, onProgress media.ProgressFunc) error
}

var _ Editor = (*media.FFmpegProcessor)(nil)
