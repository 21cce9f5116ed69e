package edit

import (
	"context"
	"errors"

	"github.com/ytget/media-editor/internal/media"
	"github.com/ytget/media-editor/internal/model"
)

// Execute validates req and performs it on ed
func Execute(ctx context.Context, ed Editor, req Request, onProgress media.ProgressFunc) error {
	if err := req.Validate(); err != nil {
		return err
	}

	files := req.Files
	switch req.Operation {
	case model.OpMergeVideos:
		return ed.MergeVideos(ctx, files, req.Output, onProgress)
	case model.OpMergeAudio:
		return ed.MergeAudio(ctx, files, req.Output, onProgress)
	case model.OpTrimVideo:
		return ed.Trim(ctx, files[0], req.Output, req.Trim.Start, req.Trim.End, true, onProgress)
	case model.OpTrimAudio:
		return ed.Trim(ctx, files[0], req.Output, req.Trim.Start, req.Trim.End, false, onProgress)
	case model.OpExtractAudio:
		return ed.ExtractAudio(ctx, files[0], req.Output, onProgress)
	case model.OpAdjustVolume:
		video := media.Classify(files[0]) == media.ClassVideo
		return ed.AdjustVolume(ctx, files[0], req.Output, req.Volume.Factor, video, onProgress)
	case model.OpConvert:
		conv, err := CheckConversion(files, req.Convert.Target)
		if err != nil {
			return err
		}
		return ed.Convert(ctx, files[0], req.Output, conv, onProgress)
	case model.OpCombine:
		video, audio, err := SplitCombineInputs(files)
		if err != nil {
			return err
		}
		return ed.Combine(ctx, video, audio, req.Output, onProgress)
	default:
		return ErrUnknownOperation
	}
}

// Run performs req synchronously and reports the outcome as a Result
func Run(ctx context.Context, ed Editor, req Request, onProgress media.ProgressFunc) model.Result {
	return ResultOf(req.Output, Execute(ctx, ed, req, onProgress))
}

// ResultOf maps an Execute error to a Result
func ResultOf(output string, err error) model.Result {
	switch {
	case err == nil:
		return model.Succeeded(output)
	case errors.Is(err, ErrPrecondition):
		return model.Failed(model.FailurePrecondition, err.Error())
	case errors.Is(err, context.Canceled):
		return model.Cancelled()
	default:
		return model.Failed(model.FailureOperation, err.Error())
	}
}
