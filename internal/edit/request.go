package edit

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/ytget/media-editor/internal/media"
	"github.com/ytget/media-editor/internal/model"
)

// Request is everything needed to run one operation
type Request struct {
	Operation model.Operation
	Files     []string
	Output    string

	Trim    *TrimParams
	Volume  *VolumeParams
	Convert *ConvertParams
}

// Check tests the file-count and file-type preconditions of op against files.
// It runs before any dialog is shown and before any engine call.
func Check(op model.Operation, files []string) error {
	switch op {
	case model.OpMergeVideos, model.OpMergeAudio:
		if len(files) < 2 {
			return ErrNeedTwoFiles
		}
	case model.OpTrimVideo, model.OpTrimAudio, model.OpExtractAudio, model.OpConvert:
		if len(files) < 1 {
			return ErrNeedFile
		}
	case model.OpAdjustVolume:
		if len(files) < 1 {
			return ErrNeedFile
		}
		if media.Classify(files[0]) == media.ClassUnknown {
			return ErrUnknownExtension
		}
	case model.OpCombine:
		if _, _, err := SplitCombineInputs(files); err != nil {
			return err
		}
	default:
		return ErrUnknownOperation
	}
	return nil
}

// SplitCombineInputs picks the video and the audio file out of exactly two
// files. Two files of the same class are rejected.
func SplitCombineInputs(files []string) (video, audio string, err error) {
	if len(files) != 2 {
		return "", "", ErrNeedVideoAndAudio
	}
	for _, f := range files {
		switch media.Classify(f) {
		case media.ClassVideo:
			if video != "" {
				return "", "", ErrNeedVideoAndAudio
			}
			video = f
		case media.ClassAudio:
			if audio != "" {
				return "", "", ErrNeedVideoAndAudio
			}
			audio = f
		}
	}
	if video == "" || audio == "" {
		return "", "", ErrNeedVideoAndAudio
	}
	return video, audio, nil
}

// CheckConversion tests whether the first file may be converted to target
func CheckConversion(files []string, target string) (media.Conversion, error) {
	if len(files) < 1 {
		return 0, ErrNeedFile
	}
	conv, err := media.CheckConversion(media.Classify(files[0]), media.ClassifyExt(target))
	if err != nil {
		if errors.Is(err, media.ErrUnsupportedConversion) {
			return 0, ErrUnsupportedConvert
		}
		return 0, err
	}
	return conv, nil
}

// Validate checks preconditions, parameters and the output path
func (r Request) Validate() error {
	if err := Check(r.Operation, r.Files); err != nil {
		return err
	}

	switch r.Operation {
	case model.OpTrimVideo, model.OpTrimAudio:
		if r.Trim == nil {
			return ErrInvalidParams
		}
		if err := validateParams(*r.Trim); err != nil {
			return err
		}
	case model.OpAdjustVolume:
		if r.Volume == nil {
			return ErrInvalidParams
		}
		if err := validateParams(*r.Volume); err != nil {
			return err
		}
	case model.OpConvert:
		if r.Convert == nil {
			return ErrInvalidParams
		}
		if err := validateParams(*r.Convert); err != nil {
			return err
		}
		if _, err := CheckConversion(r.Files, r.Convert.Target); err != nil {
			return err
		}
	}

	if r.Output == "" {
		return ErrNoOutput
	}
	return checkOutputNotInput(r.Output, r.Files)
}

// checkOutputNotInput refuses an output that names one of the inputs,
// directly or through a link
func checkOutputNotInput(output string, inputs []string) error {
	outAbs, err := filepath.Abs(output)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrNoOutput, err)
	}
	outInfo, statErr := os.Stat(outAbs)

	for _, in := range inputs {
		inAbs, err := filepath.Abs(in)
		if err == nil && inAbs == outAbs {
			return fmt.Errorf("%w: %s", ErrOutputIsInput, in)
		}
		if statErr != nil {
			continue
		}
		if inInfo, err := os.Stat(in); err == nil && os.SameFile(inInfo, outInfo) {
			return fmt.Errorf("%w: %s", ErrOutputIsInput, in)
		}
	}
	return nil
}

// DefaultOutput returns the suggested base name and extension for the save dialog
func DefaultOutput(op model.Operation, files []string, convert *ConvertParams) (name, ext string) {
	switch op {
	case model.OpMergeVideos:
		return "merged_video", ".mp4"
	case model.OpMergeAudio:
		return "merged_audio", ".mp3"
	case model.OpTrimVideo:
		return "trimmed_video", ".mp4"
	case model.OpTrimAudio:
		return "trimmed_audio", ".mp3"
	case model.OpExtractAudio:
		return "extracted_audio", ".mp3"
	case model.OpAdjustVolume:
		if len(files) > 0 && media.Classify(files[0]) == media.ClassVideo {
			return "volume_adjusted_video", ".mp4"
		}
		return "volume_adjusted_audio", ".mp3"
	case model.OpConvert:
		if convert != nil && convert.Target != "" {
			return "converted_file", convert.Target
		}
		return "converted_file", DefaultConvertTo
	case model.OpCombine:
		return "combined_video", ".mp4"
	default:
		return "output", ""
	}
}
