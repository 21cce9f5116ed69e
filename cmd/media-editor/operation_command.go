package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/Songmu/prompter"
	"github.com/spf13/cobra"

	"github.com/ytget/media-editor/internal/edit"
	"github.com/ytget/media-editor/internal/model"
	"github.com/ytget/media-editor/internal/platform"
)

var operationUsage = map[model.Operation]string{
	model.OpMergeVideos:  "Concatenate videos in the given order",
	model.OpMergeAudio:   "Concatenate audio files in the given order",
	model.OpTrimVideo:    "Cut the [start, end) range out of a video",
	model.OpTrimAudio:    "Cut the [start, end) range out of an audio file",
	model.OpExtractAudio: "Write the audio track of a video",
	model.OpAdjustVolume: "Scale the volume of a video or audio file",
	model.OpConvert:      "Convert a file to another container",
	model.OpCombine:      "Put the audio of one file under the video of another",
}

type operationFlags struct {
	output string
	start  string
	end    string
	factor string
	to     string
	yes    bool
}

func newOperationCommand(ctx *commandContext, op model.Operation) *cobra.Command {
	var flags operationFlags

	cmd := &cobra.Command{
		Use:   op.String() + " <file>...",
		Short: operationUsage[op],
		RunE: func(cmd *cobra.Command, args []string) error {
			req, err := buildRequest(op, args, flags)
			if err != nil {
				return err
			}

			if err := platform.CreateDirectoryIfNotExists(filepath.Dir(req.Output)); err != nil {
				return fmt.Errorf("%s: %w", op, err)
			}
			if !flags.yes && !confirmOverwrite(req.Output) {
				fmt.Fprintf(cmd.OutOrStdout(), "Kept existing %s\n", req.Output)
				return nil
			}

			ctx.logger.Debug("running operation",
				slog.String("operation", op.String()),
				slog.Int("inputs", len(req.Files)),
				slog.String("output", req.Output))

			progress := newProgressPrinter(cmd.ErrOrStderr())
			err = edit.Execute(cmd.Context(), ctx.engine(), req, progress.Update)
			progress.Done()

			return reportResult(cmd, req, err)
		},
	}

	cmd.Flags().StringVarP(&flags.output, "output", "o", "", "Output file (default: <operation default name> in the current directory)")
	cmd.Flags().BoolVarP(&flags.yes, "yes", "y", false, "Overwrite an existing output file without asking")
	switch op {
	case model.OpTrimVideo, model.OpTrimAudio:
		cmd.Flags().StringVar(&flags.start, "start", edit.DefaultTrimStart, "Start time in seconds")
		cmd.Flags().StringVar(&flags.end, "end", edit.DefaultTrimEnd, "End time in seconds")
	case model.OpAdjustVolume:
		cmd.Flags().StringVar(&flags.factor, "factor", edit.DefaultVolumeFactor, "Gain factor, 1.0 keeps the level")
	case model.OpConvert:
		cmd.Flags().StringVar(&flags.to, "to", edit.DefaultConvertTo, "Target extension (.mp4 .avi .mov .mkv .mp3 .wav .flac)")
	}

	return cmd
}

// buildRequest checks the file preconditions, parses the flags and resolves the output path
func buildRequest(op model.Operation, files []string, flags operationFlags) (edit.Request, error) {
	if err := edit.Check(op, files); err != nil {
		return edit.Request{}, fmt.Errorf("%s: %w", op, err)
	}

	req := edit.Request{Operation: op, Files: files}
	switch op {
	case model.OpTrimVideo, model.OpTrimAudio:
		p, err := edit.ParseTrim(flags.start, flags.end)
		if err != nil {
			return edit.Request{}, fmt.Errorf("%s: %w", op, err)
		}
		req.Trim = &p
	case model.OpAdjustVolume:
		p, err := edit.ParseVolume(flags.factor)
		if err != nil {
			return edit.Request{}, fmt.Errorf("%s: %w", op, err)
		}
		req.Volume = &p
	case model.OpConvert:
		p, err := edit.ParseConvert(flags.to)
		if err != nil {
			return edit.Request{}, fmt.Errorf("%s: %w", op, err)
		}
		if _, err := edit.CheckConversion(files, p.Target); err != nil {
			return edit.Request{}, fmt.Errorf("%s: %w", op, err)
		}
		req.Convert = &p
	}

	req.Output = flags.output
	if req.Output == "" {
		name, ext := edit.DefaultOutput(op, files, req.Convert)
		req.Output = name + ext
	} else if filepath.Ext(req.Output) == "" {
		_, ext := edit.DefaultOutput(op, files, req.Convert)
		req.Output += ext
	}
	if err := req.Validate(); err != nil {
		return edit.Request{}, fmt.Errorf("%s: %w", op, err)
	}
	return req, nil
}

// confirmOverwrite asks before replacing an existing output when stdin is a terminal
func confirmOverwrite(output string) bool {
	if _, err := os.Stat(output); err != nil {
		return true
	}
	if !isTerminal(os.Stdin) {
		return true
	}
	return prompter.YN(fmt.Sprintf("%s exists. Overwrite?", output), false)
}

// reportResult prints the written file or returns err wrapped with the operation
func reportResult(cmd *cobra.Command, req edit.Request, err error) error {
	result := edit.ResultOf(req.Output, err)
	switch result.Kind {
	case model.ResultSucceeded:
		fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", result.OutputPath)
		return nil
	case model.ResultCancelled:
		return err
	default:
		return fmt.Errorf("%s: %w", req.Operation, err)
	}
}
