package main

import (
	"context"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/ytget/media-editor/internal/config"
	"github.com/ytget/media-editor/internal/edit"
	"github.com/ytget/media-editor/internal/media"
	"github.com/ytget/media-editor/internal/model"
)

// engine is the media engine the commands drive
type engine interface {
	edit.Editor
	Probe(ctx context.Context, path string) (*media.Info, error)
}

type engineFactory func(env *config.Env, logger *slog.Logger) engine

func newFFmpegEngine(env *config.Env, logger *slog.Logger) engine {
	return media.NewFFmpegProcessor(env.FFmpegPath, env.FFprobePath, logger)
}

// commandContext carries the lazily loaded environment shared by subcommands
type commandContext struct {
	newEngine   engineFactory
	ffmpegFlag  string
	ffprobeFlag string
	env         *config.Env
	logger      *slog.Logger
}

func (c *commandContext) ensureEnv(stderr io.Writer) error {
	if c.env != nil {
		return nil
	}
	env, err := config.LoadEnv()
	if err != nil {
		return err
	}
	if c.ffmpegFlag != "" {
		env.FFmpegPath = c.ffmpegFlag
	}
	if c.ffprobeFlag != "" {
		env.FFprobePath = c.ffprobeFlag
	}
	c.env = env
	c.logger = env.NewLoggerTo(stderr)
	return nil
}

func (c *commandContext) engine() engine {
	return c.newEngine(c.env, c.logger)
}

func newRootCommand(newEngine engineFactory) *cobra.Command {
	ctx := &commandContext{newEngine: newEngine}

	rootCmd := &cobra.Command{
		Use:           "media-editor",
		Short:         "Merge, trim, convert and combine audio and video files with ffmpeg",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return ctx.ensureEnv(cmd.ErrOrStderr())
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	rootCmd.PersistentFlags().StringVar(&ctx.ffmpegFlag, "ffmpeg", "", "Path to the ffmpeg executable (overrides MEDIA_EDITOR_FFMPEG)")
	rootCmd.PersistentFlags().StringVar(&ctx.ffprobeFlag, "ffprobe", "", "Path to the ffprobe executable (overrides MEDIA_EDITOR_FFPROBE)")

	for _, op := range model.AllOperations() {
		rootCmd.AddCommand(newOperationCommand(ctx, op))
	}
	rootCmd.AddCommand(newProbeCommand(ctx))

	return rootCmd
}
