package main

import (
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"strconv"

	"github.com/goccy/go-yaml"
	"github.com/spf13/cobra"

	"github.com/ytget/media-editor/internal/media"
)

// probeRecord is the YAML form of a probed file
type probeRecord struct {
	Path       string  `yaml:"path"`
	Class      string  `yaml:"class"`
	Format     string  `yaml:"format"`
	Duration   float64 `yaml:"duration"`
	Bitrate    int64   `yaml:"bitrate,omitempty"`
	VideoCodec string  `yaml:"videoCodec,omitempty"`
	Width      int     `yaml:"width,omitempty"`
	Height     int     `yaml:"height,omitempty"`
	AudioCodec string  `yaml:"audioCodec,omitempty"`
	SampleRate int     `yaml:"sampleRate,omitempty"`
	Channels   int     `yaml:"channels,omitempty"`
	Title      string  `yaml:"title,omitempty"`
	Artist     string  `yaml:"artist,omitempty"`
	Album      string  `yaml:"album,omitempty"`
}

func newProbeRecord(info *media.Info, tags *media.Tags) probeRecord {
	rec := probeRecord{
		Path:       info.Path,
		Class:      media.Classify(info.Path).String(),
		Format:     info.FormatName,
		Duration:   info.Duration,
		Bitrate:    info.Bitrate,
		VideoCodec: info.VideoCodec,
		Width:      info.Width,
		Height:     info.Height,
		AudioCodec: info.AudioCodec,
		SampleRate: info.SampleRate,
		Channels:   info.Channels,
	}
	if tags != nil {
		rec.Title = tags.Title
		rec.Artist = tags.Artist
		rec.Album = tags.Album
	}
	return rec
}

func newProbeCommand(ctx *commandContext) *cobra.Command {
	var asYAML bool

	cmd := &cobra.Command{
		Use:   "probe <file>...",
		Short: "Show container, streams, duration and tags of media files",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			eng := ctx.engine()

			rows := make([][]string, 0, len(args))
			records := make([]probeRecord, 0, len(args))
			var errs []error
			for _, path := range args {
				info, err := eng.Probe(cmd.Context(), path)
				if err != nil {
					errs = append(errs, err)
					continue
				}
				tags, err := media.ReadTags(path)
				if err != nil {
					ctx.logger.Debug("id3 tags unavailable", slog.String("path", path), slog.Any("error", err))
				}
				rows = append(rows, probeRow(info, tags))
				records = append(records, newProbeRecord(info, tags))
			}

			if asYAML && len(records) > 0 {
				data, err := yaml.Marshal(records)
				if err != nil {
					return fmt.Errorf("marshal probe results: %w", err)
				}
				if _, err := cmd.OutOrStdout().Write(data); err != nil {
					return err
				}
			} else if len(rows) > 0 {
				headers := []string{"File", "Class", "Format", "Duration", "Video", "Audio", "Tags"}
				aligns := []columnAlignment{alignLeft, alignLeft, alignLeft, alignRight, alignLeft, alignLeft, alignLeft}
				fmt.Fprintln(cmd.OutOrStdout(), renderTable(headers, rows, aligns))
			}
			return errors.Join(errs...)
		},
	}

	cmd.Flags().BoolVar(&asYAML, "yaml", false, "Print the results as YAML instead of a table")
	return cmd
}

func probeRow(info *media.Info, tags *media.Tags) []string {
	video := "-"
	if info.HasVideo {
		video = info.VideoCodec
		if info.Width > 0 && info.Height > 0 {
			video += fmt.Sprintf(" %dx%d", info.Width, info.Height)
		}
	}
	audio := "-"
	if info.HasAudio {
		audio = info.AudioCodec
		if info.SampleRate > 0 {
			audio += " " + strconv.Itoa(info.SampleRate) + " Hz"
		}
		if info.Channels > 0 {
			audio += fmt.Sprintf(" %dch", info.Channels)
		}
	}
	label := tags.Label()
	if label == "" {
		label = "-"
	}

	return []string{
		filepath.Base(info.Path),
		media.Classify(info.Path).String(),
		info.FormatName,
		formatDuration(info.Duration),
		video,
		audio,
		label,
	}
}

// formatDuration renders seconds as mm:ss.s or hh:mm:ss.s
func formatDuration(seconds float64) string {
	if seconds <= 0 {
		return "-"
	}
	hours := int(seconds) / 3600
	minutes := (int(seconds) % 3600) / 60
	secs := seconds - float64(hours*3600+minutes*60)
	if hours > 0 {
		return fmt.Sprintf("%02d:%02d:%04.1f", hours, minutes, secs)
	}
	return fmt.Sprintf("%02d:%04.1f", minutes, secs)
}
