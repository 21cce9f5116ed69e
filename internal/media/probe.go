package media

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os/exec"
	"strconv"
)

// ErrFFprobeExecution is returned when the ffprobe command fails
var ErrFFprobeExecution = errors.New("ffprobe execution failed")

// Info describes a probed media file
type Info struct {
	Path       string
	FormatName string
	Duration   float64 // seconds
	Bitrate    int64
	HasVideo   bool
	HasAudio   bool
	VideoCodec string
	AudioCodec string
	Width      int
	Height     int
	SampleRate int
	Channels   int
}

type probeOutput struct {
	Format struct {
		FormatName string `json:"format_name"`
		Duration   string `json:"duration"`
		BitRate    string `json:"bit_rate"`
	} `json:"format"`
	Streams []struct {
		CodecType   string `json:"codec_type"`
		CodecName   string `json:"codec_name"`
		Width       int    `json:"width"`
		Height      int    `json:"height"`
		SampleRate  string `json:"sample_rate"`
		Channels    int    `json:"channels"`
		Disposition struct {
			AttachedPic int `json:"attached_pic"`
		} `json:"disposition"`
	} `json:"streams"`
}

// Probe runs ffprobe on path and returns its format and stream summary
func (p *FFmpegProcessor) Probe(ctx context.Context, path string) (*Info, error) {
	_, ffprobe := p.tools()
	// #nosec G204 - ffprobe is set by the application, not user input
	cmd := exec.CommandContext(ctx, ffprobe,
		"-v", "error",
		"-print_format", "json",
		"-show_format",
		"-show_streams",
		path,
	)

	var stdout bytes.Buffer
	var stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if ctx.Err() != nil {
			return nil, fmt.Errorf("ffprobe cancelled: %w", ctx.Err())
		}
		return nil, fmt.Errorf("%w: %s: %w, stderr: %s", ErrFFprobeExecution, path, err, bytes.TrimSpace(stderr.Bytes()))
	}

	return parseProbeOutput(path, stdout.Bytes())
}

func parseProbeOutput(path string, data []byte) (*Info, error) {
	var out probeOutput
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("parse ffprobe output: %w", err)
	}

	info := &Info{Path: path, FormatName: out.Format.FormatName}
	if out.Format.Duration != "" {
		d, err := strconv.ParseFloat(out.Format.Duration, 64)
		if err != nil {
			return nil, fmt.Errorf("parse duration: %w", err)
		}
		info.Duration = d
	}
	if out.Format.BitRate != "" {
		info.Bitrate, _ = strconv.ParseInt(out.Format.BitRate, 10, 64)
	}

	for _, s := range out.Streams {
		switch s.CodecType {
		case "video":
			// cover art in audio files shows up as a one-frame video stream
			if s.Disposition.AttachedPic == 1 || info.HasVideo {
				continue
			}
			info.HasVideo = true
			info.VideoCodec = s.CodecName
			info.Width = s.Width
			info.Height = s.Height
		case "audio":
			if info.HasAudio {
				continue
			}
			info.HasAudio = true
			info.AudioCodec = s.CodecName
			info.Channels = s.Channels
			info.SampleRate, _ = strconv.Atoi(s.SampleRate)
		}
	}

	return info, nil
}
