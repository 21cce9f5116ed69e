package media

import (
	"fmt"
	"strconv"
	"strings"
)

// FFmpeg constants for encode settings
const (
	// Video codec settings
	VideoCodec  = "libx264"
	VideoPreset = "medium"
	VideoCRF    = "23"

	// Audio codec used inside video containers
	AudioCodec   = "aac"
	AudioBitrate = "128k"

	// Progress reporting
	ProgressPipeTarget = "pipe:2"
	LogLevel           = "error"
)

func inputArgs(inputs ...string) []string {
	args := []string{"-y", "-v", LogLevel}
	for _, in := range inputs {
		args = append(args, "-i", in)
	}
	return args
}

func videoEncodeArgs() []string {
	return []string{
		"-c:v", VideoCodec,
		"-preset", VideoPreset,
		"-crf", VideoCRF,
		"-c:a", AudioCodec,
		"-b:a", AudioBitrate,
	}
}

func audioEncodeArgs(outputPath string) []string {
	args := []string{"-vn"}
	if enc, ok := AudioEncoder(outputPath); ok {
		args = append(args, "-c:a", enc)
	}
	return args
}

func outputArgs(outputPath string) []string {
	return []string{"-progress", ProgressPipeTarget, "-nostats", outputPath}
}

func formatSeconds(sec float64) string {
	return strconv.FormatFloat(sec, 'f', 3, 64)
}

func formatFactor(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// Merge canvas used when no input reports its dimensions, and the audio
// format every merged segment is brought to
const (
	DefaultMergeWidth  = 1280
	DefaultMergeHeight = 720
	MergeSampleRate    = 44100
	MergeChannelLayout = "stereo"
)

// MergeSegment is one probed input of a video merge
type MergeSegment struct {
	Path     string
	Width    int
	Height   int
	Duration float64
	HasAudio bool
}

// mergeCanvas returns the largest input width and height, rounded up to even
// values for libx264
func mergeCanvas(segments []MergeSegment) (width, height int) {
	for _, s := range segments {
		width = max(width, s.Width)
		height = max(height, s.Height)
	}
	if width == 0 || height == 0 {
		return DefaultMergeWidth, DefaultMergeHeight
	}
	return width + width%2, height + height%2
}

// mergeAudioMode tells whether the merge carries audio and whether silence
// must be generated for inputs without an audio stream. Silence needs a known
// duration; without one the merge drops audio.
func mergeAudioMode(segments []MergeSegment) (withAudio, needsSilence bool) {
	for _, s := range segments {
		if s.HasAudio {
			withAudio = true
		} else {
			needsSilence = true
		}
	}
	if !withAudio || !needsSilence {
		return withAudio, false
	}
	for _, s := range segments {
		if !s.HasAudio && s.Duration <= 0 {
			return false, false
		}
	}
	return true, true
}

// mergeVideosArgs decodes every input on its own, scales and pads it onto a
// common canvas, and concatenates the results in order
func mergeVideosArgs(segments []MergeSegment, outputPath string) []string {
	width, height := mergeCanvas(segments)
	withAudio, needsSilence := mergeAudioMode(segments)

	args := []string{"-y", "-v", LogLevel}
	for _, s := range segments {
		args = append(args, "-i", s.Path)
	}

	// silent inputs follow the files, one per segment without audio
	audioSource := make([]string, len(segments))
	next := len(segments)
	for i, s := range segments {
		switch {
		case s.HasAudio:
			audioSource[i] = fmt.Sprintf("[%d:a:0]", i)
		case needsSilence:
			args = append(args,
				"-f", "lavfi",
				"-t", formatSeconds(s.Duration),
				"-i", fmt.Sprintf("anullsrc=r=%d:cl=%s", MergeSampleRate, MergeChannelLayout))
			audioSource[i] = fmt.Sprintf("[%d:a:0]", next)
			next++
		}
	}

	var graph strings.Builder
	for i := range segments {
		fmt.Fprintf(&graph,
			"[%d:v:0]scale=%d:%d:force_original_aspect_ratio=decrease,pad=%d:%d:(ow-iw)/2:(oh-ih)/2,setsar=1,format=yuv420p[v%d];",
			i, width, height, width, height, i)
		if withAudio {
			fmt.Fprintf(&graph, "%saformat=sample_rates=%d:channel_layouts=%s[a%d];",
				audioSource[i], MergeSampleRate, MergeChannelLayout, i)
		}
	}
	for i := range segments {
		fmt.Fprintf(&graph, "[v%d]", i)
		if withAudio {
			fmt.Fprintf(&graph, "[a%d]", i)
		}
	}

	if withAudio {
		fmt.Fprintf(&graph, "concat=n=%d:v=1:a=1[outv][outa]", len(segments))
		args = append(args, "-filter_complex", graph.String(), "-map", "[outv]", "-map", "[outa]")
		args = append(args, videoEncodeArgs()...)
	} else {
		fmt.Fprintf(&graph, "concat=n=%d:v=1:a=0[outv]", len(segments))
		args = append(args, "-filter_complex", graph.String(), "-map", "[outv]",
			"-c:v", VideoCodec, "-preset", VideoPreset, "-crf", VideoCRF)
	}
	return append(args, outputArgs(outputPath)...)
}

// concatAudioFilter builds "[0:a][1:a]concat=n=2:v=0:a=1[out]"
func concatAudioFilter(n int) string {
	var b strings.Builder
	for i := 0; i < n; i++ {
		fmt.Fprintf(&b, "[%d:a]", i)
	}
	fmt.Fprintf(&b, "concat=n=%d:v=0:a=1[out]", n)
	return b.String()
}

func mergeAudioArgs(inputs []string, outputPath string) []string {
	args := inputArgs(inputs...)
	args = append(args, "-filter_complex", concatAudioFilter(len(inputs)), "-map", "[out]")
	args = append(args, audioEncodeArgs(outputPath)...)
	return append(args, outputArgs(outputPath)...)
}

func trimArgs(inputPath, outputPath string, start, end float64, video bool) []string {
	args := inputArgs(inputPath)
	args = append(args, "-ss", formatSeconds(start), "-to", formatSeconds(end))
	if video {
		args = append(args, videoEncodeArgs()...)
	} else {
		args = append(args, audioEncodeArgs(outputPath)...)
	}
	return append(args, outputArgs(outputPath)...)
}

func extractAudioArgs(inputPath, outputPath string) []string {
	args := inputArgs(inputPath)
	args = append(args, audioEncodeArgs(outputPath)...)
	return append(args, outputArgs(outputPath)...)
}

func volumeArgs(inputPath, outputPath string, factor float64, video bool) []string {
	args := inputArgs(inputPath)
	args = append(args, "-af", "volume="+formatFactor(factor))
	if video {
		args = append(args, videoEncodeArgs()...)
	} else {
		args = append(args, audioEncodeArgs(outputPath)...)
	}
	return append(args, outputArgs(outputPath)...)
}

func convertArgs(inputPath, outputPath string, conv Conversion) []string {
	args := inputArgs(inputPath)
	if conv == ConvertVideoToVideo {
		args = append(args, videoEncodeArgs()...)
	} else {
		args = append(args, audioEncodeArgs(outputPath)...)
	}
	return append(args, outputArgs(outputPath)...)
}

// combineArgs keeps the video stream of the first input and the audio stream
// of the second; duration > 0 caps the output at the video length
func combineArgs(videoPath, audioPath, outputPath string, duration float64) []string {
	args := inputArgs(videoPath, audioPath)
	args = append(args, "-map", "0:v:0", "-map", "1:a:0")
	args = append(args, videoEncodeArgs()...)
	if duration > 0 {
		args = append(args, "-t", formatSeconds(duration))
	}
	return append(args, outputArgs(outputPath)...)
}
