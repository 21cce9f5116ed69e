package media

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// Class groups file extensions into video-like and audio-like media
type Class int

const (
	ClassUnknown Class = iota
	ClassVideo
	ClassAudio
)

// String returns a label for the class
func (c Class) String() string {
	switch c {
	case ClassVideo:
		return "video"
	case ClassAudio:
		return "audio"
	default:
		return "unknown"
	}
}

// Recognized extensions, lower case with leading dot
var (
	VideoExtensions = []string{".mp4", ".avi", ".mov", ".mkv", ".webm", ".flv"}
	AudioExtensions = []string{".mp3", ".wav", ".flac", ".aac", ".m4a", ".ogg"}

	// ConversionTargets are the extensions offered by the convert operation
	ConversionTargets = []string{".mp4", ".avi", ".mov", ".mkv", ".mp3", ".wav", ".flac"}
)

// audioEncoders maps audio-only output extensions to ffmpeg encoders
var audioEncoders = map[string]string{
	".mp3":  "libmp3lame",
	".wav":  "pcm_s16le",
	".flac": "flac",
	".aac":  "aac",
	".m4a":  "aac",
	".ogg":  "libvorbis",
}

// ErrUnsupportedConversion is returned for conversions outside the allowed mapping
var ErrUnsupportedConversion = errors.New("unsupported format conversion")

// Conversion is an allowed (source class, target class) pair
type Conversion int

const (
	ConvertVideoToVideo Conversion = iota + 1
	ConvertVideoToAudio
	ConvertAudioToAudio
)

// Ext returns the lower-cased extension of path including the dot
func Ext(path string) string {
	return strings.ToLower(filepath.Ext(path))
}

// ClassifyExt returns the class of an extension such as ".MP4"
func ClassifyExt(ext string) Class {
	ext = strings.ToLower(ext)
	if ext != "" && !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	for _, v := range VideoExtensions {
		if v == ext {
			return ClassVideo
		}
	}
	for _, a := range AudioExtensions {
		if a == ext {
			return ClassAudio
		}
	}
	return ClassUnknown
}

// Classify returns the class of a file from its extension
func Classify(path string) Class {
	return ClassifyExt(Ext(path))
}

// CheckConversion decides whether a source class may be converted to a target class
func CheckConversion(src, dst Class) (Conversion, error) {
	switch {
	case src == ClassVideo && dst == ClassVideo:
		return ConvertVideoToVideo, nil
	case src == ClassVideo && dst == ClassAudio:
		return ConvertVideoToAudio, nil
	case src == ClassAudio && dst == ClassAudio:
		return ConvertAudioToAudio, nil
	default:
		return 0, fmt.Errorf("%w: %s to %s", ErrUnsupportedConversion, src, dst)
	}
}

// AudioEncoder returns the ffmpeg encoder used for an audio-only output path
func AudioEncoder(outputPath string) (string, bool) {
	enc, ok := audioEncoders[Ext(outputPath)]
	return enc, ok
}

// FilterGroup is a named set of extensions for file pickers
type FilterGroup struct {
	Name       string
	Extensions []string // nil means all files
}

// FilterGroups returns the picker groups: all media, video, audio, all files
func FilterGroups() []FilterGroup {
	all := make([]string, 0, len(VideoExtensions)+len(AudioExtensions))
	all = append(all, VideoExtensions...)
	all = append(all, AudioExtensions...)
	return []FilterGroup{
		{Name: "All media", Extensions: all},
		{Name: "Video", Extensions: append([]string(nil), VideoExtensions...)},
		{Name: "Audio", Extensions: append([]string(nil), AudioExtensions...)},
		{Name: "All files"},
	}
}
