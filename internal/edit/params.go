package edit

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

// TrimParams selects the [Start, End) range in seconds
type TrimParams struct {
	Start float64 `validate:"gte=0"`
	End   float64 `validate:"gtfield=Start"`
}

// VolumeParams scales gain; 1.0 keeps the level, 2.0 doubles it
type VolumeParams struct {
	Factor float64 `validate:"gt=0"`
}

// ConvertParams names the target container extension, e.g. ".mkv"
type ConvertParams struct {
	Target string `validate:"required,oneof=.mp4 .avi .mov .mkv .mp3 .wav .flac"`
}

// Dialog defaults
const (
	DefaultTrimStart    = "0"
	DefaultTrimEnd      = "10"
	DefaultVolumeFactor = "1.5"
	DefaultConvertTo    = ".mp4"
)

var validate = validator.New()

func validateParams(params any) error {
	if err := validate.Struct(params); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidParams, err)
	}
	return nil
}

// ParseNumber parses free text such as " 2.5 " into a finite float
func ParseNumber(text string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(text), 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a number", ErrInvalidParams, text)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%w: %q is not a finite number", ErrInvalidParams, text)
	}
	return v, nil
}

// ParseTrim parses the start and end entries of the trim dialog
func ParseTrim(start, end string) (TrimParams, error) {
	s, err := ParseNumber(start)
	if err != nil {
		return TrimParams{}, err
	}
	e, err := ParseNumber(end)
	if err != nil {
		return TrimParams{}, err
	}
	p := TrimParams{Start: s, End: e}
	return p, validateParams(p)
}

// ParseVolume parses the factor entry of the volume dialog
func ParseVolume(factor string) (VolumeParams, error) {
	f, err := ParseNumber(factor)
	if err != nil {
		return VolumeParams{}, err
	}
	p := VolumeParams{Factor: f}
	return p, validateParams(p)
}

// ParseConvert normalizes the target extension chosen in the convert dialog
func ParseConvert(target string) (ConvertParams, error) {
	target = strings.ToLower(strings.TrimSpace(target))
	if target != "" && !strings.HasPrefix(target, ".") {
		target = "." + target
	}
	p := ConvertParams{Target: target}
	return p, validateParams(p)
}
