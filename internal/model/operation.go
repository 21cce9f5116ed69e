package model

import "fmt"

// Operation identifies one of the editing operations offered to the user
type Operation string

const (
	OpMergeVideos  Operation = "merge-videos"
	OpMergeAudio   Operation = "merge-audio"
	OpTrimVideo    Operation = "trim-video"
	OpTrimAudio    Operation = "trim-audio"
	OpExtractAudio Operation = "extract-audio"
	OpAdjustVolume Operation = "adjust-volume"
	OpConvert      Operation = "convert"
	OpCombine      Operation = "combine"
)

// AllOperations returns operations in the order they are presented
func AllOperations() []Operation {
	return []Operation{
		OpMergeVideos,
		OpMergeAudio,
		OpTrimVideo,
		OpTrimAudio,
		OpExtractAudio,
		OpAdjustVolume,
		OpConvert,
		OpCombine,
	}
}

// String returns the string representation of Operation
func (o Operation) String() string {
	return string(o)
}

// IsValid reports whether o is a known operation
func (o Operation) IsValid() bool {
	for _, op := range AllOperations() {
		if op == o {
			return true
		}
	}
	return false
}

// NeedsParams reports whether the operation collects parameters before running
func (o Operation) NeedsParams() bool {
	return o == OpTrimVideo || o == OpTrimAudio || o == OpAdjustVolume || o == OpConvert
}

// ParseOperation converts a name such as "trim-audio" into an Operation
func ParseOperation(name string) (Operation, error) {
	op := Operation(name)
	if !op.IsValid() {
		return "", fmt.Errorf("unknown operation: %s", name)
	}
	return op, nil
}
