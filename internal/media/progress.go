package media

import (
	"bufio"
	"io"
	"strconv"
	"strings"
)

// ProgressFunc receives encode progress in the range 0.0 to 1.0
type ProgressFunc func(progress float64)

const (
	progressTimePrefix = "out_time_us="
	progressEndLine    = "progress=end"

	// maxErrorLines bounds the stderr tail kept for error messages
	maxErrorLines = 20
)

// progressKeys are the key=value lines ffmpeg writes for -progress
var progressKeys = []string{
	"frame=", "fps=", "stream_", "bitrate=", "total_size=", "out_time",
	"dup_frames=", "drop_frames=", "speed=", "progress=",
}

// scanProgress reads ffmpeg stderr, reports progress against totalDuration and
// returns the non-progress lines (errors) that were seen, most recent last
func scanProgress(r io.Reader, totalDuration float64, onProgress ProgressFunc) []string {
	var errLines []string
	scanner := bufio.NewScanner(r)

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		if strings.HasPrefix(line, progressTimePrefix) {
			if p, ok := parseOutTime(line, totalDuration); ok && onProgress != nil {
				onProgress(p)
			}
			continue
		}
		if line == progressEndLine {
			if onProgress != nil {
				onProgress(1.0)
			}
			continue
		}
		if isProgressLine(line) {
			continue
		}

		errLines = append(errLines, line)
		if len(errLines) > maxErrorLines {
			errLines = errLines[1:]
		}
	}

	return errLines
}

// parseOutTime converts "out_time_us=123456" into a fraction of totalDuration
func parseOutTime(line string, totalDuration float64) (float64, bool) {
	if totalDuration <= 0 {
		return 0, false
	}
	timeStr := strings.TrimPrefix(line, progressTimePrefix)
	timeMicroseconds, err := strconv.ParseInt(timeStr, 10, 64)
	if err != nil {
		return 0, false
	}

	progress := float64(timeMicroseconds) / 1000000.0 / totalDuration
	if progress < 0 {
		progress = 0
	}
	if progress > 1.0 {
		progress = 1.0
	}
	return progress, true
}

func isProgressLine(line string) bool {
	for _, key := range progressKeys {
		if strings.HasPrefix(line, key) {
			return true
		}
	}
	return false
}
