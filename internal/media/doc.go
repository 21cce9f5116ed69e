// Package media drives the ffmpeg and ffprobe executables. It classifies files
// by extension, builds the argument lists for every editing operation, probes
// inputs for duration and streams, reports encode progress and reads ID3 tags.
package media
