// Command media-editor runs the editing operations from the command line.
//
//	media-editor merge-videos a.mp4 b.mp4 -o merged.mp4
//	media-editor trim-audio talk.wav --start 5 --end 65
//	media-editor convert clip.mov --to .mkv
//	media-editor probe clip.mov song.mp3
//
// Without -o the output is written to the current directory under the same
// default name the desktop application proposes. Refused operations exit
// with status 2, failed ones with status 1.
package main
