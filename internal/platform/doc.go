package platform

// Package platform contains OS integration glue for the editor: revealing and
// opening output files, locating the ffmpeg tools and resolving default
// directories for the file dialogs.
