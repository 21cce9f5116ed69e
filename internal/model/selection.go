package model

import "path/filepath"

// Selection is the ordered list of input files picked by the user.
// It is owned by the UI goroutine; callers that hand it to background work
// take a copy with Paths.
type Selection struct {
	paths []string
}

// NewSelection creates an empty selection
func NewSelection() *Selection {
	return &Selection{}
}

// Replace swaps the whole selection for paths and reports whether anything
// changed. An empty paths slice leaves the current selection untouched.
func (s *Selection) Replace(paths []string) bool {
	if len(paths) == 0 {
		return false
	}
	s.paths = append([]string(nil), paths...)
	return true
}

// Paths returns a copy of the selected paths in selection order
func (s *Selection) Paths() []string {
	return append([]string(nil), s.paths...)
}

// Len returns the number of selected files
func (s *Selection) Len() int {
	return len(s.paths)
}

// IsEmpty reports whether no files are selected
func (s *Selection) IsEmpty() bool {
	return len(s.paths) == 0
}

// At returns the path at index i, or "" when out of range
func (s *Selection) At(i int) string {
	if i < 0 || i >= len(s.paths) {
		return ""
	}
	return s.paths[i]
}

// DisplayNames returns the base names of the selected files
func (s *Selection) DisplayNames() []string {
	names := make([]string, 0, len(s.paths))
	for _, p := range s.paths {
		names = append(names, filepath.Base(p))
	}
	return names
}
