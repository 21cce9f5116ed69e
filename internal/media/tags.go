package media

import (
	"fmt"
	"strings"

	"github.com/bogem/id3v2/v2"
)

// Tags holds the ID3 text frames shown next to mp3 files
type Tags struct {
	Title  string
	Artist string
	Album  string
}

// Label returns "Artist - Title", whichever parts are present
func (t *Tags) Label() string {
	if t == nil {
		return ""
	}
	switch {
	case t.Artist != "" && t.Title != "":
		return t.Artist + " - " + t.Title
	case t.Title != "":
		return t.Title
	default:
		return t.Artist
	}
}

// ReadTags reads ID3v2 tags from an mp3 file. Other extensions and files
// without a tag return nil tags and no error.
func ReadTags(path string) (*Tags, error) {
	if Ext(path) != ".mp3" {
		return nil, nil
	}

	tag, err := id3v2.Open(path, id3v2.Options{Parse: true})
	if err != nil {
		return nil, fmt.Errorf("read id3 tags from %s: %w", path, err)
	}
	defer func() { _ = tag.Close() }()

	tags := &Tags{
		Title:  strings.TrimSpace(tag.Title()),
		Artist: strings.TrimSpace(tag.Artist()),
		Album:  strings.TrimSpace(tag.Album()),
	}
	if tags.Title == "" && tags.Artist == "" && tags.Album == "" {
		return nil, nil
	}
	return tags, nil
}
