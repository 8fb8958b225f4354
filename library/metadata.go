package library

import (
	"fmt"
	"os"

	"github.com/dhowden/tag"
)

// Metadata is the tag record extracted from a music file.
type Metadata struct {
	Album       string
	Artist      string
	Title       string
	Track       int
	TotalTracks int
	Disc        int
	TotalDiscs  int
	Format      string
}

// Reader extracts tag metadata from an audio file on disk. A nil-metadata,
// non-nil-error result means the file carries no usable tags; the caller
// decides how to surface the reason.
type Reader interface {
	Read(path string) (*Metadata, error)
}

// TagReader is the default Reader, parsing tags with the dhowden/tag library
// (ID3v1/v2, MP4, OGG/Vorbis, FLAC).
type TagReader struct{}

// Read opens path, parses its tags and closes the file again. Album and
// artist are required fields: a tag block without them is an extraction
// failure even when it parses.
func (TagReader) Read(path string) (*Metadata, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	m, err := tag.ReadFrom(f)
	if err != nil {
		return nil, fmt.Errorf("parse tags in %s: %w", path, err)
	}

	track, totalTracks := m.Track()
	disc, totalDiscs := m.Disc()

	md := &Metadata{
		Album:       m.Album(),
		Artist:      m.Artist(),
		Title:       m.Title(),
		Track:       track,
		TotalTracks: totalTracks,
		Disc:        disc,
		TotalDiscs:  totalDiscs,
		Format:      string(m.Format()),
	}

	if md.Album == "" {
		return nil, fmt.Errorf("no album tag in %s", path)
	}
	if md.Artist == "" {
		return nil, fmt.Errorf("no artist tag in %s", path)
	}

	return md, nil
}
