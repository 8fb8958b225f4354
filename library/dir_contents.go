package library

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// DirContents is the classified snapshot of one album directory: the
// directory path, its music files (sorted, all with metadata) and whatever
// else was lying around. Snapshots are immutable after the scan assembles
// them.
type DirContents struct {
	ID            uuid.UUID
	Path          string
	MusicFiles    []MusicFile
	OrdinaryFiles []OrdinaryFile
}

// SameAlbumTitle returns the album title shared by every music file. ok is
// false when the list is empty or any two albums differ. Comparison is exact
// string equality; inconsistent tagging is surfaced, not masked.
func (d *DirContents) SameAlbumTitle() (string, bool) {
	var first string
	seen := false
	for _, m := range d.MusicFiles {
		if m.Metadata == nil {
			continue
		}
		if !seen {
			first = m.Metadata.Album
			seen = true
			continue
		}
		if m.Metadata.Album != first {
			return "", false
		}
	}
	if !seen {
		return "", false
	}
	return first, true
}

// SameArtists reports whether every music file carries an identical artist
// tag. False covers both disagreement and the no-metadata case.
func (d *DirContents) SameArtists() bool {
	var first string
	seen := false
	for _, m := range d.MusicFiles {
		if m.Metadata == nil {
			continue
		}
		if !seen {
			first = m.Metadata.Artist
			seen = true
			continue
		}
		if m.Metadata.Artist != first {
			return false
		}
	}
	return seen
}

// String renders a human-readable dump of the snapshot, for diagnostics only.
func (d *DirContents) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Directory Name: %s\n", d.Path)
	fmt.Fprintf(&b, "music files:    %d entries\n", len(d.MusicFiles))
	fmt.Fprintf(&b, "ordinary files: %d entries\n", len(d.OrdinaryFiles))
	for _, o := range d.OrdinaryFiles {
		fmt.Fprintf(&b, "ordinary file:  %s\n", o.Path)
	}
	for _, m := range d.MusicFiles {
		fmt.Fprintf(&b, "%s\n", m)
	}
	return b.String()
}
