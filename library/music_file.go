package library

import "fmt"

// MusicFile is a music candidate plus the metadata extracted from it.
// Metadata is nil when extraction failed; such records are filtered out
// before a DirContents is assembled.
type MusicFile struct {
	Path     string
	Name     string
	Metadata *Metadata
}

// HasMetadata reports whether tag extraction succeeded for this file.
func (m MusicFile) HasMetadata() bool { return m.Metadata != nil }

// Less orders music files by disc number, then track number, then title
// (untitled files fall back to their filename), then path. Path is the final
// tie-break, so distinct files never compare equal.
func (m MusicFile) Less(other MusicFile) bool {
	a, b := m.Metadata, other.Metadata
	switch {
	case a != nil && b == nil:
		return true
	case a == nil && b != nil:
		return false
	case a != nil && b != nil:
		if a.Disc != b.Disc {
			return a.Disc < b.Disc
		}
		if a.Track != b.Track {
			return a.Track < b.Track
		}
		at, bt := a.Title, b.Title
		if at == "" {
			at = m.Name
		}
		if bt == "" {
			bt = other.Name
		}
		if at != bt {
			return at < bt
		}
	}
	return m.Path < other.Path
}

func (m MusicFile) String() string {
	if m.Metadata == nil {
		return fmt.Sprintf("music file:     %s (no readable tags)", m.Path)
	}
	return fmt.Sprintf("music file:     %s [%s / %s / %02d %s]",
		m.Path, m.Metadata.Artist, m.Metadata.Album, m.Metadata.Track, m.Metadata.Title)
}
