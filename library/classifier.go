package library

import (
	"path/filepath"
	"strings"
)

// musicExtensions lists the audio container formats the tag reader
// understands. Anything else goes to the ordinary-file bucket.
var musicExtensions = map[string]bool{
	".mp3":  true,
	".flac": true,
	".ogg":  true,
	".oga":  true,
	".m4a":  true,
	".m4b":  true,
	".m4p":  true,
	".mp4":  true,
	".wav":  true,
	".wv":   true,
	".dsf":  true,
}

// IsMusicFile reports whether name looks like a music file, judged by its
// extension. Unrecognized extensions classify as not-music; there is no
// failure mode.
func IsMusicFile(name string) bool {
	return musicExtensions[strings.ToLower(filepath.Ext(name))]
}
