package library

import (
	"bytes"
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

// tagSpec describes the ID3v2 frames written into a synthetic MP3.
type tagSpec struct {
	Album  string
	Artist string
	Title  string
	Track  string // raw TRCK payload, e.g. "3" or "3/12"
	Disc   string // raw TPOS payload
}

// buildID3v2 renders a minimal ID3v2.3 tag followed by a little junk audio
// data, enough for the tag parser to read real frames from.
func buildID3v2(spec tagSpec) []byte {
	var frames bytes.Buffer
	writeFrame := func(id, value string) {
		if value == "" {
			return
		}
		frames.WriteString(id)
		var size [4]byte
		binary.BigEndian.PutUint32(size[:], uint32(len(value)+1))
		frames.Write(size[:])
		frames.Write([]byte{0, 0}) // frame flags
		frames.WriteByte(0)        // ISO-8859-1 text encoding
		frames.WriteString(value)
	}
	writeFrame("TALB", spec.Album)
	writeFrame("TPE1", spec.Artist)
	writeFrame("TIT2", spec.Title)
	writeFrame("TRCK", spec.Track)
	writeFrame("TPOS", spec.Disc)

	var out bytes.Buffer
	out.WriteString("ID3")
	out.Write([]byte{3, 0, 0}) // v2.3.0, no flags
	out.Write(syncSafe(frames.Len()))
	out.Write(frames.Bytes())
	out.Write(bytes.Repeat([]byte{0xFF}, 32))
	return out.Bytes()
}

// syncSafe encodes n as the 4-byte synchsafe integer ID3 headers use.
func syncSafe(n int) []byte {
	return []byte{
		byte(n >> 21 & 0x7F),
		byte(n >> 14 & 0x7F),
		byte(n >> 7 & 0x7F),
		byte(n & 0x7F),
	}
}

// writeTrack drops a synthetic tagged MP3 at dir/name, creating parents.
func writeTrack(t *testing.T, dir, name string, spec tagSpec) string {
	t.Helper()
	return writeTestFile(t, dir, name, buildID3v2(spec))
}

// writeTestFile drops an arbitrary file at dir/name, creating parents.
func writeTestFile(t *testing.T, dir, name string, content []byte) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, content, 0644))
	return path
}

// newTestScanner builds a scanner whose diagnostics are captured for
// assertions.
func newTestScanner(root string) (*Scanner, *observer.ObservedLogs) {
	core, logs := observer.New(zapcore.DebugLevel)
	return NewScanner(root, zap.New(core)), logs
}
