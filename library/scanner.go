package library

import (
	"context"
	"os"
	"path/filepath"
	"sort"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Scanner walks a directory tree and collects one DirContents per directory
// holding at least one music file with readable tags. The walk is fail-soft:
// a subtree that cannot be read is logged and skipped, siblings continue.
type Scanner struct {
	Root   string
	Reader Reader
	Log    *zap.Logger

	// OnDirectory, when set, is called once per visited directory, children
	// before parents. The CLI uses it for progress display.
	OnDirectory func(path string)
}

// NewScanner builds a scanner over root with the default tag reader.
func NewScanner(root string, log *zap.Logger) *Scanner {
	return &Scanner{Root: filepath.Clean(root), Reader: TagReader{}, Log: log}
}

// Scan performs one full contents-first pass and returns the snapshots in
// traversal order, deepest directories first. The scan always runs to
// completion; the only early return is context cancellation, which yields
// the snapshots collected so far alongside ctx.Err().
func (s *Scanner) Scan(ctx context.Context) ([]DirContents, error) {
	var results []DirContents
	if err := s.walk(ctx, s.Root, &results); err != nil {
		return results, err
	}
	return results, nil
}

// walk visits dir's subdirectories before dir itself. Only context errors
// propagate; everything else is logged and swallowed.
func (s *Scanner) walk(ctx context.Context, dir string, results *[]DirContents) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		s.Log.Warn("cannot read directory, skipping subtree",
			zap.String("dir", dir), zap.Error(err))
		return nil
	}

	for _, e := range entries {
		if e.IsDir() {
			if err := s.walk(ctx, filepath.Join(dir, e.Name()), results); err != nil {
				return err
			}
		}
	}

	if s.OnDirectory != nil {
		s.OnDirectory(dir)
	}

	if dc, ok := s.classify(dir, entries); ok {
		*results = append(*results, dc)
	}
	return nil
}

// classify partitions dir's immediate children into music and ordinary files
// and assembles a snapshot. ok is false when no music file with readable
// tags remains, in which case the directory is dropped entirely.
func (s *Scanner) classify(dir string, entries []os.DirEntry) (DirContents, bool) {
	var music []MusicFile
	var ordinary []OrdinaryFile

	for _, e := range entries {
		if !e.Type().IsRegular() {
			continue
		}
		path := filepath.Join(dir, e.Name())
		if !IsMusicFile(e.Name()) {
			ordinary = append(ordinary, OrdinaryFile{Path: path, Name: e.Name()})
			continue
		}
		md, err := s.Reader.Read(path)
		if err != nil {
			s.Log.Warn("cannot read tags, skipping file",
				zap.String("file", path), zap.Error(err))
			continue
		}
		music = append(music, MusicFile{Path: path, Name: e.Name(), Metadata: md})
	}

	if len(music) == 0 {
		return DirContents{}, false
	}

	sort.SliceStable(music, func(i, j int) bool { return music[i].Less(music[j]) })

	return DirContents{
		ID:            uuid.New(),
		Path:          dir,
		MusicFiles:    music,
		OrdinaryFiles: ordinary,
	}, true
}
