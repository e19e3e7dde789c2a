package library

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"sync"

	"github.com/dhowden/tag"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const numWorkers = 8

// Music file extensions picked up by the scanner.
var musicExts = map[string]bool{
	".mp3":  true,
	".flac": true,
	".ogg":  true,
	".opus": true,
	".m4a":  true,
	".mp4":  true,
}

// IsMusicFile reports whether path has a supported audio extension.
func IsMusicFile(path string) bool {
	return musicExts[strings.ToLower(filepath.Ext(path))]
}

// ScanProgress reports the progress of a library scan.
type ScanProgress struct {
	Phase   string // "scanning", "processing", "cleaning", "done"
	Current int
	Total   int
	Stats   *ScanStats // only set when Phase == "done"
}

// ScanStats summarizes a completed scan.
type ScanStats struct {
	Added   int
	Updated int
	Removed int
	Skipped int
}

type fileInfo struct {
	path  string
	mtime int64
}

// Scanner reads audio files from source directories into a Library.
type Scanner struct {
	lib    *Library
	logger *zap.Logger
}

// NewScanner creates a scanner writing into lib.
func NewScanner(lib *Library, logger *zap.Logger) *Scanner {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Scanner{lib: lib, logger: logger.Named("scanner")}
}

// Refresh performs an incremental scan of sources. Files whose mtime is
// unchanged are skipped; tracks whose files disappeared are removed.
// progress may be nil; otherwise it is closed when Refresh returns.
func (s *Scanner) Refresh(ctx context.Context, sources []string, progress chan<- ScanProgress) (ScanStats, error) {
	if progress != nil {
		defer close(progress)
	}
	report := func(p ScanProgress) {
		if progress == nil {
			return
		}
		select {
		case progress <- p:
		case <-ctx.Done():
		}
	}

	report(ScanProgress{Phase: "scanning"})
	files := discoverFiles(sources)

	existing, err := s.lib.Mtimes(ctx)
	if err != nil {
		return ScanStats{}, err
	}

	var toProcess []fileInfo
	seen := make(map[string]bool, len(files))
	for _, f := range files {
		seen[f.path] = true
		if mtime, ok := existing[f.path]; ok && mtime == f.mtime {
			continue
		}
		toProcess = append(toProcess, f)
	}

	tracks, skipped, err := s.processFiles(ctx, toProcess, report)
	if err != nil {
		return ScanStats{}, err
	}
	stats := ScanStats{Skipped: skipped}
	for _, t := range tracks {
		if _, ok := existing[t.Path]; ok {
			stats.Updated++
		} else {
			stats.Added++
		}
	}
	if err := s.lib.Add(ctx, tracks...); err != nil {
		return ScanStats{}, err
	}

	report(ScanProgress{Phase: "cleaning"})
	var removed []string
	for path := range existing {
		if !seen[path] && underAny(path, sources) {
			removed = append(removed, path)
		}
	}
	if err := s.lib.DeletePaths(ctx, removed); err != nil {
		return ScanStats{}, err
	}
	stats.Removed = len(removed)

	s.logger.Info("scan finished",
		zap.Int("added", stats.Added),
		zap.Int("updated", stats.Updated),
		zap.Int("removed", stats.Removed),
		zap.Int("skipped", stats.Skipped))
	report(ScanProgress{Phase: "done", Current: len(files), Total: len(files), Stats: &stats})
	return stats, nil
}

func (s *Scanner) processFiles(
	ctx context.Context,
	files []fileInfo,
	report func(ScanProgress),
) ([]Track, int, error) {
	var (
		mu      sync.Mutex
		tracks  = make([]Track, 0, len(files))
		skipped int
		done    int
	)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(numWorkers)
	for _, f := range files {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			t, err := ReadTrack(f.path)

			mu.Lock()
			defer mu.Unlock()
			done++
			if err != nil {
				s.logger.Debug("skipping unreadable file", zap.String("path", f.path), zap.Error(err))
				skipped++
			} else {
				t.Mtime = f.mtime
				tracks = append(tracks, t)
			}
			if done%50 == 0 || done == len(files) {
				report(ScanProgress{Phase: "processing", Current: done, Total: len(files)})
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, 0, err
	}
	return tracks, skipped, nil
}

// ReadTrack reads the tags of the audio file at path.
func ReadTrack(path string) (Track, error) {
	f, err := os.Open(path)
	if err != nil {
		return Track{}, err
	}
	defer f.Close()

	m, err := tag.ReadFrom(f)
	if err != nil {
		return Track{}, err
	}

	trackNum, _ := m.Track()
	discNum, _ := m.Disc()
	return Track{
		ID:           TrackID(path),
		Path:         path,
		Title:        strings.TrimSpace(m.Title()),
		Artists:      SplitArtists(m.Artist()),
		AlbumArtists: SplitArtists(m.AlbumArtist()),
		Album:        strings.TrimSpace(m.Album()),
		Genre:        strings.TrimSpace(m.Genre()),
		Year:         m.Year(),
		TrackNumber:  trackNum,
		DiscNumber:   discNum,
	}, nil
}

var artistSepRe = regexp.MustCompile(`(?i)\s*(?:;|/|\s+feat\.\s+)\s*`)

// SplitArtists splits a multi-valued artist tag on ";", "/" and " feat. ".
// Empty parts and duplicates are dropped.
func SplitArtists(s string) []string {
	var out []string
	seen := make(map[string]bool)
	for _, part := range artistSepRe.Split(s, -1) {
		part = strings.TrimSpace(part)
		if part == "" || seen[part] {
			continue
		}
		seen[part] = true
		out = append(out, part)
	}
	return out
}

// discoverFiles walks the source directories and returns every music file.
func discoverFiles(sources []string) []fileInfo {
	var files []fileInfo
	for _, src := range sources {
		_ = filepath.WalkDir(src, func(path string, d fs.DirEntry, walkErr error) error {
			// Unreadable entries are skipped so one bad directory does not
			// abort the scan.
			if walkErr != nil {
				return nil //nolint:nilerr // intentionally skipping errors
			}
			if d.IsDir() || !IsMusicFile(path) {
				return nil
			}
			info, err := d.Info()
			if err != nil {
				return nil //nolint:nilerr // intentionally skipping errors
			}
			files = append(files, fileInfo{path: path, mtime: info.ModTime().Unix()})
			return nil
		})
	}
	return files
}

func underAny(path string, sources []string) bool {
	for _, src := range sources {
		rel, err := filepath.Rel(src, path)
		if err == nil && rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
			return true
		}
	}
	return false
}
