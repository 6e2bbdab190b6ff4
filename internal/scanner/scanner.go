package scanner

import (
	"bufio"
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"sync"

	ignore "github.com/sabhiram/go-gitignore"
	"golang.org/x/sync/errgroup"
)

// DefaultConcurrency is used when the configured value is invalid
const DefaultConcurrency = 4

// Pattern is a single literal text pattern to search for. A line matches
// when it contains Text and none of the Exclusions.
type Pattern struct {
	// ID identifies the pattern in the result set
	ID string

	// Text is the literal substring to search for
	Text string

	// Exclusions suppress a match when the matching line also contains any
	// of these substrings
	Exclusions []string
}

// Match is a single pattern occurrence
type Match struct {
	// Path is relative to the scan root
	Path string

	// Line is 1-based
	Line int

	// Text is the trimmed matching line
	Text string
}

// Results maps pattern IDs to their matches, sorted by path then line
type Results map[string][]Match

// Options configure a scan
type Options struct {
	// Extensions restricts the scan to files with these extensions
	// (including the dot). Empty means all regular files.
	Extensions []string

	// ExcludeDirs are directory names skipped during the walk
	ExcludeDirs []string

	// RespectGitignore applies the root's .gitignore, when present
	RespectGitignore bool

	// Concurrency bounds the number of files read in parallel
	Concurrency int

	// OnFile is invoked once per scanned file, for progress reporting
	OnFile func()
}

// Scanner performs recursive literal-pattern searches over a directory tree.
// File reads run concurrently; results are sorted so output is deterministic.
type Scanner struct {
	root string
	opts Options
	gi   *ignore.GitIgnore
}

// New creates a scanner rooted at dir
func New(root string, opts Options) *Scanner {
	if opts.Concurrency <= 0 {
		opts.Concurrency = runtime.NumCPU()
		if opts.Concurrency <= 0 {
			opts.Concurrency = DefaultConcurrency
		}
	}

	s := &Scanner{root: root, opts: opts}
	if opts.RespectGitignore {
		if gi, err := ignore.CompileIgnoreFile(filepath.Join(root, ".gitignore")); err == nil {
			s.gi = gi
		}
	}
	return s
}

// Scan searches the tree for all patterns in one pass over the files.
// A missing root yields empty results, not an error: conventional
// directories (src, src/main/resources) are legitimately absent in some
// projects.
func (s *Scanner) Scan(ctx context.Context, patterns []Pattern) (Results, error) {
	results := make(Results, len(patterns))
	for _, p := range patterns {
		results[p.ID] = nil
	}

	files, err := s.collectFiles()
	if err != nil {
		return nil, err
	}

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(s.opts.Concurrency)

	var mu sync.Mutex
	for _, file := range files {
		file := file
		g.Go(func() error {
			select {
			case <-gCtx.Done():
				return gCtx.Err()
			default:
			}

			matches, err := scanFile(filepath.Join(s.root, file), file, patterns)
			if err != nil {
				return err
			}

			mu.Lock()
			for id, m := range matches {
				results[id] = append(results[id], m...)
			}
			mu.Unlock()

			if s.opts.OnFile != nil {
				s.opts.OnFile()
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	for id := range results {
		sort.Slice(results[id], func(i, j int) bool {
			a, b := results[id][i], results[id][j]
			if a.Path != b.Path {
				return a.Path < b.Path
			}
			return a.Line < b.Line
		})
	}

	return results, nil
}

// CountFiles returns the number of files the scan will visit, for sizing
// progress bars.
func (s *Scanner) CountFiles() int {
	files, err := s.collectFiles()
	if err != nil {
		return 0
	}
	return len(files)
}

func (s *Scanner) collectFiles() ([]string, error) {
	var files []string

	info, err := os.Stat(s.root)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("scan root %s is not a directory", s.root)
	}

	err = filepath.WalkDir(s.root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		rel, relErr := filepath.Rel(s.root, path)
		if relErr != nil {
			return relErr
		}

		if d.IsDir() {
			if rel == "." {
				return nil
			}
			if s.isExcludedDir(d.Name()) {
				return filepath.SkipDir
			}
			if s.gi != nil && s.gi.MatchesPath(rel) {
				return filepath.SkipDir
			}
			return nil
		}

		if !s.hasWantedExtension(path) {
			return nil
		}
		if s.gi != nil && s.gi.MatchesPath(rel) {
			return nil
		}

		files = append(files, rel)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return files, nil
}

func (s *Scanner) isExcludedDir(name string) bool {
	for _, pattern := range s.opts.ExcludeDirs {
		if pattern == name {
			return true
		}
		if matched, _ := filepath.Match(pattern, name); matched {
			return true
		}
	}
	return false
}

func (s *Scanner) hasWantedExtension(path string) bool {
	if len(s.opts.Extensions) == 0 {
		return true
	}
	ext := strings.ToLower(filepath.Ext(path))
	for _, wanted := range s.opts.Extensions {
		if ext == wanted {
			return true
		}
	}
	return false
}

func scanFile(path, rel string, patterns []Pattern) (Results, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", rel, err)
	}
	defer f.Close()

	matches := make(Results)
	lineNo := 0
	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	for sc.Scan() {
		lineNo++
		line := sc.Text()
		for _, p := range patterns {
			if !strings.Contains(line, p.Text) {
				continue
			}
			if lineExcluded(line, p.Exclusions) {
				continue
			}
			matches[p.ID] = append(matches[p.ID], Match{
				Path: rel,
				Line: lineNo,
				Text: strings.TrimSpace(line),
			})
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", rel, err)
	}

	return matches, nil
}

func lineExcluded(line string, exclusions []string) bool {
	for _, ex := range exclusions {
		if strings.Contains(line, ex) {
			return true
		}
	}
	return false
}
