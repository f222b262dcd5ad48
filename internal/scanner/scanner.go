package scanner

import (
	"cmp"
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/spf13/afero"

	"github.com/voust/alignment/internal/domain"
	"github.com/voust/alignment/internal/manifest"
	"github.com/voust/alignment/internal/utils"
)

// Default values
const (
	DefaultRoot = "src"
)

// DefaultAllowedDirs are the non-section folders tolerated at the root
var DefaultAllowedDirs = []string{"images"}

// Scanner validates a source root and lists its sections and documents
type Scanner struct {
	fs      afero.Fs
	root    string
	allowed map[string]bool
	exclude []string
	logger  *utils.Logger
}

// Options contains options for the scanner
type Options struct {
	Fs          afero.Fs
	Root        string
	AllowedDirs []string
	Exclude     []string // doublestar patterns matched against "<section>/<file>"
	Logger      *utils.Logger
}

// New creates a new scanner
func New(opts Options) *Scanner {
	if opts.Fs == nil {
		opts.Fs = afero.NewOsFs()
	}
	if opts.Root == "" {
		opts.Root = DefaultRoot
	}
	if opts.AllowedDirs == nil {
		opts.AllowedDirs = DefaultAllowedDirs
	}
	if opts.Logger == nil {
		opts.Logger = utils.NewNopLogger()
	}

	allowed := make(map[string]bool, len(opts.AllowedDirs))
	for _, dir := range opts.AllowedDirs {
		allowed[dir] = true
	}

	return &Scanner{
		fs:      opts.Fs,
		root:    opts.Root,
		allowed: allowed,
		exclude: opts.Exclude,
		logger:  opts.Logger.WithComponent("scanner").WithRoot(opts.Root),
	}
}

// Root returns the scanned source root
func (s *Scanner) Root() string {
	return s.root
}

// Scan validates the source root and returns its navigation manifest.
// The first convention violation aborts the scan.
func (s *Scanner) Scan() (*manifest.Manifest, error) {
	if !utils.DirExists(s.fs, s.root) {
		return nil, domain.NewStructureError(domain.ErrSourceNotFound, s.root, "")
	}

	m := manifest.New()
	if utils.FileExists(s.fs, filepath.Join(s.root, domain.IndexFile)) {
		m.Introduction = domain.IndexFile
		s.logger.Debug().Msg("Found landing page")
	}

	sections, err := s.classify()
	if err != nil {
		return nil, err
	}

	slices.SortStableFunc(sections, compareSections)

	for _, sec := range sections {
		scanned, err := s.scanSection(sec)
		if err != nil {
			return nil, err
		}
		m.Sections = append(m.Sections, scanned)
	}

	s.logger.Debug().
		Int("sections", len(m.Sections)).
		Int("documents", m.DocumentCount()).
		Msg("Scan complete")

	return m, nil
}

// classify walks the root entries and returns the accepted sections in
// listing order. Duplicate numbers are rejected as soon as they are seen.
func (s *Scanner) classify() ([]domain.Section, error) {
	entries, err := afero.ReadDir(s.fs, s.root)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", s.root, err)
	}

	seen := make(map[int]string)
	var sections []domain.Section

	for _, entry := range entries {
		name := entry.Name()
		if utils.IsHidden(name) {
			continue
		}
		if !s.isDir(s.root, entry) {
			continue
		}

		if !IsSectionCandidate(name) {
			if !s.allowed[name] {
				return nil, domain.NewStructureError(domain.ErrUnauthorizedFolder, s.root, name)
			}
			s.logger.Debug().Str("folder", name).Msg("Ignoring whitelisted folder")
			continue
		}

		number, slug, ok := ParseSectionName(name)
		if !ok {
			return nil, domain.NewStructureError(domain.ErrNamingViolation, s.root, name)
		}
		if existing, dup := seen[number]; dup {
			return nil, domain.NewDuplicateSectionError(s.root, number, existing, name)
		}
		seen[number] = name

		sections = append(sections, domain.Section{
			Name:   name,
			Number: number,
			Slug:   slug,
			Title:  SectionTitle(slug),
		})
	}

	return sections, nil
}

// scanSection checks the section landing page and lists its documents
func (s *Scanner) scanSection(sec domain.Section) (domain.Section, error) {
	log := s.logger.WithSection(sec.Name)
	dir := filepath.Join(s.root, sec.Name)

	if !utils.FileExists(s.fs, filepath.Join(dir, domain.IndexFile)) {
		return sec, domain.NewStructureError(domain.ErrMissingIndex, s.root, sec.Name)
	}

	entries, err := afero.ReadDir(s.fs, dir)
	if err != nil {
		return sec, fmt.Errorf("failed to read %s: %w", dir, err)
	}

	var names []string
	for _, entry := range entries {
		name := entry.Name()
		if name == domain.IndexFile || utils.IsHidden(name) || !utils.IsMarkdown(name) {
			continue
		}
		if s.isDir(dir, entry) {
			continue
		}
		if s.excluded(utils.LinkPath(sec.Name, name)) {
			log.Debug().Str("file", name).Msg("Excluded by pattern")
			continue
		}
		names = append(names, name)
	}
	slices.Sort(names)

	docs := make([]domain.Document, 0, len(names))
	for _, name := range names {
		docs = append(docs, domain.Document{
			Name:  name,
			Title: DocumentTitle(name),
			Path:  utils.LinkPath(sec.Name, name),
		})
	}
	sec.Documents = docs

	log.Debug().Int("documents", len(docs)).Str("title", sec.Title).Msg("Section accepted")
	return sec, nil
}

// isDir follows symlinks so a linked folder counts as a folder
func (s *Scanner) isDir(parent string, info os.FileInfo) bool {
	if info.Mode()&os.ModeSymlink == 0 {
		return info.IsDir()
	}
	target, err := s.fs.Stat(filepath.Join(parent, info.Name()))
	return err == nil && target.IsDir()
}

func (s *Scanner) excluded(rel string) bool {
	for _, pattern := range s.exclude {
		if match, _ := doublestar.Match(pattern, rel); match {
			return true
		}
	}
	return false
}

func compareSections(a, b domain.Section) int {
	if c := cmp.Compare(a.Number, b.Number); c != 0 {
		return c
	}
	return cmp.Compare(a.Name, b.Name)
}
