package scanner

import (
	"os"
	"path/filepath"
	"slices"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/voust/alignment/internal/domain"
	"github.com/voust/alignment/tests/testutil"
)

func newScanner(fs afero.Fs, opts ...func(*Options)) *Scanner {
	o := Options{Fs: fs, Root: "src"}
	for _, fn := range opts {
		fn(&o)
	}
	return New(o)
}

func TestNew_Defaults(t *testing.T) {
	s := New(Options{})

	assert.Equal(t, DefaultRoot, s.Root())
	assert.True(t, s.allowed["images"])
	assert.NotNil(t, s.fs)
	assert.NotNil(t, s.logger)
}

func TestScan_ValidTree(t *testing.T) {
	fs := afero.NewMemMapFs()
	testutil.BuildTree(t, fs, "src",
		"index.md",
		"images/logo.png",
		"02_setup/index.md",
		"02_setup/configure.md",
		"01_intro/index.md",
		"01_intro/why.md",
		"01_intro/getting_started.md",
		"03-advanced-topics/index.md",
	)

	m, err := newScanner(fs).Scan()
	require.NoError(t, err)

	assert.Equal(t, "index.md", m.Introduction)
	require.Len(t, m.Sections, 3)

	assert.Equal(t, "01_intro", m.Sections[0].Name)
	assert.Equal(t, 1, m.Sections[0].Number)
	assert.Equal(t, "Intro", m.Sections[0].Title)
	assert.Equal(t, []domain.Document{
		{Name: "getting_started.md", Title: "Getting Started", Path: "01_intro/getting_started.md"},
		{Name: "why.md", Title: "Why", Path: "01_intro/why.md"},
	}, m.Sections[0].Documents)

	assert.Equal(t, "02_setup", m.Sections[1].Name)
	assert.Equal(t, "03-advanced-topics", m.Sections[2].Name)
	assert.Equal(t, "Advanced Topics", m.Sections[2].Title)
	assert.Empty(t, m.Sections[2].Documents)

	want := "# Summary\n" +
		"\n" +
		"- [Introduction](index.md)\n" +
		"\n" +
		"- [Intro](01_intro/index.md)\n" +
		"    - [Getting Started](01_intro/getting_started.md)\n" +
		"    - [Why](01_intro/why.md)\n" +
		"- [Setup](02_setup/index.md)\n" +
		"    - [Configure](02_setup/configure.md)\n" +
		"- [Advanced Topics](03-advanced-topics/index.md)\n"
	assert.Equal(t, want, string(m.Render()))
}

func TestScan_SectionsInNumericOrder(t *testing.T) {
	fs := afero.NewMemMapFs()
	testutil.BuildTree(t, fs, "src",
		"10_zeta/index.md",
		"02-alpha/index.md",
		"01_omega/index.md",
	)

	m, err := newScanner(fs).Scan()
	require.NoError(t, err)

	var names []string
	for _, sec := range m.Sections {
		names = append(names, sec.Name)
	}
	assert.Equal(t, []string{"01_omega", "02-alpha", "10_zeta"}, names)
}

func TestCompareSections(t *testing.T) {
	sections := []domain.Section{
		{Name: "10_zeta", Number: 10},
		{Name: "02_b", Number: 2},
		{Name: "09_x", Number: 9},
		{Name: "02_a", Number: 2},
	}

	slices.SortStableFunc(sections, compareSections)

	var names []string
	for _, sec := range sections {
		names = append(names, sec.Name)
	}
	assert.Equal(t, []string{"02_a", "02_b", "09_x", "10_zeta"}, names)
}

func TestScan_NoLandingPage(t *testing.T) {
	fs := afero.NewMemMapFs()
	testutil.BuildTree(t, fs, "src", "01_intro/index.md")

	m, err := newScanner(fs).Scan()
	require.NoError(t, err)

	assert.Empty(t, m.Introduction)
	assert.Equal(t, "# Summary\n\n- [Intro](01_intro/index.md)\n", string(m.Render()))
}

func TestScan_IgnoresHiddenAndNonDirectoryEntries(t *testing.T) {
	fs := afero.NewMemMapFs()
	testutil.BuildTree(t, fs, "src",
		".git/",
		".obsidian/workspace.json",
		"SUMMARY.md",
		"notes.txt",
		"01_intro/index.md",
		"01_intro/.draft.md",
		"01_intro/diagram.png",
		"01_intro/nested/",
		"01_intro/nested/deep.md",
		"01_intro/folder.md/",
	)

	m, err := newScanner(fs).Scan()
	require.NoError(t, err)

	require.Len(t, m.Sections, 1)
	assert.Empty(t, m.Sections[0].Documents)
}

func TestScan_ImagesFolderIgnored(t *testing.T) {
	fs := afero.NewMemMapFs()
	testutil.BuildTree(t, fs, "src",
		"images/",
		"01_intro/index.md",
	)

	m, err := newScanner(fs).Scan()
	require.NoError(t, err)
	require.Len(t, m.Sections, 1)
	assert.Equal(t, "01_intro", m.Sections[0].Name)
}

func TestScan_CustomAllowedDirs(t *testing.T) {
	fs := afero.NewMemMapFs()
	testutil.BuildTree(t, fs, "src",
		"assets/",
		"01_intro/index.md",
	)

	_, err := newScanner(fs).Scan()
	assert.ErrorIs(t, err, domain.ErrUnauthorizedFolder)

	m, err := newScanner(fs, func(o *Options) {
		o.AllowedDirs = []string{"assets", "images"}
	}).Scan()
	require.NoError(t, err)
	assert.Len(t, m.Sections, 1)
}

func TestScan_ExcludePatterns(t *testing.T) {
	fs := afero.NewMemMapFs()
	testutil.BuildTree(t, fs, "src",
		"01_intro/index.md",
		"01_intro/draft-plan.md",
		"01_intro/overview.md",
		"02_setup/index.md",
		"02_setup/draft-notes.md",
	)

	m, err := newScanner(fs, func(o *Options) {
		o.Exclude = []string{"**/draft-*.md"}
	}).Scan()
	require.NoError(t, err)

	require.Len(t, m.Sections, 2)
	require.Len(t, m.Sections[0].Documents, 1)
	assert.Equal(t, "overview.md", m.Sections[0].Documents[0].Name)
	assert.Empty(t, m.Sections[1].Documents)
}

func TestScan_Errors(t *testing.T) {
	tests := []struct {
		name        string
		paths       []string
		wantErr     error
		wantFolder  string
		wantMessage string
	}{
		{
			name:        "naming violation",
			paths:       []string{"1_intro/index.md"},
			wantErr:     domain.ErrNamingViolation,
			wantFolder:  "1_intro",
			wantMessage: "Folder '1_intro' violates naming convention.",
		},
		{
			name:        "naming violation without separator",
			paths:       []string{"01intro/index.md"},
			wantErr:     domain.ErrNamingViolation,
			wantFolder:  "01intro",
			wantMessage: "Folder '01intro' violates naming convention.",
		},
		{
			name:        "unauthorized folder",
			paths:       []string{"guide/", "01_intro/index.md"},
			wantErr:     domain.ErrUnauthorizedFolder,
			wantFolder:  "guide",
			wantMessage: "Unauthorized folder 'guide' found in src/.",
		},
		{
			name:        "duplicate section",
			paths:       []string{"01_intro/index.md", "01-overview/index.md"},
			wantErr:     domain.ErrDuplicateSection,
			wantFolder:  "01_intro",
			wantMessage: "Duplicate section '1' (Conflict: '01-overview' vs '01_intro')",
		},
		{
			name:        "duplicate across digit scripts",
			paths:       []string{"01_intro/index.md", "٠١_overview/index.md"},
			wantErr:     domain.ErrDuplicateSection,
			wantFolder:  "٠١_overview",
			wantMessage: "Duplicate section '1' (Conflict: '01_intro' vs '٠١_overview')",
		},
		{
			name:        "missing index",
			paths:       []string{"01_intro/index.md", "02_setup/notes.md"},
			wantErr:     domain.ErrMissingIndex,
			wantFolder:  "02_setup",
			wantMessage: "Folder '02_setup' is missing 'index.md'.",
		},
		{
			name:        "index that is a directory",
			paths:       []string{"01_intro/index.md/"},
			wantErr:     domain.ErrMissingIndex,
			wantFolder:  "01_intro",
			wantMessage: "Folder '01_intro' is missing 'index.md'.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fs := afero.NewMemMapFs()
			testutil.BuildTree(t, fs, "src", tt.paths...)

			m, err := newScanner(fs).Scan()

			assert.Nil(t, m)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.True(t, domain.IsBlocking(err))

			var se *domain.StructureError
			require.ErrorAs(t, err, &se)
			assert.Equal(t, tt.wantFolder, se.Folder)
			assert.Equal(t, tt.wantMessage, err.Error())
		})
	}
}

func TestScan_NonASCIIDigitSections(t *testing.T) {
	fs := afero.NewMemMapFs()
	testutil.BuildTree(t, fs, "src",
		"٠٣_arabic/index.md",
		"01_intro/index.md",
		"०२-devanagari/index.md",
	)

	m, err := newScanner(fs).Scan()
	require.NoError(t, err)

	var got []string
	for _, sec := range m.Sections {
		got = append(got, sec.Name)
	}
	assert.Equal(t, []string{"01_intro", "०२-devanagari", "٠٣_arabic"}, got)
	assert.Equal(t, "Devanagari", m.Sections[1].Title)
}

func TestScan_DuplicateNamesBothFolders(t *testing.T) {
	fs := afero.NewMemMapFs()
	testutil.BuildTree(t, fs, "src", "01_intro/index.md", "01-overview/index.md")

	_, err := newScanner(fs).Scan()

	require.ErrorIs(t, err, domain.ErrDuplicateSection)
	assert.Contains(t, err.Error(), "01_intro")
	assert.Contains(t, err.Error(), "01-overview")
}

func TestScan_DuplicateDetectedBeforeMissingIndex(t *testing.T) {
	fs := afero.NewMemMapFs()
	// 01_b lacks index.md, but the duplicate is found during classification.
	testutil.BuildTree(t, fs, "src", "01_a/index.md", "01_b/")

	_, err := newScanner(fs).Scan()
	assert.ErrorIs(t, err, domain.ErrDuplicateSection)
}

func TestScan_MissingRoot(t *testing.T) {
	fs := afero.NewMemMapFs()

	m, err := newScanner(fs).Scan()

	assert.Nil(t, m)
	assert.ErrorIs(t, err, domain.ErrSourceNotFound)
	assert.False(t, domain.IsBlocking(err))
	assert.Equal(t, "'src' directory not found.", err.Error())
}

func TestScan_RootIsFile(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "src", []byte("not a dir"), 0644))

	_, err := newScanner(fs).Scan()
	assert.ErrorIs(t, err, domain.ErrSourceNotFound)
}

func TestScan_Idempotent(t *testing.T) {
	fs := afero.NewMemMapFs()
	testutil.BuildTree(t, fs, "src",
		"index.md",
		"01_intro/index.md",
		"01_intro/b.md",
		"01_intro/a.md",
	)

	first, err := newScanner(fs).Scan()
	require.NoError(t, err)
	second, err := newScanner(fs).Scan()
	require.NoError(t, err)

	assert.Equal(t, first.Render(), second.Render())
}

func TestScan_LogsSections(t *testing.T) {
	fs := afero.NewMemMapFs()
	testutil.BuildTree(t, fs, "src", "01_intro/index.md", "01_intro/a.md")
	logger, buf := testutil.NewBufferLogger(t)

	_, err := newScanner(fs, func(o *Options) { o.Logger = logger }).Scan()
	require.NoError(t, err)

	assert.Contains(t, buf.String(), `"section":"01_intro"`)
	assert.Contains(t, buf.String(), "Section accepted")
}

func TestScan_SymlinkedSection(t *testing.T) {
	dir := t.TempDir()
	fs := afero.NewOsFs()
	root := filepath.Join(dir, "src")
	testutil.BuildTree(t, fs, dir, "shared/index.md", "shared/page.md")
	testutil.BuildTree(t, fs, root, "01_intro/index.md")
	if err := os.Symlink(filepath.Join(dir, "shared"), filepath.Join(root, "02_shared")); err != nil {
		t.Skipf("symlinks unavailable: %v", err)
	}

	m, err := newScanner(fs, func(o *Options) { o.Root = root }).Scan()
	require.NoError(t, err)

	require.Len(t, m.Sections, 2)
	assert.Equal(t, "02_shared", m.Sections[1].Name)
	require.Len(t, m.Sections[1].Documents, 1)
	assert.Equal(t, "02_shared/page.md", m.Sections[1].Documents[0].Path)
}
