package app

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/afero"

	"github.com/voust/alignment/internal/config"
	"github.com/voust/alignment/internal/domain"
	"github.com/voust/alignment/internal/git"
	"github.com/voust/alignment/internal/manifest"
	"github.com/voust/alignment/internal/output"
	"github.com/voust/alignment/internal/scanner"
	"github.com/voust/alignment/internal/utils"
)

// Orchestrator coordinates root resolution, scanning and writing of the manifest
type Orchestrator struct {
	config        *config.Config
	fs            afero.Fs
	git           git.Client
	logger        *utils.Logger
	workDir       string
	writerFactory func(path string) domain.SummaryWriter
}

// OrchestratorOptions contains options for creating an orchestrator
type OrchestratorOptions struct {
	domain.CommonOptions
	Config        *config.Config
	Fs            afero.Fs
	Git           git.Client
	Logger        *utils.Logger
	WorkDir       string
	WriterFactory func(path string) domain.SummaryWriter
}

// Result describes a completed run
type Result struct {
	Root      string
	Path      string
	Sections  int
	Documents int
	Content   []byte
	Written   bool
	Duration  time.Duration
}

// NewOrchestrator creates a new orchestrator with the given configuration
func NewOrchestrator(opts OrchestratorOptions) (*Orchestrator, error) {
	cfg := opts.Config
	if cfg == nil {
		return nil, fmt.Errorf("config is required")
	}

	logger := opts.Logger
	if logger == nil {
		logLevel := "info"
		logFormat := "pretty"
		if cfg.Logging.Level != "" {
			logLevel = cfg.Logging.Level
		}
		if cfg.Logging.Format != "" {
			logFormat = cfg.Logging.Format
		}
		logger = utils.NewLogger(utils.LoggerOptions{
			Level:   logLevel,
			Format:  logFormat,
			Verbose: opts.Verbose,
		})
	}

	fs := opts.Fs
	if fs == nil {
		fs = afero.NewOsFs()
	}

	gitClient := opts.Git
	if gitClient == nil {
		gitClient = git.NewClient()
	}

	workDir := opts.WorkDir
	if workDir == "" {
		workDir = "."
	}

	writerFactory := opts.WriterFactory
	if writerFactory == nil {
		writerFactory = func(path string) domain.SummaryWriter {
			return output.NewWriter(output.WriterOptions{
				Fs:     fs,
				Path:   path,
				Logger: logger,
			})
		}
	}

	return &Orchestrator{
		config:        cfg,
		fs:            fs,
		git:           gitClient,
		logger:        logger,
		workDir:       workDir,
		writerFactory: writerFactory,
	}, nil
}

// ResolveRoot returns the source root for this run
func (o *Orchestrator) ResolveRoot() (string, error) {
	baseDir := o.workDir
	if o.config.Git.RepoRoot {
		repoRoot, err := o.git.RepositoryRoot(o.workDir)
		if err != nil {
			return "", fmt.Errorf("failed to locate repository root: %w", err)
		}
		o.logger.Debug().Str("repo_root", repoRoot).Msg("Using repository root as base directory")
		baseDir = repoRoot
	}

	return o.config.ResolveSourceRoot(o.fs, baseDir)
}

// Scan resolves the source root and scans it into a manifest
func (o *Orchestrator) Scan(ctx context.Context) (*manifest.Manifest, string, error) {
	if err := ctx.Err(); err != nil {
		return nil, "", err
	}

	root, err := o.ResolveRoot()
	if err != nil {
		return nil, "", err
	}

	s := scanner.New(scanner.Options{
		Fs:          o.fs,
		Root:        root,
		AllowedDirs: o.config.Source.AllowedDirs,
		Exclude:     o.config.Source.Exclude,
		Logger:      o.logger,
	})

	m, err := s.Scan()
	if err != nil {
		return nil, s.Root(), err
	}
	return m, s.Root(), nil
}

// Run scans the source tree and, depending on opts, writes, prints or
// checks the manifest. Nothing is written when the scan fails.
func (o *Orchestrator) Run(ctx context.Context, opts domain.CommonOptions) (*Result, error) {
	startTime := time.Now()

	m, root, err := o.Scan(ctx)
	if err != nil {
		return nil, err
	}

	content := m.Render()
	writer := o.writerFactory(o.config.OutputPath(root))

	result := &Result{
		Root:      root,
		Path:      writer.Path(),
		Sections:  len(m.Sections),
		Documents: m.DocumentCount(),
		Content:   content,
	}

	switch {
	case opts.DryRun:
		o.logger.Debug().Str("path", result.Path).Msg("Dry run, manifest not written")
	case opts.Check:
		if err := writer.Check(content); err != nil {
			return result, err
		}
		o.logger.Debug().Str("path", result.Path).Msg("Manifest is up to date")
	default:
		if err := writer.Write(ctx, content); err != nil {
			return nil, err
		}
		result.Written = true
	}

	result.Duration = time.Since(startTime)
	o.logger.Info().
		Str("root", root).
		Int("sections", result.Sections).
		Int("documents", result.Documents).
		Dur("duration", result.Duration).
		Msg("Navigation generated")

	return result, nil
}
