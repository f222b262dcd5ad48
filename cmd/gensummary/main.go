package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/dustin/go-humanize"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/voust/alignment/internal/app"
	"github.com/voust/alignment/internal/config"
	"github.com/voust/alignment/internal/domain"
	"github.com/voust/alignment/internal/manifest"
	"github.com/voust/alignment/internal/ui"
	"github.com/voust/alignment/internal/utils"
	"github.com/voust/alignment/pkg/version"
)

var (
	cfgFile string
	verbose bool
	dryRun  bool
	check   bool
)

// errReported marks an error whose diagnostic has already been printed
var errReported = errors.New("reported")

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		if !errors.Is(err, errReported) {
			reportError(rootCmd.OutOrStdout(), err)
		}
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "gensummary",
	Short: "Generate the navigation manifest of a documentation tree",
	Long: `gensummary scans a documentation source tree (src/ by default) and writes
SUMMARY.md, an ordered table of contents of its numbered sections and their pages.

Top-level folders must be named NN_slug or NN-slug with a unique two-digit
number, and every section needs an index.md. Any violation aborts the run
without touching the existing manifest.`,
	Version:       version.Short(),
	Args:          cobra.NoArgs,
	SilenceErrors: true,
	SilenceUsage:  true,
	RunE:          run,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./.gensummary.yaml or ~/.gensummary/.gensummary.yaml)")
	rootCmd.PersistentFlags().StringP("root", "r", "", "Documentation source root (default: book.toml src, then \"src\")")
	rootCmd.PersistentFlags().String("output-file", config.DefaultOutputFile, "Manifest file name, written inside the source root")
	rootCmd.PersistentFlags().StringSlice("allow-dir", config.DefaultAllowedDirs, "Non-section folders tolerated at the source root")
	rootCmd.PersistentFlags().StringSlice("exclude", nil, "Glob patterns (section/file) of documents to leave out")
	rootCmd.PersistentFlags().Bool("repo-root", false, "Resolve paths against the enclosing git repository root")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose output")

	rootCmd.Flags().BoolVar(&dryRun, "dry-run", false, "Print the manifest instead of writing it")
	rootCmd.Flags().BoolVar(&check, "check", false, "Fail if the manifest on disk is out of date")
	rootCmd.MarkFlagsMutuallyExclusive("dry-run", "check")

	initCmd.Flags().Bool("global", false, "Write to the user config directory")
	initCmd.Flags().Bool("force", false, "Overwrite an existing config file")
	versionCmd.Flags().Bool("json", false, "Print version information as JSON")
	treeCmd.Flags().StringP("format", "f", config.DefaultExportFormat, "Export format (yaml or json)")

	_ = viper.BindPFlag("source.root", rootCmd.PersistentFlags().Lookup("root"))
	_ = viper.BindPFlag("source.allowed_dirs", rootCmd.PersistentFlags().Lookup("allow-dir"))
	_ = viper.BindPFlag("source.exclude", rootCmd.PersistentFlags().Lookup("exclude"))
	_ = viper.BindPFlag("output.file", rootCmd.PersistentFlags().Lookup("output-file"))
	_ = viper.BindPFlag("git.repo_root", rootCmd.PersistentFlags().Lookup("repo-root"))
	_ = viper.BindPFlag("output.format", treeCmd.Flags().Lookup("format"))

	rootCmd.AddCommand(treeCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(versionCmd)
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(utils.ExpandPath(cfgFile))
	}
}

func newOrchestrator() (*app.Orchestrator, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	return app.NewOrchestrator(app.OrchestratorOptions{
		CommonOptions: domain.CommonOptions{Verbose: verbose},
		Config:        cfg,
	})
}

func run(cmd *cobra.Command, args []string) error {
	orchestrator, err := newOrchestrator()
	if err != nil {
		return err
	}

	opts := domain.CommonOptions{
		Verbose: verbose,
		DryRun:  dryRun,
		Check:   check,
	}

	result, err := orchestrator.Run(cmd.Context(), opts)
	if errors.Is(err, domain.ErrStale) && result != nil {
		fmt.Fprintln(cmd.OutOrStdout(), ui.Error(result.Path+" is out of date."))
		return errReported
	}
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	switch {
	case dryRun:
		_, err = out.Write(result.Content)
		return err
	case check:
		fmt.Fprintln(out, ui.Success(fmt.Sprintf("Navigation is up to date (%s).", result.Path)))
	default:
		fmt.Fprintln(out, ui.Success("Navigation regenerated successfully."))
		fmt.Fprintln(out, ui.Detail(fmt.Sprintf("%s: %d sections, %d documents, %s",
			result.Path, result.Sections, result.Documents, humanize.Bytes(uint64(len(result.Content))))))
	}
	return nil
}

var treeCmd = &cobra.Command{
	Use:   "tree",
	Short: "Print the validated navigation tree as YAML or JSON",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		orchestrator, err := newOrchestrator()
		if err != nil {
			return err
		}

		m, _, err := orchestrator.Scan(cmd.Context())
		if err != nil {
			return err
		}

		data, err := manifest.Export(m, viper.GetString("output.format"))
		if err != nil {
			return err
		}
		_, err = cmd.OutOrStdout().Write(data)
		return err
	},
}

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default config file",
	Long: `Write the default configuration to ./.gensummary.yaml, or to
~/.gensummary/.gensummary.yaml with --global.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		path := config.LocalConfigFile
		if global, _ := cmd.Flags().GetBool("global"); global {
			path = config.ConfigFilePath()
		}
		force, _ := cmd.Flags().GetBool("force")

		if err := config.WriteDefault(afero.NewOsFs(), path, force); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), ui.Success("Config written to "+path))
		return nil
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
			data, err := version.Get().JSON()
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), version.Full())
		return nil
	},
}

// reportError prints the labeled diagnostic for a failed run
func reportError(w io.Writer, err error) {
	var se *domain.StructureError
	switch {
	case domain.IsBlocking(err) && errors.As(err, &se):
		fmt.Fprintln(w, ui.Blocking(se.Error()))
	case errors.Is(err, context.Canceled):
		fmt.Fprintln(w, ui.Error("interrupted"))
	default:
		fmt.Fprintln(w, ui.Error(err.Error()))
	}
}
