package domain

// CommonOptions contains run-mode switches shared by the CLI and the orchestrator.
type CommonOptions struct {
	Verbose bool
	DryRun  bool
	Check   bool
}

// DefaultCommonOptions returns CommonOptions with default values.
func DefaultCommonOptions() CommonOptions {
	return CommonOptions{}
}
