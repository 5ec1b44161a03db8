package defaults

// Exit codes for the CLI.
const (
	ExitSuccess      = 0 // Clean exit
	ExitRuntimeError = 1 // Scoring, capture, or export failure
	ExitUserError    = 2 // Invalid arguments or unknown command
)
