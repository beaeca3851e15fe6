package cmd

// Exit codes returned by abi-check. The build treats anything nonzero as a
// failed probe.
const (
	// ExitSuccess means every check passed.
	ExitSuccess = 0

	// ExitFailure means a library function returned an unexpected value.
	ExitFailure = 1

	// ExitUsage means the command line was invalid. abi-check takes no arguments.
	ExitUsage = 2

	// ExitEnvError means no library could be loaded, e.g. a build without cgo.
	ExitEnvError = 3
)
