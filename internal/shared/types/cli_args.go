package types

// CLIArgs represents the command-line arguments.
type CLIArgs struct {
	ConfigFile string
	Profile    string
	Region     string
	AllRegions bool
	Output     string
	ReportType []string
}
