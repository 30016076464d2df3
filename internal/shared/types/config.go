package types

// Config represents the application configuration that can be loaded from a file.
type Config struct {
	Profile    string   `json:"profile" yaml:"profile" toml:"profile"`
	Region     string   `json:"region" yaml:"region" toml:"region"`
	AllRegions bool     `json:"all_regions" yaml:"all_regions" toml:"all_regions"`
	Output     string   `json:"output" yaml:"output" toml:"output"`
	ReportType []string `json:"report_type" yaml:"report_type" toml:"report_type"`
}
