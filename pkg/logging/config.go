package logging

import "os"

// Config holds logger configuration options
type Config struct {
	// Level is the minimum log level to output
	Level string

	// Format is the output format (json, console, auto)
	Format string

	// Output is where to write logs (stderr, stdout, discard)
	Output string

	// NoColor disables color output in console mode
	NoColor bool

	// AddCaller includes file:line in log output
	AddCaller bool
}

// DefaultConfig returns a configuration with sensible defaults
func DefaultConfig() *Config {
	return &Config{
		Level:     "info",
		Format:    "auto", // auto-detect based on terminal
		Output:    "stderr",
		NoColor:   os.Getenv("NO_COLOR") != "",
		AddCaller: false,
	}
}
