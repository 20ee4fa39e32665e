package cli

import (
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/vk/supertoml/internal/app"
	"github.com/vk/supertoml/internal/formatter"
)

// Version is the release version reported by --version.
const Version = "0.1.0"

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Parse processes command-line arguments. It returns a populated app.Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	flagSet := flag.NewFlagSet("supertoml", flag.ContinueOnError)
	flagSet.SetOutput(output)

	// Custom usage/help text function
	flagSet.Usage = func() {
		fmt.Fprint(output, `
supertoml - a layered TOML configuration resolver.

Usage:
  supertoml [options] FILE TABLE

Arguments:
  FILE
    Path to the TOML document to resolve from.
  TABLE
    Name of the table to resolve.

Options:
`)
		flagSet.PrintDefaults()
	}

	outputFlag := flagSet.String("output", "", fmt.Sprintf("Output format. Options: %s.", strings.Join(formatter.Names(), ", ")))
	oFlag := flagSet.String("o", "", "Output format (shorthand).")
	logFormatFlag := flagSet.String("log-format", "text", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "info", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")
	versionFlag := flagSet.Bool("version", false, "Print the version and exit.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	if *versionFlag {
		fmt.Fprintf(output, "supertoml %s\n", Version)
		return nil, true, nil
	}

	if flagSet.NArg() < 2 {
		flagSet.Usage()
		return nil, false, &ExitError{Code: 2, Message: "missing required arguments: FILE TABLE"}
	}

	outputFormat := *outputFlag
	if outputFormat == "" {
		outputFormat = *oFlag
	}

	logFormat := strings.ToLower(*logFormatFlag)
	if logFormat != "text" && logFormat != "json" {
		return nil, false, &ExitError{Code: 2, Message: "invalid log-format: must be 'text' or 'json'"}
	}

	logLevel := strings.ToLower(*logLevelFlag)
	switch logLevel {
	case "debug", "info", "warn", "error":
		// valid
	default:
		return nil, false, &ExitError{Code: 2, Message: "invalid log-level: must be 'debug', 'info', 'warn', or 'error'"}
	}

	config, err := app.NewConfig(app.Config{
		FilePath:     flagSet.Arg(0),
		Table:        flagSet.Arg(1),
		OutputFormat: outputFormat,
		LogFormat:    logFormat,
		LogLevel:     logLevel,
	})
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	return config, false, nil
}
