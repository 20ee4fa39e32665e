// Package cli turns the supertoml command line into an app.Config: the FILE
// and TABLE positionals, the output and logging flags, and the usage text.
// Failures are reported as ExitError values so main can map them onto
// process exit codes without inspecting message strings.
package cli
