// Package cli is responsible for parsing command-line arguments, validating
// user input, and handling process-level concerns like exit codes. It
// translates CLI flags into the application's internal configuration,
// collecting only the flags the user actually set so that an untouched flag
// never shadows a configuration-file value.
package cli
