// Package cli is responsible for parsing command-line arguments, validating
// user input, and handling process-level concerns like exit codes and the
// diagnostic logger. It translates CLI flags into a Config for the driver.
package cli
