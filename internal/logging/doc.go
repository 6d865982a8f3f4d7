// Package logging provides the leveled console logger of the CLI.
//
// Verbosity is driven by two flags:
//
//   - --verbose: info messages
//   - --debug-log: info and debug messages, including every store read and write
//
// Warnings and errors are always shown. When a log file is configured,
// every message is also appended to it without color.
package logging
