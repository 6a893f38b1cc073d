// Package file loads docsindex settings from the local filesystem.
//
// Settings are layered, lowest to highest precedence: built-in defaults, a
// TOML config file, a .env file in the working directory, then process
// environment variables. Command-line flags are applied by the CLI on top.
package file
