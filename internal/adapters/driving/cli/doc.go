// Package cli implements the docsindex command line with cobra.
//
// Commands share package-level state: settings are loaded once in the root
// PersistentPreRunE and services are built per command through newServices,
// which tests replace with fakes.
package cli
