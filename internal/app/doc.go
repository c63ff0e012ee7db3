// Package app contains the application wiring. It builds the logger, the host
// registry with every compiled-in extension module, the manifest store and the
// discovery configuration for the selected deployment mode, and exposes the
// startup operations (discover, load, run a command) independently of any
// entrypoint like a CLI.
package app
