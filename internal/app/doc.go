// Package app contains the application logic behind the benchmark command.
// It defines the App struct, its configuration, and the run lifecycle,
// decoupled from any specific entrypoint like a CLI.
package app
