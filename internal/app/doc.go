// Package app contains the core application logic. It defines the main App
// struct, its configuration, and the run lifecycle that walks a source tree
// and checks every file, decoupled from any specific entrypoint like a CLI.
package app
