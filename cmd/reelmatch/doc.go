// Package main hosts the reelmatch CLI entrypoint and command graph.
//
// The Cobra-based command tree starts the reconciliation service, runs
// one-off catalog lookups from the terminal, lists the extension property
// registry, and scaffolds configuration. It centralizes configuration
// resolution and structured logging setup so subcommands can focus on user
// experience instead of wiring.
//
// Keep this package lean: add new functionality by extending the internal
// packages first, then surface it through dedicated commands or flags here.
package main
