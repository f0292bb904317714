// Package logging configures structured slog output for the service.
//
// Two formats are supported: "console", a compact timestamp/level/key=value
// rendering for interactive use, and "json" for log aggregation. Components
// obtain their logger through NewComponentLogger so every record carries a
// component attribute, and tests use NewNop to silence output.
package logging
