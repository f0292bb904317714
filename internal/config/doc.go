// Package config loads, normalizes, and validates reelmatch configuration.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), reads TOML files, and honours environment fallbacks such as
// TMDB_API_KEY (including values supplied through a .env file). Obtain
// settings through this package so downstream code receives canonical log
// formats and clear validation errors.
package config
