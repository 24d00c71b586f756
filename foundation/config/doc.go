// Package config loads the Voyager logging configuration.
//
// Package: config
// Title: Voyager Logging Configuration
// Description: This package implements loading, parsing, and validating
//              the optional configuration file that holds the logging
//              facility's knobs: log directory, root level, rotation size
//              and backup count, and per-component level overrides. Both
//              TOML and YAML are supported, auto-detected from the file
//              extension. Environment variables still take precedence over
//              the file for the root level (see foundation/log).
// Author: voyager-mc
// Version: v0.1.0
// Created: 2026-08-24
// Modified: 2026-08-24
//
// Change History:
// - 2026-08-24 v0.1.0: Initial implementation with TOML/YAML support
package config
