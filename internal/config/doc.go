// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The Jobify Authors

// Package config loads, merges, and validates the application
// configuration. Values come from environment variables, command-line
// flags, and an optional JSON file, in that priority order: a field set by
// an earlier source is never overridden by a later one.
//
// [GetStructuredConfig] is the entry point.
package config
