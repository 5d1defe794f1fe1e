// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package config provides configuration loading, merging, and validation
// facilities for the glow-up client.
//
// Configuration is assembled from multiple sources. For every field the first
// source that provides a non-zero value wins:
//  1. Environment variables (after an optional .env file has been loaded)
//  2. Command-line flags
//  3. Config file (JSON or YAML, chosen by extension)
//  4. Built-in defaults
//
// The main entry point is [GetClientConfig].
package config
