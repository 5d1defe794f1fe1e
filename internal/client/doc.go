// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the interactive client application runtime.
//
// It restores the persisted session, connects the session manager to the
// terminal UI and runs the UI until the user quits.
package client
