// Copyright 2026 The Railbook Authors
// SPDX-License-Identifier: Apache-2.0

// Package cli provides the railbook command framework: the command
// tree with help and typo suggestions, categorized command errors,
// logging setup, JSON output, and interactive password prompts.
//
// The framework is deliberately small. Commands declare a name, a
// summary, optional pflag flags, and a Run function; Execute walks the
// tree, parses flags, and dispatches.
package cli
