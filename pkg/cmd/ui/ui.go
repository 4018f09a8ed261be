// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package ui

import (
	"io"
)

type UI interface {
	// Printf writes command results to stdout.
	Printf(string, ...interface{})
	// Warnf writes to stderr regardless of debug mode.
	Warnf(str string, args ...interface{})
	Debugf(string, ...interface{})
	DebugWriter() io.Writer
	Stdout() io.Writer
}
