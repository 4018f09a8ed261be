// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package files

import (
	"fmt"
	"io"
	"os"
)

var stdinConsumed bool

// ReadStdin returns all of standard input. Catalog, selection and SCL
// document may each be '-', but only one of them per run.
func ReadStdin() ([]byte, error) {
	if stdinConsumed {
		return nil, fmt.Errorf("Expected at most one input to be read from standard input ('-')")
	}
	stdinConsumed = true
	return io.ReadAll(os.Stdin)
}
