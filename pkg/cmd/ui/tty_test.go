// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package ui_test

import (
	"bytes"
	"fmt"
	"testing"

	"carvel.dev/sclgen/pkg/cmd/ui"
	"github.com/stretchr/testify/assert"
)

func TestTTY(t *testing.T) {
	for _, debug := range []bool{false, true} {
		t.Run(fmt.Sprintf("debug=%t", debug), func(t *testing.T) {
			var stdout, stderr bytes.Buffer
			tty := ui.NewCustomWriterTTY(debug, &stdout, &stderr)

			tty.Printf("out %d\n", 1)
			tty.Warnf("warn %d\n", 2)
			tty.Debugf("debug %d\n", 3)
			fmt.Fprintf(tty.DebugWriter(), "writer %d\n", 4)

			assert.Equal(t, "out 1\n", stdout.String())
			if debug {
				assert.Equal(t, "warn 2\ndebug 3\nwriter 4\n", stderr.String())
			} else {
				assert.Equal(t, "warn 2\n", stderr.String())
			}
		})
	}
}
