// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

/*
Package cmd is home to sclgen's "commands", instances of cobra.Command (not to
be confused with ./cmd which contains the bootstrapping for executing sclgen).

For a list of commands run:

	$ sclgen help

The default command is "generate".
*/
package cmd
