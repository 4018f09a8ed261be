// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"carvel.dev/sclgen/pkg/version"
	"github.com/cppforlife/cobrautil"
	"github.com/spf13/cobra"
)

type SclgenOptions struct{}

func NewDefaultSclgenOptions() *SclgenOptions {
	return &SclgenOptions{}
}

func NewDefaultSclgenCmd() *cobra.Command {
	return NewSclgenCmd(NewDefaultSclgenOptions())
}

func NewSclgenCmd(_ *SclgenOptions) *cobra.Command {
	cmd := NewGenerateCmd(NewGenerateOptions())

	cmd.Use = "sclgen"
	cmd.Aliases = nil
	cmd.Version = version.Version
	cmd.Short = "sclgen generates IEC 61850 data type templates"
	cmd.Long = `sclgen generates IEC 61850 data type templates (LNodeType, DOType,
DAType, EnumType) for a selection of a logical node class and merges them
into an SCL document.

Identifiers are derived from content, so generating the same selection again
reuses the types already present in the document.`

	// Affects children as well
	cmd.SilenceErrors = true
	cmd.SilenceUsage = true

	// Disable docs header
	cmd.DisableAutoGenTag = true

	cmd.AddCommand(NewGenerateCmd(NewGenerateOptions()))
	cmd.AddCommand(NewClassesCmd(NewClassesOptions()))
	cmd.AddCommand(NewVersionCmd(NewVersionOptions()))

	// Reconfigure Commands
	cobrautil.VisitCommands(cmd, cobrautil.ReconfigureCmdWithSubcmd,
		cobrautil.DisallowExtraArgs, cobrautil.WrapRunEForCmd(cobrautil.ResolveFlagsForCmd))

	return cmd
}
