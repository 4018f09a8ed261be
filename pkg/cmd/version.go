// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	cmdui "carvel.dev/sclgen/pkg/cmd/ui"
	"carvel.dev/sclgen/pkg/version"
	"github.com/spf13/cobra"
)

type VersionOptions struct{}

func NewVersionOptions() *VersionOptions {
	return &VersionOptions{}
}

func NewVersionCmd(o *VersionOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print version",
		RunE:  func(_ *cobra.Command, _ []string) error { return o.Run(cmdui.NewTTY(false)) },
	}
	return cmd
}

func (o *VersionOptions) Run(ui cmdui.UI) error {
	ui.Printf("sclgen version %s\n", version.Version)
	ui.Printf("Supported catalog formats: %s\n", version.SupportedCatalogFormats)
	return nil
}
