// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"fmt"

	"carvel.dev/sclgen/pkg/catalog"
	cmdui "carvel.dev/sclgen/pkg/cmd/ui"
	"carvel.dev/sclgen/pkg/files"
	"github.com/spf13/cobra"
)

type ClassesOptions struct {
	CatalogPath string
	Debug       bool
}

func NewClassesOptions() *ClassesOptions {
	return &ClassesOptions{}
}

func NewClassesCmd(o *ClassesOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "classes",
		Aliases: []string{"ls"},
		Short:   "List the logical node classes of a catalog",
		RunE:    func(_ *cobra.Command, _ []string) error { return o.Run(cmdui.NewTTY(o.Debug)) },
	}
	cmd.Flags().StringVarP(&o.CatalogPath, "catalog", "c", "", "Catalog file (path, URL or '-' for stdin)")
	cmd.Flags().BoolVar(&o.Debug, "debug", false, "Enable debug output")
	return cmd
}

func (o *ClassesOptions) Run(ui cmdui.UI) error {
	cat, err := loadCatalog(o.CatalogPath)
	if err != nil {
		return err
	}

	for _, lnClass := range cat.Classes() {
		class, _ := cat.Class(lnClass)
		ui.Printf("%s\n", lnClass)
		ui.Debugf("  %d data objects (%s)\n", class.Children.Len(), class.Position.AsCompactString())
	}
	return nil
}

func loadCatalog(path string) (*catalog.Catalog, error) {
	if path == "" {
		return nil, fmt.Errorf("Expected catalog to be specified via --catalog (-c)")
	}
	src, err := files.NewSource(path)
	if err != nil {
		return nil, err
	}
	return catalog.Load(src)
}
