// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"fmt"
	"strings"
	"time"

	"carvel.dev/sclgen/pkg/catalog"
	cmdui "carvel.dev/sclgen/pkg/cmd/ui"
	"carvel.dev/sclgen/pkg/files"
	"carvel.dev/sclgen/pkg/scl"
	"carvel.dev/sclgen/pkg/sclxml"
	"carvel.dev/sclgen/pkg/selection"
	"carvel.dev/sclgen/pkg/session"
	"carvel.dev/sclgen/pkg/spell"
	"carvel.dev/sclgen/pkg/templates"
	"github.com/spf13/cobra"
)

type GenerateOptions struct {
	CatalogPath   string
	SelectionPath string
	Class         string
	SCLPath       string
	OutputPath    string
	SessionPath   string
	Debug         bool
}

type GenerateInput struct {
	Catalog   *catalog.Catalog
	Selection selection.Selection
	Class     string
	// Document receives the generated types; nil means a new SCL document
	Document *sclxml.Document
}

type GenerateOutput struct {
	Templates templates.Templates
	Document  *sclxml.Document
	Report    scl.MergeReport
	Err       error
}

func NewGenerateOptions() *GenerateOptions {
	return &GenerateOptions{}
}

func NewGenerateCmd(o *GenerateOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "generate",
		Aliases: []string{"g", "gen"},
		Short:   "Generate data type templates for a selection",
		RunE:    func(_ *cobra.Command, _ []string) error { return o.Run(cmdui.NewTTY(o.Debug)) },
	}
	cmd.Flags().StringVarP(&o.CatalogPath, "catalog", "c", "", "Catalog file (path, URL or '-' for stdin)")
	cmd.Flags().StringVarP(&o.SelectionPath, "selection", "s", "",
		"Selection file (JSON, YAML or TOML; path, URL or '-' for stdin). Defaults to the session's selection")
	cmd.Flags().StringVar(&o.Class, "class", "", "Logical node class to generate for (defaults to the session's class, else "+session.DefaultClass+")")
	cmd.Flags().StringVar(&o.SCLPath, "scl", "", "SCL document to merge generated types into (defaults to an empty document)")
	cmd.Flags().StringVarP(&o.OutputPath, "output", "o", "", "Output file (defaults to stdout)")
	cmd.Flags().StringVar(&o.SessionPath, "session", "", "Session file remembering class and selection between runs")
	cmd.Flags().BoolVar(&o.Debug, "debug", false, "Enable debug output")
	return cmd
}

func (o *GenerateOptions) Run(ui cmdui.UI) error {
	t1 := time.Now()

	defer func() {
		ui.Debugf("total: %s\n", time.Now().Sub(t1))
	}()

	sess, err := o.loadSession()
	if err != nil {
		return err
	}

	in, err := o.input(sess, ui)
	if err != nil {
		return err
	}

	out := o.RunWithInput(in, ui)
	if out.Err != nil {
		return out.Err
	}

	docBytes, err := out.Document.Bytes()
	if err != nil {
		return fmt.Errorf("Rendering SCL document: %s", err)
	}

	err = files.NewOutputFile(o.OutputPath, docBytes).Write(ui.Stdout())
	if err != nil {
		return fmt.Errorf("Writing output: %s", err)
	}

	if o.SessionPath != "" {
		sess.Remember(in.Class, in.Selection)
		if err := sess.Save(o.SessionPath); err != nil {
			return fmt.Errorf("Saving session: %s", err)
		}
	}
	return nil
}

// RunWithInput generates templates for the input and merges them into its
// document. It never touches the filesystem.
func (o *GenerateOptions) RunWithInput(in GenerateInput, ui cmdui.UI) GenerateOutput {
	sel := in.Selection.WithoutEmptyKeys()
	if sel.IsEmpty() {
		return GenerateOutput{Err: fmt.Errorf("Expected selection to include at least one data object of '%s'", in.Class)}
	}

	if class, found := in.Catalog.Class(in.Class); found {
		warnUnmatched(ui, class, sel, nil)
	}

	result, err := templates.Generate(sel, in.Catalog, in.Class)
	if err != nil {
		return GenerateOutput{Err: fmt.Errorf("Generating templates for '%s': %w", in.Class, err)}
	}

	doc := in.Document
	if doc == nil {
		doc = scl.NewDocument()
	}

	merged, report, err := scl.Merge(doc, result)
	if err != nil {
		return GenerateOutput{Err: err}
	}

	for _, id := range report.Inserted {
		ui.Debugf("inserted %s\n", id)
	}
	for _, id := range report.Skipped {
		ui.Debugf("skipped %s (already present)\n", id)
	}
	ui.Debugf("added LNodeType %s\n", report.AddedLNodeType)

	return GenerateOutput{Templates: result, Document: merged, Report: report}
}

func (o *GenerateOptions) loadSession() (*session.Session, error) {
	if o.SessionPath == "" {
		return session.New(), nil
	}
	return session.Load(o.SessionPath)
}

func (o *GenerateOptions) input(sess *session.Session, ui cmdui.UI) (GenerateInput, error) {
	cat, err := loadCatalog(o.CatalogPath)
	if err != nil {
		return GenerateInput{}, err
	}
	ui.Debugf("catalog: %d classes (format %s)\n", len(cat.Classes()), formatVersionOf(cat))

	in := GenerateInput{Catalog: cat, Class: o.Class}
	if in.Class == "" {
		in.Class = sess.Class
	}

	switch {
	case o.SelectionPath != "":
		src, err := files.NewSource(o.SelectionPath)
		if err != nil {
			return GenerateInput{}, err
		}
		in.Selection, err = selection.Load(src)
		if err != nil {
			return GenerateInput{}, err
		}

	case sess.Class == in.Class && !sess.Selection.IsEmpty():
		ui.Debugf("using selection from session '%s'\n", o.SessionPath)
		in.Selection = sess.Selection

	default:
		return GenerateInput{}, fmt.Errorf("Expected selection to be specified via --selection (-s)")
	}

	if o.SCLPath != "" {
		src, err := files.NewSource(o.SCLPath)
		if err != nil {
			return GenerateInput{}, err
		}
		data, err := src.Bytes()
		if err != nil {
			return GenerateInput{}, fmt.Errorf("Reading SCL %s: %s", src.Description(), err)
		}
		in.Document, err = sclxml.ParseBytes(data)
		if err != nil {
			return GenerateInput{}, fmt.Errorf("Reading SCL %s: %s", src.Description(), err)
		}
	}

	return in, nil
}

// warnUnmatched reports selected names the catalog does not know; they do
// not contribute to any generated type.
func warnUnmatched(ui cmdui.UI, node *catalog.Node, sel selection.Selection, path []string) {
	for _, name := range sel.Keys() {
		childPath := append(append([]string{}, path...), name)

		child, found := node.Child(name)
		if !found {
			msg := fmt.Sprintf("Warning: Ignoring selection of '%s' unknown to %s", strings.Join(childPath, "."), node.Name)
			if suggestion := spell.Nearest(name, node.Children.Keys()); suggestion != "" {
				msg += fmt.Sprintf(" (hint: did you mean '%s'?)", suggestion)
			}
			ui.Warnf("%s\n", msg)
			continue
		}
		warnUnmatched(ui, child, sel[name], childPath)
	}
}

func formatVersionOf(cat *catalog.Catalog) string {
	if cat.FormatVersion == "" {
		return "unversioned"
	}
	return cat.FormatVersion
}
