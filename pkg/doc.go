// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

/*
Package pkg is the collection of packages that make up the implementation of
sclgen, a generator of IEC 61850 SCL data type templates.

In the inventory, below, individual packages are named alongside their coupling
with the other packages in the codebase.

	(# of dependents) => <package name> => (# of dependencies)

Where "# of dependents" is the count of packages that import the named package
and "# of dependencies" is the count of packages that this named package
imports.

# Entry Point

sclgen is built as a command-line tool:

	./cmd/sclgen

# Commands

The root command generates templates; "classes" lists the node classes of a
catalog and "version" reports build information.

	(1) => pkg/cmd => (10)
	(1) => pkg/cmd/ui => (0)

# Inputs

A generation run reads a catalog (the tree of node classes with their data
objects, attributes and enumeration literals), a selection (the subset of that
tree to generate types for) and optionally a session remembering the last run.

	(2) => pkg/catalog => (4)
	(3) => pkg/selection => (1)
	(1) => pkg/session => (1)
	(3) => pkg/files => (0)

# Generation

The heart of sclgen walks a selection against its catalog class and produces
LNodeType, DOType, DAType and EnumType definitions. Identical definitions are
emitted once; every id is derived from a slug and the content hash of the
definition's canonical description.

	(2) => pkg/templates => (5)

# SCL Documents

Generated definitions are rendered as XML elements and merged into the
DataTypeTemplates section of a new or existing SCL document.

	(3) => pkg/sclxml => (1)
	(1) => pkg/scl => (2)

# Utilities

The remainder are domain-agnostic utilities.

	(2) => pkg/orderedmap => (0)
	(2) => pkg/filepos => (0)
	(2) => pkg/spell => (0)
	(2) => pkg/version => (0)

# Dependencies

Each package's dependencies on other packages within this module are as follows
(if a package is not listed, it has no dependencies on other packages within
this module):

	pkg/cmd:
	- pkg/catalog
	- pkg/cmd/ui
	- pkg/files
	- pkg/scl
	- pkg/sclxml
	- pkg/selection
	- pkg/session
	- pkg/spell
	- pkg/templates
	- pkg/version
	pkg/templates:
	- pkg/catalog
	- pkg/filepos
	- pkg/sclxml
	- pkg/selection
	- pkg/spell
	pkg/catalog:
	- pkg/filepos
	- pkg/files
	- pkg/orderedmap
	- pkg/version
	pkg/scl:
	- pkg/sclxml
	- pkg/templates
	pkg/sclxml:
	- pkg/orderedmap
	pkg/selection:
	- pkg/files
	pkg/session:
	- pkg/selection
*/
package pkg
