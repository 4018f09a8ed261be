// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

/*
Package filepos provides the concept of Position: a source name (usually a
catalog file) and line/column number within that source.

File positions are crucial when reporting catalog errors to the user: a
catalog is a large generated document and "attribute X has an unsupported
typeKind" is only actionable when it points at the offending line.

Not all Position point within a file (e.g. catalogs built in memory by
tests). The zero-value of Position (can be created using
NewUnknownPosition()) represents this case.
*/
package filepos
