// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

/*
Package files provides primitives for loading data from various file or
file-like Source's (catalogs, selections, SCL documents) and for writing the
generated document to a filesystem file.

This allows the rest of sclgen code to process inputs without becoming
entangled in the details of how to read or write data.
*/
package files
