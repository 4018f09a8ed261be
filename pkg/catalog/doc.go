// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

/*
Package catalog models the schema catalog: for every logical node class
(lnClass) the tree of data objects, sub data objects, data attributes and
enumeration literals it may contain, as described by the IEC 61850 NSD
documents.

A catalog is read-only once loaded. The order of a node's Children is the
order the catalog file declares them in and is authoritative for every walk
over it.
*/
package catalog
