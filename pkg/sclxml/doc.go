// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

/*
Package sclxml provides an immutable XML element tree sufficient for SCL
documents: a tag, an ordered attribute list, ordered children and text.

Elements are never modified after construction; operations that "change" a
tree (WithChildren, WithAttr) return a new element sharing the untouched
parts. Names are kept exactly as written (prefix included), which is all an
SCL round trip needs and keeps namespace declarations where the author put
them.
*/
package sclxml
