// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

/*
Package templates generates IEC 61850 data type templates (LNodeType, DOType,
DAType and EnumType definitions) for the part of a node class the user
selected.

Generate walks the catalog depth first under a selection. Every definition it
finishes is described canonically (member order does not matter), hashed,
and given an identifier made of a readable slug and that hash. Two
definitions with the same slug and content therefore always get the same
identifier, within a call and across calls, which lets callers check an
existing type library before inserting anything.

Generate keeps no state between calls and never mutates its inputs. It
either returns all four collections or an error and nothing else.
*/
package templates
