// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

/*
Package orderedmap provides a string-keyed map implementation where the order
of keys is maintained (unlike the native Go map).

This flavor of map is crucial in keeping catalog walks and generated XML
deterministic: catalog children are visited in the order the catalog
declares them and element attributes are rendered in insertion order.
*/
package orderedmap
