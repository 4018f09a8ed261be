// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

/*
Package spell suggests the closest known name for a misspelled one.

sclgen uses it to hint at the intended node class when a class is unknown, and
at the intended catalog name when a selection names something the catalog
does not define.
*/
package spell
