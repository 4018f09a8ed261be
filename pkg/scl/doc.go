// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

/*
Package scl merges generated data type templates into an SCL document's
DataTypeTemplates section, skipping types the document already defines.
*/
package scl
