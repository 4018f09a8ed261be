// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

/*
Package ui separates what sclgen writes for the user (generated documents on
stdout) from what it reports about the run (warnings and debug lines on
stderr).
*/
package ui
