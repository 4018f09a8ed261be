// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package files

import (
	"io"
	"os"
	"path/filepath"
)

// OutputFile is a rendered document destined for a path. An empty path or
// "-" means standard output.
type OutputFile struct {
	path string
	data []byte
}

func NewOutputFile(path string, data []byte) OutputFile {
	return OutputFile{path, data}
}

func (f OutputFile) Path() string  { return f.path }
func (f OutputFile) Bytes() []byte { return f.data }
func (f OutputFile) IsStdout() bool {
	return f.path == "" || f.path == "-"
}

// Write sends the data to stdout when IsStdout, otherwise creates the file
// (and its parent directories).
func (f OutputFile) Write(stdout io.Writer) error {
	if f.IsStdout() {
		_, err := stdout.Write(f.data)
		return err
	}
	return f.Create()
}

func (f OutputFile) Create() error {
	err := os.MkdirAll(filepath.Dir(f.path), 0700)
	if err != nil {
		return err
	}

	fd, err := os.OpenFile(f.path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0600)
	if err != nil {
		return err
	}

	defer fd.Close()

	_, err = fd.Write(f.data)
	return err
}
