// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package files

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"
)

type Source interface {
	Description() string
	// Name is the base name used to pick a decoder (e.g. by extension).
	Name() string
	Bytes() ([]byte, error)
}

var _ []Source = []Source{BytesSource{}, &StdinSource{},
	LocalSource{}, HTTPSource{}, &CachedSource{}}

// NewSource picks a Source based on the shape of the given path:
// "-" is stdin, http(s) URLs are fetched, anything else is a local file.
func NewSource(path string) (Source, error) {
	switch {
	case path == "":
		return nil, fmt.Errorf("Expected non-empty file path")
	case path == "-":
		return NewCachedSource(&StdinSource{}), nil
	case strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://"):
		return NewCachedSource(NewHTTPSource(path)), nil
	default:
		fileInfo, err := os.Stat(path)
		if err != nil {
			return nil, fmt.Errorf("Checking file '%s': %s", path, err)
		}
		if fileInfo.IsDir() {
			return nil, fmt.Errorf("Expected file '%s' to not be a directory", path)
		}
		return NewLocalSource(path), nil
	}
}

type BytesSource struct {
	name string
	data []byte
}

func NewBytesSource(name string, data []byte) BytesSource { return BytesSource{name, data} }

func (s BytesSource) Description() string    { return s.name }
func (s BytesSource) Name() string           { return s.name }
func (s BytesSource) Bytes() ([]byte, error) { return s.data, nil }

type StdinSource struct{}

func (s *StdinSource) Description() string    { return "stdin" }
func (s *StdinSource) Name() string           { return "stdin" }
func (s *StdinSource) Bytes() ([]byte, error) { return ReadStdin() }

type LocalSource struct {
	path string
}

func NewLocalSource(path string) LocalSource { return LocalSource{path} }

func (s LocalSource) Description() string    { return fmt.Sprintf("file '%s'", s.path) }
func (s LocalSource) Name() string           { return filepath.Base(s.path) }
func (s LocalSource) Bytes() ([]byte, error) { return os.ReadFile(s.path) }

type HTTPSource struct {
	url    string
	Client *http.Client
}

func NewHTTPSource(url string) HTTPSource { return HTTPSource{url, &http.Client{}} }

func (s HTTPSource) Description() string {
	return fmt.Sprintf("HTTP URL '%s'", s.url)
}

func (s HTTPSource) Name() string { return path.Base(s.url) }

func (s HTTPSource) Bytes() ([]byte, error) {
	resp, err := s.Client.Get(s.url)
	if err != nil {
		return nil, fmt.Errorf("Requesting URL '%s': %s", s.url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("Requesting URL '%s': %s", s.url, resp.Status)
	}

	result, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("Reading URL '%s': %s", s.url, err)
	}

	return result, nil
}

type CachedSource struct {
	src Source

	bytesFetched bool
	bytes        []byte
	bytesErr     error
}

func NewCachedSource(src Source) *CachedSource { return &CachedSource{src: src} }

func (s *CachedSource) Description() string { return s.src.Description() }
func (s *CachedSource) Name() string        { return s.src.Name() }

func (s *CachedSource) Bytes() ([]byte, error) {
	if s.bytesFetched {
		return s.bytes, s.bytesErr
	}

	s.bytesFetched = true
	s.bytes, s.bytesErr = s.src.Bytes()

	return s.bytes, s.bytesErr
}
