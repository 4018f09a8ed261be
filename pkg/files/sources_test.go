// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package files_test

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"testing"

	"carvel.dev/sclgen/pkg/files"
	"github.com/stretchr/testify/require"
)

func TestHTTPFileSources(t *testing.T) {
	url := "http://example.com/catalogs/tree.json"

	client := NewTestClient(func(req *http.Request) *http.Response {
		require.Equal(t, req.URL.String(), url)
		return &http.Response{
			StatusCode: http.StatusOK,
			Body:       io.NopCloser(bytes.NewBufferString(`{}`)),
			Header:     make(http.Header),
		}
	})

	fileSource := files.NewHTTPSource(url)
	fileSource.Client = client
	body, err := fileSource.Bytes()
	require.NoError(t, err)
	require.Equal(t, []byte("{}"), body)
	require.Equal(t, "tree.json", fileSource.Name())

	// Non-OK HTTP Status Code
	status := "404 Not Found"
	client = NewTestClient(func(req *http.Request) *http.Response {
		return &http.Response{
			StatusCode: http.StatusNotFound,
			Status:     status,
			Body:       io.NopCloser(bytes.NewBufferString(``)),
			Header:     make(http.Header),
		}
	})

	fileSource = files.NewHTTPSource(url)
	fileSource.Client = client
	_, err = fileSource.Bytes()
	require.EqualError(t, err, fmt.Sprintf("Requesting URL '%s': %s", url, status))
}

func TestCachedSourceReadsOnce(t *testing.T) {
	calls := 0
	client := NewTestClient(func(req *http.Request) *http.Response {
		calls++
		return &http.Response{
			StatusCode: http.StatusOK,
			Body:       io.NopCloser(bytes.NewBufferString(`data`)),
			Header:     make(http.Header),
		}
	})
	src := files.NewHTTPSource("https://example.com/sel.yml")
	src.Client = client

	cached := files.NewCachedSource(src)
	for i := 0; i < 3; i++ {
		body, err := cached.Bytes()
		require.NoError(t, err)
		require.Equal(t, "data", string(body))
	}
	require.Equal(t, 1, calls)
	require.Equal(t, "sel.yml", cached.Name())
}

func TestNewSourceForLocalFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "selection.yml")
	require.NoError(t, os.WriteFile(path, []byte("PhyNam: {}\n"), 0600))

	src, err := files.NewSource(path)
	require.NoError(t, err)
	require.Equal(t, "selection.yml", src.Name())

	body, err := src.Bytes()
	require.NoError(t, err)
	require.Equal(t, "PhyNam: {}\n", string(body))

	_, err = files.NewSource(dir)
	require.EqualError(t, err, fmt.Sprintf("Expected file '%s' to not be a directory", dir))

	_, err = files.NewSource("")
	require.Error(t, err)
}

func TestOutputFileCreatesParentDirectories(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "templates.scd")

	out := files.NewOutputFile(path, []byte("<SCL/>"))
	require.False(t, out.IsStdout())
	require.NoError(t, out.Write(nil))

	written, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "<SCL/>", string(written))
}

func TestOutputFileToStdout(t *testing.T) {
	var buf bytes.Buffer

	out := files.NewOutputFile("-", []byte("<SCL/>"))
	require.True(t, out.IsStdout())
	require.NoError(t, out.Write(&buf))
	require.Equal(t, "<SCL/>", buf.String())
}

// NewTestClient returns *http.Client with Transport replaced to avoid making real calls
func NewTestClient(fn RoundTripFunc) *http.Client {
	return &http.Client{
		Transport: RoundTripFunc(fn),
	}
}

type RoundTripFunc func(req *http.Request) *http.Response

func (f RoundTripFunc) RoundTrip(req *http.Request) (*http.Response, error) {
	return f(req), nil
}
