// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

/*
Package session keeps the host's state between runs: which node class was
last worked on and the selection made for it.

Session state belongs to the host. The template generation engine is
stateless per call and never sees a Session.
*/
package session

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"carvel.dev/sclgen/pkg/selection"
	"gopkg.in/yaml.v3"
)

// DefaultClass is the node class a fresh session starts with.
const DefaultClass = "LPHD"

type Session struct {
	Class     string              `yaml:"class"`
	Selection selection.Selection `yaml:"selection,omitempty"`
}

func New() *Session {
	return &Session{Class: DefaultClass, Selection: selection.Selection{}}
}

// Load reads the session stored at path. A missing file yields a fresh
// session.
func Load(path string) (*Session, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return New(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("Reading session '%s': %s", path, err)
	}

	s := New()
	if err := yaml.Unmarshal(data, s); err != nil {
		return nil, fmt.Errorf("Parsing session '%s': %s", path, err)
	}
	if s.Class == "" {
		s.Class = DefaultClass
	}
	if s.Selection == nil {
		s.Selection = selection.Selection{}
	}
	return s, nil
}

// Remember records the outcome of a successful run.
func (s *Session) Remember(class string, sel selection.Selection) {
	s.Class = class
	s.Selection = sel
}

// Save writes the session to path, creating parent directories.
func (s *Session) Save(path string) error {
	data, err := yaml.Marshal(s)
	if err != nil {
		return fmt.Errorf("Marshaling session: %s", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0600)
}
