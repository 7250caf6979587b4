// SPDX-FileCopyrightText: 2024 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package solutions

import (
	"errors"
	"fmt"
	"os"

	"github.com/xmidt-org/dealwith"
	"gopkg.in/yaml.v2"
)

// ErrEmptyEntry indicates a handler entry that sets none of message, silent, or notify.
var ErrEmptyEntry = errors.New("handler entry must set message, silent, or notify")

// entry is a single handler in a file: either a plain string or a descriptor mapping
type entry struct {
	message    string
	descriptor *descriptor
}

type descriptor struct {
	Message string                 `yaml:"message"`
	Silent  bool                   `yaml:"silent"`
	Notify  map[string]interface{} `yaml:"notify"`
}

// UnmarshalYAML accepts either a scalar or a mapping
func (e *entry) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var s string
	if err := unmarshal(&s); err == nil {
		e.message = s
		return nil
	}

	d := new(descriptor)
	if err := unmarshal(d); err != nil {
		return err
	}

	e.descriptor = d
	return nil
}

func (e entry) handler() (dealwith.Handler, error) {
	if e.descriptor == nil {
		if len(e.message) == 0 {
			return nil, ErrEmptyEntry
		}

		return dealwith.Message(e.message), nil
	}

	d := &dealwith.Descriptor{
		Message: e.descriptor.Message,
		Silent:  e.descriptor.Silent,
	}

	if len(e.descriptor.Notify) > 0 {
		d.Notify = make(dealwith.Fields, len(e.descriptor.Notify))
		for k, v := range e.descriptor.Notify {
			d.Notify[k] = normalize(v)
		}
	}

	if !d.Valid() {
		return nil, ErrEmptyEntry
	}

	return d, nil
}

// normalize converts the map[interface{}]interface{} values yaml.v2 produces
// for nested mappings into map[string]interface{}
func normalize(v interface{}) interface{} {
	switch t := v.(type) {
	case map[interface{}]interface{}:
		m := make(map[string]interface{}, len(t))
		for k, mv := range t {
			m[fmt.Sprint(k)] = normalize(mv)
		}

		return m

	case []interface{}:
		s := make([]interface{}, len(t))
		for i, sv := range t {
			s[i] = normalize(sv)
		}

		return s

	default:
		return v
	}
}

type file struct {
	Handlers map[string]entry `yaml:"handlers"`
}

// Parse decodes a handler set.  Environment variables are expanded first.
// An entry that would never resolve is an error that names its key.
func Parse(data []byte) (map[string]dealwith.Handler, error) {
	var f file
	expanded := os.ExpandEnv(string(data))
	if err := yaml.Unmarshal([]byte(expanded), &f); err != nil {
		return nil, fmt.Errorf("failed to parse handlers: %w", err)
	}

	handlers := make(map[string]dealwith.Handler, len(f.Handlers))
	for key, e := range f.Handlers {
		h, err := e.handler()
		if err != nil {
			return nil, fmt.Errorf("handler %q: %w", key, err)
		}

		handlers[key] = h
	}

	return handlers, nil
}

// Load reads and parses a handler set file.
func Load(path string) (map[string]dealwith.Handler, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read handlers file: %w", err)
	}

	return Parse(data)
}

// LoadInto reads a handler set file and registers every handler with s.
func LoadInto(s *dealwith.Store, path string) error {
	handlers, err := Load(path)
	if err != nil {
		return err
	}

	s.RegisterMany(handlers)
	return nil
}
