// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package yamlx provides helpers for reading
// YAML documents using yaml.v3.
package yamlx

import (
	"bytes"
	"io"

	"gopkg.in/yaml.v3"
)

// Read reads the given object from the given reader using YAML encoding.
// An empty document leaves v unchanged.
func Read(v any, reader io.Reader) error {
	err := yaml.NewDecoder(reader).Decode(v)
	if err == io.EOF {
		return nil
	}
	return err
}

// ReadBytes reads the given object from the given bytes using YAML encoding.
func ReadBytes(v any, data []byte) error {
	return Read(v, bytes.NewReader(data))
}
