// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package theme

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/aymerick/douceur/css"
	"github.com/aymerick/douceur/parser"
	"github.com/mitchellh/go-homedir"

	"cogentcore.org/contrast/base/iox/tomlx"
	"cogentcore.org/contrast/base/iox/yamlx"
)

// Formats are the encodings that theme files can use.
type Formats int32

const (
	// TOML is a TOML document with a [colors] table.
	TOML Formats = iota

	// YAML is a YAML document with a colors mapping.
	YAML

	// JSON is a JSON object with a colors object.
	JSON

	// CSS is a stylesheet in which each rule selector names a group
	// (for example "colors") and its declarations are the tokens in it.
	// Declarations in a :root rule are top-level tokens.
	CSS
)

func (f Formats) String() string {
	switch f {
	case TOML:
		return "TOML"
	case YAML:
		return "YAML"
	case JSON:
		return "JSON"
	case CSS:
		return "CSS"
	}
	return fmt.Sprintf("Formats(%d)", int32(f))
}

// FormatFromFilename returns the [Formats] implied
// by the extension of the given filename.
func FormatFromFilename(filename string) (Formats, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".toml":
		return TOML, nil
	case ".yaml", ".yml":
		return YAML, nil
	case ".json":
		return JSON, nil
	case ".css":
		return CSS, nil
	}
	return 0, fmt.Errorf("theme: unsupported theme file extension %q", filepath.Ext(filename))
}

// Open reads a theme from the given file, with the format determined by
// its extension. A leading ~ in filename is expanded to the home directory.
func Open(filename string) (Tree, error) {
	fn, err := homedir.Expand(filename)
	if err != nil {
		return nil, err
	}
	format, err := FormatFromFilename(fn)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(fn)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	t, err := Read(f, format)
	if err != nil {
		return nil, fmt.Errorf("theme.Open: %s: %w", fn, err)
	}
	return t, nil
}

// Read reads a theme encoded in the given format from the given reader.
func Read(r io.Reader, format Formats) (Tree, error) {
	t := Tree{}
	var err error
	switch format {
	case TOML:
		err = tomlx.Read(&t, r)
	case YAML:
		err = yamlx.Read(&t, r)
	case JSON:
		err = json.NewDecoder(r).Decode(&t)
	case CSS:
		t, err = readCSS(r)
	default:
		err = fmt.Errorf("theme: unknown format %v", format)
	}
	if err != nil {
		return nil, err
	}
	return t, nil
}

// ReadString reads a theme encoded in the given format from the given string.
func ReadString(s string, format Formats) (Tree, error) {
	return Read(strings.NewReader(s), format)
}

func readCSS(r io.Reader) (Tree, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	sheet, err := parser.Parse(string(b))
	if err != nil {
		return nil, err
	}
	t := Tree{}
	for _, rule := range sheet.Rules {
		if rule.Kind == css.AtRule {
			continue
		}
		for _, sel := range rule.Selectors {
			group := cssGroup(sel)
			for _, decl := range rule.Declarations {
				path := decl.Property
				if group != "" {
					path = group + "." + path
				}
				if err := t.Set(path, strings.TrimSpace(decl.Value)); err != nil {
					return nil, err
				}
			}
		}
	}
	return t, nil
}

// cssGroup converts a selector into a dotted group path:
// ":root" is the top level, and ".colors" or "colors" is "colors".
// Descendant selectors ("colors text") are nested groups.
func cssGroup(sel string) string {
	sel = strings.TrimSpace(sel)
	if sel == ":root" || sel == "*" {
		return ""
	}
	parts := strings.Fields(sel)
	for i, p := range parts {
		parts[i] = strings.TrimLeft(p, ".#")
	}
	return strings.Join(parts, ".")
}
