// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package theme

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testTree() Tree {
	return Tree{
		"name": "light",
		"colors": map[string]any{
			"body":    "#ffffff",
			"primary": "#0077cc",
			"text":    map[string]any{"subdued": "#646a77"},
			"size":    12,
		},
	}
}

func TestLookup(t *testing.T) {
	tr := testTree()
	tests := []struct {
		path []string
		want string
		ok   bool
	}{
		{[]string{"colors.primary"}, "#0077cc", true},
		{[]string{"colors", "primary"}, "#0077cc", true},
		{[]string{"colors", "text.subdued"}, "#646a77", true},
		{[]string{"colors.text", "subdued"}, "#646a77", true},
		{[]string{"name"}, "light", true},
		{[]string{"colors"}, "", false},
		{[]string{"colors.text"}, "", false},
		{[]string{"colors.size"}, "", false},
		{[]string{"colors.missing"}, "", false},
		{[]string{"name.sub"}, "", false},
		{[]string{"#0077cc"}, "", false},
		{[]string{""}, "", false},
		{nil, "", false},
	}
	for _, test := range tests {
		got, ok := tr.Lookup(test.path...)
		assert.Equal(t, test.ok, ok, "%v", test.path)
		assert.Equal(t, test.want, got, "%v", test.path)
	}
}

func TestBody(t *testing.T) {
	body, ok := testTree().Body()
	assert.True(t, ok)
	assert.Equal(t, "#ffffff", body)

	_, ok = Tree{}.Body()
	assert.False(t, ok)
}

func TestSet(t *testing.T) {
	tr := Tree{}
	require.NoError(t, tr.Set("colors.body", "#000000"))
	require.NoError(t, tr.Set("colors.text.subdued", "#aaaaaa"))
	require.NoError(t, tr.Set("name", "dark"))

	body, ok := tr.Body()
	assert.True(t, ok)
	assert.Equal(t, "#000000", body)
	v, ok := tr.Lookup("colors.text.subdued")
	assert.True(t, ok)
	assert.Equal(t, "#aaaaaa", v)

	assert.Error(t, tr.Set("name.sub", "x"))
	assert.Error(t, tr.Set("", "x"))
}

const tomlTheme = `
name = "light"

[colors]
body = "#ffffff"
primary = "#0077cc"

[colors.text]
subdued = "#646a77"
`

const yamlTheme = `
name: light
colors:
  body: "#ffffff"
  primary: "#0077cc"
  text:
    subdued: "#646a77"
`

const jsonTheme = `{
  "name": "light",
  "colors": {
    "body": "#ffffff",
    "primary": "#0077cc",
    "text": {"subdued": "#646a77"}
  }
}`

const cssTheme = `
:root {
  name: light;
}

colors {
  body: #ffffff;
  primary: #0077cc;
}

colors text {
  subdued: #646a77;
}
`

func assertTheme(t *testing.T, tr Tree) {
	t.Helper()
	body, ok := tr.Body()
	assert.True(t, ok)
	assert.Equal(t, "#ffffff", body)
	for path, want := range map[string]string{
		"name":                "light",
		"colors.primary":      "#0077cc",
		"colors.text.subdued": "#646a77",
	} {
		got, ok := tr.Lookup(path)
		assert.True(t, ok, path)
		assert.Equal(t, want, got, path)
	}
}

func TestReadString(t *testing.T) {
	for format, src := range map[Formats]string{
		TOML: tomlTheme,
		YAML: yamlTheme,
		JSON: jsonTheme,
		CSS:  cssTheme,
	} {
		t.Run(format.String(), func(t *testing.T) {
			tr, err := ReadString(src, format)
			require.NoError(t, err)
			assertTheme(t, tr)
		})
	}
}

func TestReadInvalid(t *testing.T) {
	_, err := ReadString("colors = [", TOML)
	assert.Error(t, err)
	_, err = ReadString("{", JSON)
	assert.Error(t, err)
	_, err = ReadString("colors: [a", YAML)
	assert.Error(t, err)
	_, err = ReadString("", Formats(42))
	assert.Error(t, err)
}

func TestOpen(t *testing.T) {
	dir := t.TempDir()
	for name, src := range map[string]string{
		"theme.toml": tomlTheme,
		"theme.yml":  yamlTheme,
		"theme.json": jsonTheme,
		"theme.css":  cssTheme,
	} {
		fn := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(fn, []byte(src), 0o644))
		tr, err := Open(fn)
		require.NoError(t, err, name)
		assertTheme(t, tr)
	}

	_, err := Open(filepath.Join(dir, "theme.txt"))
	assert.Error(t, err)
	_, err = Open(filepath.Join(dir, "missing.toml"))
	assert.Error(t, err)
}

func TestFormatFromFilename(t *testing.T) {
	f, err := FormatFromFilename("a/b/Theme.YAML")
	require.NoError(t, err)
	assert.Equal(t, YAML, f)
	_, err = FormatFromFilename("theme")
	assert.Error(t, err)
	assert.Equal(t, "Formats(9)", Formats(9).String())
}
