package declare

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	yamlData := `
version: "1"
models:
  - type: account.Profile
    fields:
      Name: nameInput
      Active: [checkBox1, radio1]
      Level: "#12"
    ignore:
      - Secret
`

	f, err := Parse([]byte(yamlData))
	require.NoError(t, err)

	assert.Equal(t, "1", f.Version)
	require.Len(t, f.Models, 1)

	m := f.Models[0]
	assert.Equal(t, "account.Profile", m.Type)
	assert.Equal(t, Targets{"nameInput"}, m.Fields["Name"])
	assert.Equal(t, Targets{"checkBox1", "radio1"}, m.Fields["Active"])
	assert.Equal(t, Targets{"#12"}, m.Fields["Level"])
	assert.Equal(t, []string{"Secret"}, m.Ignore)
}

func TestParseMinimal(t *testing.T) {
	f, err := Parse([]byte("models: []"))
	require.NoError(t, err)

	assert.Equal(t, CurrentVersion, f.Version, "version defaults")
	assert.Empty(t, f.Models)
}

func TestParseInvalidTargets(t *testing.T) {
	_, err := Parse([]byte(`
models:
  - type: T
    fields:
      Name: {nested: map}
`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "expected string or list of strings")
}

func TestMarshalTargets(t *testing.T) {
	f := &File{
		Version: CurrentVersion,
		Models: []Model{{
			Type: "account.Profile",
			Fields: map[string]Targets{
				"Name":   {"nameInput"},
				"Active": {"checkBox1", "radio1"},
			},
		}},
	}

	data, err := Marshal(f)
	require.NoError(t, err)

	assert.Contains(t, string(data), "Name: nameInput")
	assert.Contains(t, string(data), "- checkBox1")

	back, err := Parse(data)
	require.NoError(t, err)
	assert.Equal(t, f, back)
}

func TestLoadAndWriteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bind.yaml")

	f := &File{Version: CurrentVersion}
	f.Model("account.Profile").Ignore = []string{"Secret"}

	require.NoError(t, WriteFile(f, path))

	loaded, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, f, loaded)

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestFileModel(t *testing.T) {
	f := &File{}

	a := f.Model("A")
	a.Ignore = append(a.Ignore, "x")

	assert.Same(t, a, f.Model("A"), "existing entry returned")
	assert.Len(t, f.Models, 1)

	f.Model("B")
	assert.Len(t, f.Models, 2)
}
