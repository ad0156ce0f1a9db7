package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Mode    string   `toml:"mode"`
	Targets []string `toml:"targets"`
}

func TestParseAndDecode(t *testing.T) {
	t.Parallel()

	f, err := Parse("a.toml", []byte("mode = \"Sample\"\ntargets = [\"x\", \"y\"]\n"))
	require.NoError(t, err)
	assert.Equal(t, "Sample", f.Mode)

	var s sample
	require.NoError(t, f.Decode(&s))
	assert.Equal(t, []string{"x", "y"}, s.Targets)
}

func TestParse_Errors(t *testing.T) {
	t.Parallel()

	_, err := Parse("a.toml", []byte("targets = [\"x\"]\n"))
	var cfgErr *ConfigError
	require.ErrorAs(t, err, &cfgErr)
	assert.Equal(t, []string{`Error within config "a.toml"`, `The "mode" key is missing or is not a string`}, cfgErr.Reasons())

	_, err = Parse("b.toml", []byte("mode = \n"))
	require.ErrorAs(t, err, &cfgErr)
	assert.Contains(t, cfgErr.Reasons()[1], "TOML syntax error at line 1")
	assert.Equal(t, "Invalid Config", cfgErr.Summary())
}

func TestDecode_UnknownKey(t *testing.T) {
	t.Parallel()

	f, err := Parse("a.toml", []byte("mode = \"Sample\"\ntargetz = [\"x\"]\n"))
	require.NoError(t, err)

	var s sample
	err = f.Decode(&s)
	var cfgErr *ConfigError
	require.ErrorAs(t, err, &cfgErr)
	assert.Contains(t, cfgErr.Error(), "targetz")
}

func TestLoad(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "mask.toml")
	require.NoError(t, os.WriteFile(path, []byte("mode = \"Sample\"\n"), 0o600))

	f, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, path, f.Source)

	_, err = Load(filepath.Join(t.TempDir(), "missing.toml"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestProblems(t *testing.T) {
	t.Parallel()

	var p Problems
	require.NoError(t, p.Err())

	p.Addf("first %d", 1)
	p.Addf("second")
	err := p.Err()
	var cfgErr *ConfigError
	require.ErrorAs(t, err, &cfgErr)
	assert.Equal(t, []string{"first 1", "second"}, cfgErr.Reasons())
	assert.Equal(t, "invalid config: first 1; second", err.Error())
}
