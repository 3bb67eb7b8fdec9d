package project

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseManifest(t *testing.T) {
	source := `# Velvet project manifest
[project]
name = "demo"
main_source = "src/main.vex"
main_logic = "src/main.vel"
version = "0.2.1"
author = "Void"
`
	manifest, err := ParseManifest("config.vexl", source)
	require.NoError(t, err)

	info := manifest.Project()
	assert.Equal(t, "demo", info.Name)
	assert.Equal(t, "src/main.vex", info.MainSource)
	assert.Equal(t, "src/main.vel", info.MainLogic)
	assert.Equal(t, "0.2.1", info.Version)
	assert.Equal(t, "Void", info.Author)
}

func TestParseManifestDefaults(t *testing.T) {
	manifest, err := ParseManifest("config.vexl", `[project]
name = "bare"
`)
	require.NoError(t, err)

	info := manifest.Project()
	assert.Equal(t, "bare", info.Name)
	assert.Equal(t, "0.1.0", info.Version)
	assert.Equal(t, "src/main.vex", info.MainSource)
	assert.Equal(t, "src/main.vel", info.MainLogic)
	assert.Empty(t, info.Author)
}

func TestParseManifestMultipleSections(t *testing.T) {
	manifest, err := ParseManifest("config.vexl", `[project]
name = "demo"
[build]
output = "out"
`)
	require.NoError(t, err)

	value, ok := manifest.Get("build", "output")
	assert.True(t, ok)
	assert.Equal(t, "out", value)

	_, ok = manifest.Get("build", "missing")
	assert.False(t, ok)
}

func TestParseManifestRejectsUnquotedValue(t *testing.T) {
	_, err := ParseManifest("config.vexl", `[project]
name = demo
`)
	assert.Error(t, err)
}

func TestDefaultManifestRoundTrips(t *testing.T) {
	manifest, err := ParseManifest("config.vexl", DefaultManifest("roundtrip"))
	require.NoError(t, err)
	assert.Equal(t, "roundtrip", manifest.Project().Name)
}
