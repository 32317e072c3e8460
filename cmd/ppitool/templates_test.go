package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateChip(t *testing.T) {
	m, err := ParseChipMeta([]byte(sampleMeta))
	require.NoError(t, err)

	code, err := GenerateChip(m, "nrf52test.yaml")
	require.NoError(t, err)

	for _, want := range []string{
		"// Code generated by ppitool gen from nrf52test.yaml. DO NOT EDIT.",
		"package nrf52test",
		"type Radio struct{}",
		"func (Radio) ID() domain.ID { return 1 }",
		`{ID: 0, Name: "ppi", Base: 0x4001F000, Channels: 32, Fork: true},`,
		`{Peripheral: "RADIO", Domain: 1, Base: 0x40001000},`,
		"func NewMCUPool() *ppi.Pool[domain.MCU] { return ppi.NewPool[domain.MCU](0, 20) }",
		"func NewRadioPool() *ppi.Pool[Radio] { return ppi.NewPool[Radio](0, 8) }",
		`TIMER0 = periph.Timer[domain.MCU]{Instance: periph.Instance[domain.MCU]{Name: "TIMER0", Base: 0x40008000}}`,
		`RADIO = periph.Instance[Radio]{Name: "RADIO", Base: 0x40001000}`,
	} {
		assert.Contains(t, code, want)
	}
	// MCU is shared, never redeclared; Radio has no fork group.
	assert.NotContains(t, code, "type MCU struct")
	assert.NotContains(t, code, "func (Radio) ForkCapable()")
}

func TestGeneratedTablesAreCurrent(t *testing.T) {
	for pkg := range chips {
		m, err := LoadChipMeta(filepath.Join("..", "..", "chip", "metadata", pkg+".yaml"))
		require.NoError(t, err)
		code, err := GenerateChip(m, pkg+".yaml")
		require.NoError(t, err)

		path := filepath.Join("..", "..", "chip", pkg, "table_gen.go")
		want, err := formatSource(path, code)
		require.NoError(t, err)
		have, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, string(want), string(have), "%s is stale, run ppitool gen", path)
	}
}

func TestRunGen(t *testing.T) {
	dir := t.TempDir()
	meta := filepath.Join(dir, "nrf52test.yaml")
	require.NoError(t, os.WriteFile(meta, []byte(sampleMeta), 0o644))

	out := filepath.Join(dir, "out")
	require.NoError(t, runGen(nil, dir, out))

	data, err := os.ReadFile(filepath.Join(out, "nrf52test", "table_gen.go"))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "// Code generated by ppitool gen"))
}

func TestRunGenEmptyDir(t *testing.T) {
	err := runGen(nil, t.TempDir(), t.TempDir())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no metadata files")
}
