package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

// section returns the transcript lines printed for one step header.
func section(t *testing.T, out, header string) string {
	t.Helper()
	i := strings.Index(out, header+"\n")
	require.NotEqual(t, -1, i, "missing %q in:\n%s", header, out)
	rest := out[i+len(header)+1:]
	if j := strings.Index(rest, "step "); j >= 0 {
		rest = rest[:j]
	}
	return rest
}

func TestSimulate(t *testing.T) {
	out, err := run(t, "simulate", "--page", "testdata/page.yaml")
	require.NoError(t, err)

	load := section(t, out, "load")
	assert.Contains(t, load, `#sidebar unpinned style=""`)

	first := section(t, out, "step 1: scroll 600")
	assert.Contains(t, first, "pin #sidebar")
	assert.Contains(t, first, "#sidebar pinned")
	assert.Contains(t, first, "position: fixed;")
	assert.Contains(t, first, "top: 0px;")

	second := section(t, out, "step 2: scroll 880")
	assert.Contains(t, second, "#sidebar pinned style=")
	assert.NotContains(t, second, "pin #sidebar")

	third := section(t, out, "step 3: scroll 100")
	assert.Contains(t, third, "unpin #sidebar")
	assert.Contains(t, third, `#sidebar unpinned style=""`)
}

func TestSimulate_Contain(t *testing.T) {
	out, err := run(t, "simulate", "--page", "testdata/page.yaml", "--contain")
	require.NoError(t, err)

	second := section(t, out, "step 2: scroll 880")
	assert.Contains(t, second, "#sidebar pinned-at-container-bottom")
	assert.Contains(t, second, "position: absolute;")
	assert.Contains(t, second, "top: 800px;")
}

func TestSimulate_ScrollOverride(t *testing.T) {
	out, err := run(t, "simulate", "--page", "testdata/page.yaml", "--scroll", "499,500")
	require.NoError(t, err)

	assert.Contains(t, section(t, out, "step 1: scroll 499"), "#sidebar unpinned")
	assert.Contains(t, section(t, out, "step 2: scroll 500"), "#sidebar pinned")
	assert.NotContains(t, out, "step 3")
}

func TestSimulate_ConfigFile(t *testing.T) {
	dir := t.TempDir()
	cfg := filepath.Join(dir, "pin.yaml")
	require.NoError(t, os.WriteFile(cfg, []byte("pin:\n  top_spacing: 50\n  class_name: stuck\n"), 0o600))

	out, err := run(t, "simulate", "--page", "testdata/page.yaml", "--config", cfg, "--scroll", "460")
	require.NoError(t, err)
	step := section(t, out, "step 1: scroll 460")
	assert.Contains(t, step, "#sidebar pinned")
	assert.Contains(t, step, "top: 50px;")

	// Flags win over the file.
	out, err = run(t, "simulate", "--page", "testdata/page.yaml", "--config", cfg, "--top-spacing", "0", "--scroll", "460")
	require.NoError(t, err)
	assert.Contains(t, section(t, out, "step 1: scroll 460"), "#sidebar unpinned")
}

func TestSimulate_Errors(t *testing.T) {
	type tc struct {
		args    []string
		wantErr string
	}

	tests := map[string]tc{
		"missing page flag": {
			args:    []string{"simulate"},
			wantErr: `required flag(s) "page" not set`,
		},
		"missing page file": {
			args:    []string{"simulate", "--page", "testdata/nope.yaml"},
			wantErr: "no such file",
		},
		"unknown selector": {
			args:    []string{"simulate", "--page", "testdata/page.yaml", "--select", "#missing"},
			wantErr: `no element matches "#missing"`,
		},
		"bad selector": {
			args:    []string{"simulate", "--page", "testdata/page.yaml", "--select", "div"},
			wantErr: "unsupported selector",
		},
		"negative spacing": {
			args:    []string{"simulate", "--page", "testdata/page.yaml", "--bottom-spacing", "-1"},
			wantErr: "bottom spacing",
		},
		"missing config file": {
			args:    []string{"simulate", "--page", "testdata/page.yaml", "--config", "testdata/none.yaml"},
			wantErr: "read config",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := run(t, tt.args...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoadPage(t *testing.T) {
	type tc struct {
		input   string
		wantErr string
	}

	tests := map[string]tc{
		"valid": {
			input: "viewport: {width: 10, height: 10}\nbody: [{id: a, height: 5, margin: [1, 2]}]\nsteps: [{scroll: 1}, {update: true}]\n",
		},
		"unknown field": {
			input:   "viewport: {width: 10, height: 10}\nbogus: 1\n",
			wantErr: "field bogus not found",
		},
		"no viewport": {
			input:   "body: []\n",
			wantErr: "positive width and height",
		},
		"two actions in one step": {
			input:   "viewport: {width: 10, height: 10}\nsteps: [{scroll: 1, update: true}]\n",
			wantErr: "step 1: exactly one",
		},
		"bad resize": {
			input:   "viewport: {width: 10, height: 10}\nsteps: [{resize: [1]}]\n",
			wantErr: "resize takes",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := loadPage(strings.NewReader(tt.input))
			if tt.wantErr == "" {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestEdges(t *testing.T) {
	_, err := edges([]float64{1, 2, 3})
	assert.ErrorContains(t, err, "want 1, 2 or 4 values")

	e, err := edges([]float64{1, 2})
	require.NoError(t, err)
	assert.Equal(t, 1.0, e.Top)
	assert.Equal(t, 2.0, e.Right)
	assert.Equal(t, 1.0, e.Bottom)
	assert.Equal(t, 2.0, e.Left)
}

func TestVersion(t *testing.T) {
	out, err := run(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "pin version 0.1.0\n", out)
}
