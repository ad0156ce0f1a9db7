package command

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gitgub.com/cam-per/hypnagogic/diag"
	"gitgub.com/cam-per/hypnagogic/dmi"
	"gitgub.com/cam-per/hypnagogic/internal/logger"
)

const maskConfig = `mode = "DmiMasking"
target_states = ["hat"]
mask_suffix = "masked"
unmasked_suffix = "unmasked"
`

func fill(c color.NRGBA) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	for y := 0; y < 2; y++ {
		for x := 0; x < 2; x++ {
			img.SetNRGBA(x, y, c)
		}
	}
	return img
}

func writeIcon(t *testing.T, dir string, states ...dmi.State) string {
	t.Helper()

	var buf bytes.Buffer
	require.NoError(t, dmi.Encode(&buf, &dmi.Icon{Version: dmi.DefaultVersion, Width: 2, Height: 2, States: states}))
	path := filepath.Join(dir, "hat.dmi")
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0o600))
	return path
}

func writeConfig(t *testing.T, dir, text string) string {
	t.Helper()

	path := filepath.Join(dir, "mask.toml")
	require.NoError(t, os.WriteFile(path, []byte(text), 0o600))
	return path
}

func hatStates() []dmi.State {
	return []dmi.State{
		{Name: "hat", Dirs: 1, Frames: 1, Images: []*image.NRGBA{fill(color.NRGBA{R: 200, A: 255})}},
		{Name: "hat_mask", Dirs: 1, Frames: 1, Images: []*image.NRGBA{fill(color.NRGBA{A: 255})}},
	}
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var stdout, stderr bytes.Buffer
	cmd := New(Options{Stdout: &stdout, Stderr: &stderr, Logger: logger.Test(t)})
	err := cmd.Run(context.Background(), append([]string{"hypnagogic"}, args...))
	return stdout.String(), err
}

func TestMask(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	input := writeIcon(t, dir, hatStates()...)
	cfg := writeConfig(t, dir, maskConfig)
	outDir := filepath.Join(dir, "out")

	stdout, err := run(t, "mask", "--config", cfg, "--output", outDir, input)
	require.NoError(t, err)
	assert.Contains(t, stdout, "wrote "+filepath.Join(outDir, "hat.dmi"))

	f, err := os.Open(filepath.Join(outDir, "hat.dmi"))
	require.NoError(t, err)
	defer f.Close()
	icon, err := dmi.Decode(f)
	require.NoError(t, err)

	names := make([]string, 0, len(icon.States))
	for _, s := range icon.States {
		names = append(names, s.Name)
	}
	assert.Equal(t, []string{"hat", "hat_mask", "hat_masked", "hat_unmasked"}, names)
	assert.Equal(t, color.NRGBA{}, icon.States[2].Images[0].NRGBAAt(0, 0))
	assert.Equal(t, color.NRGBA{R: 200, A: 255}, icon.States[3].Images[0].NRGBAAt(1, 1))
}

func TestMask_DryRun(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	input := writeIcon(t, dir, hatStates()...)
	before, err := os.ReadFile(input)
	require.NoError(t, err)
	cfg := writeConfig(t, dir, maskConfig)

	stdout, err := run(t, "mask", "--dry-run", "-c", cfg, input)
	require.NoError(t, err)
	assert.Contains(t, stdout, "would write")

	after, err := os.ReadFile(input)
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestMask_Errors(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	input := writeIcon(t, dir, hatStates()[0])
	cfg := writeConfig(t, dir, maskConfig)

	tests := []struct {
		name    string
		args    []string
		kind    ErrorKind
		summary string
	}{
		{
			name:    "missing mask state",
			args:    []string{"mask", "-c", cfg, input},
			kind:    ProcessorFailed,
			summary: "Processing Failed",
		},
		{
			name:    "missing input",
			args:    []string{"mask", "-c", cfg, filepath.Join(dir, "nope.dmi")},
			kind:    InputNotFound,
			summary: "Input not found",
		},
		{
			name:    "invalid config",
			args:    []string{"mask", "-c", writeConfig(t, t.TempDir(), "mode = \"DmiMasking\"\n"), input},
			kind:    InvalidConfig,
			summary: "Invalid Config File",
		},
		{
			name:    "not a dmi",
			args:    []string{"mask", "-c", cfg, cfg},
			kind:    InputParsingFailed,
			summary: "Image Parsing Failed",
		},
		{
			name:    "missing config",
			args:    []string{"mask", "-c", filepath.Join(dir, "nope.toml"), input},
			kind:    IO,
			summary: "Generic IO Error",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := run(t, tt.args...)
			var cmdErr *Error
			require.ErrorAs(t, err, &cmdErr)
			assert.Equal(t, tt.kind, cmdErr.Kind)
			assert.Equal(t, tt.summary, cmdErr.Summary())
			assert.NotEmpty(t, cmdErr.Reasons())
			assert.NotEmpty(t, cmdErr.Helptext())
		})
	}
}

func TestMask_NoInputs(t *testing.T) {
	t.Parallel()

	cfg := writeConfig(t, t.TempDir(), maskConfig)
	_, err := run(t, "mask", "-c", cfg)
	require.ErrorIs(t, err, ErrNoInputs)
}

func TestInspect(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	states := hatStates()
	states[0].Delays = dmi.Delays{1}
	input := writeIcon(t, dir, states...)

	stdout, err := run(t, "inspect", input)
	require.NoError(t, err)
	assert.Contains(t, stdout, "2x2, 2 states, 2 icons")
	assert.Contains(t, stdout, `"hat" dirs=1 frames=1 delays=[1ds]`)
	assert.Contains(t, stdout, `"hat_mask" dirs=1 frames=1`)
}

func TestError_InputNotFoundRendering(t *testing.T) {
	t.Parallel()

	err := &Error{Kind: InputNotFound, Config: "hats.toml", Path: filepath.Join("icons", "hat.dmi")}
	var buf bytes.Buffer
	diag.Render(&buf, err)
	assert.Equal(t, "Error: Input not found\n"+
		" - Failed to find the input for a config (hats.toml)\n"+
		" - Searched in `icons`\n"+
		" - Expected to find an input file named \"hat.dmi\"\n"+
		"hint: Double check that the file \"hat.dmi\" exists, and if it does, that it's named correctly\n",
		buf.String())
}
