package main

import (
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIngestCommand_MissingFlags(t *testing.T) {
	binaryPath := getBinaryPath(t)

	cmd := exec.Command(binaryPath, "ingest")
	output, err := cmd.CombinedOutput()

	assert.Error(t, err)
	assert.Contains(t, string(output), "either --resume or --url must be provided")
}

func TestIngestCommand_MutuallyExclusive(t *testing.T) {
	binaryPath := getBinaryPath(t)

	cmd := exec.Command(binaryPath, "ingest", "--resume", "resume.txt", "--url", "https://example.com")
	output, err := cmd.CombinedOutput()

	assert.Error(t, err)
	assert.Contains(t, string(output), "mutually exclusive")
}

func TestIngestCommand_ResumeFile(t *testing.T) {
	binaryPath := getBinaryPath(t)

	tmpDir := t.TempDir()
	resumePath := filepath.Join(tmpDir, "resume.txt")
	require.NoError(t, os.WriteFile(resumePath, []byte("Jane Doe\nSoftware Engineer\nPython, Go"), 0o644))
	outDir := filepath.Join(tmpDir, "out")

	cmd := exec.Command(binaryPath, "ingest", "--resume", resumePath, "--out", outDir)
	output, err := cmd.CombinedOutput()

	require.NoError(t, err, string(output))
	assert.Contains(t, string(output), "Successfully ingested")

	cleaned, err := os.ReadFile(filepath.Join(outDir, "ingested.cleaned.txt"))
	require.NoError(t, err)
	assert.Contains(t, string(cleaned), "Jane Doe")

	meta, err := os.ReadFile(filepath.Join(outDir, "ingested.meta.json"))
	require.NoError(t, err)
	assert.Contains(t, string(meta), `"txt"`)
}
