package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const generateTestDoc = `{
	"client": {"summary": "Client s.r.o."},
	"provider": {"summary": "Provider a.s."},
	"creator": {"name": "John Doe"},
	"items": [{"count": 2, "price": 500, "tax": 21}]
}`

func writeTestDoc(t *testing.T, dir string) string {
	t.Helper()
	path := filepath.Join(dir, "invoice.json")
	require.NoError(t, os.WriteFile(path, []byte(generateTestDoc), 0o644))
	return path
}

func TestRunGenerate_WritesPDF(t *testing.T) {
	dir := t.TempDir()
	docPath := writeTestDoc(t, dir)

	generateOutput = filepath.Join(dir, "invoice.pdf")
	generateFormat = "pdf"

	require.NoError(t, runGenerate(generateCmd, []string{docPath}))

	data, err := os.ReadFile(generateOutput)
	require.NoError(t, err)
	assert.True(t, len(data) > 4 && string(data[:4]) == "%PDF")
}

func TestRunGenerate_UnsupportedFormat(t *testing.T) {
	dir := t.TempDir()
	docPath := writeTestDoc(t, dir)

	generateOutput = filepath.Join(dir, "invoice.docx")
	generateFormat = "docx"

	err := runGenerate(generateCmd, []string{docPath})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported format")

	// A failed render must not leave a file behind.
	_, statErr := os.Stat(generateOutput)
	assert.True(t, os.IsNotExist(statErr))
}
