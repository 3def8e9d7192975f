package pdf

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateClientReport(t *testing.T) {
	dir := t.TempDir()
	gen := NewReportGenerator(dir)

	data := ClientReportData{
		GeneratedAt: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
		Rows: []ClientReportRow{
			{ClientID: "001", Name: "Acme", Email: "acme@example.com", Status: "Active", Revenue: 1200},
			{ClientID: "002", Name: "Globex", Email: "g@example.com", Status: "Pending", Revenue: 0},
		},
		ActiveCount:  1,
		TotalRevenue: 1200,
	}

	path, err := gen.GenerateClientReport(data)
	require.NoError(t, err)
	assert.Equal(t, dir, filepath.Dir(path))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}

func TestGenerateClientReportCustomFilename(t *testing.T) {
	dir := t.TempDir()
	gen := NewReportGenerator(dir)

	path, err := gen.GenerateClientReport(ClientReportData{
		GeneratedAt: time.Now(),
		Filename:    "../escape.pdf", // path components are stripped
	})
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "escape.pdf"), path)
}
