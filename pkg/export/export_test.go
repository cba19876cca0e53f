package export

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCSVRender(t *testing.T) {
	data := Dataset{
		Headers: []string{"Name", "Email", "Phone"},
		Rows: [][]string{
			{"Maria L Garcia", "maria@test.com", "3051234567"},
			{"Noah"},
		},
	}

	out, err := NewCSVExporter().Render(data)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(out)), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "Name,Email,Phone", lines[0])
	assert.Equal(t, "Maria L Garcia,maria@test.com,3051234567", lines[1])
	// Short rows are padded to header width.
	assert.Equal(t, "Noah,,", lines[2])
}

func TestCSVRenderRequiresHeaders(t *testing.T) {
	_, err := NewCSVExporter().Render(Dataset{})
	require.Error(t, err)
}

func TestPDFRender(t *testing.T) {
	data := Dataset{
		Headers: []string{"Name", "Permit #"},
		Rows:    [][]string{{"Maria L Garcia", "D1234567"}},
	}

	out, err := NewPDFExporter().Render(data, "Roster")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(out), "%PDF"))
}

func TestPDFRenderRequiresHeaders(t *testing.T) {
	_, err := NewPDFExporter().Render(Dataset{}, "")
	require.Error(t, err)
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 40))
	long := strings.Repeat("x", 50)
	got := truncate(long, 40)
	assert.Equal(t, 40, len([]rune(got)))
	assert.True(t, strings.HasSuffix(got, "..."))
}
