package tui

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRenderer(t *testing.T) {
	render := NewRenderer()
	out, err := render("# Linux Commands\n\n1. 📋 **Network Commands**\n")
	require.NoError(t, err)
	assert.Contains(t, out, "Linux Commands")
	assert.Contains(t, out, "Network Commands")
}

func TestPrintBanner(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	var buf bytes.Buffer
	PrintBanner(&buf, "v1.2.3")
	assert.Contains(t, buf.String(), "command assist v1.2.3")
	assert.NotContains(t, buf.String(), "\x1b[38")
}
