package image

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/corentings/fen"
)

func TestSVGStartingPosition(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, SVG(&buf, fen.StartingPosition()))

	out := buf.String()
	assert.True(t, strings.HasPrefix(strings.TrimSpace(out), "<?xml"))
	assert.Contains(t, out, "<svg")
	assert.Contains(t, out, "</svg>")
	assert.Equal(t, 64, strings.Count(out, "<rect"), "one rect per square")
	assert.Contains(t, out, "♜")
	assert.Contains(t, out, "♙")
}

func TestSVGSquareColors(t *testing.T) {
	var buf bytes.Buffer
	err := SVG(&buf, fen.StartingPosition(), SquareColors("#ABCDEF", "#123456"))
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "#ABCDEF")
	assert.Contains(t, buf.String(), "#123456")
}

func TestSVGCoordinates(t *testing.T) {
	var buf bytes.Buffer
	err := SVG(&buf, fen.StartingPosition(), Coordinates())
	require.NoError(t, err)
	assert.Contains(t, buf.String(), ">a</text>")
	assert.Contains(t, buf.String(), ">8</text>")
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("broken pipe")
}

func TestSVGWriteError(t *testing.T) {
	err := SVG(failingWriter{}, fen.StartingPosition())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "broken pipe")
}
