package wire3d

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoggerDefaultIsSilent(t *testing.T) {
	require.NotNil(t, Logger())
	require.False(t, Logger().Enabled(context.Background(), slog.LevelError))
}

func TestSetLogger(t *testing.T) {

	buf := &bytes.Buffer{}
	SetLogger(slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	defer SetLogger(nil)

	r := NewRenderer(16, 16)
	require.Contains(t, buf.String(), "renderer created")

	r.Begin(ModePolygon)
	r.Vertex(0, 0, 0)
	r.End()
	require.Contains(t, buf.String(), "polygon skipped")

	r.Begin(ModeLine)
	r.Vertex(2, 0, 0)
	r.Vertex(3, 0, 0)
	r.End()
	require.Contains(t, buf.String(), "line culled")

	SetLogger(nil)
	buf.Reset()
	NewRenderer(16, 16)
	require.Empty(t, buf.String())

}
