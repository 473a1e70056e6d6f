package visitor

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erraggy/schemavisit/schema"
)

func TestNopLogger(t *testing.T) {
	var l Logger = NopLogger{}

	// All methods are safe no-ops.
	l.Debug("debug", "k", "v")
	l.Info("info")
	l.Warn("warn")
	l.Error("error")

	assert.Equal(t, l, l.With("k", "v"), "With returns the same no-op logger")
}

func TestNewSlogAdapter_NilUsesDefault(t *testing.T) {
	adapter := NewSlogAdapter(nil)
	require.NotNil(t, adapter)
	adapter.Debug("does not panic")
}

func TestSlogAdapter_Levels(t *testing.T) {
	var buf bytes.Buffer
	handler := slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})
	var l Logger = NewSlogAdapter(slog.New(handler))

	l.Debug("debug msg", "k", "v")
	l.Info("info msg")
	l.Warn("warn msg")
	l.Error("error msg")

	out := buf.String()
	assert.Contains(t, out, "level=DEBUG")
	assert.Contains(t, out, "debug msg")
	assert.Contains(t, out, "k=v")
	assert.Contains(t, out, "level=INFO")
	assert.Contains(t, out, "level=WARN")
	assert.Contains(t, out, "level=ERROR")
}

func TestSlogAdapter_With(t *testing.T) {
	var buf bytes.Buffer
	handler := slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})
	l := NewSlogAdapter(slog.New(handler)).With("component", "visitor")

	l.Info("hello")
	assert.Contains(t, buf.String(), "component=visitor")
}

func TestVisit_DebugLogging(t *testing.T) {
	var buf bytes.Buffer
	handler := slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})

	shared := &schema.Schema{Type: "string"}
	root := &schema.Schema{
		Definitions: map[string]*schema.Schema{"a": shared},
		Properties:  map[string]*schema.Schema{"a": shared, "drop": {Type: "null"}},
	}

	err := Visit(root,
		WithLogger(NewSlogAdapter(slog.New(handler))),
		WithSchemaHook(func(wc *VisitContext, s *schema.Schema) (*schema.Schema, error) {
			if s.Type == "null" {
				return nil, nil
			}
			return s, nil
		}),
	)
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "starting traversal")
	assert.Contains(t, out, "skipping already-visited node")
	assert.Contains(t, out, "deleted node")
	assert.Contains(t, out, "path=#/properties/drop")
}
