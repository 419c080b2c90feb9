package bitvec

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLogger(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	ctx := context.Background()

	l.WithRound(3).WithSeed(42).Info("hello")
	assert.Contains(t, buf.String(), "round=3")
	assert.Contains(t, buf.String(), "seed=42")

	buf.Reset()
	l.LogRound(ctx, 1, 100, nil)
	assert.Contains(t, buf.String(), "round completed")

	buf.Reset()
	l.LogRound(ctx, 2, 100, errors.New("boom"))
	assert.Contains(t, buf.String(), "round failed")
	assert.Contains(t, buf.String(), "boom")

	buf.Reset()
	l.LogViolation(ctx, &ErrIndexOutOfRange{Op: "set", Index: 7, Len: 3})
	assert.Contains(t, buf.String(), "precondition violated")
	assert.Contains(t, buf.String(), "op=set")
	assert.Contains(t, buf.String(), "index=7")
}

func TestSetLogger(t *testing.T) {
	l := NoopLogger()
	SetLogger(l)
	assert.Same(t, l, currentLogger())

	SetLogger(nil)
	assert.NotNil(t, currentLogger())
	assert.NotSame(t, l, currentLogger())
}

func TestConstructors(t *testing.T) {
	assert.NotNil(t, NewLogger(nil))
	assert.NotNil(t, NewTextLogger(slog.LevelWarn))
	assert.NotNil(t, NewJSONLogger(slog.LevelDebug))

	// Discarded without error.
	NoopLogger().Error("nothing")
}
