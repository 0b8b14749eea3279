package logging

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
)

func newBufLogger() (*SlogLogger, *bytes.Buffer) {
	buf := &bytes.Buffer{}
	return NewSlogLogger(slog.New(slog.NewJSONHandler(buf, nil))), buf
}

func TestSlogLogger_Info(t *testing.T) {
	t.Parallel()

	l, buf := newBufLogger()
	l.Info(context.Background(), "hello", "key", "value")

	out := buf.String()
	if !strings.Contains(out, `"msg":"hello"`) || !strings.Contains(out, `"key":"value"`) {
		t.Fatalf("unexpected log output: %s", out)
	}
}

func TestSlogLogger_With(t *testing.T) {
	t.Parallel()

	l, buf := newBufLogger()
	child := l.With("module", "test")
	child.Error(context.Background(), "boom")

	out := buf.String()
	if !strings.Contains(out, `"module":"test"`) {
		t.Fatalf("With attribute missing: %s", out)
	}
	if !strings.Contains(out, `"level":"ERROR"`) {
		t.Fatalf("level missing: %s", out)
	}
}
