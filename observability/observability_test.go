package observability

import (
	"bytes"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
)

func TestFieldConstructors(t *testing.T) {
	cases := []struct {
		field Field
		key   string
		value interface{}
	}{
		{String("name", "pen"), "name", "pen"},
		{Int("page", 3), "page", 3},
		{Int64("bytes", int64(42)), "bytes", int64(42)},
		{Float64("width", 595.28), "width", 595.28},
		{Bool("visible", true), "visible", true},
	}
	for _, c := range cases {
		if c.field.Key() != c.key {
			t.Errorf("key = %q, want %q", c.field.Key(), c.key)
		}
		if c.field.Value() != c.value {
			t.Errorf("value for %q = %v, want %v", c.key, c.field.Value(), c.value)
		}
	}
}

func TestNopLoggerWith(t *testing.T) {
	var l Logger = NopLogger{}
	l = l.With(String("plugin", "demo"))
	l.Info("ignored")
	if _, ok := l.(NopLogger); !ok {
		t.Fatalf("With on NopLogger should stay a NopLogger")
	}
}

func TestLogrusLogger(t *testing.T) {
	var buf bytes.Buffer
	backend := logrus.New()
	backend.SetOutput(&buf)
	backend.SetLevel(logrus.DebugLevel)

	l := NewLogrusLogger(backend).With(String("plugin", "demo"))
	l.Warn("missing pressure table", Int("points", 5))

	out := buf.String()
	if !strings.Contains(out, "missing pressure table") {
		t.Fatalf("log output missing message: %q", out)
	}
	if !strings.Contains(out, "plugin=demo") {
		t.Errorf("log output missing With field: %q", out)
	}
	if !strings.Contains(out, "points=5") {
		t.Errorf("log output missing call field: %q", out)
	}
}
