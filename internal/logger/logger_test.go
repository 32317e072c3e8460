package logger

import (
	"bytes"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]string{
		"trace":   "trace",
		"DEBUG":   "debug",
		"warning": "warn",
		"error":   "error",
		"":        "info",
		"bogus":   "info",
	}
	for in, want := range cases {
		if got := parseLevel(in).String(); got != want {
			t.Fatalf("parseLevel(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestInitJSONAndNamed(t *testing.T) {
	var buf bytes.Buffer
	Init(Options{Level: "debug", Format: "json", Writer: &buf, Tool: "ppitool"})

	Named("gen").Debug().Str("chip", "nrf52840").Msg("generated")
	out := buf.String()
	for _, want := range []string{`"tool":"ppitool"`, `"component":"gen"`, `"chip":"nrf52840"`, `"message":"generated"`} {
		if !strings.Contains(out, want) {
			t.Fatalf("log line %q missing %s", out, want)
		}
	}

	buf.Reset()
	Get().Trace().Msg("hidden")
	if buf.Len() != 0 {
		t.Fatal("trace should be filtered at debug level")
	}
}
