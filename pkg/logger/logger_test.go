package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
)

func TestInit_JSONWithServiceAndEnv(t *testing.T) {
	Reset()
	t.Cleanup(Reset)

	var buf bytes.Buffer
	log := Init(Options{Level: "debug", Output: &buf, Service: "jobboard", Env: "production"})
	sessions := Component(log, "sessions")
	sessions.Debug().Str("k", "v").Msg("hello")

	var line map[string]any
	if err := json.Unmarshal(buf.Bytes(), &line); err != nil {
		t.Fatalf("expected JSON output, got %q: %v", buf.String(), err)
	}
	if line["service"] != "jobboard" || line["env"] != "production" {
		t.Fatalf("missing service fields: %v", line)
	}
	if line["component"] != "sessions" || line["message"] != "hello" || line["k"] != "v" {
		t.Fatalf("unexpected line: %v", line)
	}
}

func TestInit_FormatSelection(t *testing.T) {
	cases := []struct {
		name     string
		opts     Options
		wantJSON bool
	}{
		{"development defaults to console", Options{Env: "development"}, false},
		{"production defaults to json", Options{Env: "production"}, true},
		{"explicit json in development", Options{Env: "development", Format: "JSON"}, true},
		{"explicit console in production", Options{Env: "production", Format: "console"}, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			Reset()
			t.Cleanup(Reset)

			var buf bytes.Buffer
			tc.opts.Output = &buf
			log := Init(tc.opts)
			log.Info().Msg("x")

			isJSON := json.Valid(bytes.TrimSpace(buf.Bytes()))
			if isJSON != tc.wantJSON {
				t.Fatalf("json output = %v, want %v: %q", isJSON, tc.wantJSON, buf.String())
			}
		})
	}
}

func TestInit_OnlyFirstCallApplies(t *testing.T) {
	Reset()
	t.Cleanup(Reset)

	var first, second bytes.Buffer
	Init(Options{Output: &first})
	Init(Options{Output: &second})
	log := Get()
	log.Info().Msg("x")

	if first.Len() == 0 || second.Len() != 0 {
		t.Fatalf("expected output only on the first writer")
	}
}

func TestGet_PanicsBeforeInit(t *testing.T) {
	Reset()
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic")
		}
	}()
	Get()
}

func TestParseLevel(t *testing.T) {
	cases := map[string]zerolog.Level{
		"trace":   zerolog.TraceLevel,
		"DEBUG":   zerolog.DebugLevel,
		" warn ":  zerolog.WarnLevel,
		"warning": zerolog.WarnLevel,
		"error":   zerolog.ErrorLevel,
		"":        zerolog.InfoLevel,
		"bogus":   zerolog.InfoLevel,
	}
	for in, want := range cases {
		if got := parseLevel(in); got != want {
			t.Errorf("parseLevel(%q) = %v, want %v", in, got, want)
		}
	}
}
