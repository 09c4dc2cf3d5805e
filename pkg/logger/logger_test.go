package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]zerolog.Level{
		"trace":   zerolog.TraceLevel,
		"DEBUG":   zerolog.DebugLevel,
		" warn ":  zerolog.WarnLevel,
		"warning": zerolog.WarnLevel,
		"error":   zerolog.ErrorLevel,
		"":        zerolog.InfoLevel,
		"verbose": zerolog.InfoLevel,
	}
	for in, want := range cases {
		if got := parseLevel(in); got != want {
			t.Errorf("parseLevel(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestInit_FieldsAndSingleton(t *testing.T) {
	Reset()
	t.Cleanup(func() {
		Reset()
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	})

	var buf bytes.Buffer
	Init(Options{Level: "debug", Output: &buf, Service: "membership", AppID: "app-1"})
	Init(Options{Level: "error", Output: &bytes.Buffer{}})

	log := Component("session")
	log.Debug().Msg("hello")

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("decode log line %q: %v", buf.String(), err)
	}
	for k, want := range map[string]string{
		"service":   "membership",
		"app_id":    "app-1",
		"component": "session",
		"message":   "hello",
		"level":     "debug",
	} {
		if entry[k] != want {
			t.Errorf("%s = %v, want %q", k, entry[k], want)
		}
	}
}

func TestGet_PanicsBeforeInit(t *testing.T) {
	Reset()
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic")
		}
	}()
	Get()
}

func TestMaskEmail(t *testing.T) {
	cases := map[string]string{
		"maria@example.com":   "m***@example.com",
		" joao@paroquia.org ": "j***@paroquia.org",
		"a@b":                 "a***@b",
		"@example.com":        "***",
		"no-at-sign":          "***",
		"":                    "***",
	}
	for in, want := range cases {
		if got := MaskEmail(in); got != want {
			t.Errorf("MaskEmail(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestInit_OmitsEmptyFields(t *testing.T) {
	Reset()
	t.Cleanup(func() {
		Reset()
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	})

	var buf bytes.Buffer
	log := Init(Options{Output: &buf})
	log.Info().Msg("up")

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("decode log line %q: %v", buf.String(), err)
	}
	if _, ok := entry["service"]; ok {
		t.Errorf("unexpected service field: %v", entry)
	}
	if _, ok := entry["app_id"]; ok {
		t.Errorf("unexpected app_id field: %v", entry)
	}
}
