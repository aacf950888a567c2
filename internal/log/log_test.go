package log

import (
	"bytes"
	"testing"
)

func TestLog_Prefixes(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	defer SetOutput(nil)

	if !Enabled() {
		t.Fatal("expected logging to be enabled")
	}

	Debug("plain %d", 1)
	Parse("parsed %s", "a.vue")
	Compile("compiled %s", "a.vue")
	Config("loaded %s", "sfc.yaml")

	want := "plain 1\n[parse] parsed a.vue\n[compile] compiled a.vue\n[config] loaded sfc.yaml\n"
	if got := buf.String(); got != want {
		t.Errorf("log output = %q, want %q", got, want)
	}
}

func TestLog_Disabled(t *testing.T) {
	SetOutput(nil)
	if Enabled() {
		t.Fatal("expected logging to be disabled")
	}
	// must not panic
	Debug("ignored %d", 1)
}
