package ui

import (
	"bytes"
	"strings"
	"testing"
)

func TestProgress_Step(t *testing.T) {
	var buf bytes.Buffer
	p := NewProgress(&buf, 3)

	p.Step("committed: one")
	p.Step("committed: two")
	p.Step("committed: three")

	out := buf.String()
	if !strings.Contains(out, "[1/3] committed: one") {
		t.Errorf("missing first step line: %s", out)
	}
	if !strings.Contains(out, "[2/3] committed: two") {
		t.Errorf("missing second step line: %s", out)
	}
	if !strings.Contains(out, "[3/3] committed: three") {
		t.Errorf("missing third step line: %s", out)
	}
}

func TestProgress_Log(t *testing.T) {
	var buf bytes.Buffer
	p := NewProgress(&buf, 1)

	p.Log("pushed to %s", "origin")

	out := buf.String()
	if !strings.Contains(out, "pushed to origin") {
		t.Errorf("missing log message: %s", out)
	}
}
