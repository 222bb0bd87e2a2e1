package demo

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"
)

func TestGenerateASCIICast(t *testing.T) {
	frames := []Frame{
		{Content: "one\ntwo", Delay: 500 * time.Millisecond},
		{Content: "three", Delay: time.Second},
	}

	var buf bytes.Buffer
	if err := GenerateASCIICast(&buf, frames, 80, 24, "demo"); err != nil {
		t.Fatalf("GenerateASCIICast() error = %v", err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected header + 2 events, got %d lines", len(lines))
	}

	var header castHeader
	if err := json.Unmarshal([]byte(lines[0]), &header); err != nil {
		t.Fatal(err)
	}
	if header != (castHeader{Version: 2, Width: 80, Height: 24, Title: "demo"}) {
		t.Errorf("header = %+v", header)
	}

	tests := []struct {
		line    string
		at      float64
		content string
	}{
		{lines[1], 0.5, clearScreen + "one\r\ntwo"},
		{lines[2], 1.5, clearScreen + "three"},
	}
	for _, tt := range tests {
		var event []any
		if err := json.Unmarshal([]byte(tt.line), &event); err != nil {
			t.Fatal(err)
		}
		if event[0].(float64) != tt.at || event[1] != "o" || event[2] != tt.content {
			t.Errorf("event = %v, want [%v o %q]", event, tt.at, tt.content)
		}
	}
}
