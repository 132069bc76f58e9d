package telemetry

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func TestWriteEmitsOneJSONLinePerCall(t *testing.T) {
	var buf bytes.Buffer
	prev := SetOutput(&buf)
	defer SetOutput(prev)

	Info("plan.created", map[string]any{"plan_id": "p-1", "items": 3})
	Warn("plan.severity_fallback", map[string]any{"finding_id": "F001"})
	Error("plan.failed", nil)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d: %q", len(lines), buf.String())
	}

	wantLevels := []string{"info", "warn", "error"}
	for i, line := range lines {
		var payload map[string]any
		if err := json.Unmarshal([]byte(line), &payload); err != nil {
			t.Fatalf("line %d: decode: %v", i, err)
		}
		if payload["level"] != wantLevels[i] {
			t.Fatalf("line %d: expected level %s, got %v", i, wantLevels[i], payload["level"])
		}
		if _, ok := payload["ts"]; !ok {
			t.Fatalf("line %d: missing ts", i)
		}
	}

	var first map[string]any
	_ = json.Unmarshal([]byte(lines[0]), &first)
	if first["plan_id"] != "p-1" || first["msg"] != "plan.created" {
		t.Fatalf("unexpected fields: %v", first)
	}
}

func TestWriteReportsUnmarshalableFields(t *testing.T) {
	var buf bytes.Buffer
	prev := SetOutput(&buf)
	defer SetOutput(prev)

	Info("bad", map[string]any{"ch": make(chan int)})

	if !strings.Contains(buf.String(), "logger marshal failed") {
		t.Fatalf("expected marshal failure line, got %q", buf.String())
	}
}
