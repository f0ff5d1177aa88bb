package logger

import (
	"bufio"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestAuditLogger_WritesJSONLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "audit.jsonl")

	l, err := New(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	events := []RunEvent{
		{Timestamp: "2026-08-31T10:00:00Z", Mode: "offline", Findings: 2, RiskScore: 55, RiskLevel: "medium"},
		{Timestamp: "2026-08-31T10:01:00Z", Mode: "heuristic-only", Findings: 0, RiskScore: 100, RiskLevel: "low", ShouldAutofix: true},
	}
	for _, e := range events {
		if err := l.Log(e); err != nil {
			t.Fatalf("Log failed: %v", err)
		}
	}
	if err := l.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	file, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer file.Close()

	var got []RunEvent
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		var e RunEvent
		if err := json.Unmarshal(scanner.Bytes(), &e); err != nil {
			t.Fatalf("line not valid JSON: %q", scanner.Text())
		}
		got = append(got, e)
	}

	if len(got) != 2 {
		t.Fatalf("got %d lines, want 2", len(got))
	}
	if got[0].RiskLevel != "medium" || got[1].ShouldAutofix != true {
		t.Errorf("round-trip mismatch: %+v", got)
	}
}

func TestAuditLogger_RedactsErrorText(t *testing.T) {
	path := filepath.Join(t.TempDir(), "audit.jsonl")

	l, err := New(path)
	if err != nil {
		t.Fatal(err)
	}
	event := RunEvent{
		Timestamp: "2026-08-31T10:00:00Z",
		Mode:      "openai",
		RiskLevel: "high",
		Error:     "401 unauthorized for key sk-abcdefghijklmnopqrstuv",
	}
	if err := l.Log(event); err != nil {
		t.Fatal(err)
	}
	l.Close()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}

	if strings.Contains(string(data), "sk-abcdefghijklmnopqrstuv") {
		t.Errorf("secret leaked into audit log: %s", data)
	}
	if !strings.Contains(string(data), "[REDACTED]") {
		t.Errorf("expected a redaction placeholder: %s", data)
	}
}

func TestAuditLogger_AppendsAcrossOpens(t *testing.T) {
	path := filepath.Join(t.TempDir(), "audit.jsonl")

	for i := 0; i < 2; i++ {
		l, err := New(path)
		if err != nil {
			t.Fatal(err)
		}
		if err := l.Log(RunEvent{Timestamp: "2026-08-31T10:00:00Z", Mode: "offline", RiskLevel: "low"}); err != nil {
			t.Fatal(err)
		}
		l.Close()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if got := strings.Count(string(data), "\n"); got != 2 {
		t.Errorf("got %d lines, want 2", got)
	}
}
