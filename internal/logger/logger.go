// Package logger appends one JSON line per agent run to the audit log.
package logger

import (
	"encoding/json"
	"os"
	"sync"

	"github.com/bughound-labs/bughound/internal/redact"
)

// RunEvent is the audit record for a single pipeline run. The snippet itself
// is never logged, only its shape and the outcome.
type RunEvent struct {
	Timestamp     string `json:"timestamp"`
	Mode          string `json:"mode"`
	Model         string `json:"model,omitempty"`
	SnippetLines  int    `json:"snippet_lines"`
	Findings      int    `json:"findings"`
	RiskScore     int    `json:"risk_score"`
	RiskLevel     string `json:"risk_level"`
	ShouldAutofix bool   `json:"should_autofix"`
	FallbackUsed  bool   `json:"fallback_used,omitempty"`
	UserAction    string `json:"user_action,omitempty"`
	Error         string `json:"error,omitempty"`
}

type AuditLogger struct {
	file *os.File
	mu   sync.Mutex
}

func New(path string) (*AuditLogger, error) {
	file, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0600)
	if err != nil {
		return nil, err
	}

	return &AuditLogger{file: file}, nil
}

func (l *AuditLogger) Log(event RunEvent) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	// Error text can echo request details; scrub it before it hits disk.
	if event.Error != "" {
		event.Error, _ = redact.Redact(event.Error)
	}

	data, err := json.Marshal(event)
	if err != nil {
		return err
	}

	data = append(data, '\n')
	_, err = l.file.Write(data)
	return err
}

func (l *AuditLogger) Close() error {
	if l.file != nil {
		return l.file.Close()
	}
	return nil
}
