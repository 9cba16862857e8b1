package logging

import (
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"
)

func TestNewTestLoggerWritesToBuffer(t *testing.T) {
	logger, buf := NewTestLogger()

	logger.Info("server starting", "base_url", "http://localhost:9000")

	out := buf.String()
	if !strings.Contains(out, "server starting") {
		t.Errorf("expected message in buffer, got %q", out)
	}
	if !strings.Contains(out, "base_url") {
		t.Errorf("expected key in buffer, got %q", out)
	}
}

func TestDebugSuppressedWhenDisabled(t *testing.T) {
	logger, buf := NewTestLogger()
	logger.debug = false

	logger.Debug("should not appear")

	if buf.Len() != 0 {
		t.Errorf("expected empty buffer, got %q", buf.String())
	}
}

func TestWithCarriesContext(t *testing.T) {
	logger, buf := NewTestLogger()

	child := logger.With("tool", "get_service_request")
	child.Info("tool invoked")

	out := buf.String()
	if !strings.Contains(out, "get_service_request") {
		t.Errorf("expected contextual field in output, got %q", out)
	}
}

func TestWithDoesNotMutateParent(t *testing.T) {
	logger, buf := NewTestLogger()

	logger.With("tool", "count_issue_tickets")
	logger.Info("plain message")

	if strings.Contains(buf.String(), "count_issue_tickets") {
		t.Errorf("parent logger picked up child context: %q", buf.String())
	}
}

func TestLogPerformance(t *testing.T) {
	logger, buf := NewTestLogger()

	logger.LogPerformance("list service requests", time.Now().Add(-5*time.Millisecond))

	out := buf.String()
	if !strings.Contains(out, "Performance") {
		t.Errorf("expected performance record, got %q", out)
	}
	if !strings.Contains(out, "list service requests") {
		t.Errorf("expected operation name, got %q", out)
	}
}

func TestErrorLevelAlwaysEmits(t *testing.T) {
	logger, buf := NewTestLogger()
	logger.logger.SetLevel(log.ErrorLevel)

	logger.Info("filtered out")
	logger.Error("backend unreachable")

	out := buf.String()
	if strings.Contains(out, "filtered out") {
		t.Errorf("info should be filtered at error level: %q", out)
	}
	if !strings.Contains(out, "backend unreachable") {
		t.Errorf("expected error record, got %q", out)
	}
}
