package providers

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestStatusErrorMessage(t *testing.T) {
	err := &StatusError{Provider: "static", StatusCode: 404, Message: "not found"}
	if got := err.Error(); got != "static: not found (status=404)" {
		t.Fatalf("unexpected message %q", got)
	}
	bare := &StatusError{Provider: "static"}
	if !strings.Contains(bare.Error(), "unexpected upstream status") {
		t.Fatalf("expected default message, got %q", bare.Error())
	}
}

func TestAsStatusErrorUnwraps(t *testing.T) {
	wrapped := fmt.Errorf("fetch: %w", &StatusError{Provider: "static", StatusCode: 500})
	sErr, ok := AsStatusError(wrapped)
	if !ok || sErr.StatusCode != 500 {
		t.Fatalf("expected status error, got %v ok=%v", sErr, ok)
	}
	if _, ok := AsStatusError(errors.New("plain")); ok {
		t.Fatalf("expected plain error not to match")
	}
}
