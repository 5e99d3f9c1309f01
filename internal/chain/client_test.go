package chain

import (
	"context"
	"strings"
	"testing"
)

func TestNewClientWrapsDialError(t *testing.T) {
	_, err := NewClient(context.Background(), "bogus://localhost")
	if err == nil {
		t.Fatalf("expected dial error for unknown scheme")
	}
	if !strings.Contains(err.Error(), "dial rpc") {
		t.Fatalf("error not wrapped: %v", err)
	}
}
