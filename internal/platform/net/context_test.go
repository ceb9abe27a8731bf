package net_test

import (
	"context"
	"testing"

	pnet "ingestlab/internal/platform/net"
)

func TestWithRequest_And_Getters(t *testing.T) {
	base := context.Background()

	cases := []struct {
		name      string
		reqID     string
		sessionID string
	}{
		{"sets both ids", "req-123", "sess-abc"},
		{"sets only request id", "r-only", ""},
		{"sets only session id", "", "s-only"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctx := pnet.WithRequest(base, tc.reqID, tc.sessionID)
			if got := pnet.RequestID(ctx); got != tc.reqID {
				t.Fatalf("RequestID got %q want %q", got, tc.reqID)
			}
			if got := pnet.SessionID(ctx); got != tc.sessionID {
				t.Fatalf("SessionID got %q want %q", got, tc.sessionID)
			}
		})
	}

	t.Run("no ids returns same ctx and empty getters", func(t *testing.T) {
		ctx := pnet.WithRequest(base, "", "")

		// should be the same reference since nothing was set
		if ctx != base {
			t.Fatalf("expected ctx to be unchanged when both ids empty")
		}
		if got := pnet.SessionID(ctx); got != "" {
			t.Fatalf("SessionID got %q want empty", got)
		}
	})
}

func TestWithClient(t *testing.T) {
	base := context.Background()
	if ctx := pnet.WithClient(base, ""); ctx != base {
		t.Fatalf("expected ctx to be unchanged for empty client")
	}
	ctx := pnet.WithClient(base, "uploader")
	if got := pnet.ClientID(ctx); got != "uploader" {
		t.Fatalf("ClientID got %q want %q", got, "uploader")
	}
	if got := pnet.ClientID(base); got != "" {
		t.Fatalf("ClientID got %q want empty", got)
	}
}
