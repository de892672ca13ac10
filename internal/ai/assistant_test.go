package ai

import (
	"context"
	"errors"
	"strings"
	"testing"
)

type stubProvider struct {
	reply string
	err   error
	last  string
}

func (p *stubProvider) Generate(_ context.Context, prompt string) (string, error) {
	p.last = prompt
	return p.reply, p.err
}

func TestAssistant_UsesProviderReply(t *testing.T) {
	prov := &stubProvider{reply: "try factoring first"}
	a := NewAssistant(prov)

	got := a.Respond(context.Background(), "Algebra", "how do I solve x^2-4=0?")
	if got != "try factoring first" {
		t.Fatalf("got %q", got)
	}
	if !strings.Contains(prov.last, "Academic subject: Algebra") {
		t.Fatalf("prompt missing subject framing: %q", prov.last)
	}
	if !strings.Contains(prov.last, "how do I solve x^2-4=0?") {
		t.Fatalf("prompt missing question: %q", prov.last)
	}
}

func TestAssistant_FallsBackOnProviderError(t *testing.T) {
	a := NewAssistant(&stubProvider{err: errors.New("service down")})

	got := a.Respond(context.Background(), "History", "when was the Alamo?")
	if got == "" {
		t.Fatalf("fallback must always produce a response")
	}
	// deterministic per prompt
	again := a.Respond(context.Background(), "History", "when was the Alamo?")
	if got != again {
		t.Fatalf("fallback should be deterministic: %q vs %q", got, again)
	}
}

func TestAssistant_NilProvider(t *testing.T) {
	a := NewAssistant(nil)
	if got := a.Respond(context.Background(), "", "anything"); got == "" {
		t.Fatalf("expected fallback response")
	}
}

func TestFallbackResponse_InCannedSet(t *testing.T) {
	got := FallbackResponse("some prompt")
	found := false
	for _, r := range fallbackResponses {
		if r == got {
			found = true
			break
		}
	}
	if !found {
		t.Fatalf("%q is not one of the canned responses", got)
	}
}
