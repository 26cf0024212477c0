package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"testing"

	"github.com/jobwise/jobwise/internal/apperror"
	"github.com/jobwise/jobwise/internal/assistant"
	"github.com/jobwise/jobwise/internal/model"
)

// stubCompleter fakes the chat-completion provider.
type stubCompleter struct {
	reply string
	err   error

	gotKey    string
	gotPrompt string
}

func (s *stubCompleter) Complete(_ context.Context, apiKey, prompt string) (string, error) {
	s.gotKey = apiKey
	s.gotPrompt = prompt
	return s.reply, s.err
}

func newTestAssistantService(t *testing.T, proxy Completer) (*AssistantService, *mockUserRepo) {
	t.Helper()
	repo := newMockUserRepo()
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
	svc := NewAssistantService(assistant.NewBot(), proxy, repo, logger)
	return svc, repo
}

func TestAssistantReply_PersonalizesFromStoredProfile(t *testing.T) {
	svc, repo := newTestAssistantService(t, &stubCompleter{})

	user := &model.User{Name: "Ada", Email: "ada@x.com", Skills: []string{"Python", "Machine Learning"}}
	if err := repo.Create(context.Background(), user); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	got, err := svc.Reply(context.Background(), user.ID, "What jobs would you recommend for my career?")
	if err != nil {
		t.Fatalf("Reply() error = %v", err)
	}
	if !strings.Contains(got, "Data Scientist") {
		t.Errorf("expected skills-aware recommendation, got %q", got)
	}
}

func TestAssistantReply_UnknownUserDegradesGracefully(t *testing.T) {
	svc, _ := newTestAssistantService(t, &stubCompleter{})

	got, err := svc.Reply(context.Background(), "no-such-user", "recommend a job for me")
	if err != nil {
		t.Fatalf("Reply() error = %v", err)
	}
	if !strings.Contains(got, "update your skills profile") {
		t.Errorf("expected the unpersonalized prompt, got %q", got)
	}
}

func TestAssistantReply_EmptyMessage(t *testing.T) {
	svc, _ := newTestAssistantService(t, &stubCompleter{})

	if _, err := svc.Reply(context.Background(), "u1", "  "); !errors.Is(err, apperror.ErrValidation) {
		t.Errorf("Reply() error = %v, want ErrValidation", err)
	}
}

func TestProxyComplete_PassesThroughKeyAndPrompt(t *testing.T) {
	stub := &stubCompleter{reply: "completion text"}
	svc, _ := newTestAssistantService(t, stub)

	got, err := svc.ProxyComplete(context.Background(), "sk-user-key", "write my cover letter")
	if err != nil {
		t.Fatalf("ProxyComplete() error = %v", err)
	}
	if got != "completion text" {
		t.Errorf("ProxyComplete() = %q, want the provider reply", got)
	}
	if stub.gotKey != "sk-user-key" {
		t.Errorf("provider called with key %q, want the user's key", stub.gotKey)
	}
	if stub.gotPrompt != "write my cover letter" {
		t.Errorf("provider called with prompt %q", stub.gotPrompt)
	}
}

func TestProxyComplete_MissingKeyOrMessage(t *testing.T) {
	svc, _ := newTestAssistantService(t, &stubCompleter{})

	if _, err := svc.ProxyComplete(context.Background(), "", "hello"); !errors.Is(err, apperror.ErrValidation) {
		t.Errorf("missing key error = %v, want ErrValidation", err)
	}
	if _, err := svc.ProxyComplete(context.Background(), "sk-key", ""); !errors.Is(err, apperror.ErrValidation) {
		t.Errorf("missing message error = %v, want ErrValidation", err)
	}
}

func TestProxyComplete_ProviderFailureIsUnavailable(t *testing.T) {
	stub := &stubCompleter{err: fmt.Errorf("upstream 500")}
	svc, _ := newTestAssistantService(t, stub)

	_, err := svc.ProxyComplete(context.Background(), "sk-key", "hello")
	if !errors.Is(err, apperror.ErrUnavailable) {
		t.Errorf("ProxyComplete() error = %v, want ErrUnavailable", err)
	}
	// The raw upstream error must not reach the caller.
	if err != nil && strings.Contains(err.Error(), "upstream 500") {
		t.Error("upstream error details leaked to the caller")
	}
}
