package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/jobwise/jobwise/internal/apperror"
	"github.com/jobwise/jobwise/internal/assistant"
	"github.com/jobwise/jobwise/internal/repository"
)

// Completer is the outbound chat-completion port. assistant.ProxyClient is
// the real implementation; tests substitute a stub so no network is touched.
type Completer interface {
	Complete(ctx context.Context, apiKey, prompt string) (string, error)
}

// AssistantService answers user messages two ways:
//
//   - Reply: the scripted keyword bot. Always available, fully offline,
//     personalized from the user's stored skill profile.
//   - ProxyComplete: passthrough to a third-party chat-completion API using
//     the user's own credential. Optional — failures surface as a
//     user-visible "assistant unavailable" state, never a crash.
type AssistantService struct {
	bot    *assistant.Bot
	proxy  Completer
	users  repository.UserRepository
	logger *slog.Logger
}

// NewAssistantService creates an AssistantService.
func NewAssistantService(
	bot *assistant.Bot,
	proxy Completer,
	users repository.UserRepository,
	logger *slog.Logger,
) *AssistantService {
	return &AssistantService{
		bot:    bot,
		proxy:  proxy,
		users:  users,
		logger: logger,
	}
}

// Reply runs the scripted bot for the given user's message.
//
// The user's profile is loaded so skills-aware rules can personalize; a
// lookup miss degrades to the generic (nil-user) responses rather than
// failing the whole request — the bot is a convenience, not a gate.
func (s *AssistantService) Reply(ctx context.Context, userID, message string) (string, error) {
	if strings.TrimSpace(message) == "" {
		return "", apperror.ValidationFailed("message", "message is required")
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if !errors.Is(err, apperror.ErrNotFound) {
			s.logger.Warn("assistant: could not load profile, replying unpersonalized",
				slog.String("userID", userID),
				slog.String("error", err.Error()),
			)
		}
		user = nil
	}

	return s.bot.Reply(user, message), nil
}

// ProxyComplete forwards the message to the configured third-party
// provider using the caller-supplied API key.
func (s *AssistantService) ProxyComplete(ctx context.Context, apiKey, message string) (string, error) {
	if strings.TrimSpace(message) == "" {
		return "", apperror.ValidationFailed("message", "message is required")
	}
	if strings.TrimSpace(apiKey) == "" {
		return "", apperror.ValidationFailed("apiKey", "API key is required")
	}

	reply, err := s.proxy.Complete(ctx, apiKey, message)
	if err != nil {
		// Upstream details go to the log; the client gets a stable message.
		s.logger.Error("assistant: completion failed", slog.String("error", err.Error()))
		return "", apperror.Unavailable("assistant provider is unavailable")
	}

	return reply, nil
}

// compile-time check that the real proxy satisfies the port
var _ Completer = (*assistant.ProxyClient)(nil)
