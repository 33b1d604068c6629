package core

import (
	"context"
	"errors"
	"feedback/internal/repository"
	tokenIssuer "feedback/pkg/jwt"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var TimeNow = time.Now

// sessionTokenType marks tokens minted by Start apart from other tokens
// signed with the same secret.
const sessionTokenType = "session"

// Sessions binds opaque session tokens to usernames. The token handed to the
// client is a signed reference to a server-side session row.
type Sessions struct {
	logs   *zap.SugaredLogger
	repo   SessionRepository
	issuer TokenIssuer
	ttl    time.Duration
}

func NewSessions(logger *zap.SugaredLogger, repo SessionRepository, issuer TokenIssuer, ttl time.Duration) *Sessions {
	return &Sessions{
		logs:   logger,
		repo:   repo,
		issuer: issuer,
		ttl:    ttl,
	}
}

// Start opens a session for username and returns its token.
func (s *Sessions) Start(ctx context.Context, username string) (string, error) {
	now := TimeNow()
	session := repository.Session{
		ID:        uuid.NewString(),
		Username:  username,
		ExpiresAt: now.Add(s.ttl),
		CreatedAt: now,
	}

	token := s.issuer.Generate(tokenIssuer.TokenInfo{
		UserName:   username,
		Subject:    session.ID,
		Expiration: s.ttl,
		Data:       map[string]string{tokenIssuer.TypeClaim: sessionTokenType},
	})
	signed, err := s.issuer.Sign(token)
	if err != nil {
		return "", fmt.Errorf("signing token: %w", err)
	}

	if err := s.repo.CreateSession(ctx, session); err != nil {
		return "", fmt.Errorf("%w: create session: %w", ErrStorage, err)
	}

	s.logs.Infow("session started", "username", username, "session_id", session.ID)

	return signed, nil
}

// Current resolves token to an identity without modifying anything. Missing,
// invalid, expired or ended sessions resolve to the anonymous identity.
func (s *Sessions) Current(ctx context.Context, token string) (Identity, error) {
	sessionID, ok := s.sessionID(token)
	if !ok {
		return Identity{}, nil
	}

	session, err := s.repo.GetSession(ctx, sessionID)
	if err != nil {
		if errors.Is(err, repository.ErrSessionNotFound) {
			return Identity{}, nil
		}
		return Identity{}, fmt.Errorf("%w: get session: %w", ErrStorage, err)
	}

	if !session.ExpiresAt.After(TimeNow()) {
		return Identity{}, nil
	}

	return Identity{Username: session.Username}, nil
}

// End terminates the session behind token. Ending a session that does not
// exist, or an empty or invalid token, is a no-op.
func (s *Sessions) End(ctx context.Context, token string) error {
	sessionID, ok := s.sessionID(token)
	if !ok {
		return nil
	}

	if err := s.repo.DeleteSession(ctx, sessionID); err != nil {
		return fmt.Errorf("%w: delete session: %w", ErrStorage, err)
	}

	s.logs.Infow("session ended", "session_id", sessionID)

	return nil
}

// Sweep deletes every expired session row.
func (s *Sessions) Sweep(ctx context.Context) (int64, error) {
	deleted, err := s.repo.DeleteExpiredSessions(ctx, TimeNow())
	if err != nil {
		return 0, fmt.Errorf("%w: sweep sessions: %w", ErrStorage, err)
	}

	return deleted, nil
}

func (s *Sessions) sessionID(token string) (string, bool) {
	if token == "" {
		return "", false
	}

	claims, err := s.issuer.Validate(token)
	if err != nil {
		s.logs.Debugw("rejected session token", "error", err)
		return "", false
	}

	if claims[tokenIssuer.TypeClaim] != sessionTokenType {
		return "", false
	}

	sessionID, ok := claims["sub"].(string)
	if !ok || sessionID == "" {
		return "", false
	}

	return sessionID, true
}
