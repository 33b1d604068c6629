package core

import (
	"context"
	"feedback/internal/repository"
	tokenIssuer "feedback/pkg/jwt"
	"time"

	"github.com/golang-jwt/jwt"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name UserRepository . UserRepository
type UserRepository interface {
	CreateUser(ctx context.Context, user repository.User) error
	GetUser(ctx context.Context, username string) (repository.User, error)
	DeleteUser(ctx context.Context, username string) error
}

//counterfeiter:generate -o fake -fake-name FeedbackRepository . FeedbackRepository
type FeedbackRepository interface {
	CreateFeedback(ctx context.Context, feedback repository.Feedback) (repository.Feedback, error)
	GetFeedback(ctx context.Context, id uint) (repository.Feedback, error)
	ListFeedback(ctx context.Context, owner string) ([]repository.Feedback, error)
	UpdateFeedback(ctx context.Context, id uint, title, content string) error
	DeleteFeedback(ctx context.Context, id uint) error
}

//counterfeiter:generate -o fake -fake-name SessionRepository . SessionRepository
type SessionRepository interface {
	CreateSession(ctx context.Context, session repository.Session) error
	GetSession(ctx context.Context, id string) (repository.Session, error)
	DeleteSession(ctx context.Context, id string) error
	DeleteExpiredSessions(ctx context.Context, now time.Time) (int64, error)
}

//counterfeiter:generate -o fake -fake-name TokenIssuer . TokenIssuer
type TokenIssuer interface {
	Generate(data tokenIssuer.TokenInfo) *jwt.Token
	Sign(token *jwt.Token) (string, error)
	Validate(token string) (jwt.MapClaims, error)
}
