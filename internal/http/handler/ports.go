package handler

import (
	"context"
	"feedback/internal/core"
	"feedback/internal/http/payload"
	"feedback/internal/web"
	tokenIssuer "feedback/pkg/jwt"
	"io"
	"net/http"

	"github.com/golang-jwt/jwt"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name RequestValidator . RequestValidator
type RequestValidator interface {
	DecodeAndValidateForm(r *http.Request, form payload.Form) error
}

//counterfeiter:generate -o fake -fake-name AccountService . AccountService
type AccountService interface {
	Register(ctx context.Context, msg core.RegisterMessage) (core.User, error)
	Authenticate(ctx context.Context, username, password string) (core.User, bool, error)
	Profile(ctx context.Context, who core.Identity, username string) (core.Profile, error)
	DeleteAccount(ctx context.Context, who core.Identity, username string) error
}

//counterfeiter:generate -o fake -fake-name SessionService . SessionService
type SessionService interface {
	Start(ctx context.Context, username string) (string, error)
	End(ctx context.Context, token string) error
}

//counterfeiter:generate -o fake -fake-name FeedbackService . FeedbackService
type FeedbackService interface {
	Add(ctx context.Context, who core.Identity, owner string, msg core.FeedbackMessage) (core.Feedback, error)
	Get(ctx context.Context, who core.Identity, id uint) (core.Feedback, error)
	Update(ctx context.Context, who core.Identity, id uint, msg core.FeedbackMessage) (core.Feedback, error)
	Delete(ctx context.Context, who core.Identity, id uint) (string, error)
}

type Renderer interface {
	Render(w io.Writer, page string, data web.Page) error
}

type TokenSigner interface {
	Generate(data tokenIssuer.TokenInfo) *jwt.Token
	Sign(token *jwt.Token) (string, error)
	Validate(token string) (jwt.MapClaims, error)
}
