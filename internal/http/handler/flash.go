package handler

import (
	"encoding/json"
	"feedback/internal/web"
	tokenIssuer "feedback/pkg/jwt"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"
)

const (
	flashTTL      = 5 * time.Minute
	flashClaim    = "flashes"
	flashSubject  = "flash"
	flashType     = "flash"
	maxFlashQueue = 5
)

// Flashes carries one-shot notices across a redirect in a signed cookie.
type Flashes struct {
	logs    *zap.SugaredLogger
	signer  TokenSigner
	cookies CookieSettings
}

func NewFlashes(logger *zap.SugaredLogger, signer TokenSigner, cookies CookieSettings) *Flashes {
	return &Flashes{
		logs:    logger,
		signer:  signer,
		cookies: cookies,
	}
}

// Push queues a notice for the next rendered page. Notices already pending on
// the request are kept.
func (f *Flashes) Push(w http.ResponseWriter, r *http.Request, category, message string) {
	pending := append(f.read(r), web.Flash{Category: category, Message: message})
	if len(pending) > maxFlashQueue {
		pending = pending[len(pending)-maxFlashQueue:]
	}

	value, err := f.encode(pending)
	if err != nil {
		f.logs.Errorw("failed to encode flash cookie", "error", err)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     flashCookieName,
		Value:    value,
		Path:     "/",
		MaxAge:   int(flashTTL.Seconds()),
		HttpOnly: true,
		Secure:   f.cookies.Secure,
		SameSite: http.SameSiteLaxMode,
	})
}

// Pop returns the pending notices and clears them.
func (f *Flashes) Pop(w http.ResponseWriter, r *http.Request) []web.Flash {
	if _, err := r.Cookie(flashCookieName); err != nil {
		return nil
	}

	http.SetCookie(w, f.cookies.expiredCookie(flashCookieName))
	return f.read(r)
}

func (f *Flashes) read(r *http.Request) []web.Flash {
	cookie, err := r.Cookie(flashCookieName)
	if err != nil || cookie.Value == "" {
		return nil
	}

	claims, err := f.signer.Validate(cookie.Value)
	if err != nil {
		f.logs.Debugw("discarding flash cookie", "error", err)
		return nil
	}

	if claims[tokenIssuer.TypeClaim] != flashType {
		return nil
	}

	raw, ok := claims[flashClaim].(string)
	if !ok {
		return nil
	}

	var flashes []web.Flash
	if err := json.Unmarshal([]byte(raw), &flashes); err != nil {
		f.logs.Debugw("discarding malformed flash cookie", "error", err)
		return nil
	}

	return flashes
}

func (f *Flashes) encode(flashes []web.Flash) (string, error) {
	raw, err := json.Marshal(flashes)
	if err != nil {
		return "", fmt.Errorf("marshal flashes: %w", err)
	}

	token := f.signer.Generate(tokenIssuer.TokenInfo{
		Subject:    flashSubject,
		Expiration: flashTTL,
		Data: map[string]string{
			tokenIssuer.TypeClaim: flashType,
			flashClaim:            string(raw),
		},
	})

	signed, err := f.signer.Sign(token)
	if err != nil {
		return "", fmt.Errorf("sign flashes: %w", err)
	}

	return signed, nil
}
