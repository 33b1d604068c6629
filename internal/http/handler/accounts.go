package handler

import (
	"errors"
	"feedback/internal/core"
	"feedback/internal/http/handler/middleware"
	"feedback/internal/http/payload"
	"feedback/internal/web"
	"fmt"
	"net/http"
)

func (h *WebHandler) HandleRegisterForm(w http.ResponseWriter, r *http.Request) {
	if who := middleware.IdentityFrom(r.Context()); who.Authenticated() {
		http.Redirect(w, r, profilePath(who.Username), http.StatusFound)
		return
	}

	h.renderRegister(w, r, http.StatusOK, payload.RegisterForm{}, nil)
}

func (h *WebHandler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	var form payload.RegisterForm
	err := h.requestValidator.DecodeAndValidateForm(r, &form)
	msg := form.ToRegisterMessage()
	form.Password = ""
	if err != nil {
		h.invalidForm(w, r, err, Register, func(status int, fields map[string]string, flashes ...web.Flash) {
			h.renderRegister(w, r, status, form, fields, flashes...)
		})
		return
	}

	user, err := h.accounts.Register(r.Context(), msg)
	if err != nil {
		if errors.Is(err, core.ErrUsernameTaken) {
			h.renderRegister(w, r, http.StatusConflict, form, map[string]string{"username": msgUsernameTaken})
			return
		}
		h.logError(r, "failed to register user", err, Register)
		h.renderRegister(w, r, http.StatusInternalServerError, form, nil, web.Flash{Category: flashWarning, Message: msgTryAgain})
		return
	}

	h.logs.Infow("user registered",
		"username", user.Username,
		"handler", Register,
		"request_id", middleware.RequestIDFrom(r.Context()))

	if !h.startSession(w, r, user.Username, Register) {
		h.redirect(w, r, "/login", flashWarning, msgLoginAfterSetup)
		return
	}

	h.redirect(w, r, profilePath(user.Username), flashSuccess, msgWelcome)
}

func (h *WebHandler) HandleLoginForm(w http.ResponseWriter, r *http.Request) {
	if who := middleware.IdentityFrom(r.Context()); who.Authenticated() {
		http.Redirect(w, r, profilePath(who.Username), http.StatusFound)
		return
	}

	h.renderLogin(w, r, http.StatusOK, payload.LoginForm{}, nil)
}

func (h *WebHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var form payload.LoginForm
	err := h.requestValidator.DecodeAndValidateForm(r, &form)
	password := form.Password
	form.Password = ""
	if err != nil {
		h.invalidForm(w, r, err, Login, func(status int, fields map[string]string, flashes ...web.Flash) {
			h.renderLogin(w, r, status, form, fields, flashes...)
		})
		return
	}

	user, ok, err := h.accounts.Authenticate(r.Context(), form.Username, password)
	if err != nil {
		h.logError(r, "failed to authenticate user", err, Login)
		h.renderLogin(w, r, http.StatusInternalServerError, form, nil, web.Flash{Category: flashWarning, Message: msgTryAgain})
		return
	}
	if !ok {
		h.renderLogin(w, r, http.StatusUnauthorized, form, map[string]string{"username": msgBadCredentials})
		return
	}

	// a login always gets a fresh session
	if old := sessionToken(r); old != "" {
		if err := h.sessions.End(r.Context(), old); err != nil {
			h.logError(r, "failed to end previous session", err, Login)
		}
	}

	if !h.startSession(w, r, user.Username, Login) {
		h.renderLogin(w, r, http.StatusInternalServerError, form, nil, web.Flash{Category: flashWarning, Message: msgTryAgain})
		return
	}

	h.redirect(w, r, profilePath(user.Username), flashSuccess, fmt.Sprintf(msgWelcomeBack, user.Username))
}

// HandleLogout ends the session, if any. Logging out twice is not an error.
func (h *WebHandler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	h.endSession(w, r, Logout)
	h.redirect(w, r, "/", flashSuccess, msgLoggedOut)
}

func (h *WebHandler) HandleProfile(w http.ResponseWriter, r *http.Request) {
	who := middleware.IdentityFrom(r.Context())
	username := r.PathValue("username")

	profile, err := h.accounts.Profile(r.Context(), who, username)
	if err != nil {
		h.fail(w, r, err, Profile)
		return
	}

	h.render(w, r, http.StatusOK, web.PageProfile, web.Page{
		Title: profile.User.Username,
		Data:  profile,
	})
}

func (h *WebHandler) HandleDeleteAccount(w http.ResponseWriter, r *http.Request) {
	who := middleware.IdentityFrom(r.Context())
	username := r.PathValue("username")

	if err := h.accounts.DeleteAccount(r.Context(), who, username); err != nil {
		h.fail(w, r, err, DeleteAccount)
		return
	}

	h.logs.Infow("account deleted",
		"username", username,
		"handler", DeleteAccount,
		"request_id", middleware.RequestIDFrom(r.Context()))

	h.endSession(w, r, DeleteAccount)
	h.redirect(w, r, "/", flashSuccess, msgAccountDeleted)
}

func (h *WebHandler) startSession(w http.ResponseWriter, r *http.Request, username, handler string) bool {
	token, err := h.sessions.Start(r.Context(), username)
	if err != nil {
		h.logError(r, "failed to start session", err, handler)
		return false
	}

	http.SetCookie(w, h.cookies.sessionCookie(token))
	return true
}

func (h *WebHandler) endSession(w http.ResponseWriter, r *http.Request, handler string) {
	if token := sessionToken(r); token != "" {
		if err := h.sessions.End(r.Context(), token); err != nil {
			h.logError(r, "failed to end session", err, handler)
		}
	}
	http.SetCookie(w, h.cookies.expiredCookie(SessionCookieName))
}

// invalidForm re-renders a form that failed to decode or validate.
func (h *WebHandler) invalidForm(w http.ResponseWriter, r *http.Request, err error, handler string, rerender func(status int, fields map[string]string, flashes ...web.Flash)) {
	fields := payload.FieldErrors(err)
	if fields == nil {
		h.logError(r, "failed to decode form payload", err, handler)
		rerender(http.StatusBadRequest, nil, web.Flash{Category: flashDanger, Message: msgFixErrors})
		return
	}

	rerender(http.StatusUnprocessableEntity, fields, web.Flash{Category: flashDanger, Message: msgFixErrors})
}

func (h *WebHandler) renderRegister(w http.ResponseWriter, r *http.Request, status int, form payload.RegisterForm, fields map[string]string, flashes ...web.Flash) {
	h.render(w, r, status, web.PageRegister, web.Page{
		Title:   "Register",
		Form:    form,
		Errors:  fields,
		Flashes: flashes,
	})
}

func (h *WebHandler) renderLogin(w http.ResponseWriter, r *http.Request, status int, form payload.LoginForm, fields map[string]string, flashes ...web.Flash) {
	h.render(w, r, status, web.PageLogin, web.Page{
		Title:   "Log in",
		Form:    form,
		Errors:  fields,
		Flashes: flashes,
	})
}
