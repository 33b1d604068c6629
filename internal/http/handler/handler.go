package handler

import (
	"bytes"
	"errors"
	"feedback/internal/core"
	"feedback/internal/http/handler/middleware"
	"feedback/internal/web"
	"net/http"
	"net/url"
	"strconv"

	"go.uber.org/zap"
)

var (
	Home               = "GET /{$}"
	RegisterForm       = "GET /register"
	Register           = "POST /register"
	LoginForm          = "GET /login"
	Login              = "POST /login"
	Logout             = "GET /logout"
	Profile            = "GET /users/{username}"
	DeleteAccount      = "POST /users/{username}/delete"
	AddFeedbackForm    = "GET /users/{username}/feedback/add"
	AddFeedback        = "POST /users/{username}/feedback/add"
	UpdateFeedbackForm = "GET /feedback/{id}/update"
	UpdateFeedback     = "POST /feedback/{id}/update"
	DeleteFeedback     = "POST /feedback/{id}/delete"
	NotFound           = "/"
)

type WebHandler struct {
	logs             *zap.SugaredLogger
	requestValidator RequestValidator
	accounts         AccountService
	sessions         SessionService
	feedback         FeedbackService
	views            Renderer
	flashes          *Flashes
	cookies          CookieSettings
}

func NewWebHandler(
	logger *zap.SugaredLogger,
	requestValidator RequestValidator,
	accounts AccountService,
	sessions SessionService,
	feedback FeedbackService,
	views Renderer,
	flashes *Flashes,
	cookies CookieSettings,
) *WebHandler {
	return &WebHandler{
		logs:             logger,
		requestValidator: requestValidator,
		accounts:         accounts,
		sessions:         sessions,
		feedback:         feedback,
		views:            views,
		flashes:          flashes,
		cookies:          cookies,
	}
}

// Routes registers every page on mux.
func (h *WebHandler) Routes(mux *http.ServeMux) {
	mux.HandleFunc(Home, h.HandleHome)
	mux.HandleFunc(RegisterForm, h.HandleRegisterForm)
	mux.HandleFunc(Register, h.HandleRegister)
	mux.HandleFunc(LoginForm, h.HandleLoginForm)
	mux.HandleFunc(Login, h.HandleLogin)
	mux.HandleFunc(Logout, h.HandleLogout)
	mux.HandleFunc(Profile, h.HandleProfile)
	mux.HandleFunc(DeleteAccount, h.HandleDeleteAccount)
	mux.HandleFunc(AddFeedbackForm, h.HandleAddFeedbackForm)
	mux.HandleFunc(AddFeedback, h.HandleAddFeedback)
	mux.HandleFunc(UpdateFeedbackForm, h.HandleUpdateFeedbackForm)
	mux.HandleFunc(UpdateFeedback, h.HandleUpdateFeedback)
	mux.HandleFunc(DeleteFeedback, h.HandleDeleteFeedback)
	mux.HandleFunc(NotFound, h.HandleNotFound)
}

func (h *WebHandler) HandleHome(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, "/register", http.StatusFound)
}

func (h *WebHandler) HandleNotFound(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusNotFound, web.PageNotFound, web.Page{Title: "Not found"})
}

// HandleInternalError renders the generic error page. It backs the recovery middleware.
func (h *WebHandler) HandleInternalError(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusInternalServerError, web.PageError, web.Page{Title: "Error"})
}

// render writes page with status. Pending flashes are consumed and shown
// ahead of any notices already set on data.
func (h *WebHandler) render(w http.ResponseWriter, r *http.Request, status int, page string, data web.Page) {
	data.CurrentUser = middleware.IdentityFrom(r.Context()).Username
	data.Flashes = append(h.flashes.Pop(w, r), data.Flashes...)

	var buf bytes.Buffer
	if err := h.views.Render(&buf, page, data); err != nil {
		http.Error(w, oopsErr, http.StatusInternalServerError)
		h.logs.Errorw("failed to render page",
			"error", err,
			"page", page,
			"request_id", middleware.RequestIDFrom(r.Context()))
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		h.logs.Errorw("failed to write response",
			"error", err,
			"page", page,
			"request_id", middleware.RequestIDFrom(r.Context()))
	}
}

func (h *WebHandler) redirect(w http.ResponseWriter, r *http.Request, to, category, message string) {
	if message != "" {
		h.flashes.Push(w, r, category, message)
	}
	http.Redirect(w, r, to, http.StatusFound)
}

// fail maps a core error onto a redirect or an error page.
func (h *WebHandler) fail(w http.ResponseWriter, r *http.Request, err error, handler string) {
	switch {
	case errors.Is(err, core.ErrUnauthenticated):
		h.redirect(w, r, "/", flashDanger, msgLoginFirst)
	case errors.Is(err, core.ErrUnauthorized):
		h.logs.Infow("request not authorized",
			"username", middleware.IdentityFrom(r.Context()).Username,
			"path", r.URL.Path,
			"handler", handler,
			"request_id", middleware.RequestIDFrom(r.Context()))
		h.redirect(w, r, "/", flashDanger, msgNotAllowed)
	case errors.Is(err, core.ErrNotFound):
		h.HandleNotFound(w, r)
	default:
		h.logs.Errorw("request failed",
			"error", err,
			"handler", handler,
			"request_id", middleware.RequestIDFrom(r.Context()))
		h.HandleInternalError(w, r)
	}
}

func (h *WebHandler) logError(r *http.Request, msg string, err error, handler string) {
	h.logs.Errorw(msg,
		"error", err,
		"handler", handler,
		"request_id", middleware.RequestIDFrom(r.Context()))
}

func profilePath(username string) string {
	return "/users/" + url.PathEscape(username)
}

// feedbackID parses the {id} path segment. Ids start at 1 and must fit a
// postgres bigint.
func feedbackID(r *http.Request) (uint, bool) {
	id, err := strconv.ParseUint(r.PathValue("id"), 10, 63)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}
