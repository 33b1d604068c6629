package handler

import (
	"errors"
	"feedback/internal/core"
	"feedback/internal/http/handler/middleware"
	"feedback/internal/http/payload"
	"feedback/internal/web"
	"fmt"
	"net/http"
	"net/url"
)

func (h *WebHandler) HandleAddFeedbackForm(w http.ResponseWriter, r *http.Request) {
	who := middleware.IdentityFrom(r.Context())
	owner := r.PathValue("username")

	if err := core.Authorize(who, owner); err != nil {
		h.fail(w, r, err, AddFeedbackForm)
		return
	}

	h.renderFeedbackForm(w, r, http.StatusOK, "Add feedback", addFeedbackPath(owner), payload.FeedbackForm{}, nil)
}

func (h *WebHandler) HandleAddFeedback(w http.ResponseWriter, r *http.Request) {
	who := middleware.IdentityFrom(r.Context())
	owner := r.PathValue("username")

	// form errors are only shown to the owner
	if err := core.Authorize(who, owner); err != nil {
		h.fail(w, r, err, AddFeedback)
		return
	}

	var form payload.FeedbackForm
	if err := h.requestValidator.DecodeAndValidateForm(r, &form); err != nil {
		h.invalidForm(w, r, err, AddFeedback, func(status int, fields map[string]string, flashes ...web.Flash) {
			h.renderFeedbackForm(w, r, status, "Add feedback", addFeedbackPath(owner), form, fields, flashes...)
		})
		return
	}

	fb, err := h.feedback.Add(r.Context(), who, owner, form.ToFeedbackMessage())
	if err != nil {
		if errors.Is(err, core.ErrStorage) {
			h.logError(r, "failed to add feedback", err, AddFeedback)
			h.renderFeedbackForm(w, r, http.StatusInternalServerError, "Add feedback", addFeedbackPath(owner), form, nil,
				web.Flash{Category: flashWarning, Message: msgTryAgain})
			return
		}
		h.fail(w, r, err, AddFeedback)
		return
	}

	h.logs.Infow("feedback added",
		"id", fb.ID,
		"owner", fb.OwnerUsername,
		"handler", AddFeedback,
		"request_id", middleware.RequestIDFrom(r.Context()))

	h.redirect(w, r, profilePath(fb.OwnerUsername), flashSuccess, msgFeedbackAdded)
}

func (h *WebHandler) HandleUpdateFeedbackForm(w http.ResponseWriter, r *http.Request) {
	id, ok := feedbackID(r)
	if !ok {
		h.HandleNotFound(w, r)
		return
	}

	fb, err := h.feedback.Get(r.Context(), middleware.IdentityFrom(r.Context()), id)
	if err != nil {
		h.fail(w, r, err, UpdateFeedbackForm)
		return
	}

	form := payload.FeedbackForm{Title: fb.Title, Content: fb.Content}
	h.renderFeedbackForm(w, r, http.StatusOK, "Edit feedback", updateFeedbackPath(id), form, nil)
}

func (h *WebHandler) HandleUpdateFeedback(w http.ResponseWriter, r *http.Request) {
	id, ok := feedbackID(r)
	if !ok {
		h.HandleNotFound(w, r)
		return
	}
	who := middleware.IdentityFrom(r.Context())

	// ownership is settled before the form is looked at
	if _, err := h.feedback.Get(r.Context(), who, id); err != nil {
		h.fail(w, r, err, UpdateFeedback)
		return
	}

	var form payload.FeedbackForm
	if err := h.requestValidator.DecodeAndValidateForm(r, &form); err != nil {
		h.invalidForm(w, r, err, UpdateFeedback, func(status int, fields map[string]string, flashes ...web.Flash) {
			h.renderFeedbackForm(w, r, status, "Edit feedback", updateFeedbackPath(id), form, fields, flashes...)
		})
		return
	}

	fb, err := h.feedback.Update(r.Context(), who, id, form.ToFeedbackMessage())
	if err != nil {
		if errors.Is(err, core.ErrStorage) {
			h.logError(r, "failed to update feedback", err, UpdateFeedback)
			h.renderFeedbackForm(w, r, http.StatusInternalServerError, "Edit feedback", updateFeedbackPath(id), form, nil,
				web.Flash{Category: flashWarning, Message: msgTryAgain})
			return
		}
		h.fail(w, r, err, UpdateFeedback)
		return
	}

	h.redirect(w, r, profilePath(fb.OwnerUsername), flashSuccess, msgFeedbackUpdated)
}

func (h *WebHandler) HandleDeleteFeedback(w http.ResponseWriter, r *http.Request) {
	id, ok := feedbackID(r)
	if !ok {
		h.HandleNotFound(w, r)
		return
	}

	owner, err := h.feedback.Delete(r.Context(), middleware.IdentityFrom(r.Context()), id)
	if err != nil {
		h.fail(w, r, err, DeleteFeedback)
		return
	}

	h.logs.Infow("feedback deleted",
		"id", id,
		"owner", owner,
		"handler", DeleteFeedback,
		"request_id", middleware.RequestIDFrom(r.Context()))

	h.redirect(w, r, profilePath(owner), flashSuccess, msgFeedbackDeleted)
}

func (h *WebHandler) renderFeedbackForm(w http.ResponseWriter, r *http.Request, status int, title, action string, form payload.FeedbackForm, fields map[string]string, flashes ...web.Flash) {
	h.render(w, r, status, web.PageFeedbackForm, web.Page{
		Title:   title,
		Action:  action,
		Form:    form,
		Errors:  fields,
		Flashes: flashes,
	})
}

func addFeedbackPath(owner string) string {
	return "/users/" + url.PathEscape(owner) + "/feedback/add"
}

func updateFeedbackPath(id uint) string {
	return fmt.Sprintf("/feedback/%d/update", id)
}
