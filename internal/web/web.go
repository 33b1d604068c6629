package web

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"io"
)

//go:embed templates/*.html
var templateFS embed.FS

var ErrUnknownPage = errors.New("unknown page")

const (
	PageRegister     = "register"
	PageLogin        = "login"
	PageProfile      = "profile"
	PageFeedbackForm = "feedback_form"
	PageNotFound     = "not_found"
	PageError        = "error"
)

var pages = []string{
	PageRegister,
	PageLogin,
	PageProfile,
	PageFeedbackForm,
	PageNotFound,
	PageError,
}

type Flash struct {
	Category string `json:"category"`
	Message  string `json:"message"`
}

// Page is the data every template is executed with.
type Page struct {
	Title       string
	CurrentUser string
	Flashes     []Flash
	// Form holds the submitted values to re-display; never the password.
	Form   any
	Errors map[string]string
	Action string
	Data   any
}

// Views holds one parsed template set per page, each layered over base.html.
type Views struct {
	pages map[string]*template.Template
}

func NewViews() (*Views, error) {
	views := &Views{
		pages: make(map[string]*template.Template, len(pages)),
	}

	for _, page := range pages {
		tmpl, err := template.New(page).ParseFS(templateFS, "templates/base.html", "templates/"+page+".html")
		if err != nil {
			return nil, fmt.Errorf("parse template %s: %w", page, err)
		}
		views.pages[page] = tmpl
	}

	return views, nil
}

// Render executes page into w. Nothing is written to w if execution fails.
func (v *Views) Render(w io.Writer, page string, data Page) error {
	tmpl, ok := v.pages[page]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownPage, page)
	}

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "base", data); err != nil {
		return fmt.Errorf("execute template %s: %w", page, err)
	}

	if _, err := buf.WriteTo(w); err != nil {
		return fmt.Errorf("write page %s: %w", page, err)
	}

	return nil
}
