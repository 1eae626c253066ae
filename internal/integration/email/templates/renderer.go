// Package templates renders the transactional email bodies.
package templates

import (
	"bytes"
	"embed"
	"fmt"
	htmltemplate "html/template"
	texttemplate "text/template"
)

//go:embed *.html *.txt
var templateFS embed.FS

// Renderer produces HTML and plain-text bodies from the embedded
// template set.
type Renderer struct {
	html *htmltemplate.Template
	text *texttemplate.Template
}

// NewRenderer parses the embedded templates.
func NewRenderer() (*Renderer, error) {
	html, err := htmltemplate.ParseFS(templateFS, "*.html")
	if err != nil {
		return nil, fmt.Errorf("parsing HTML templates: %w", err)
	}
	text, err := texttemplate.ParseFS(templateFS, "*.txt")
	if err != nil {
		return nil, fmt.Errorf("parsing text templates: %w", err)
	}
	return &Renderer{html: html, text: text}, nil
}

// Render returns both versions of the named template. A missing text
// variant is not an error; HTML-only emails are still deliverable.
func (r *Renderer) Render(name string, data interface{}) (html string, text string, err error) {
	var htmlBuf bytes.Buffer
	if err := r.html.ExecuteTemplate(&htmlBuf, name+".html", data); err != nil {
		return "", "", fmt.Errorf("rendering HTML template %s: %w", name, err)
	}

	var textBuf bytes.Buffer
	if err := r.text.ExecuteTemplate(&textBuf, name+".txt", data); err != nil {
		return htmlBuf.String(), "", nil
	}
	return htmlBuf.String(), textBuf.String(), nil
}

// WelcomeData fills the welcome email template.
type WelcomeData struct {
	UserName string
}

// PasswordResetData fills the password reset email template.
type PasswordResetData struct {
	UserName  string
	ResetURL  string
	ExpiresAt string
}
