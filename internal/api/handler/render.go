package handler

import (
	"bytes"
	"html/template"
	"io"
	"io/fs"

	"github.com/labstack/echo/v4"
	"github.com/yuin/goldmark"

	"github.com/trackeo/trackeo-web/internal/core/service"
	"github.com/trackeo/trackeo-web/internal/i18n"
)

// View is the data every template receives: the resolved locale with its
// lookup method, the drained toasts, the active search state, and the
// page-specific model in Data.
type View struct {
	Page     string
	Locale   string
	Query    string
	Filter   string
	Toasts   []Toast
	SignedIn bool
	Tier     string
	Data     any

	fmt *service.Formatter
}

// T resolves a translation key for the view's locale.
func (v *View) T(key string) string { return i18n.T(v.Locale, key) }

// Locales lists the supported locale tags for the language switcher.
func (v *View) Locales() []string { return i18n.Locales }

func (v *View) Date(s string) string             { return v.fmt.Date(s) }
func (v *View) DateTime(s string) string         { return v.fmt.DateTime(s) }
func (v *View) TimeRange(start, end string) string { return v.fmt.TimeRange(start, end) }
func (v *View) DateRange(start, end string) string { return v.fmt.DateRange(start, end) }

// Renderer satisfies echo.Renderer over the embedded template set.
type Renderer struct {
	templates *template.Template
}

// NewRenderer parses every template under web/templates.
func NewRenderer(webFS fs.FS) (*Renderer, error) {
	tmpl, err := template.New("").Funcs(template.FuncMap{
		"markdown": markdownHTML,
	}).ParseFS(webFS, "templates/*.gohtml")
	if err != nil {
		return nil, err
	}
	return &Renderer{templates: tmpl}, nil
}

func (r *Renderer) Render(w io.Writer, name string, data any, _ echo.Context) error {
	return r.templates.ExecuteTemplate(w, name, data)
}

// markdownHTML renders trusted editorial copy (news excerpts) as HTML.
// Only bundled or backend-authored content flows through here, never
// visitor input.
func markdownHTML(src string) template.HTML {
	var buf bytes.Buffer
	if err := goldmark.Convert([]byte(src), &buf); err != nil {
		return template.HTML(template.HTMLEscapeString(src))
	}
	return template.HTML(buf.String())
}
