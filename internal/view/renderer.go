package view

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"strconv"

	"github.com/labstack/echo/v4"
)

//go:embed templates/*.html
var templateFS embed.FS

const (
	TemplateNav   = "nav"
	TemplateToast = "toast"
	TemplatePage  = "page"

	TemplateLogoutConfirm = "logout-confirm"
)

// Renderer はナビ・トースト・ページ枠を html/template で描く。
// echo.Renderer も満たす。
type Renderer struct {
	tpl *template.Template
}

var funcs = template.FuncMap{
	"price": func(v float64) string {
		return fmt.Sprintf("$%.2f", v)
	},
	"seconds": func(v float64) string {
		return strconv.FormatFloat(v, 'f', -1, 64)
	},
}

func NewRenderer() (*Renderer, error) {
	tpl, err := template.New("").Funcs(funcs).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	return &Renderer{tpl: tpl}, nil
}

func (r *Renderer) Render(w io.Writer, name string, data interface{}, c echo.Context) error {
	return r.tpl.ExecuteTemplate(w, name, data)
}

func (r *Renderer) RenderNav(w io.Writer, nav Nav) error {
	return r.tpl.ExecuteTemplate(w, TemplateNav, nav)
}

// nilなら何も書かない
func (r *Renderer) RenderToast(w io.Writer, t *Toast) error {
	return r.tpl.ExecuteTemplate(w, TemplateToast, t)
}

func (r *Renderer) RenderPage(w io.Writer, p Page) error {
	return r.tpl.ExecuteTemplate(w, TemplatePage, p)
}

var _ echo.Renderer = (*Renderer)(nil)
