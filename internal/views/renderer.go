package views

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"path"
	"strings"

	"github.com/aarondl/null/v8"
	"github.com/labstack/echo/v4"
)

//go:embed templates/*.html
var templateFS embed.FS

const layoutFile = "templates/layout.html"

// Renderer держит по одному дереву шаблонов на страницу: layout + сама страница.
type Renderer struct {
	pages map[string]*template.Template
}

var funcs = template.FuncMap{
	"hours":       formatHours,
	"dateValue":   dateValue,
	"nullString":  nullString,
	"salaryValue": salaryValue,
	"nextOrder":   nextOrder,
}

func NewRenderer() (*Renderer, error) {
	files, err := fs.Glob(templateFS, "templates/*.html")
	if err != nil {
		return nil, err
	}

	pages := make(map[string]*template.Template, len(files))
	for _, file := range files {
		if file == layoutFile {
			continue
		}
		tmpl, err := template.New(path.Base(layoutFile)).Funcs(funcs).ParseFS(templateFS, layoutFile, file)
		if err != nil {
			return nil, fmt.Errorf("шаблон %s: %w", file, err)
		}
		pages[strings.TrimSuffix(path.Base(file), ".html")] = tmpl
	}
	return &Renderer{pages: pages}, nil
}

func (r *Renderer) Render(w io.Writer, name string, data interface{}, _ echo.Context) error {
	tmpl, ok := r.pages[name]
	if !ok {
		return fmt.Errorf("шаблон %q не найден", name)
	}
	return tmpl.ExecuteTemplate(w, "layout", data)
}

func formatHours(h float64) string {
	return fmt.Sprintf("%.1f", h)
}

func dateValue(t null.Time) string {
	if !t.Valid {
		return ""
	}
	return t.Time.Format("2006-01-02")
}

func nullString(s null.String) string {
	if !s.Valid {
		return ""
	}
	return s.String
}

func salaryValue(f null.Float64) string {
	if !f.Valid {
		return ""
	}
	return fmt.Sprintf("%.2f", f.Float64)
}

// nextOrder: повторный клик по текущей колонке меняет направление.
func nextOrder(currentSort, currentOrder, column string) string {
	if currentSort == column && strings.EqualFold(currentOrder, "asc") {
		return "desc"
	}
	return "asc"
}
