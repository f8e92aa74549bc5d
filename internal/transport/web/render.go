package web

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"path"
	"strings"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/heartmarshall/yatube-backend/pkg/ctxutil"
)

//go:embed templates
var templateFS embed.FS

// Renderer executes page templates. Each page is parsed together with the
// layout and every partial into its own template set.
type Renderer struct {
	pages map[string]*template.Template
	clock clockwork.Clock
}

// NewRenderer parses the embedded templates.
func NewRenderer(clock clockwork.Clock) (*Renderer, error) {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}

	partials, err := fs.Glob(templateFS, "templates/partials/*.html")
	if err != nil {
		return nil, fmt.Errorf("glob partials: %w", err)
	}
	pages, err := fs.Glob(templateFS, "templates/pages/*.html")
	if err != nil {
		return nil, fmt.Errorf("glob pages: %w", err)
	}

	r := &Renderer{pages: make(map[string]*template.Template, len(pages)), clock: clock}
	for _, page := range pages {
		files := append([]string{"templates/layout.html", page}, partials...)
		t, err := template.New("layout.html").Funcs(funcs).ParseFS(templateFS, files...)
		if err != nil {
			return nil, fmt.Errorf("parse %s: %w", page, err)
		}
		r.pages[strings.TrimSuffix(path.Base(page), ".html")] = t
	}
	return r, nil
}

// View is the data every page is rendered with. Data carries the
// page-specific view model.
type View struct {
	Year   int
	Viewer string
	Path   string
	Data   any
}

// Render writes the named page with status. The page is executed into a
// buffer first so a template error never leaves a half-written response.
func (r *Renderer) Render(w http.ResponseWriter, req *http.Request, status int, name string, data any) error {
	t, ok := r.pages[name]
	if !ok {
		return fmt.Errorf("template %q not found", name)
	}

	view := View{
		Year:   r.clock.Now().Year(),
		Viewer: ctxutil.UsernameFromCtx(req.Context()),
		Path:   req.URL.Path,
		Data:   data,
	}

	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, "layout", view); err != nil {
		return fmt.Errorf("render %s: %w", name, err)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, err := buf.WriteTo(w)
	return err
}

var funcs = template.FuncMap{
	"addclass": addClass,
	"input":    newInput,
	"textarea": newTextarea,
	"date": func(t time.Time) string {
		return t.Format("2 January 2006")
	},
	"datetime": func(t time.Time) string {
		return t.Format("2 January 2006 15:04")
	},
	"excerpt": func(text string, n int) string {
		r := []rune(text)
		if len(r) <= n {
			return text
		}
		return string(r[:n]) + "…"
	},
	"linebreaks": func(text string) template.HTML {
		paragraphs := strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n\n")
		var b strings.Builder
		for _, p := range paragraphs {
			if p = strings.TrimSpace(p); p == "" {
				continue
			}
			lines := strings.Split(template.HTMLEscapeString(p), "\n")
			b.WriteString("<p>" + strings.Join(lines, "<br>") + "</p>")
		}
		return template.HTML(b.String())
	},
}

// widget is a form control rendered by templates.
type widget struct {
	tag   string
	typ   string
	name  string
	value string
	class string
	rows  int
}

func newInput(typ, name, value string) widget {
	return widget{tag: "input", typ: typ, name: name, value: value}
}

func newTextarea(name, value string, rows int) widget {
	return widget{tag: "textarea", name: name, value: value, rows: rows}
}

// addClass returns w with class appended to its CSS classes.
func addClass(w widget, class string) widget {
	if w.class == "" {
		w.class = class
	} else {
		w.class += " " + class
	}
	return w
}

// HTML renders the control with escaped attributes.
func (w widget) HTML() template.HTML {
	esc := template.HTMLEscapeString
	var b strings.Builder
	b.WriteString("<" + w.tag)
	if w.typ != "" {
		b.WriteString(` type="` + esc(w.typ) + `"`)
	}
	b.WriteString(` name="` + esc(w.name) + `" id="id_` + esc(w.name) + `"`)
	if w.class != "" {
		b.WriteString(` class="` + esc(w.class) + `"`)
	}
	if w.tag == "textarea" {
		fmt.Fprintf(&b, ` rows="%d">%s</textarea>`, w.rows, esc(w.value))
		return template.HTML(b.String())
	}
	if w.typ != "password" && w.typ != "file" {
		b.WriteString(` value="` + esc(w.value) + `"`)
	}
	b.WriteString(">")
	return template.HTML(b.String())
}
