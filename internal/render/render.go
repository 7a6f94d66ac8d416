// Package render writes a view.Page as HTML, markdown or styled terminal text.
package render

import (
	"bytes"
	"embed"
	"html/template"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	texttemplate "text/template"

	"github.com/charmbracelet/glamour"
	"github.com/pkg/errors"

	"github.com/Zachkp/folio/internal/view"
)

const (
	// IndexTemplate is the name of the page template.
	IndexTemplate = "index.html"
	// DefaultStaticPrefix is where the stylesheet is served from.
	DefaultStaticPrefix = "/static"
)

var (
	//go:embed templates/*.html templates/*.tmpl
	templateFS embed.FS

	//go:embed static
	staticFS embed.FS
)

// Document is the data handed to the page template.
type Document struct {
	Page         *view.Page
	Lang         string
	StaticPrefix string
}

// NewDocument wraps page with defaults for the page chrome.
func NewDocument(page *view.Page, lang string) Document {
	if lang == "" {
		lang = "en"
	}
	// html lang uses BCP 47 tags.
	return Document{Page: page, Lang: strings.ReplaceAll(lang, "_", "-"), StaticPrefix: DefaultStaticPrefix}
}

// NewHTML parses the embedded page templates.
func NewHTML() (*template.Template, error) {
	t, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, errors.Wrap(err, "parse html templates")
	}
	return t, nil
}

// Static returns the embedded static assets rooted at their directory.
func Static() fs.FS {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}
	return sub
}

// HTML renders doc as a complete page.
func HTML(w io.Writer, doc Document) error {
	t, err := NewHTML()
	if err != nil {
		return err
	}
	if err := t.ExecuteTemplate(w, IndexTemplate, doc); err != nil {
		return errors.Wrap(err, "render html")
	}
	return nil
}

var markdownTemplate = texttemplate.Must(
	texttemplate.New("page.md.tmpl").
		Funcs(texttemplate.FuncMap{"join": strings.Join}).
		ParseFS(templateFS, "templates/page.md.tmpl"),
)

// Markdown renders page as markdown.
func Markdown(w io.Writer, page *view.Page) error {
	if err := markdownTemplate.Execute(w, page); err != nil {
		return errors.Wrap(err, "render markdown")
	}
	return nil
}

// Terminal renders page for a terminal with Glamour. Pass 0 for width to use
// Glamour's default and an empty style to auto-detect the background.
func Terminal(w io.Writer, page *view.Page, width int, style string) error {
	var md bytes.Buffer
	if err := Markdown(&md, page); err != nil {
		return err
	}

	opts := []glamour.TermRendererOption{glamour.WithEmoji()}
	if style == "" {
		opts = append(opts, glamour.WithAutoStyle())
	} else {
		opts = append(opts, glamour.WithStandardStyle(style))
	}
	if width > 0 {
		opts = append(opts, glamour.WithWordWrap(width))
	}

	r, err := glamour.NewTermRenderer(opts...)
	if err != nil {
		return errors.Wrap(err, "create terminal renderer")
	}
	out, err := r.Render(md.String())
	if err != nil {
		return errors.Wrap(err, "render terminal")
	}
	_, err = io.WriteString(w, out)
	return err
}

// WriteSite writes index.html and the static assets into dir.
func WriteSite(dir string, doc Document) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return errors.Wrap(err, "create output directory")
	}

	var buf bytes.Buffer
	if err := HTML(&buf, doc); err != nil {
		return err
	}
	if err := os.WriteFile(filepath.Join(dir, IndexTemplate), buf.Bytes(), 0o644); err != nil {
		return errors.Wrap(err, "write index")
	}

	static := Static()
	staticDir := filepath.Join(dir, strings.TrimPrefix(doc.StaticPrefix, "/"))
	return fs.WalkDir(static, ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		target := filepath.Join(staticDir, filepath.FromSlash(path))
		if d.IsDir() {
			return os.MkdirAll(target, 0o755)
		}
		data, err := fs.ReadFile(static, path)
		if err != nil {
			return err
		}
		return errors.Wrapf(os.WriteFile(target, data, 0o644), "write %s", path)
	})
}
