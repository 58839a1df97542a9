package web

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"time"
)

//go:embed templates/index.html
var templates embed.FS

//go:embed static
var static embed.FS

type pageData struct {
	RevealDelayMS int64
}

// Page - the rendered game page. Rendered once because nothing on it changes per request.
type Page struct {
	body []byte
}

// NewPage - renders the page with the delay before the end-of-game summary is revealed.
func NewPage(revealDelay time.Duration) (*Page, error) {
	tmpl, err := template.ParseFS(templates, "templates/index.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse page template: %w", err)
	}

	var buf bytes.Buffer
	if err = tmpl.Execute(&buf, pageData{RevealDelayMS: revealDelay.Milliseconds()}); err != nil {
		return nil, fmt.Errorf("failed to render page: %w", err)
	}

	return &Page{body: buf.Bytes()}, nil
}

func (that *Page) ServeHTTP(writer http.ResponseWriter, _ *http.Request) {
	writer.Header().Set("Content-Type", "text/html; charset=utf-8")
	writer.Header().Set("Cache-Control", "no-store")
	writer.WriteHeader(http.StatusOK)
	_, _ = writer.Write(that.body)
}

// Static - serves the page assets; mount it under /static/.
func Static() http.Handler {
	assets, err := fs.Sub(static, "static")
	if err != nil {
		panic(fmt.Errorf("static assets are not embedded: %w", err))
	}

	return http.StripPrefix("/static/", http.FileServer(http.FS(assets)))
}
