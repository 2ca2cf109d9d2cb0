// Package views embeds the page templates.
package views

import (
	"embed"
	"net/http"

	"github.com/gofiber/template/html/v2"
)

//go:embed layouts/*.html pages/*.html
var files embed.FS

// NewEngine builds the template engine over the embedded files. Templates
// are addressed as "pages/<name>" and "layouts/main".
func NewEngine() *html.Engine {
	return html.NewFileSystem(http.FS(files), ".html")
}
