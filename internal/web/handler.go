// Package web serves the landing page and its static assets.
package web

import (
	"embed"
	"html/template"
	"io/fs"
	"net/http"

	"github.com/gin-gonic/gin"

	"trip-planner/internal/trips"
)

//go:embed templates/*.html
var templateFiles embed.FS

//go:embed static
var staticFiles embed.FS

type page struct {
	Version            string
	DefaultDestination string
	Styles             []string
}

// Register attaches the landing page and /static assets to the engine.
func Register(r *gin.Engine, version string) error {
	tmpl, err := template.ParseFS(templateFiles, "templates/*.html")
	if err != nil {
		return err
	}
	static, err := fs.Sub(staticFiles, "static")
	if err != nil {
		return err
	}

	r.SetHTMLTemplate(tmpl)
	r.StaticFS("/static", http.FS(static))

	data := page{
		Version:            version,
		DefaultDestination: trips.DefaultDestination,
		Styles:             trips.StyleNames(),
	}
	r.GET("/", func(c *gin.Context) {
		c.HTML(http.StatusOK, "index.html", data)
	})
	return nil
}
