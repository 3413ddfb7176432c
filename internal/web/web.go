// Package web serves the public listing page and the admin dashboard. Both
// are static assets embedded in the binary that talk to the JSON API.
package web

import (
	"embed"
	"io/fs"
	"net/http"

	"github.com/gin-gonic/gin"
)

//go:embed static
var assets embed.FS

type Pages struct {
	index     []byte
	dashboard []byte
	static    fs.FS
}

func NewPages() (*Pages, error) {
	static, err := fs.Sub(assets, "static")
	if err != nil {
		return nil, err
	}
	index, err := fs.ReadFile(static, "index.html")
	if err != nil {
		return nil, err
	}
	dashboard, err := fs.ReadFile(static, "dashboard.html")
	if err != nil {
		return nil, err
	}
	return &Pages{index: index, dashboard: dashboard, static: static}, nil
}

func (p *Pages) RegisterRoutes(r *gin.Engine) {
	r.GET("/", p.html(p.index))
	r.GET("/dashboard", p.html(p.dashboard))
	r.StaticFS("/static", http.FS(p.static))
}

func (p *Pages) html(page []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Data(http.StatusOK, "text/html; charset=utf-8", page)
	}
}
