package server

import (
	"embed"
	"fmt"
	"io/fs"
	"net/http"

	"github.com/gin-gonic/gin"
)

//go:embed web
var webFiles embed.FS

var pages = map[string]string{
	"/":        "index.html",
	"/sign-in": "signin.html",
	"/sign-up": "signup.html",
	"/shop":    "shop.html",
}

// registerPages serves the HTML pages and everything under web/static at /static.
func registerPages(r *gin.Engine) error {
	root, err := fs.Sub(webFiles, "web")
	if err != nil {
		return fmt.Errorf("failed to open embedded web root: %w", err)
	}
	assets, err := fs.Sub(root, "static")
	if err != nil {
		return fmt.Errorf("failed to open embedded assets: %w", err)
	}
	r.StaticFS("/static", http.FS(assets))

	for route, file := range pages {
		body, err := fs.ReadFile(root, file)
		if err != nil {
			return fmt.Errorf("failed to read page %s: %w", file, err)
		}
		r.GET(route, func(c *gin.Context) {
			c.Data(http.StatusOK, "text/html; charset=utf-8", body)
		})
	}
	return nil
}
