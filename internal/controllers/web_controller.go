package controllers

import (
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"
)

// WebController serves the built single-page UI. Unknown paths fall back to
// index.html so client-side routes resolve.
type WebController struct {
	distDir string
}

func NewWebController(distDir string) *WebController {
	return &WebController{distDir: distDir}
}

func (c *WebController) SPAHandler(w http.ResponseWriter, r *http.Request) {
	clean := path.Clean("/" + r.URL.Path)
	if strings.HasPrefix(clean, "/api/") {
		http.NotFound(w, r)
		return
	}

	filePath := filepath.Join(c.distDir, filepath.FromSlash(clean))
	if info, err := os.Stat(filePath); err != nil || info.IsDir() {
		filePath = filepath.Join(c.distDir, "index.html")
	}
	http.ServeFile(w, r, filePath)
}
