package handler

import (
	"net/http"
	"path/filepath"
)

// HomeHandler serves the single-page front end
type HomeHandler struct {
	staticDir string
}

// NewHomeHandler creates a new HomeHandler serving index.html from staticDir
func NewHomeHandler(staticDir string) *HomeHandler {
	return &HomeHandler{staticDir: staticDir}
}

// Home serves the index page
func (h *HomeHandler) Home(w http.ResponseWriter, r *http.Request) {
	if h.staticDir == "" {
		http.Error(w, "Not Found", http.StatusNotFound)
		return
	}

	http.ServeFile(w, r, filepath.Join(h.staticDir, "index.html"))
}
