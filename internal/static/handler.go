// Package static serves the built front end. Any path that does not resolve to
// a file gets index.html so client-side routing keeps working.
package static

import (
	"errors"
	"io/fs"
	"net/http"
	"path"
	"strings"

	"infix-postfix/internal/observability"

	"go.uber.org/zap"
)

const indexFile = "index.html"

var mimeTypes = map[string]string{
	".html": "text/html",
	".js":   "text/javascript",
	".css":  "text/css",
	".json": "application/json",
	".png":  "image/png",
	".jpg":  "image/jpg",
	".gif":  "image/gif",
	".svg":  "image/svg+xml",
	".ico":  "image/x-icon",
}

// ContentType returns the Content-Type served for a file name.
func ContentType(name string) string {
	if ct, ok := mimeTypes[path.Ext(name)]; ok {
		return ct
	}
	return "application/octet-stream"
}

// Handler serves files from an asset root.
type Handler struct {
	assets fs.FS
}

// NewHandler returns a Handler over assets, typically os.DirFS of the build
// output directory.
func NewHandler(assets fs.FS) *Handler {
	return &Handler{assets: assets}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	name := assetName(r.URL.Path)

	content, err := h.readFile(name)
	if err == nil {
		serveOutcomes.WithLabelValues(outcomeFile).Inc()
		write(w, ContentType(name), content)
		return
	}

	content, err = h.readFile(indexFile)
	if err != nil {
		serveOutcomes.WithLabelValues(outcomeError).Inc()
		observability.LoggerWithTrace(r.Context()).Error("index document unavailable",
			zap.String("path", r.URL.Path),
			zap.Error(err),
			zap.String("request_id", observability.RequestIDFromContext(r.Context())),
		)
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte("Server Error"))
		return
	}

	serveOutcomes.WithLabelValues(outcomeFallback).Inc()
	write(w, mimeTypes[".html"], content)
}

// readFile reads a regular file. Directories count as missing.
func (h *Handler) readFile(name string) ([]byte, error) {
	info, err := fs.Stat(h.assets, name)
	if err != nil {
		return nil, err
	}
	if info.IsDir() {
		return nil, &fs.PathError{Op: "read", Path: name, Err: errors.New("is a directory")}
	}
	return fs.ReadFile(h.assets, name)
}

// assetName maps a URL path to a name inside the asset root. The path is
// cleaned first so it can never climb above the root.
func assetName(urlPath string) string {
	cleaned := path.Clean("/" + urlPath)
	if cleaned == "/" {
		return indexFile
	}
	return strings.TrimPrefix(cleaned, "/")
}

func write(w http.ResponseWriter, contentType string, content []byte) {
	w.Header().Set("Content-Type", contentType)
	w.WriteHeader(http.StatusOK)
	w.Write(content)
}
