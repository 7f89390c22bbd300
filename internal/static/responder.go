// Package static serves the prebuilt frontend from a directory on disk.
// Unknown paths fall back to the index document so client-side routes resolve.
package static

import (
	"errors"
	"io/fs"
	"log"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"
)

const frontendMissing = "Frontend not built. Please build the React frontend first."

var contentTypes = map[string]string{
	".html": "text/html",
	".js":   "application/javascript",
	".css":  "text/css",
	".json": "application/json",
	".png":  "image/png",
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".svg":  "image/svg+xml",
}

type Responder struct {
	BaseDir   string
	IndexFile string
}

func NewResponder(baseDir, indexFile string) *Responder {
	if indexFile == "" {
		indexFile = "index.html"
	}
	return &Responder{BaseDir: baseDir, IndexFile: indexFile}
}

// ContentType maps a path's extension to a MIME type, defaulting to text/plain.
func ContentType(name string) string {
	if ct, ok := contentTypes[strings.ToLower(path.Ext(name))]; ok {
		return ct
	}
	return "text/plain"
}

// Resolve maps a URL path to a file under BaseDir. The path is cleaned as a
// rooted path first, so ".." never climbs above BaseDir.
func (s *Responder) Resolve(urlPath string) (string, string) {
	name := strings.TrimPrefix(path.Clean("/"+urlPath), "/")
	if name == "" {
		name = s.IndexFile
	}
	return name, filepath.Join(s.BaseDir, filepath.FromSlash(name))
}

// ServeFile answers the catch-all route: the requested file if readable,
// otherwise the index document, otherwise 404.
func (s *Responder) ServeFile(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	name, file := s.Resolve(r.URL.Path)

	content, err := os.ReadFile(file)
	if err == nil {
		write(w, ContentType(name), content)
		return
	}

	if !errors.Is(err, fs.ErrNotExist) {
		log.Printf("Error reading %s: %v", file, err)
	}

	content, err = s.readIndex()
	if err != nil {
		http.Error(w, "File not found", http.StatusNotFound)
		return
	}

	write(w, "text/html", content)
}

// ServeRoot answers "/" with the index document.
func (s *Responder) ServeRoot(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	content, err := s.readIndex()
	if err != nil {
		http.Error(w, frontendMissing, http.StatusNotFound)
		return
	}

	write(w, "text/html", content)
}

func (s *Responder) readIndex() ([]byte, error) {
	return os.ReadFile(filepath.Join(s.BaseDir, s.IndexFile))
}

func write(w http.ResponseWriter, contentType string, content []byte) {
	w.Header().Set("Content-Type", contentType)
	w.WriteHeader(http.StatusOK)

	if _, err := w.Write(content); err != nil {
		log.Printf("Error writing response: %v", err)
	}
}
