package upload

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// Limit request bodies to 10 MiB of artwork.
const maxUploadBytes = 10 << 20

// Handler accepts multipart image uploads, optimizes them, and serves the
// processed files back under /uploads/.
type Handler struct {
	dir    string
	logger *zap.Logger
}

func NewHandler(dir string, logger *zap.Logger) *Handler {
	return &Handler{dir: dir, logger: logger}
}

func (h *Handler) RegisterRoutes(r *chi.Mux) {
	r.Post("/api/upload", h.uploadImage)
	r.Handle("/uploads/*", http.StripPrefix("/uploads/", http.FileServer(http.Dir(h.dir))))
}

func (h *Handler) uploadImage(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
	file, header, err := r.FormFile("image")
	if err != nil {
		respond(w, http.StatusBadRequest, map[string]string{"error": "No file uploaded"})
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		respond(w, http.StatusBadRequest, map[string]string{"error": "No file uploaded"})
		return
	}

	processed, err := ProcessImage(data)
	if err != nil {
		respond(w, http.StatusBadRequest, map[string]string{"error": "Please upload an image file"})
		return
	}

	if err := os.MkdirAll(h.dir, 0o755); err != nil {
		h.logger.Error("create upload dir", zap.Error(err))
		respond(w, http.StatusInternalServerError, map[string]string{"error": "Image processing failed"})
		return
	}

	name := fmt.Sprintf("processed_%d.jpg", time.Now().UnixNano())
	if err := os.WriteFile(filepath.Join(h.dir, name), processed, 0o644); err != nil {
		h.logger.Error("write processed image", zap.Error(err))
		respond(w, http.StatusInternalServerError, map[string]string{"error": "Image processing failed"})
		return
	}

	h.logger.Info("image processed",
		zap.String("original", header.Filename),
		zap.Int("bytes", len(processed)))
	respond(w, http.StatusOK, map[string]string{"imageUrl": "/uploads/" + name})
}

func respond(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
