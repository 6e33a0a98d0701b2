package assistant

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
)

// Handler exposes the design-assistant endpoints. All routes require a
// bearer token.
type Handler struct{ service Service }

func NewHandler(service Service) *Handler { return &Handler{service: service} }

func (h *Handler) RegisterRoutes(r *chi.Mux, authMiddleware func(http.Handler) http.Handler) {
	r.Route("/api/ai", func(r chi.Router) {
		r.Use(authMiddleware)
		r.Post("/chat", h.chat)
		r.Get("/suggestions/{productType}", h.suggestions)
		r.Post("/create-design", h.createDesign)
	})
}

func (h *Handler) chat(w http.ResponseWriter, r *http.Request) {
	var req ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	reply, err := h.service.Chat(r.Context(), req)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respond(w, http.StatusOK, reply)
}

func (h *Handler) suggestions(w http.ResponseWriter, r *http.Request) {
	productType := chi.URLParam(r, "productType")
	s, err := h.service.Suggest(r.Context(), productType)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respond(w, http.StatusOK, s)
}

func (h *Handler) createDesign(w http.ResponseWriter, r *http.Request) {
	var req CreateDesignRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	d, err := h.service.CreateDesign(r.Context(), req)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respond(w, http.StatusOK, d)
}

func respondServiceError(w http.ResponseWriter, err error) {
	if strings.Contains(err.Error(), "required") {
		respond(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	respond(w, http.StatusInternalServerError, map[string]string{"error": "Server error"})
}

func respond(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
