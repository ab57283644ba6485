package v1

import (
	"net/http"

	"github.com/go-chi/render"
)

func (h *ServiceHandler) Welcome(w http.ResponseWriter, r *http.Request) {
	render.Status(r, http.StatusOK)
	render.HTML(w, r, WelcomeMessage)
}

func (h *ServiceHandler) Health(w http.ResponseWriter, r *http.Request) {
	render.Status(r, http.StatusOK)
	render.JSON(w, r, map[string]string{"status": "ok"})
}

// OpenAPI serves the API description as JSON.
func (h *ServiceHandler) OpenAPI(w http.ResponseWriter, r *http.Request) {
	if h.swagger == nil {
		h.NotFound(w, r)
		return
	}
	render.Status(r, http.StatusOK)
	render.JSON(w, r, h.swagger)
}
