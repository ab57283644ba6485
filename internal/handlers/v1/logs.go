package v1

import (
	"net/http"

	"github.com/go-chi/render"
)

// Logs returns the access log as plain text, one request per line.
func (h *ServiceHandler) Logs(w http.ResponseWriter, r *http.Request) {
	content, err := h.accessLogSrv.Read(r.Context())
	if err != nil {
		renderError(w, r, http.StatusInternalServerError, MsgAccessLogFailure)
		return
	}

	render.Status(r, http.StatusOK)
	render.PlainText(w, r, string(content))
}
