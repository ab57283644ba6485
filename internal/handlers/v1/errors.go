package v1

import (
	"net/http"

	api "github.com/covid19-impact/estimator/api/v1"
	"github.com/go-chi/render"
)

// renderError writes a JSON error reply whatever the negotiated format is.
func renderError(w http.ResponseWriter, r *http.Request, statusCode int, message string) {
	reply := api.NewErrorReply(statusCode, message)
	_ = reply.Render(w, r)
	render.JSON(w, r, reply)
}

func (h *ServiceHandler) NotFound(w http.ResponseWriter, r *http.Request) {
	renderError(w, r, http.StatusNotFound, MsgNotFound)
}

func (h *ServiceHandler) MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	renderError(w, r, http.StatusMethodNotAllowed, MsgMethodNotAllowed)
}
