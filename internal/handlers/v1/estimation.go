package v1

import (
	"errors"
	"fmt"
	"net/http"

	api "github.com/covid19-impact/estimator/api/v1"
	"github.com/covid19-impact/estimator/internal/handlers/v1/mappers"
	"github.com/covid19-impact/estimator/internal/service"
	"github.com/covid19-impact/estimator/pkg/metrics"
	"github.com/covid19-impact/estimator/pkg/requestid"
	"github.com/go-chi/render"
	"go.uber.org/zap"
)

const (
	formatJSON = "json"
	formatXML  = "xml"
)

// Estimate replies in the format negotiated from the Accept header, JSON unless XML is asked for.
func (h *ServiceHandler) Estimate(w http.ResponseWriter, r *http.Request) {
	reply, ok := h.estimate(w, r)
	if !ok {
		return
	}

	format := formatJSON
	if render.GetAcceptedContentType(r) == render.ContentTypeXML {
		format = formatXML
	}
	metrics.IncreaseEstimationsTotalMetric(format)

	if err := render.Render(w, r, reply); err != nil {
		zap.S().Named("estimation_handler").Errorw("failed to render estimation", "error", err)
	}
}

func (h *ServiceHandler) EstimateJSON(w http.ResponseWriter, r *http.Request) {
	reply, ok := h.estimate(w, r)
	if !ok {
		return
	}

	metrics.IncreaseEstimationsTotalMetric(formatJSON)
	_ = reply.Render(w, r)
	render.JSON(w, r, reply)
}

func (h *ServiceHandler) EstimateXML(w http.ResponseWriter, r *http.Request) {
	reply, ok := h.estimate(w, r)
	if !ok {
		return
	}

	metrics.IncreaseEstimationsTotalMetric(formatXML)
	_ = reply.Render(w, r)
	render.XML(w, r, reply)
}

// estimate decodes, validates and estimates the request body. When it
// returns false the error reply has already been written.
func (h *ServiceHandler) estimate(w http.ResponseWriter, r *http.Request) (*api.EstimateReply, bool) {
	logger := zap.S().Named("estimation_handler").With("request_id", requestid.FromRequest(r))

	var form api.EstimateRequest
	if err := decodeEstimateRequest(r, &form); err != nil {
		logger.Debugw("failed to decode estimation request", "error", err)
		metrics.IncreaseValidationFailuresTotalMetric()
		renderError(w, r, http.StatusBadRequest, MsgInvalidInput)
		return nil, false
	}

	if err := h.validator.Struct(form); err != nil {
		logger.Debugw("invalid estimation request", "error", err)
		metrics.IncreaseValidationFailuresTotalMetric()
		renderError(w, r, http.StatusBadRequest, MsgInvalidInput)
		return nil, false
	}

	result, err := h.estimationSrv.Estimate(r.Context(), mappers.EstimateRequestFormApi(form))
	if err != nil {
		var invalid *service.ErrInvalidInput
		if errors.As(err, &invalid) {
			metrics.IncreaseValidationFailuresTotalMetric()
			renderError(w, r, http.StatusBadRequest, MsgInvalidInput)
			return nil, false
		}
		logger.Errorw("failed to estimate impact", "error", err)
		renderError(w, r, http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError))
		return nil, false
	}

	return mappers.EstimationResultToApi(*result), true
}

// decodeEstimateRequest decodes JSON or XML bodies. A request without a
// Content-Type is read as JSON.
func decodeEstimateRequest(r *http.Request, form *api.EstimateRequest) error {
	contentType := r.Header.Get("Content-Type")
	if contentType == "" {
		return render.DecodeJSON(r.Body, form)
	}

	switch render.GetContentType(contentType) {
	case render.ContentTypeJSON:
		return render.DecodeJSON(r.Body, form)
	case render.ContentTypeXML:
		return render.DecodeXML(r.Body, form)
	default:
		return fmt.Errorf("unsupported content type %q", contentType)
	}
}
