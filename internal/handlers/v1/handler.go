package v1

import (
	"github.com/covid19-impact/estimator/internal/handlers/validator"
	"github.com/covid19-impact/estimator/internal/service"
	"github.com/getkin/kin-openapi/openapi3"
)

const (
	WelcomeMessage = "<h4>Welcome to covid-19-estimator-api</h4>"

	MsgInvalidInput     = "Invalid Input. All values were not provided."
	MsgNotFound         = "Not Found"
	MsgMethodNotAllowed = "Method Not Allowed"
	MsgAccessLogFailure = "Failed to read the access log."
)

type ServiceHandler struct {
	estimationSrv *service.EstimationService
	accessLogSrv  *service.AccessLogService
	validator     *validator.Validator
	swagger       *openapi3.T
}

func NewServiceHandler(
	estimationSrv *service.EstimationService,
	accessLogSrv *service.AccessLogService,
	swagger *openapi3.T,
) *ServiceHandler {
	return &ServiceHandler{
		estimationSrv: estimationSrv,
		accessLogSrv:  accessLogSrv,
		validator:     validator.NewEstimateValidator(),
		swagger:       swagger,
	}
}
