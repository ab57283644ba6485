package service

import (
	"context"

	"github.com/covid19-impact/estimator/internal/accesslog"
	"github.com/covid19-impact/estimator/pkg/requestid"
	"go.uber.org/zap"
)

// AccessLogService exposes the persisted request log.
type AccessLogService struct {
	sink accesslog.Sink
}

func NewAccessLogService(sink accesslog.Sink) *AccessLogService {
	return &AccessLogService{sink: sink}
}

// Read returns the whole access log. An access log that has not been written yet is empty.
func (as *AccessLogService) Read(ctx context.Context) ([]byte, error) {
	content, err := as.sink.Read()
	if err != nil {
		zap.S().Named("access_log_service").Errorw("failed to read access log",
			"request_id", requestid.FromContext(ctx), "error", err)
		return nil, NewErrAccessLogUnavailable(err)
	}
	return content, nil
}
