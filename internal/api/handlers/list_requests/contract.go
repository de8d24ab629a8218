package list_requests

import (
	"context"

	listRequests "github.com/pr-poehali-dev/booking-site-hazard/internal/usecase/list_requests"
)

type ListRequestsUseCase interface {
	Execute(ctx context.Context, req *listRequests.Request) (*listRequests.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
