package get_date_saturation

import (
	"context"

	getDateSaturation "github.com/pr-poehali-dev/booking-site-hazard/internal/usecase/get_date_saturation"
)

type GetDateSaturationUseCase interface {
	Execute(ctx context.Context, req *getDateSaturation.Request) (*getDateSaturation.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
