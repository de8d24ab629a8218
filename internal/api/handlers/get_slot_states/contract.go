package get_slot_states

import (
	"context"

	getSlotStates "github.com/pr-poehali-dev/booking-site-hazard/internal/usecase/get_slot_states"
)

type GetSlotStatesUseCase interface {
	Execute(ctx context.Context, req *getSlotStates.Request) (*getSlotStates.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
