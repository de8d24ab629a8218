package submit_request

import (
	bookingWorkflow "github.com/pr-poehali-dev/booking-site-hazard/internal/usecase/booking_workflow"
)

// WorkflowFactory создает процесс бронирования для роли
type WorkflowFactory interface {
	New(isOperator bool) bookingWorkflow.Workflow
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
