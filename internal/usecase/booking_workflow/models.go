package booking_workflow

import (
	"github.com/pr-poehali-dev/booking-site-hazard/internal/domain"
	"github.com/pr-poehali-dev/booking-site-hazard/pkg/types"
)

// State состояние процесса бронирования
type State string

const (
	StateIdle         State = "idle"
	StateSlotSelected State = "slot_selected"
	StateFormOpen     State = "form_open"
	StateSubmitted    State = "submitted"
)

// Role роль сессии, выбирается один раз при создании процесса
type Role string

const (
	RoleVisitor  Role = "visitor"
	RoleOperator Role = "operator"
)

// Selection выбранные квест, дата и слот
type Selection struct {
	Quest domain.QuestID
	Date  domain.CalendarDate
	Slot  types.TimeString
}

// Form данные формы; конкретный тип зависит от роли
type Form interface {
	role() Role
}

// VisitorForm форма заявки посетителя
type VisitorForm struct {
	Name  string
	Phone string
}

func (VisitorForm) role() Role { return RoleVisitor }

// OperatorForm форма подтверждения оператора
type OperatorForm struct {
	ClientName            string
	TotalAmount           string
	Prepayment            string
	HasAdditionalServices bool
}

func (OperatorForm) role() Role { return RoleOperator }

// Outcome результат успешной фиксации: ровно одно из полей заполнено
type Outcome struct {
	Request *domain.BookingRequest
	Booking *domain.ConfirmedBooking
}
