// Package booking_workflow drives one selection through Idle, SlotSelected, FormOpen and Submitted.
// A Workflow is not safe for concurrent use: it belongs to a single viewing session.
package booking_workflow

import (
	"context"
	"errors"
	"fmt"

	"github.com/pr-poehali-dev/booking-site-hazard/internal/domain"
	"github.com/pr-poehali-dev/booking-site-hazard/internal/service/availability"
	confirmBooking "github.com/pr-poehali-dev/booking-site-hazard/internal/usecase/confirm_booking"
	submitRequest "github.com/pr-poehali-dev/booking-site-hazard/internal/usecase/submit_request"
	"github.com/pr-poehali-dev/booking-site-hazard/pkg/types"
)

// Workflow общий контракт процесса бронирования для обеих ролей
type Workflow interface {
	Role() Role
	State() State
	Selection() (Selection, bool)
	SelectSlot(ctx context.Context, quest domain.QuestID, date domain.CalendarDate, slot types.TimeString) error
	OpenForm() error
	Cancel() error
	Commit(ctx context.Context, form Form) (*Outcome, error)
}

// Deps зависимости процесса
type Deps struct {
	Availability AvailabilityService
	Clock        TimeProvider
	Submitter    RequestSubmitter
	Confirmer    BookingConfirmer
	Logger       Logger
}

// ForRole выбирает вариант процесса один раз по признаку оператора
func ForRole(isOperator bool, deps Deps) Workflow {
	if isOperator {
		return NewOperatorWorkflow(deps)
	}
	return NewVisitorWorkflow(deps)
}

// Factory создает процессы с общими зависимостями
type Factory struct {
	deps Deps
}

// NewFactory создает фабрику процессов
func NewFactory(deps Deps) *Factory {
	return &Factory{deps: deps}
}

// New создает процесс для роли сессии
func (f *Factory) New(isOperator bool) Workflow {
	return ForRole(isOperator, f.deps)
}

// machine состояние и переходы, общие для обеих ролей
type machine struct {
	role         Role
	availability AvailabilityService
	clock        TimeProvider
	logger       Logger

	state     State
	selection *Selection
}

func newMachine(role Role, deps Deps) machine {
	return machine{
		role:         role,
		availability: deps.Availability,
		clock:        deps.Clock,
		logger:       deps.Logger,
		state:        StateIdle,
	}
}

func (m *machine) Role() Role {
	return m.role
}

func (m *machine) State() State {
	return m.state
}

func (m *machine) Selection() (Selection, bool) {
	if m.selection == nil {
		return Selection{}, false
	}
	return *m.selection, true
}

// SelectSlot переход в SlotSelected
// Прошедший или подтверждённый слот отклоняется, состояние при этом не меняется
func (m *machine) SelectSlot(ctx context.Context, quest domain.QuestID, date domain.CalendarDate, slot types.TimeString) error {
	if m.state != StateIdle && m.state != StateSlotSelected {
		return fmt.Errorf("%w: select slot in state %s", ErrInvalidTransition, m.state)
	}

	if !domain.IsCatalogSlot(slot) {
		return fmt.Errorf("%w: %q", ErrUnknownSlot, slot)
	}

	// 1. Прошедший слот нельзя выбрать независимо от занятости
	if availability.IsSlotPast(date, slot, m.clock.Now()) {
		m.logger.Warn("SelectSlot: %s rejected past slot quest=%s, date=%s, slot=%s", m.role, quest, date, slot)
		return ErrSlotInPast
	}

	// 2. Читаем логи в момент выбора
	idx, err := m.availability.Snapshot(ctx)
	if err != nil {
		m.logger.Error("SelectSlot: %s quest=%s, date=%s: %v", m.role, quest, date, err)
		return fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}

	// 3. Подтверждённый слот недоступен; слот с заявками доступен
	if idx.Occupancy(quest, date, slot).IsConfirmed() {
		m.logger.Warn("SelectSlot: %s rejected confirmed slot quest=%s, date=%s, slot=%s", m.role, quest, date, slot)
		return ErrSlotConfirmed
	}

	m.selection = &Selection{Quest: quest, Date: date, Slot: slot}
	m.state = StateSlotSelected
	return nil
}

// OpenForm переход SlotSelected -> FormOpen
func (m *machine) OpenForm() error {
	if m.state != StateSlotSelected {
		return fmt.Errorf("%w: open form in state %s", ErrInvalidTransition, m.state)
	}
	m.state = StateFormOpen
	return nil
}

// Cancel возврат в Idle из любого незавершённого состояния
func (m *machine) Cancel() error {
	if m.state == StateSubmitted {
		return fmt.Errorf("%w: cancel in state %s", ErrInvalidTransition, m.state)
	}
	m.reset()
	return nil
}

func (m *machine) reset() {
	m.state = StateIdle
	m.selection = nil
}

// beginCommit общие проверки перед фиксацией
func (m *machine) beginCommit(form Form) (Selection, error) {
	if m.state != StateFormOpen {
		return Selection{}, fmt.Errorf("%w: commit in state %s", ErrInvalidTransition, m.state)
	}
	if form == nil || form.role() != m.role {
		return Selection{}, ErrWrongForm
	}

	sel := *m.selection
	// Слот мог стать прошедшим, пока форма была открыта
	if availability.IsSlotPast(sel.Date, sel.Slot, m.clock.Now()) {
		m.reset()
		return Selection{}, ErrSlotInPast
	}
	return sel, nil
}

// VisitorWorkflow процесс посетителя: фиксация дописывает BookingRequest
type VisitorWorkflow struct {
	machine
	submitter RequestSubmitter
}

// NewVisitorWorkflow создает процесс посетителя
func NewVisitorWorkflow(deps Deps) *VisitorWorkflow {
	return &VisitorWorkflow{
		machine:   newMachine(RoleVisitor, deps),
		submitter: deps.Submitter,
	}
}

// Commit записывает заявку и переводит процесс в Submitted
// При ошибке валидации или хранилища форма остаётся открытой
func (w *VisitorWorkflow) Commit(ctx context.Context, form Form) (*Outcome, error) {
	sel, err := w.beginCommit(form)
	if err != nil {
		return nil, err
	}
	f := form.(VisitorForm)

	request, err := w.submitter.Execute(ctx, &submitRequest.Request{
		Quest:          sel.Quest,
		Date:           sel.Date,
		Slot:           sel.Slot,
		RequesterName:  f.Name,
		RequesterPhone: f.Phone,
	})
	if err != nil {
		return nil, err
	}

	w.state = StateSubmitted
	return &Outcome{Request: request}, nil
}

// OperatorWorkflow процесс оператора: фиксация дописывает ConfirmedBooking
type OperatorWorkflow struct {
	machine
	confirmer BookingConfirmer
}

// NewOperatorWorkflow создает процесс оператора
func NewOperatorWorkflow(deps Deps) *OperatorWorkflow {
	return &OperatorWorkflow{
		machine:   newMachine(RoleOperator, deps),
		confirmer: deps.Confirmer,
	}
}

// Commit подтверждает бронирование и переводит процесс в Submitted
// Конфликт (слот уже подтверждён) возвращает процесс в Idle
func (w *OperatorWorkflow) Commit(ctx context.Context, form Form) (*Outcome, error) {
	sel, err := w.beginCommit(form)
	if err != nil {
		return nil, err
	}
	f := form.(OperatorForm)

	booking, err := w.confirmer.Execute(ctx, &confirmBooking.Request{
		Quest:                 sel.Quest,
		Date:                  sel.Date,
		Slot:                  sel.Slot,
		ClientName:            f.ClientName,
		TotalAmount:           f.TotalAmount,
		Prepayment:            f.Prepayment,
		HasAdditionalServices: f.HasAdditionalServices,
	})
	if err != nil {
		if errors.Is(err, confirmBooking.ErrSlotAlreadyConfirmed) {
			w.reset()
		}
		return nil, err
	}

	w.state = StateSubmitted
	return &Outcome{Booking: booking}, nil
}
