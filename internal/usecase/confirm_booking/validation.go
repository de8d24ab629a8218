package confirm_booking

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/pr-poehali-dev/booking-site-hazard/internal/domain"
)

// amounts разобранные суммы формы
type amounts struct {
	total      domain.Money
	prepayment domain.Money
}

func validateRequest(req *Request, catalog QuestCatalog) (*amounts, error) {
	if !catalog.Contains(req.Quest) {
		return nil, fmt.Errorf("%w: unknown quest %q", ErrInvalidInput, req.Quest)
	}

	if req.Date.IsZero() {
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if !domain.IsCatalogSlot(req.Slot) {
		return nil, fmt.Errorf("%w: slot %q is not offered", ErrInvalidInput, req.Slot)
	}

	req.ClientName = strings.TrimSpace(req.ClientName)
	if req.ClientName == "" {
		return nil, fmt.Errorf("%w: client name is required", ErrInvalidInput)
	}
	if utf8.RuneCountInString(req.ClientName) > domain.MaxNameLength {
		return nil, fmt.Errorf("%w: client name must not exceed %d characters", ErrInvalidInput, domain.MaxNameLength)
	}

	total, err := domain.ParseMoney(req.TotalAmount)
	if err != nil {
		return nil, fmt.Errorf("%w: total amount: %v", ErrInvalidInput, err)
	}

	prepayment, err := domain.ParseMoney(req.Prepayment)
	if err != nil {
		return nil, fmt.Errorf("%w: prepayment: %v", ErrInvalidInput, err)
	}

	if prepayment > total {
		return nil, fmt.Errorf("%w: %s > %s", ErrPrepaymentExceedsTotal, prepayment, total)
	}

	return &amounts{total: total, prepayment: prepayment}, nil
}
