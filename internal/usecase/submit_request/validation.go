package submit_request

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/pr-poehali-dev/booking-site-hazard/internal/domain"
)

var phonePattern = regexp.MustCompile(`^\+?[0-9()\-\s]{6,}$`)

// normalizeRequest обрезает пробелы в текстовых полях
func normalizeRequest(req *Request) {
	req.RequesterName = strings.TrimSpace(req.RequesterName)
	req.RequesterPhone = strings.TrimSpace(req.RequesterPhone)
}

func validateRequest(req *Request, catalog QuestCatalog) error {
	if !catalog.Contains(req.Quest) {
		return fmt.Errorf("%w: unknown quest %q", ErrInvalidInput, req.Quest)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if !domain.IsCatalogSlot(req.Slot) {
		return fmt.Errorf("%w: slot %q is not offered", ErrInvalidInput, req.Slot)
	}

	if req.RequesterName == "" {
		return fmt.Errorf("%w: requester name is required", ErrInvalidInput)
	}
	if utf8.RuneCountInString(req.RequesterName) > domain.MaxNameLength {
		return fmt.Errorf("%w: requester name must not exceed %d characters", ErrInvalidInput, domain.MaxNameLength)
	}

	if req.RequesterPhone == "" {
		return fmt.Errorf("%w: requester phone is required", ErrInvalidInput)
	}
	if utf8.RuneCountInString(req.RequesterPhone) > domain.MaxPhoneLength {
		return fmt.Errorf("%w: requester phone must not exceed %d characters", ErrInvalidInput, domain.MaxPhoneLength)
	}

	return nil
}

// looksLikePhone проверка формата телефона носит рекомендательный характер
func looksLikePhone(phone string) bool {
	return phonePattern.MatchString(phone)
}
