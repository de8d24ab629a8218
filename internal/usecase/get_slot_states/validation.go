package get_slot_states

import "fmt"

func validateRequest(req *Request, catalog QuestCatalog) error {
	if req.Quest == "" {
		return fmt.Errorf("%w: quest is required", ErrInvalidInput)
	}
	if !catalog.Contains(req.Quest) {
		return fmt.Errorf("%w: unknown quest %q", ErrInvalidInput, req.Quest)
	}
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}
	return nil
}
