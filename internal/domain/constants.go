package domain

import "github.com/pr-poehali-dev/booking-site-hazard/pkg/types"

// SlotCatalog is the fixed ordered set of bookable times of day, 90 minutes apart.
// Every date offers exactly these slots for every quest.
var SlotCatalog = []types.TimeString{
	"12:00",
	"13:30",
	"15:00",
	"16:30",
	"18:00",
	"19:30",
	"21:00",
	"22:30",
}

// SlotCadenceMinutes is the distance between two neighbouring catalog slots.
const SlotCadenceMinutes = 90

// Business validation constants
const (
	MaxNameLength  = 200
	MaxPhoneLength = 32
	MaxQuestLength = 200
)

// Time format constants
const (
	TimeFormat  = "15:04"      // HH:MM
	DateFormat  = "2006-01-02" // YYYY-MM-DD
	MonthFormat = "2006-01"    // YYYY-MM
)

// SlotCount returns the size of the slot catalog.
func SlotCount() int {
	return len(SlotCatalog)
}

// IsCatalogSlot reports whether slot is one of the catalog labels.
func IsCatalogSlot(slot types.TimeString) bool {
	for _, s := range SlotCatalog {
		if s == slot {
			return true
		}
	}
	return false
}
