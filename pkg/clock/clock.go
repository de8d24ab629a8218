package clock

import "time"

// Venue часы площадки: текущее время в её часовом поясе
type Venue struct {
	loc *time.Location
}

// NewVenue создает часы для указанного часового пояса
func NewVenue(loc *time.Location) *Venue {
	if loc == nil {
		loc = time.Local
	}
	return &Venue{loc: loc}
}

// Now возвращает текущее время площадки
func (v *Venue) Now() time.Time {
	return time.Now().In(v.loc)
}

// Location часовой пояс площадки
func (v *Venue) Location() *time.Location {
	return v.loc
}

// Fixed часы, всегда возвращающие одно и то же время. Используются в тестах
type Fixed struct {
	At time.Time
}

// Now возвращает зафиксированное время
func (f Fixed) Now() time.Time {
	return f.At
}
