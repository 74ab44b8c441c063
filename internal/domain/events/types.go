package events

import (
	"context"
	"encoding/json"
	"time"
)

// DateLayout is the wire format of Event.Date.
const DateLayout = "2006-01-02"

type Event struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	Date      time.Time `json:"date"`
	ShortInfo string    `json:"short_info"`
	CoverURL  *string   `json:"cover_url"`
}

// MarshalJSON writes Date as a calendar date without a time part.
func (e Event) MarshalJSON() ([]byte, error) {
	type alias Event
	return json.Marshal(struct {
		alias
		Date string `json:"date"`
	}{
		alias: alias(e),
		Date:  e.Date.Format(DateLayout),
	})
}

type Store interface {
	Create(ctx context.Context, event *Event) error
	// List returns every event ordered by date ascending.
	List(ctx context.Context) ([]Event, error)
	GetByID(ctx context.Context, eventID int64) (*Event, error)
	Update(ctx context.Context, event *Event) error
	Delete(ctx context.Context, eventID int64) error
}
