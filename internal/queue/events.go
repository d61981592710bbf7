package queue

import "time"

// Exchange and routing keys for announcement events.
const (
	Exchange = "announce.events"

	KeyCreated = "announcement.created"
	KeyUpdated = "announcement.updated"
	KeyDeleted = "announcement.deleted"
)

type AnnouncementCreated struct {
	ID             string     `json:"id"`
	Message        string     `json:"message"`
	StartDate      *time.Time `json:"start_date,omitempty"`
	ExpirationDate time.Time  `json:"expiration_date"`
}

type AnnouncementUpdated struct {
	ID             string     `json:"id"`
	Message        string     `json:"message"`
	StartDate      *time.Time `json:"start_date,omitempty"`
	ExpirationDate time.Time  `json:"expiration_date"`
}

type AnnouncementDeleted struct {
	ID string `json:"id"`
}
