package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Announcement is a single school-wide announcement document.
// StartDate is stored as an explicit null when absent so the active-window
// query matches both null and legacy missing fields.
type Announcement struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Message        string             `bson:"message"         json:"message"`
	StartDate      *time.Time         `bson:"start_date"      json:"start_date"`
	ExpirationDate time.Time          `bson:"expiration_date" json:"expiration_date"`
	CreatedAt      time.Time          `bson:"created_at"      json:"created_at"`
}

// ActiveAt reports whether the announcement is inside its display window:
// not expired, and either never scheduled or already started.
func (a Announcement) ActiveAt(now time.Time) bool {
	if !a.ExpirationDate.After(now) {
		return false
	}
	return a.StartDate == nil || !a.StartDate.After(now)
}
