package domain

import "time"

// Teacher is a credential document. The collection is keyed by username
// (_id), matching the source system; the announcements API only ever checks
// existence, the password hash is used by the seeding tool.
type Teacher struct {
	Username     string    `bson:"_id"           json:"username"`
	DisplayName  string    `bson:"display_name"  json:"display_name"`
	PasswordHash string    `bson:"password_hash" json:"-"`
	Role         string    `bson:"role"          json:"role"` // "teacher" | "admin"
	CreatedAt    time.Time `bson:"created_at"    json:"created_at"`
}
