package model

import "time"

// Connection records that a user saved another profile's public card.
// The (user_id, profile_id) pair is unique; the row is never mutated.
type Connection struct {
	UserID    string    `json:"user_id"`
	ProfileID string    `json:"profile_id"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Title     string    `json:"title"`
	PhotoURL  string    `json:"photo_url"`
	CreatedAt time.Time `json:"created_at"`
}
