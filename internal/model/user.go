package model

import "time"

// User is the single persisted entity declared by the starter schema.
// Email is unique at the database level. No status endpoint reads or
// writes users; the table exists for applications built on top.
type User struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}
