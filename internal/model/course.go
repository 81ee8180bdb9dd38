package model

import "time"

// Course represents a learning resource owned by exactly one user.
type Course struct {
	ID              int       `db:"id" json:"id"`
	Title           string    `db:"title" json:"title"`
	Description     string    `db:"description" json:"description"`
	EstimatedTime   string    `db:"estimated_time" json:"estimatedTime"`
	MaterialsNeeded string    `db:"materials_needed" json:"materialsNeeded"`
	UserID          int       `db:"user_id" json:"userId"`
	CreatedAt       time.Time `db:"created_at" json:"-"`
	UpdatedAt       time.Time `db:"updated_at" json:"-"`

	// Owner is the joined owning user, populated by course queries.
	Owner *User `db:"-" json:"-"`
}
