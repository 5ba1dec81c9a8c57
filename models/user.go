package models

import "time"

// User represents a platform user. Users are upserted by email: the email is
// the logical key, the id is assigned by the store on first insert and never
// reassigned.
type User struct {
	ID        string    `bson:"_id,omitempty" json:"id"`
	Name      string    `bson:"name,omitempty" json:"name,omitempty"`
	Email     string    `bson:"email" json:"email"`
	Photo     string    `bson:"photo,omitempty" json:"photo,omitempty"`
	Role      string    `bson:"role,omitempty" json:"role,omitempty"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}
