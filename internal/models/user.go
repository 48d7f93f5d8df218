package models

import "time"

// User is stored in the users collection. IDs are opaque UUID strings assigned
// at signup, not database-assigned ObjectIDs, so clients can hold them across
// collections.
type User struct {
	ID        string    `bson:"id" json:"id"`
	Name      string    `bson:"name" json:"name"`
	Email     string    `bson:"email" json:"email"`
	Password  string    `bson:"password" json:"-"` // Don't return password in JSON
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
}

// PublicUser is the shape returned by signup and login (no password, no timestamps).
type PublicUser struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

func (u User) Public() PublicUser {
	return PublicUser{ID: u.ID, Name: u.Name, Email: u.Email}
}
