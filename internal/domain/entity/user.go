package entity

import "time"

// User is the local profile of an identified person.
// ExternalID is the identity provider's opaque key and is what every other
// entity stores as its user id.
type User struct {
	ID         int64
	ExternalID string
	FirstName  string
	LastName   string
	Nickname   string
	Email      string
	ImageRef   string // Profile image key (see ProfileImages) or an uploaded image URL.
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
