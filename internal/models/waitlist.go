package models

import "time"

// Signup is one waitlist entry, keyed by email. Geo fields are best-effort:
// they stay empty when the geolocation lookup fails.
type Signup struct {
	Email     string    `bson:"_id"        json:"email"`
	IP        string    `bson:"ip"         json:"ip,omitempty"`
	Country   string    `bson:"country"    json:"country,omitempty"`
	Region    string    `bson:"region"     json:"region,omitempty"`
	City      string    `bson:"city"       json:"city,omitempty"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}

// WaitlistRequest is the payload for POST /waitlist.
type WaitlistRequest struct {
	Email string `json:"email"`
}
