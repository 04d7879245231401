package domain

import "time"

// Lead is a marketing-site enquiry submitted without authentication.
type Lead struct {
	ID         string
	Name       string
	Email      string
	Message    string
	SourcePage string
	CreatedAt  time.Time
}
