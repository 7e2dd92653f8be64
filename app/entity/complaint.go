package entity

import "time"

type Complaint struct {
	ID uint64

	Email   string
	Subject string
	Details string

	CreatedAt time.Time
}
