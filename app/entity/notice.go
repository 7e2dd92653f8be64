package entity

import "time"

type Notice struct {
	ID uint64

	Notice string
	Date   string

	CreatedAt time.Time
}
