package model

import "time"

type Review struct {
	UserID    UserID
	MovieID   MovieID
	Text      string
	CreatedAt time.Time
}

type Genre struct {
	ID   int64
	Name string
}
