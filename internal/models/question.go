package models

import (
	"time"
)

// Question is a poll asking for the best album of a given genre and year.
type Question struct {
	ID      uint      `gorm:"primaryKey" json:"id"`
	Genre   string    `gorm:"size:50;not null" json:"genre"`
	Year    int       `gorm:"not null" json:"year"`
	Text    string    `gorm:"size:100;not null" json:"text"` // "What is the best <genre> album of <year>?"
	PubDate time.Time `gorm:"index" json:"pub_date"`
	Choices []Choice  `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"choices"`
}

func (q Question) String() string {
	return q.Text
}

// WasPublishedRecently reports whether the question was published within
// the last 24 hours. Future-dated questions do not count as recent.
func (q Question) WasPublishedRecently() bool {
	now := time.Now()
	return !q.PubDate.After(now) && q.PubDate.After(now.Add(-24*time.Hour))
}
