package models

// Choice is a candidate album answering a Question. The album metadata is
// copied from the external catalog at poll creation time; only Votes is
// mutated afterwards.
type Choice struct {
	ID         uint   `gorm:"primaryKey" json:"id"`
	QuestionID uint   `gorm:"not null;index" json:"question_id"`
	Image      string `gorm:"size:1000" json:"image"`
	Title      string `gorm:"size:100" json:"title"`
	Artist     string `gorm:"size:100" json:"artist"`
	Year       int    `json:"year"`
	Genres     string `gorm:"size:500" json:"genres"` // slash-joined style list
	Votes      int    `gorm:"default:0" json:"votes"`
	Country    string `gorm:"size:50" json:"country"`
	URL        string `gorm:"size:500" json:"url"`
}

func (c Choice) String() string {
	return c.Artist + " - " + c.Title
}
