package models

import "time"

// Example styles accepted by the blogful_examples.style column.
const (
	StyleListicle  = "Listicle"
	StyleHowTo     = "How-to"
	StyleNews      = "News"
	StyleInterview = "Interview"
	StyleStory     = "Story"
)

// Example is a row of blogful_examples. Author is nil when the post has no author.
type Example struct {
	ID            int64
	Title         string
	Content       string
	Style         string
	DatePublished time.Time
	Author        *int64
}
