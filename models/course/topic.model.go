package course

// Topic belongs to a course
type Topic struct {
	ID          uint   `json:"id"`
	CourseID    uint   `json:"course_id"`
	Title       string `json:"title"`
	Name        string `json:"name,omitempty"`
	SerialID    int    `json:"serial_id"`
	Description string `json:"description"`
	PdfLink     string `json:"pdf_link"`
	Other       string `json:"other"`
	Image       string `json:"image"`
	Video       string `json:"video"`
}

// DisplayName prefers the title and falls back to name.
func (t Topic) DisplayName() string {
	if t.Title != "" {
		return t.Title
	}
	if t.Name != "" {
		return t.Name
	}
	return "Unknown topic"
}

// Chapter belongs to a topic and owns chapter details
type Chapter struct {
	ID      uint   `json:"id"`
	TopicID uint   `json:"topic_id"`
	Title   string `json:"title"`
	Image   string `json:"image"`
}

// ChapterDetail is a lesson item inside a chapter
type ChapterDetail struct {
	ID          uint   `json:"id"`
	ChapterID   uint   `json:"chapter_id"`
	Title       string `json:"title"`
	SerialID    int    `json:"serial_id"`
	Description string `json:"description"`
	PdfLink     string `json:"pdf_link"`
	Other       string `json:"other"`
	Image       string `json:"image"`
	Video       string `json:"video"`
}
