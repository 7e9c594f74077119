package course

import "coursedesk/models"

// Course is a sellable course as returned by /api/courses
type Course struct {
	ID                uint          `json:"id"`
	Name              string        `json:"name"`
	Title             string        `json:"title,omitempty"` // some listings send title instead of name
	Image             string        `json:"image"`
	Description       string        `json:"description"`
	Price             models.Number `json:"price"`
	DiscountedPrice   models.Number `json:"discounted_price"`
	CourseDuration    string        `json:"course_duration"`
	Time              string        `json:"time"`
	VideoLecture      models.Number `json:"video_lecture"`
	PdfLecture        models.Number `json:"pdf_lecture"`
	LiveClass         models.Number `json:"live_class"`
	LearnFromCourse   string        `json:"learn_from_course"`
	CourseCertificate string        `json:"course_certificate"`
	CategoryID        uint          `json:"category_id"`
	CategoryName      string        `json:"category_name"`
	InstructorID      uint          `json:"instructor_id"`
	InstructorName    string        `json:"instructor_name"`
}

// DisplayName returns name, then title, then a placeholder.
func (c Course) DisplayName() string {
	if c.Name != "" {
		return c.Name
	}
	if c.Title != "" {
		return c.Title
	}
	return "Unnamed Course"
}

// Category groups courses
type Category struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Image string `json:"image"`
}

// Banner is a promotional image shown in the app
type Banner struct {
	ID          uint   `json:"id"`
	Image       string `json:"image"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Link        string `json:"link"`
	Active      bool   `json:"active"`
}
