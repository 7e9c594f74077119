package course

// Enrollment links a platform user to a course
type Enrollment struct {
	ID       uint `json:"id"`
	UserID   uint `json:"user_id"`
	CourseID uint `json:"course_id"`
}

// CourseOption is a course row in the enrollment panel
type CourseOption struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}
