package contentValidator

import "github.com/gofiber/fiber/v2"

var courseForm = formSpec{
	fields: []formField{
		{name: "name", label: "Name", required: true},
		{name: "description", label: "Description"},
		{name: "price", label: "Price", kind: numberField, required: true},
		{name: "discounted_price", label: "Discounted price", kind: numberField},
		{name: "course_duration", label: "Course duration"},
		{name: "time", label: "Time"},
		{name: "video_lecture", label: "Video lecture", kind: numberField},
		{name: "pdf_lecture", label: "PDF lecture", kind: numberField},
		{name: "live_class", label: "Live class", kind: numberField},
		{name: "learn_from_course", label: "Learn from course"},
		{name: "course_certificate", label: "Course certificate"},
		{name: "category_id", label: "Category", kind: idField, required: true},
		{name: "instructor_id", label: "Instructor", kind: idField},
	},
	files: []string{"image"},
}

var topicForm = formSpec{
	fields: []formField{
		{name: "course_id", label: "Course", kind: idField, required: true},
		{name: "title", label: "Title", required: true},
		{name: "serial_id", label: "Serial ID", kind: numberField, required: true},
		{name: "description", label: "Description"},
		{name: "pdf_link", label: "PDF link"},
		{name: "other", label: "Other"},
	},
	files: []string{"image", "video"},
}

var chapterForm = formSpec{
	fields: []formField{
		{name: "topic_id", label: "Topic", kind: idField, required: true},
		{name: "title", label: "Title", required: true},
	},
	files: []string{"image"},
}

var chapterDetailForm = formSpec{
	fields: []formField{
		{name: "chapter_id", label: "Chapter", kind: idField, required: true},
		{name: "title", label: "Title", required: true},
		{name: "serial_id", label: "Serial ID", kind: numberField, required: true},
		{name: "description", label: "Description"},
		{name: "pdf_link", label: "PDF link"},
		{name: "other", label: "Other"},
	},
	files: []string{"image", "video"},
}

var categoryForm = formSpec{
	fields: []formField{
		{name: "name", label: "Name", required: true},
	},
	files: []string{"image"},
}

var bannerForm = formSpec{
	fields: []formField{
		{name: "title", label: "Title"},
		{name: "description", label: "Description"},
		{name: "link", label: "Link"},
	},
	files:         []string{"image"},
	requiredFiles: []string{"image"},
}

func CreateCourse() fiber.Handler { return courseForm.handler(true) }
func UpdateCourse() fiber.Handler { return courseForm.handler(false) }

func CreateTopic() fiber.Handler { return topicForm.handler(true) }
func UpdateTopic() fiber.Handler { return topicForm.handler(false) }

func CreateChapter() fiber.Handler { return chapterForm.handler(true) }
func UpdateChapter() fiber.Handler { return chapterForm.handler(false) }

func CreateChapterDetail() fiber.Handler { return chapterDetailForm.handler(true) }
func UpdateChapterDetail() fiber.Handler { return chapterDetailForm.handler(false) }

func CreateCategory() fiber.Handler { return categoryForm.handler(true) }
func UpdateCategory() fiber.Handler { return categoryForm.handler(false) }

func CreateBanner() fiber.Handler { return bannerForm.handler(true) }
func UpdateBanner() fiber.Handler { return bannerForm.handler(false) }
