package contentControllers

import (
	"coursedesk/middleware"
	"coursedesk/platform"

	"github.com/gofiber/fiber/v2"
)

func ListCourses(c *fiber.Ctx) error {
	page := pageFromQuery(c)
	courses, err := platform.API.Courses(c.UserContext(), middleware.AuthFromCtx(c), page)
	if err != nil {
		return middleware.PlatformErrorResponse(c, err, "Failed to fetch courses")
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course list.", fiber.Map{
		"courses":    courses,
		"pagination": page,
	})
}

func GetCourse(c *fiber.Ctx) error {
	course, err := platform.API.Course(c.UserContext(), middleware.AuthFromCtx(c), idLocal(c))
	if err != nil {
		return middleware.PlatformErrorResponse(c, err, "Failed to fetch course")
	}
	if course.ID == 0 {
		return notFound(c, "Course")
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course details.", course)
}

func CreateCourse(c *fiber.Ctx) error {
	form, ok := formLocal(c)
	if !ok {
		return invalidForm(c)
	}
	course, err := platform.API.CreateCourse(c.UserContext(), middleware.AuthFromCtx(c), form)
	if err != nil {
		return middleware.PlatformErrorResponse(c, err, "Failed to create course")
	}
	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Course created successfully!", course)
}

// UpdateCourse answers with the refetched course.
func UpdateCourse(c *fiber.Ctx) error {
	form, ok := formLocal(c)
	if !ok {
		return invalidForm(c)
	}
	ctx, auth, id := c.UserContext(), middleware.AuthFromCtx(c), idLocal(c)
	if err := platform.API.UpdateCourse(ctx, auth, id, form); err != nil {
		return middleware.PlatformErrorResponse(c, err, "Failed to update course")
	}
	course, err := platform.API.Course(ctx, auth, id)
	if err != nil {
		return middleware.PlatformErrorResponse(c, err, "Failed to fetch course")
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course updated successfully!", course)
}

func DeleteCourse(c *fiber.Ctx) error {
	if err := platform.API.DeleteCourse(c.UserContext(), middleware.AuthFromCtx(c), idLocal(c)); err != nil {
		return middleware.PlatformErrorResponse(c, err, "Failed to delete course")
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course deleted successfully!", nil)
}
