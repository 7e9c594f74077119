package usersControllers

import (
	"coursedesk/middleware"
	"coursedesk/platform"

	"github.com/gofiber/fiber/v2"
)

func panelResponse(panel *platform.EnrollmentPanel) fiber.Map {
	return fiber.Map{
		"user_id":      panel.UserID,
		"courses":      panel.Rows(),
		"enrolled_ids": panel.EnrolledIDs(),
	}
}

func GetEnrollments(c *fiber.Ctx) error {
	userID, _ := c.Locals("id").(uint)
	panel, err := platform.API.LoadEnrollmentPanel(c.UserContext(), middleware.AuthFromCtx(c), userID)
	if err != nil {
		return middleware.PlatformErrorResponse(c, err, "Failed to load courses")
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Enrollment panel.", panelResponse(panel))
}

// ToggleEnrollment flips the user's enrollment in one catalog course and
// answers with the updated panel.
func ToggleEnrollment(c *fiber.Ctx) error {
	userID, _ := c.Locals("id").(uint)
	courseID, _ := c.Locals("course_id").(uint)
	ctx := c.UserContext()

	panel, err := platform.API.LoadEnrollmentPanelForToggle(ctx, middleware.AuthFromCtx(c), userID)
	if err != nil {
		return middleware.PlatformErrorResponse(c, err, "Failed to load enrollments")
	}

	known := false
	for _, crs := range panel.Courses {
		if crs.ID == courseID {
			known = true
			break
		}
	}
	if !known {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	message, err := panel.Toggle(ctx, courseID)
	if err != nil {
		return middleware.PlatformErrorResponse(c, err, "Failed to update enrollment")
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, message, panelResponse(panel))
}
