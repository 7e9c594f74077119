package contentControllers

import (
	"coursedesk/middleware"
	"coursedesk/platform"

	"github.com/gofiber/fiber/v2"
)

func ListTopics(c *fiber.Ctx) error {
	page := pageFromQuery(c)
	topics, err := platform.API.Topics(c.UserContext(), middleware.AuthFromCtx(c), page)
	if err != nil {
		return middleware.PlatformErrorResponse(c, err, "Failed to fetch topics")
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Topic list.", fiber.Map{
		"topics":     topics,
		"pagination": page,
	})
}

// GetTopic includes the owning course's name.
func GetTopic(c *fiber.Ctx) error {
	ctx, auth := c.UserContext(), middleware.AuthFromCtx(c)
	topic, err := platform.API.Topic(ctx, auth, idLocal(c))
	if err != nil {
		return middleware.PlatformErrorResponse(c, err, "Failed to fetch topic")
	}
	if topic.ID == 0 {
		return notFound(c, "Topic")
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Topic details.", fiber.Map{
		"topic":       topic,
		"course_name": platform.API.CourseName(ctx, auth, topic.CourseID),
	})
}

func CreateTopic(c *fiber.Ctx) error {
	form, ok := formLocal(c)
	if !ok {
		return invalidForm(c)
	}
	topic, err := platform.API.CreateTopic(c.UserContext(), middleware.AuthFromCtx(c), form)
	if err != nil {
		return middleware.PlatformErrorResponse(c, err, "Failed to create topic")
	}
	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Topic created successfully!", topic)
}

func UpdateTopic(c *fiber.Ctx) error {
	form, ok := formLocal(c)
	if !ok {
		return invalidForm(c)
	}
	ctx, auth, id := c.UserContext(), middleware.AuthFromCtx(c), idLocal(c)
	if err := platform.API.UpdateTopic(ctx, auth, id, form); err != nil {
		return middleware.PlatformErrorResponse(c, err, "Failed to update topic")
	}
	topic, err := platform.API.Topic(ctx, auth, id)
	if err != nil {
		return middleware.PlatformErrorResponse(c, err, "Failed to fetch topic")
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Topic updated successfully!", topic)
}

func DeleteTopic(c *fiber.Ctx) error {
	if err := platform.API.DeleteTopic(c.UserContext(), middleware.AuthFromCtx(c), idLocal(c)); err != nil {
		return middleware.PlatformErrorResponse(c, err, "Failed to delete topic")
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Topic deleted successfully!", nil)
}
