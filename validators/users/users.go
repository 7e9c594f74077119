package usersValidator

import (
	commonValidator "coursedesk/validators/common"

	"github.com/gofiber/fiber/v2"
)

type NotifyRequest struct {
	Description string `json:"description" validate:"required,max=1000"`
}

type BroadcastRequest struct {
	Message string `json:"message" validate:"required,max=1000"`
}

func NotifyUser() fiber.Handler {
	return commonValidator.BodyValidator[NotifyRequest]("validatedNotification")
}

func Broadcast() fiber.Handler {
	return commonValidator.BodyValidator[BroadcastRequest]("validatedBroadcast")
}

func UserID() fiber.Handler {
	return commonValidator.IDParams("id")
}

func ToggleEnrollment() fiber.Handler {
	return commonValidator.IDParams("id", "course_id")
}
