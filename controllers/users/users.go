package usersControllers

import (
	"coursedesk/middleware"
	"coursedesk/models"
	"coursedesk/platform"
	"coursedesk/utils"
	usersValidator "coursedesk/validators/users"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
)

func userRows(c *fiber.Ctx) ([]models.UserRow, error) {
	users, err := platform.API.ListUsers(c.UserContext(), middleware.AuthFromCtx(c))
	if err != nil {
		return nil, err
	}
	rows := make([]models.UserRow, 0, len(users))
	for _, u := range users {
		rows = append(rows, u.Row())
	}
	return utils.SearchUsers(rows, c.Query("q")), nil
}

// ListUsers returns the display rows, filtered by ?q when present.
func ListUsers(c *fiber.Ctx) error {
	rows, err := userRows(c)
	if err != nil {
		return middleware.PlatformErrorResponse(c, err, "Failed to fetch users")
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "User list.", fiber.Map{
		"users": rows,
		"total": len(rows),
	})
}

func ExportUsers(c *fiber.Ctx) error {
	rows, err := userRows(c)
	if err != nil {
		return middleware.PlatformErrorResponse(c, err, "Failed to fetch users")
	}
	buf, err := utils.UsersWorkbook(rows)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to build export", nil)
	}

	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="users-%s.xlsx"`, time.Now().Format("20060102")))
	return c.Send(buf.Bytes())
}

func NotifyUser(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedNotification").(*usersValidator.NotifyRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}
	userID, _ := c.Locals("id").(uint)

	if err := platform.API.NotifyUser(c.UserContext(), middleware.AuthFromCtx(c), userID, reqData.Description); err != nil {
		return middleware.PlatformErrorResponse(c, err, "Failed to send notification")
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Notification sent successfully!", nil)
}

func Broadcast(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedBroadcast").(*usersValidator.BroadcastRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	if err := platform.API.Broadcast(c.UserContext(), middleware.AuthFromCtx(c), reqData.Message); err != nil {
		return middleware.PlatformErrorResponse(c, err, "Failed to send broadcast")
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Broadcast sent successfully!", nil)
}
