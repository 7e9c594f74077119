package contentControllers

import (
	"coursedesk/config"
	"coursedesk/middleware"
	"coursedesk/platform"

	"github.com/gofiber/fiber/v2"
)

// pageFromQuery reads ?page and ?limit, defaulting to the first page.
func pageFromQuery(c *fiber.Ctx) platform.Page {
	page := c.QueryInt("page", 1)
	limit := c.QueryInt("limit", config.AppConfig.DefaultPageLimit)
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = config.AppConfig.DefaultPageLimit
	}
	return platform.Page{Page: page, Limit: limit}
}

func idLocal(c *fiber.Ctx) uint {
	id, _ := c.Locals("id").(uint)
	return id
}

func formLocal(c *fiber.Ctx) (platform.Form, bool) {
	form, ok := c.Locals("validatedForm").(platform.Form)
	return form, ok
}

func invalidForm(c *fiber.Ctx) error {
	return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
}

func notFound(c *fiber.Ctx, noun string) error {
	return middleware.JsonResponse(c, fiber.StatusNotFound, false, noun+" not found!", nil)
}
