package contentControllers

import (
	"coursedesk/middleware"
	"coursedesk/platform"

	"github.com/gofiber/fiber/v2"
)

func ListCategories(c *fiber.Ctx) error {
	page := pageFromQuery(c)
	categories, err := platform.API.Categories(c.UserContext(), middleware.AuthFromCtx(c), page)
	if err != nil {
		return middleware.PlatformErrorResponse(c, err, "Failed to fetch categories")
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Category list.", fiber.Map{
		"categories": categories,
		"pagination": page,
	})
}

func CreateCategory(c *fiber.Ctx) error {
	form, ok := formLocal(c)
	if !ok {
		return invalidForm(c)
	}
	category, err := platform.API.CreateCategory(c.UserContext(), middleware.AuthFromCtx(c), form)
	if err != nil {
		return middleware.PlatformErrorResponse(c, err, "Failed to create category")
	}
	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Category created successfully!", category)
}

func UpdateCategory(c *fiber.Ctx) error {
	form, ok := formLocal(c)
	if !ok {
		return invalidForm(c)
	}
	ctx, auth, id := c.UserContext(), middleware.AuthFromCtx(c), idLocal(c)
	if err := platform.API.UpdateCategory(ctx, auth, id, form); err != nil {
		return middleware.PlatformErrorResponse(c, err, "Failed to update category")
	}
	category, err := platform.API.Category(ctx, auth, id)
	if err != nil {
		return middleware.PlatformErrorResponse(c, err, "Failed to fetch category")
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Category updated successfully!", category)
}

func DeleteCategory(c *fiber.Ctx) error {
	if err := platform.API.DeleteCategory(c.UserContext(), middleware.AuthFromCtx(c), idLocal(c)); err != nil {
		return middleware.PlatformErrorResponse(c, err, "Failed to delete category")
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Category deleted successfully!", nil)
}

func ListBanners(c *fiber.Ctx) error {
	banners, err := platform.API.Banners(c.UserContext(), middleware.AuthFromCtx(c))
	if err != nil {
		return middleware.PlatformErrorResponse(c, err, "Failed to fetch banners")
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Banner list.", fiber.Map{"banners": banners})
}

func CreateBanner(c *fiber.Ctx) error {
	form, ok := formLocal(c)
	if !ok {
		return invalidForm(c)
	}
	banner, err := platform.API.CreateBanner(c.UserContext(), middleware.AuthFromCtx(c), form)
	if err != nil {
		return middleware.PlatformErrorResponse(c, err, "Failed to create banner")
	}
	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Banner created successfully!", banner)
}

// UpdateBanner answers with the refreshed banner list; the platform has no
// single-banner read.
func UpdateBanner(c *fiber.Ctx) error {
	form, ok := formLocal(c)
	if !ok {
		return invalidForm(c)
	}
	ctx, auth, id := c.UserContext(), middleware.AuthFromCtx(c), idLocal(c)
	if err := platform.API.UpdateBanner(ctx, auth, id, form); err != nil {
		return middleware.PlatformErrorResponse(c, err, "Failed to update banner")
	}
	banners, err := platform.API.Banners(ctx, auth)
	if err != nil {
		return middleware.PlatformErrorResponse(c, err, "Failed to fetch banners")
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Banner updated successfully!", fiber.Map{"banners": banners})
}

func DeleteBanner(c *fiber.Ctx) error {
	if err := platform.API.DeleteBanner(c.UserContext(), middleware.AuthFromCtx(c), idLocal(c)); err != nil {
		return middleware.PlatformErrorResponse(c, err, "Failed to delete banner")
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Banner deleted successfully!", nil)
}
