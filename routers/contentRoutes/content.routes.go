package contentRoutes

import (
	controllers "coursedesk/controllers/content"
	"coursedesk/middleware"
	commonValidator "coursedesk/validators/common"
	validators "coursedesk/validators/content"

	"github.com/gofiber/fiber/v2"
)

// SetupContentRoutes wires the course tree and catalog screens
func SetupContentRoutes(app *fiber.App) {
	byID := commonValidator.IDParams("id")

	courses := app.Group("/admin/courses", middleware.SessionMiddleware, middleware.CheckAdminTypeMiddleware())
	courses.Get("/", controllers.ListCourses)
	courses.Get("/:id", byID, controllers.GetCourse)
	courses.Post("/", validators.CreateCourse(), controllers.CreateCourse)
	courses.Put("/:id", byID, validators.UpdateCourse(), controllers.UpdateCourse)
	courses.Delete("/:id", byID, controllers.DeleteCourse)

	topics := app.Group("/admin/topics", middleware.SessionMiddleware, middleware.CheckAdminTypeMiddleware())
	topics.Get("/", controllers.ListTopics)
	topics.Get("/:id", byID, controllers.GetTopic)
	topics.Post("/", validators.CreateTopic(), controllers.CreateTopic)
	topics.Put("/:id", byID, validators.UpdateTopic(), controllers.UpdateTopic)
	topics.Delete("/:id", byID, controllers.DeleteTopic)

	chapters := app.Group("/admin/chapters", middleware.SessionMiddleware, middleware.CheckAdminTypeMiddleware())
	chapters.Get("/", controllers.ListChapters)
	chapters.Get("/:id", byID, controllers.GetChapter)
	chapters.Post("/", validators.CreateChapter(), controllers.CreateChapter)
	chapters.Put("/:id", byID, validators.UpdateChapter(), controllers.UpdateChapter)
	chapters.Delete("/:id", byID, controllers.DeleteChapter)

	details := app.Group("/admin/chapter-details", middleware.SessionMiddleware, middleware.CheckAdminTypeMiddleware())
	details.Get("/", controllers.ListChapterDetails)
	details.Post("/", validators.CreateChapterDetail(), controllers.CreateChapterDetail)
	details.Put("/:id", byID, validators.UpdateChapterDetail(), controllers.UpdateChapterDetail)
	details.Delete("/:id", byID, controllers.DeleteChapterDetail)

	contents := app.Group("/admin/item-contents", middleware.SessionMiddleware, middleware.CheckAdminTypeMiddleware())
	contents.Get("/", controllers.ListItemContents)
	contents.Get("/submissions", controllers.ListSubmissions)
	contents.Get("/:id", byID, controllers.GetItemContent)
	contents.Post("/", validators.CreateItemContent(), controllers.CreateItemContent)
	contents.Put("/:id", byID, validators.UpdateItemContent(), controllers.UpdateItemContent)
	contents.Delete("/:id", byID, controllers.DeleteItemContent)

	audios := app.Group("/admin/item-audios", middleware.SessionMiddleware, middleware.CheckAdminTypeMiddleware())
	audios.Delete("/:id", byID, controllers.DeleteItemAudio)

	categories := app.Group("/admin/categories", middleware.SessionMiddleware, middleware.CheckAdminTypeMiddleware())
	categories.Get("/", controllers.ListCategories)
	categories.Post("/", validators.CreateCategory(), controllers.CreateCategory)
	categories.Put("/:id", byID, validators.UpdateCategory(), controllers.UpdateCategory)
	categories.Delete("/:id", byID, controllers.DeleteCategory)

	banners := app.Group("/admin/banners", middleware.SessionMiddleware, middleware.CheckAdminTypeMiddleware())
	banners.Get("/", controllers.ListBanners)
	banners.Post("/", validators.CreateBanner(), controllers.CreateBanner)
	banners.Put("/:id", byID, validators.UpdateBanner(), controllers.UpdateBanner)
	banners.Delete("/:id", byID, controllers.DeleteBanner)
}
