package contentControllers

import (
	"coursedesk/middleware"
	"coursedesk/models/course"
	"coursedesk/platform"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/sync/errgroup"
)

func ListChapters(c *fiber.Ctx) error {
	page := pageFromQuery(c)
	chapters, err := platform.API.Chapters(c.UserContext(), middleware.AuthFromCtx(c), page)
	if err != nil {
		return middleware.PlatformErrorResponse(c, err, "Failed to fetch chapters")
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Chapter list.", fiber.Map{
		"chapters":   chapters,
		"pagination": page,
	})
}

// GetChapter returns the chapter with its topic title and its lessons. The
// topic title is best effort; the lessons are not.
func GetChapter(c *fiber.Ctx) error {
	ctx, auth := c.UserContext(), middleware.AuthFromCtx(c)
	chapter, err := platform.API.Chapter(ctx, auth, idLocal(c))
	if err != nil {
		return middleware.PlatformErrorResponse(c, err, "Failed to fetch chapter")
	}
	if chapter.ID == 0 {
		return notFound(c, "Chapter")
	}

	var (
		topicTitle = "Unknown topic"
		details    []course.ChapterDetail
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if chapter.TopicID == 0 {
			return nil
		}
		if topic, err := platform.API.Topic(gctx, auth, chapter.TopicID); err == nil && topic.ID != 0 {
			topicTitle = topic.DisplayName()
		}
		return nil
	})
	g.Go(func() error {
		var err error
		details, err = platform.API.DetailsForChapter(gctx, auth, chapter.ID)
		return err
	})
	if err := g.Wait(); err != nil {
		return middleware.PlatformErrorResponse(c, err, "Failed to fetch chapter details")
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Chapter details.", fiber.Map{
		"chapter":     chapter,
		"topic_title": topicTitle,
		"details":     details,
	})
}

func CreateChapter(c *fiber.Ctx) error {
	form, ok := formLocal(c)
	if !ok {
		return invalidForm(c)
	}
	chapter, err := platform.API.CreateChapter(c.UserContext(), middleware.AuthFromCtx(c), form)
	if err != nil {
		return middleware.PlatformErrorResponse(c, err, "Failed to create chapter")
	}
	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Chapter created successfully!", chapter)
}

func UpdateChapter(c *fiber.Ctx) error {
	form, ok := formLocal(c)
	if !ok {
		return invalidForm(c)
	}
	ctx, auth, id := c.UserContext(), middleware.AuthFromCtx(c), idLocal(c)
	if err := platform.API.UpdateChapter(ctx, auth, id, form); err != nil {
		return middleware.PlatformErrorResponse(c, err, "Failed to update chapter")
	}
	chapter, err := platform.API.Chapter(ctx, auth, id)
	if err != nil {
		return middleware.PlatformErrorResponse(c, err, "Failed to fetch chapter")
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Chapter updated successfully!", chapter)
}

func DeleteChapter(c *fiber.Ctx) error {
	if err := platform.API.DeleteChapter(c.UserContext(), middleware.AuthFromCtx(c), idLocal(c)); err != nil {
		return middleware.PlatformErrorResponse(c, err, "Failed to delete chapter")
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Chapter deleted successfully!", nil)
}

// ListChapterDetails lists every lesson, or one chapter's lessons in serial
// order when ?chapter_id is given.
func ListChapterDetails(c *fiber.Ctx) error {
	ctx, auth := c.UserContext(), middleware.AuthFromCtx(c)

	if chapterID := c.QueryInt("chapter_id", 0); chapterID > 0 {
		details, err := platform.API.DetailsForChapter(ctx, auth, uint(chapterID))
		if err != nil {
			return middleware.PlatformErrorResponse(c, err, "Failed to fetch chapter details")
		}
		return middleware.JsonResponse(c, fiber.StatusOK, true, "Chapter detail list.", fiber.Map{"details": details})
	}

	page := pageFromQuery(c)
	details, err := platform.API.ChapterDetails(ctx, auth, page)
	if err != nil {
		return middleware.PlatformErrorResponse(c, err, "Failed to fetch chapter details")
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Chapter detail list.", fiber.Map{
		"details":    details,
		"pagination": page,
	})
}

func CreateChapterDetail(c *fiber.Ctx) error {
	form, ok := formLocal(c)
	if !ok {
		return invalidForm(c)
	}
	detail, err := platform.API.CreateChapterDetail(c.UserContext(), middleware.AuthFromCtx(c), form)
	if err != nil {
		return middleware.PlatformErrorResponse(c, err, "Failed to create chapter detail")
	}
	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Chapter detail created successfully!", detail)
}

func UpdateChapterDetail(c *fiber.Ctx) error {
	form, ok := formLocal(c)
	if !ok {
		return invalidForm(c)
	}
	ctx, auth, id := c.UserContext(), middleware.AuthFromCtx(c), idLocal(c)
	if err := platform.API.UpdateChapterDetail(ctx, auth, id, form); err != nil {
		return middleware.PlatformErrorResponse(c, err, "Failed to update chapter detail")
	}
	detail, err := platform.API.ChapterDetail(ctx, auth, id)
	if err != nil {
		return middleware.PlatformErrorResponse(c, err, "Failed to fetch chapter detail")
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Chapter detail updated successfully!", detail)
}

func DeleteChapterDetail(c *fiber.Ctx) error {
	if err := platform.API.DeleteChapterDetail(c.UserContext(), middleware.AuthFromCtx(c), idLocal(c)); err != nil {
		return middleware.PlatformErrorResponse(c, err, "Failed to delete chapter detail")
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Chapter detail deleted successfully!", nil)
}
