package contentControllers

import (
	"coursedesk/middleware"
	"coursedesk/platform"
	contentValidator "coursedesk/validators/content"
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
)

func ListItemContents(c *fiber.Ctx) error {
	page := pageFromQuery(c)
	contents, err := platform.API.ItemContents(c.UserContext(), middleware.AuthFromCtx(c), page)
	if err != nil {
		return middleware.PlatformErrorResponse(c, err, "Failed to fetch item contents")
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Item content list.", fiber.Map{
		"contents":   contents,
		"pagination": page,
	})
}

// GetItemContent returns the content with the audios it owns.
func GetItemContent(c *fiber.Ctx) error {
	content, err := platform.API.ItemContent(c.UserContext(), middleware.AuthFromCtx(c), idLocal(c))
	if err != nil {
		return middleware.PlatformErrorResponse(c, err, "Failed to fetch item content")
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Item content details.", content)
}

// CreateItemContent runs the content + audio submission and records it.
// A rejected parent echoes the submitted text so the form can be restored.
func CreateItemContent(c *fiber.Ctx) error {
	submission, ok := c.Locals("validatedSubmission").(*contentValidator.ItemContentSubmission)
	if !ok {
		return invalidForm(c)
	}
	auth := middleware.AuthFromCtx(c)

	outcome, err := platform.API.SubmitItemContent(c.UserContext(), auth, submission.Form, submission.Entries)
	recordSubmission(auth, submission, outcome, err)

	switch {
	case err == nil && !outcome.Partial():
		return middleware.JsonResponse(c, fiber.StatusCreated, true, "Item content & audios added successfully!", outcome)
	case err == nil || errors.Is(err, platform.ErrMissingParentID):
		return middleware.JsonResponse(c, fiber.StatusMultiStatus, false, partialMessage(outcome, err), outcome)
	}

	status, message := middleware.PlatformErrorStatus(err, "Something went wrong while saving data")
	return middleware.JsonResponse(c, status, false, message, fiber.Map{
		"form": fiber.Map{
			"chapter_details_id":   submission.Form.ChapterDetailsID,
			"content":              submission.Form.Content,
			"content_and_language": submission.Form.Translations,
			"audio_languages":      audioLanguages(submission.Entries),
		},
	})
}

func partialMessage(outcome *platform.SubmissionOutcome, err error) string {
	if errors.Is(err, platform.ErrMissingParentID) {
		return "Item content saved, but the platform returned no id so audios were not uploaded"
	}
	failed := 0
	for _, a := range outcome.Audios {
		if a.Status == platform.AudioFailed {
			failed++
		}
	}
	if failed == 1 {
		return "Item content saved, but 1 audio failed to upload"
	}
	return "Item content saved, but some audios failed to upload"
}

// audioLanguages keys each language by its form row so gaps survive the echo.
func audioLanguages(entries []platform.AudioEntry) map[string]string {
	languages := make(map[string]string, len(entries))
	for _, e := range entries {
		languages[strconv.Itoa(e.Row)] = e.Language
	}
	return languages
}

// UpdateItemContent answers with the refetched content and its audios.
func UpdateItemContent(c *fiber.Ctx) error {
	form, ok := formLocal(c)
	if !ok {
		return invalidForm(c)
	}
	ctx, auth, id := c.UserContext(), middleware.AuthFromCtx(c), idLocal(c)
	if err := platform.API.UpdateItemContent(ctx, auth, id, form); err != nil {
		return middleware.PlatformErrorResponse(c, err, "Failed to update item content")
	}
	content, err := platform.API.ItemContent(ctx, auth, id)
	if err != nil {
		return middleware.PlatformErrorResponse(c, err, "Failed to fetch item content")
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Item content updated successfully!", content)
}

func DeleteItemContent(c *fiber.Ctx) error {
	if err := platform.API.DeleteItemContent(c.UserContext(), middleware.AuthFromCtx(c), idLocal(c)); err != nil {
		return middleware.PlatformErrorResponse(c, err, "Failed to delete item content")
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Item content deleted successfully!", nil)
}

func DeleteItemAudio(c *fiber.Ctx) error {
	if err := platform.API.DeleteItemAudio(c.UserContext(), middleware.AuthFromCtx(c), idLocal(c)); err != nil {
		return middleware.PlatformErrorResponse(c, err, "Failed to delete audio")
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Audio deleted successfully!", nil)
}
