package contentControllers

import (
	"coursedesk/database"
	"coursedesk/middleware"
	"coursedesk/models"
	"coursedesk/platform"
	contentValidator "coursedesk/validators/content"
	"encoding/json"
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// recordSubmission stores one run in the submission ledger. Ledger failures
// are logged only; the platform state is already final.
func recordSubmission(auth platform.Auth, submission *contentValidator.ItemContentSubmission, outcome *platform.SubmissionOutcome, err error) {
	if errors.Is(err, platform.ErrMissingToken) {
		return
	}

	translations, _ := json.Marshal(submission.Form.Translations)
	if submission.Form.Translations == nil {
		translations = []byte("[]")
	}

	row := models.ContentSubmission{
		SubmissionID:     uuid.NewString(),
		SubmittedBy:      auth.UserID,
		ChapterDetailsID: submission.Form.ChapterDetailsID,
		Content:          submission.Form.Content,
		Translations:     datatypes.JSON(translations),
		Status:           models.SubmissionComplete,
	}

	if outcome == nil {
		row.Status = models.SubmissionFailed
		if err != nil {
			_, row.Error = middleware.PlatformErrorStatus(err, err.Error())
		}
	} else {
		row.ItemContentID = outcome.ParentID
		if err != nil || outcome.Partial() {
			row.Status = models.SubmissionPartial
		}
		if err != nil {
			row.Error = err.Error()
		}
		for _, a := range outcome.Audios {
			row.Audios = append(row.Audios, models.AudioUploadResult{
				EntryIndex: a.Index,
				Language:   a.Language,
				FileName:   a.FileName,
				Status:     a.Status,
				AudioID:    a.AudioID,
				Error:      a.Error,
			})
		}
	}

	if err := database.Database.Db.Create(&row).Error; err != nil {
		log.Printf("[SUBMISSION] failed to record submission: %v", err)
	}
}

// ListSubmissions pages through the ledger, newest first. ?status filters by
// COMPLETE, PARTIAL or FAILED.
func ListSubmissions(c *fiber.Ctx) error {
	page := pageFromQuery(c)
	offset := (page.Page - 1) * page.Limit

	status := c.Query("status")
	scope := func(db *gorm.DB) *gorm.DB {
		if status != "" {
			return db.Where("status = ?", status)
		}
		return db
	}

	var total int64
	if err := database.Database.Db.Model(&models.ContentSubmission{}).Scopes(scope).Count(&total).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to load submissions!", nil)
	}

	var submissions []models.ContentSubmission
	if err := database.Database.Db.Scopes(scope).Preload("Audios").
		Order("id DESC").
		Offset(offset).
		Limit(page.Limit).
		Find(&submissions).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to load submissions!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Submission list.", fiber.Map{
		"submissions": submissions,
		"pagination": fiber.Map{
			"total": total,
			"page":  page.Page,
			"limit": page.Limit,
		},
	})
}
