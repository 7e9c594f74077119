package contentValidator

import (
	"coursedesk/middleware"
	"coursedesk/models/course"
	"coursedesk/platform"
	"coursedesk/utils"
	"encoding/json"
	"log"
	"mime/multipart"
	"sort"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// ItemContentSubmission is the validated create-item-content request
type ItemContentSubmission struct {
	Form    platform.ItemContentForm
	Entries []platform.AudioEntry
}

// audio rows arrive as audio_<n> (file) and audio_language_<n> (text); rows
// may have gaps and either half may be missing.
func audioRows(values map[string]string, files map[string]*multipart.FileHeader) ([]int, map[int]string, map[int]*multipart.FileHeader) {
	languages := make(map[int]string)
	headers := make(map[int]*multipart.FileHeader)
	seen := make(map[int]bool)

	for key, value := range values {
		if idx, ok := rowIndex(key, "audio_language_"); ok {
			languages[idx] = value
			seen[idx] = true
		}
	}
	for key, header := range files {
		if idx, ok := rowIndex(key, "audio_"); ok {
			headers[idx] = header
			seen[idx] = true
		}
	}

	indexes := make([]int, 0, len(seen))
	for idx := range seen {
		indexes = append(indexes, idx)
	}
	sort.Ints(indexes)
	return indexes, languages, headers
}

func rowIndex(key, prefix string) (int, bool) {
	if !strings.HasPrefix(key, prefix) {
		return 0, false
	}
	idx, err := strconv.Atoi(key[len(prefix):])
	if err != nil || idx < 0 {
		return 0, false
	}
	return idx, true
}

// CreateItemContent validates the parent fields and collects the audio rows.
// Incomplete rows are kept so the sequencer can report them as skipped.
func CreateItemContent() fiber.Handler {
	return func(c *fiber.Ctx) error {
		values, files := requestForm(c)
		errors := make(map[string]string)

		chapterDetailsID, err := strconv.ParseUint(strings.TrimSpace(values["chapter_details_id"]), 10, 64)
		if err != nil || chapterDetailsID == 0 {
			errors["chapter_details_id"] = "Please select a chapter detail"
		}
		content := values["content"]
		if strings.TrimSpace(content) == "" {
			errors["content"] = "Content is required"
		}

		var translations []course.LanguageContent
		if raw := strings.TrimSpace(values["content_and_language"]); raw != "" {
			if !json.Valid([]byte(raw)) {
				errors["content_and_language"] = "Translations must be a JSON array!"
			} else {
				translations = course.NormalizeLanguageContent(json.RawMessage(raw))
			}
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		indexes, languages, headers := audioRows(values, files)
		uploads := make(map[string]*multipart.FileHeader)
		for _, name := range []string{"image", "video"} {
			if header, ok := files[name]; ok {
				uploads[name] = header
			}
		}
		for _, idx := range indexes {
			if header := headers[idx]; header != nil {
				uploads["audio_"+strconv.Itoa(idx)] = header
			}
		}

		opened, closeAll, err := utils.OpenUploads(uploads)
		defer closeAll()
		if err != nil {
			log.Printf("[UPLOAD] failed to open upload: %v", err)
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Failed to read uploaded file!", nil)
		}

		submission := &ItemContentSubmission{
			Form: platform.ItemContentForm{
				ChapterDetailsID: uint(chapterDetailsID),
				Content:          content,
				Translations:     translations,
				Image:            opened["image"],
				Video:            opened["video"],
			},
			Entries: make([]platform.AudioEntry, 0, len(indexes)),
		}
		for _, idx := range indexes {
			submission.Entries = append(submission.Entries, platform.AudioEntry{
				Row:      idx,
				Language: languages[idx],
				File:     opened["audio_"+strconv.Itoa(idx)],
			})
		}

		c.Locals("validatedSubmission", submission)
		return c.Next()
	}
}

var itemContentUpdateForm = formSpec{
	fields: []formField{
		{name: "content", label: "Content", required: true},
		{name: "content_and_language", label: "Translations"},
		{name: "language", label: "Language"},
	},
	files: []string{"image", "video", "audio"},
}

// UpdateItemContent accepts one extra audio; audio and language must come
// together or not at all.
func UpdateItemContent() fiber.Handler {
	inner := itemContentUpdateForm.handler(false)
	return func(c *fiber.Ctx) error {
		values, files := requestForm(c)
		_, hasAudio := files["audio"]
		hasLanguage := strings.TrimSpace(values["language"]) != ""
		if hasAudio != hasLanguage {
			field := "language"
			if !hasAudio {
				field = "audio"
			}
			return middleware.ValidationErrorResponse(c, map[string]string{
				field: "Audio and language must be provided together!",
			})
		}
		return inner(c)
	}
}
