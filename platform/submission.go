package platform

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"golang.org/x/sync/errgroup"

	"coursedesk/models"
	"coursedesk/models/course"
)

// ErrMissingParentID means the platform accepted the item content but its
// answer carried no id, so no audio could be attached.
var ErrMissingParentID = errors.New("parent content id missing from response")

const (
	AudioUploaded = "uploaded"
	AudioFailed   = "failed"
	AudioSkipped  = "skipped"
)

// ItemContentForm is the parent half of a submission
type ItemContentForm struct {
	ChapterDetailsID uint
	Content          string
	Translations     []course.LanguageContent
	Image            *Upload
	Video            *Upload
}

// AudioEntry is one row of the audio list. Row is the form's row number,
// which may have gaps. Rows without a file or a language are skipped.
type AudioEntry struct {
	Row      int
	Language string
	File     *Upload
}

func (e AudioEntry) complete() bool {
	return e.File != nil && e.File.Reader != nil && strings.TrimSpace(e.Language) != ""
}

// AudioResult is the outcome of one audio entry, in entry order. Index is
// the entry's form row.
type AudioResult struct {
	Index    int    `json:"index"`
	Language string `json:"language"`
	FileName string `json:"file_name"`
	Status   string `json:"status"`
	AudioID  uint   `json:"audio_id,omitempty"`
	Error    string `json:"error,omitempty"`
}

type SubmissionOutcome struct {
	ParentID uint          `json:"parent_id"`
	Audios   []AudioResult `json:"audios"`
}

// Partial reports whether the parent exists but at least one audio failed.
func (o *SubmissionOutcome) Partial() bool {
	for _, a := range o.Audios {
		if a.Status == AudioFailed {
			return true
		}
	}
	return false
}

func (o *SubmissionOutcome) Uploaded() int {
	n := 0
	for _, a := range o.Audios {
		if a.Status == AudioUploaded {
			n++
		}
	}
	return n
}

// SubmitItemContent creates the parent content, then uploads every complete
// audio entry against the new id concurrently. A rejected parent returns its
// *APIError and no audio request is made. Audio failures do not roll the
// parent back; they are reported per entry in the outcome.
func (c *Client) SubmitItemContent(ctx context.Context, auth Auth, form ItemContentForm, entries []AudioEntry) (*SubmissionOutcome, error) {
	if !auth.Valid() {
		return nil, ErrMissingToken
	}

	translations := form.Translations
	if translations == nil {
		translations = []course.LanguageContent{}
	}
	encoded, err := json.Marshal(translations)
	if err != nil {
		return nil, err
	}

	fields := map[string]string{
		"chapter_details_id":   formatID(form.ChapterDetailsID),
		"content":              form.Content,
		"content_and_language": string(encoded),
	}
	files := map[string]*Upload{"image": form.Image, "video": form.Video}

	body, err := c.sendMultipart(ctx, c.api, auth, http.MethodPost, "/api/item-contents", fields, files, "Failed to upload content")
	if err != nil {
		return nil, err
	}

	outcome := &SubmissionOutcome{
		ParentID: parentID(body),
		Audios:   make([]AudioResult, len(entries)),
	}
	for i, entry := range entries {
		outcome.Audios[i] = AudioResult{Index: entry.Row, Language: strings.TrimSpace(entry.Language), Status: AudioSkipped}
		if entry.File != nil {
			outcome.Audios[i].FileName = entry.File.FileName
		}
	}

	if outcome.ParentID == 0 {
		for i, entry := range entries {
			if entry.complete() {
				outcome.Audios[i].Status = AudioFailed
				outcome.Audios[i].Error = ErrMissingParentID.Error()
			}
		}
		return outcome, ErrMissingParentID
	}

	var g errgroup.Group
	g.SetLimit(c.cfg.AudioConcurrency)
	for i, entry := range entries {
		if !entry.complete() {
			continue
		}
		i, entry := i, entry
		entry.Language = strings.TrimSpace(entry.Language)
		g.Go(func() error {
			audio, err := c.createItemAudio(ctx, auth, outcome.ParentID, form.ChapterDetailsID, entry)
			if err != nil {
				outcome.Audios[i].Status = AudioFailed
				outcome.Audios[i].Error = errorMessage(err)
				return nil
			}
			outcome.Audios[i].Status = AudioUploaded
			outcome.Audios[i].AudioID = audio.ID
			return nil
		})
	}
	_ = g.Wait()

	return outcome, nil
}

func parentID(body []byte) uint {
	obj := ExtractObject(body, "content", "item_content", "itemContent", "data")
	if obj == nil {
		return 0
	}
	var parent struct {
		ID models.Number `json:"id"`
	}
	if err := json.Unmarshal(obj, &parent); err != nil || parent.ID <= 0 {
		return 0
	}
	return uint(parent.ID)
}

func errorMessage(err error) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Message
	}
	return err.Error()
}
