package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const (
	SubmissionComplete = "COMPLETE"
	SubmissionPartial  = "PARTIAL"
	SubmissionFailed   = "FAILED"
)

// ContentSubmission is one item-content + audio submission run
type ContentSubmission struct {
	gorm.Model
	SubmissionID     string              `json:"submission_id" gorm:"uniqueIndex;size:36;not null"`
	SubmittedBy      uint                `json:"submitted_by" gorm:"index"`
	ChapterDetailsID uint                `json:"chapter_details_id"`
	ItemContentID    uint                `json:"item_content_id"`
	Content          string              `json:"content"`
	Translations     datatypes.JSON      `json:"translations"`
	Status           string              `json:"status" gorm:"index"`
	Error            string              `json:"error"`
	Audios           []AudioUploadResult `json:"audios" gorm:"foreignKey:ContentSubmissionID;constraint:OnDelete:CASCADE"`
}

// AudioUploadResult is the outcome of one audio entry in a submission
type AudioUploadResult struct {
	gorm.Model
	ContentSubmissionID uint   `json:"content_submission_id" gorm:"index;not null"`
	EntryIndex          int    `json:"entry_index"`
	Language            string `json:"language"`
	FileName            string `json:"file_name"`
	Status              string `json:"status"`
	AudioID             uint   `json:"audio_id"`
	Error               string `json:"error"`
}
