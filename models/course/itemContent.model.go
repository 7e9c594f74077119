package course

import (
	"bytes"
	"encoding/json"
	"log"
)

// LanguageContent is one translation of an item content
type LanguageContent struct {
	Language string `json:"language"`
	Content  string `json:"content"`
}

// LanguageContents decodes content_and_language defensively: the platform
// sends it either as an array or as a JSON string holding that array.
type LanguageContents []LanguageContent

func (l *LanguageContents) UnmarshalJSON(data []byte) error {
	*l = NormalizeLanguageContent(data)
	return nil
}

func (l LanguageContents) MarshalJSON() ([]byte, error) {
	if l == nil {
		return []byte("[]"), nil
	}
	return json.Marshal([]LanguageContent(l))
}

// NormalizeLanguageContent never fails. Arrays keep only elements whose
// language and content are non-empty strings; strings are parsed as JSON and
// then filtered the same way; every other value yields an empty slice.
func NormalizeLanguageContent(raw json.RawMessage) []LanguageContent {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return []LanguageContent{}
	}

	switch raw[0] {
	case '[':
		return filterLanguageContent(raw)
	case '"':
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			log.Printf("[PLATFORM] warning: unreadable content_and_language string: %v", err)
			return []LanguageContent{}
		}
		inner := bytes.TrimSpace([]byte(s))
		if len(inner) == 0 || inner[0] != '[' {
			log.Printf("[PLATFORM] warning: content_and_language string is not a JSON array")
			return []LanguageContent{}
		}
		return filterLanguageContent(inner)
	default:
		return []LanguageContent{}
	}
}

func filterLanguageContent(raw []byte) []LanguageContent {
	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil {
		log.Printf("[PLATFORM] warning: malformed content_and_language array: %v", err)
		return []LanguageContent{}
	}

	out := make([]LanguageContent, 0, len(items))
	for _, item := range items {
		var fields map[string]json.RawMessage
		if err := json.Unmarshal(item, &fields); err != nil {
			continue
		}
		language, ok := nonEmptyString(fields["language"])
		if !ok {
			continue
		}
		content, ok := nonEmptyString(fields["content"])
		if !ok {
			continue
		}
		out = append(out, LanguageContent{Language: language, Content: content})
	}
	return out
}

func nonEmptyString(raw json.RawMessage) (string, bool) {
	if len(raw) == 0 || raw[0] != '"' {
		return "", false
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil || s == "" {
		return "", false
	}
	return s, true
}

// ItemContent is the content attached to a chapter detail
type ItemContent struct {
	ID                 uint             `json:"id"`
	ChapterDetailsID   uint             `json:"chapter_details_id"`
	Content            string           `json:"content"`
	ContentAndLanguage LanguageContents `json:"content_and_language"`
	Image              string           `json:"image"`
	Video              string           `json:"video"`
	Audios             []ItemAudio      `json:"audios"`
}

// ItemAudio is a narrated translation of an item content
type ItemAudio struct {
	ID               uint   `json:"id"`
	Audio            string `json:"audio"`
	Language         string `json:"language"`
	ItemContentID    uint   `json:"item_content_id"`
	ChapterDetailsID uint   `json:"chapter_details_id"`
}

// BelongsTo reports whether the audio is owned by the given content. Older
// rows only carry chapter_details_id, so they match on that instead.
func (a ItemAudio) BelongsTo(content ItemContent) bool {
	if a.ItemContentID != 0 {
		return a.ItemContentID == content.ID
	}
	return a.ChapterDetailsID != 0 && a.ChapterDetailsID == content.ChapterDetailsID
}
