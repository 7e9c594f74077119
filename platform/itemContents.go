package platform

import (
	"context"
	"net/http"

	"coursedesk/models/course"
)

func (c *Client) itemContents() resource[course.ItemContent] {
	return resource[course.ItemContent]{
		client:     c,
		path:       "/api/item-contents",
		listKeys:   []string{"contents", "data"},
		objectKeys: []string{"content", "item_content", "itemContent", "data"},
		noun:       "item content",
	}
}

func (c *Client) itemAudios() resource[course.ItemAudio] {
	return resource[course.ItemAudio]{
		client:     c,
		path:       "/api/item-audios",
		listKeys:   []string{"audios", "data"},
		objectKeys: []string{"audio", "item_audio", "data"},
		noun:       "item audio",
	}
}

func (c *Client) ItemContents(ctx context.Context, auth Auth, page Page) ([]course.ItemContent, error) {
	return c.itemContents().list(ctx, auth, page.query())
}

// ItemContent loads one content together with the audios it owns.
func (c *Client) ItemContent(ctx context.Context, auth Auth, id uint) (course.ItemContent, error) {
	content, err := c.itemContents().get(ctx, auth, id)
	if err != nil {
		return content, err
	}
	if content.ID == 0 {
		content.ID = id
	}
	audios, err := c.AudiosForContent(ctx, auth, content)
	if err != nil {
		return content, err
	}
	content.Audios = audios
	return content, nil
}

// UpdateItemContent may carry one extra audio (audio + language fields); the
// platform attaches it to the content.
func (c *Client) UpdateItemContent(ctx context.Context, auth Auth, id uint, form Form) error {
	return c.itemContents().update(ctx, auth, id, form)
}

func (c *Client) DeleteItemContent(ctx context.Context, auth Auth, id uint) error {
	return c.itemContents().remove(ctx, auth, id)
}

// AudiosForContent asks the platform for the content's audios and filters the
// answer again locally: the listing endpoint has been seen ignoring the
// scope parameter.
func (c *Client) AudiosForContent(ctx context.Context, auth Auth, content course.ItemContent) ([]course.ItemAudio, error) {
	query := Page{Page: 1, Limit: 100}.query()
	query["item_content_id"] = formatID(content.ID)

	all, err := c.itemAudios().list(ctx, auth, query)
	if err != nil {
		return nil, err
	}
	owned := make([]course.ItemAudio, 0, len(all))
	for _, audio := range all {
		if audio.BelongsTo(content) {
			owned = append(owned, audio)
		}
	}
	return owned, nil
}

func (c *Client) createItemAudio(ctx context.Context, auth Auth, parentID, chapterDetailsID uint, entry AudioEntry) (course.ItemAudio, error) {
	fields := map[string]string{
		"item_content_id":    formatID(parentID),
		"chapter_details_id": formatID(chapterDetailsID),
		"language":           entry.Language,
	}
	body, err := c.sendMultipart(ctx, c.api, auth, http.MethodPost, "/api/item-audios", fields,
		map[string]*Upload{"audio": entry.File}, "Failed to upload audio")
	if err != nil {
		return course.ItemAudio{}, err
	}
	return decodeObject[course.ItemAudio](body, c.itemAudios().objectKeys...), nil
}

func (c *Client) DeleteItemAudio(ctx context.Context, auth Auth, id uint) error {
	return c.itemAudios().remove(ctx, auth, id)
}
