package platform

import (
	"context"
	"sort"

	"coursedesk/models/course"
)

func (c *Client) chapters() resource[course.Chapter] {
	return resource[course.Chapter]{
		client:     c,
		path:       "/api/chapters",
		listKeys:   []string{"chapters"},
		objectKeys: []string{"chapter"},
		noun:       "chapter",
	}
}

func (c *Client) chapterDetails() resource[course.ChapterDetail] {
	return resource[course.ChapterDetail]{
		client:     c,
		path:       "/api/chapter-details",
		listKeys:   []string{"details"},
		objectKeys: []string{"detail", "details"},
		noun:       "chapter detail",
	}
}

func (c *Client) Chapters(ctx context.Context, auth Auth, page Page) ([]course.Chapter, error) {
	return c.chapters().list(ctx, auth, page.query())
}

func (c *Client) Chapter(ctx context.Context, auth Auth, id uint) (course.Chapter, error) {
	return c.chapters().get(ctx, auth, id)
}

func (c *Client) CreateChapter(ctx context.Context, auth Auth, form Form) (course.Chapter, error) {
	return c.chapters().create(ctx, auth, form)
}

func (c *Client) UpdateChapter(ctx context.Context, auth Auth, id uint, form Form) error {
	return c.chapters().update(ctx, auth, id, form)
}

func (c *Client) DeleteChapter(ctx context.Context, auth Auth, id uint) error {
	return c.chapters().remove(ctx, auth, id)
}

func (c *Client) ChapterDetails(ctx context.Context, auth Auth, page Page) ([]course.ChapterDetail, error) {
	return c.chapterDetails().list(ctx, auth, page.query())
}

func (c *Client) ChapterDetail(ctx context.Context, auth Auth, id uint) (course.ChapterDetail, error) {
	return c.chapterDetails().get(ctx, auth, id)
}

// DetailsForChapter returns the chapter's lessons ordered by serial id.
func (c *Client) DetailsForChapter(ctx context.Context, auth Auth, chapterID uint) ([]course.ChapterDetail, error) {
	r := c.chapterDetails()
	r.path = idPath("/api/chapter-details/chapter", chapterID)
	details, err := r.list(ctx, auth, Page{Page: 1, Limit: 50}.query())
	if err != nil {
		return nil, err
	}
	sort.SliceStable(details, func(i, j int) bool {
		return details[i].SerialID < details[j].SerialID
	})
	return details, nil
}

func (c *Client) CreateChapterDetail(ctx context.Context, auth Auth, form Form) (course.ChapterDetail, error) {
	return c.chapterDetails().create(ctx, auth, form)
}

func (c *Client) UpdateChapterDetail(ctx context.Context, auth Auth, id uint, form Form) error {
	return c.chapterDetails().update(ctx, auth, id, form)
}

func (c *Client) DeleteChapterDetail(ctx context.Context, auth Auth, id uint) error {
	return c.chapterDetails().remove(ctx, auth, id)
}
