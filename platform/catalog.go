package platform

import (
	"context"

	"coursedesk/models/course"
)

func (c *Client) categories() resource[course.Category] {
	return resource[course.Category]{
		client:     c,
		path:       "/api/categories",
		listKeys:   []string{"categories"},
		objectKeys: []string{"category"},
		noun:       "category",
	}
}

// banners come back either as {banners: [...]} or as a bare array.
func (c *Client) banners() resource[course.Banner] {
	return resource[course.Banner]{
		client:     c,
		path:       "/api/banners",
		listKeys:   []string{"banners"},
		objectKeys: []string{"banner"},
		noun:       "banner",
	}
}

func (c *Client) Categories(ctx context.Context, auth Auth, page Page) ([]course.Category, error) {
	return c.categories().list(ctx, auth, page.query())
}

func (c *Client) Category(ctx context.Context, auth Auth, id uint) (course.Category, error) {
	return c.categories().get(ctx, auth, id)
}

func (c *Client) CreateCategory(ctx context.Context, auth Auth, form Form) (course.Category, error) {
	return c.categories().create(ctx, auth, form)
}

func (c *Client) UpdateCategory(ctx context.Context, auth Auth, id uint, form Form) error {
	return c.categories().update(ctx, auth, id, form)
}

func (c *Client) DeleteCategory(ctx context.Context, auth Auth, id uint) error {
	return c.categories().remove(ctx, auth, id)
}

func (c *Client) Banners(ctx context.Context, auth Auth) ([]course.Banner, error) {
	return c.banners().list(ctx, auth, nil)
}

func (c *Client) CreateBanner(ctx context.Context, auth Auth, form Form) (course.Banner, error) {
	return c.banners().create(ctx, auth, form)
}

func (c *Client) UpdateBanner(ctx context.Context, auth Auth, id uint, form Form) error {
	return c.banners().update(ctx, auth, id, form)
}

func (c *Client) DeleteBanner(ctx context.Context, auth Auth, id uint) error {
	return c.banners().remove(ctx, auth, id)
}
