package platform

import (
	"context"

	"coursedesk/models/course"
)

func (c *Client) topics() resource[course.Topic] {
	return resource[course.Topic]{
		client:     c,
		path:       "/api/topics",
		listKeys:   []string{"details", "topics"},
		objectKeys: []string{"topic"},
		noun:       "topic",
	}
}

func (c *Client) Topics(ctx context.Context, auth Auth, page Page) ([]course.Topic, error) {
	return c.topics().list(ctx, auth, page.query())
}

func (c *Client) Topic(ctx context.Context, auth Auth, id uint) (course.Topic, error) {
	return c.topics().get(ctx, auth, id)
}

func (c *Client) CreateTopic(ctx context.Context, auth Auth, form Form) (course.Topic, error) {
	return c.topics().create(ctx, auth, form)
}

func (c *Client) UpdateTopic(ctx context.Context, auth Auth, id uint, form Form) error {
	return c.topics().update(ctx, auth, id, form)
}

func (c *Client) DeleteTopic(ctx context.Context, auth Auth, id uint) error {
	return c.topics().remove(ctx, auth, id)
}
