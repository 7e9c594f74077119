package platform

import (
	"context"

	"coursedesk/models/course"
)

func (c *Client) courses() resource[course.Course] {
	return resource[course.Course]{
		client:     c,
		path:       "/api/courses",
		listKeys:   []string{"courses", "data"},
		objectKeys: []string{"course", "data"},
		noun:       "course",
	}
}

func (c *Client) Courses(ctx context.Context, auth Auth, page Page) ([]course.Course, error) {
	return c.courses().list(ctx, auth, page.query())
}

func (c *Client) Course(ctx context.Context, auth Auth, id uint) (course.Course, error) {
	return c.courses().get(ctx, auth, id)
}

func (c *Client) CreateCourse(ctx context.Context, auth Auth, form Form) (course.Course, error) {
	return c.courses().create(ctx, auth, form)
}

func (c *Client) UpdateCourse(ctx context.Context, auth Auth, id uint, form Form) error {
	return c.courses().update(ctx, auth, id, form)
}

func (c *Client) DeleteCourse(ctx context.Context, auth Auth, id uint) error {
	return c.courses().remove(ctx, auth, id)
}

// CourseName resolves a course id to its display name; lookups that fail
// fall back to "Unknown course" instead of failing the caller.
func (c *Client) CourseName(ctx context.Context, auth Auth, id uint) string {
	if id == 0 {
		return "Unknown course"
	}
	crs, err := c.Course(ctx, auth, id)
	if err != nil || crs.ID == 0 {
		return "Unknown course"
	}
	return crs.DisplayName()
}
