package platform

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"golang.org/x/sync/errgroup"

	"coursedesk/models/course"
)

// EnrollmentPanel is one user's enrollment state against the course catalog.
// The enrolled set only ever holds ids present in Courses and only changes
// after the platform confirms a toggle.
type EnrollmentPanel struct {
	client   *Client
	auth     Auth
	UserID   uint
	Courses  []course.CourseOption
	enrolled map[uint]bool
}

// LoadEnrollmentPanel loads the catalog and the user's enrollments
// concurrently. A failed enrollment fetch degrades to an empty set; a failed
// catalog fetch is an error.
func (c *Client) LoadEnrollmentPanel(ctx context.Context, auth Auth, userID uint) (*EnrollmentPanel, error) {
	return c.loadEnrollmentPanel(ctx, auth, userID, false)
}

// LoadEnrollmentPanelForToggle is LoadEnrollmentPanel for writes: a failed
// enrollment fetch is returned, since Toggle picks DELETE or POST from it.
func (c *Client) LoadEnrollmentPanelForToggle(ctx context.Context, auth Auth, userID uint) (*EnrollmentPanel, error) {
	return c.loadEnrollmentPanel(ctx, auth, userID, true)
}

func (c *Client) loadEnrollmentPanel(ctx context.Context, auth Auth, userID uint, strict bool) (*EnrollmentPanel, error) {
	if !auth.Valid() {
		return nil, ErrMissingToken
	}

	var (
		courses     []course.Course
		enrollments []course.Enrollment
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		courses, err = c.Courses(gctx, auth, Page{Page: 1, Limit: 50})
		return err
	})
	g.Go(func() error {
		body, err := c.getJSON(gctx, c.api, auth, idPath("/api/enrollments/user", userID),
			map[string]string{"limit": "100"}, "Failed to fetch enrollments")
		if err != nil {
			if strict {
				return err
			}
			log.Printf("[PLATFORM] warning: enrollments for user %d unavailable: %v", userID, err)
			return nil
		}
		enrollments = decodeList[course.Enrollment](body, "enrollments")
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	panel := &EnrollmentPanel{
		client:   c,
		auth:     auth,
		UserID:   userID,
		Courses:  make([]course.CourseOption, 0, len(courses)),
		enrolled: make(map[uint]bool),
	}
	known := make(map[uint]bool, len(courses))
	for _, crs := range courses {
		known[crs.ID] = true
		panel.Courses = append(panel.Courses, course.CourseOption{ID: crs.ID, Name: crs.DisplayName()})
	}
	for _, e := range enrollments {
		if known[e.CourseID] {
			panel.enrolled[e.CourseID] = true
		}
	}
	return panel, nil
}

func (p *EnrollmentPanel) IsEnrolled(courseID uint) bool {
	return p.enrolled[courseID]
}

// EnrolledIDs lists enrolled course ids in catalog order.
func (p *EnrollmentPanel) EnrolledIDs() []uint {
	ids := make([]uint, 0, len(p.enrolled))
	for _, crs := range p.Courses {
		if p.enrolled[crs.ID] {
			ids = append(ids, crs.ID)
		}
	}
	return ids
}

// EnrollmentRow is a catalog course with the user's state
type EnrollmentRow struct {
	CourseID uint   `json:"course_id"`
	Name     string `json:"name"`
	Enrolled bool   `json:"enrolled"`
}

func (p *EnrollmentPanel) Rows() []EnrollmentRow {
	rows := make([]EnrollmentRow, 0, len(p.Courses))
	for _, crs := range p.Courses {
		rows = append(rows, EnrollmentRow{CourseID: crs.ID, Name: crs.Name, Enrolled: p.enrolled[crs.ID]})
	}
	return rows
}

func (p *EnrollmentPanel) courseName(courseID uint) string {
	for _, crs := range p.Courses {
		if crs.ID == courseID && crs.Name != "" {
			return crs.Name
		}
	}
	return "Unknown Course"
}

// Toggle removes the enrollment when present and creates it otherwise. The
// returned message is the confirmation to show the operator.
func (p *EnrollmentPanel) Toggle(ctx context.Context, courseID uint) (string, error) {
	body := map[string]uint{"user_id": p.UserID, "course_id": courseID}
	name := p.courseName(courseID)

	if p.enrolled[courseID] {
		if _, err := p.client.sendJSON(ctx, p.client.api, p.auth, http.MethodDelete, "/api/enrollments/remove", body, "Unenroll failed"); err != nil {
			return "", err
		}
		delete(p.enrolled, courseID)
		return fmt.Sprintf("Removed from %q", name), nil
	}

	if _, err := p.client.sendJSON(ctx, p.client.api, p.auth, http.MethodPost, "/api/enrollments", body, "Enroll failed"); err != nil {
		return "", err
	}
	p.enrolled[courseID] = true
	return fmt.Sprintf("Enrolled in %q!", name), nil
}
