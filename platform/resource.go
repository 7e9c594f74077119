package platform

import (
	"context"
	"net/http"
)

// Form is a multipart body: plain fields plus optional files keyed by field
// name. Files with a nil reader are left out.
type Form struct {
	Fields map[string]string
	Files  map[string]*Upload
}

// resource describes one REST collection on the primary API. List and object
// keys name the envelope properties the platform wraps payloads in.
type resource[T any] struct {
	client     *Client
	path       string
	listKeys   []string
	objectKeys []string
	noun       string
}

func (r resource[T]) list(ctx context.Context, auth Auth, query map[string]string) ([]T, error) {
	body, err := r.client.getJSON(ctx, r.client.api, auth, r.path, query, "Failed to fetch "+r.noun+"s")
	if err != nil {
		return nil, err
	}
	return decodeList[T](body, r.listKeys...), nil
}

func (r resource[T]) get(ctx context.Context, auth Auth, id uint) (T, error) {
	var zero T
	body, err := r.client.getJSON(ctx, r.client.api, auth, idPath(r.path, id), nil, "Failed to fetch "+r.noun)
	if err != nil {
		return zero, err
	}
	return decodeObject[T](body, r.objectKeys...), nil
}

// create returns the created entity when the platform echoes it, zero value
// otherwise.
func (r resource[T]) create(ctx context.Context, auth Auth, form Form) (T, error) {
	var zero T
	body, err := r.client.sendMultipart(ctx, r.client.api, auth, http.MethodPost, r.path, form.Fields, form.Files, "Failed to create "+r.noun)
	if err != nil {
		return zero, err
	}
	return decodeObject[T](body, r.objectKeys...), nil
}

func (r resource[T]) update(ctx context.Context, auth Auth, id uint, form Form) error {
	_, err := r.client.sendMultipart(ctx, r.client.api, auth, http.MethodPut, idPath(r.path, id), form.Fields, form.Files, "Failed to update "+r.noun)
	return err
}

func (r resource[T]) remove(ctx context.Context, auth Auth, id uint) error {
	return r.client.delete(ctx, r.client.api, auth, idPath(r.path, id), "Failed to delete "+r.noun)
}
