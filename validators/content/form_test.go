package contentValidator

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"coursedesk/platform"
)

type capture struct {
	fields map[string]string
	files  map[string]string
}

func formApp(handler fiber.Handler, got *capture) *fiber.App {
	app := fiber.New()
	app.Post("/", handler, func(c *fiber.Ctx) error {
		form := c.Locals("validatedForm").(platform.Form)
		got.fields = form.Fields
		got.files = map[string]string{}
		for name, up := range form.Files {
			data, _ := io.ReadAll(up.Reader)
			got.files[name] = up.FileName + ":" + string(data)
		}
		return c.SendStatus(fiber.StatusOK)
	})
	return app
}

func multipartRequest(t *testing.T, fields map[string]string, files map[string]string) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for k, v := range fields {
		require.NoError(t, w.WriteField(k, v))
	}
	for field, name := range files {
		fw, err := w.CreateFormFile(field, name)
		require.NoError(t, err)
		fw.Write([]byte("data"))
	}
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, "/", &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	return req
}

func validationErrors(t *testing.T, resp *http.Response) map[string]string {
	t.Helper()
	var env struct {
		Data map[string]string `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
	return env.Data
}

func TestCreateRequiresFields(t *testing.T) {
	got := &capture{}
	resp, err := formApp(CreateTopic(), got).Test(multipartRequest(t,
		map[string]string{"course_id": "abc", "serial_id": "-1"}, nil))
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)
	errs := validationErrors(t, resp)
	assert.Equal(t, "Invalid Course!", errs["course_id"])
	assert.Equal(t, "Title is required!", errs["title"])
	assert.Equal(t, "Serial ID must be a non-negative number!", errs["serial_id"])
	assert.Nil(t, got.fields)
}

func TestUpdateForwardsOnlySentKeys(t *testing.T) {
	got := &capture{}
	resp, err := formApp(UpdateTopic(), got).Test(multipartRequest(t,
		map[string]string{"title": " Cells ", "description": ""},
		map[string]string{"video": "cells.mp4"}))
	require.NoError(t, err)

	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, map[string]string{"title": "Cells", "description": ""}, got.fields)
	assert.Equal(t, map[string]string{"video": "cells.mp4:data"}, got.files)
}

func TestUpdateRejectsBlankRequiredField(t *testing.T) {
	resp, err := formApp(UpdateChapter(), &capture{}).Test(multipartRequest(t,
		map[string]string{"title": "   "}, nil))
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)
	assert.Equal(t, "Title is required!", validationErrors(t, resp)["title"])
}

func TestBannerImageRequiredOnCreate(t *testing.T) {
	resp, err := formApp(CreateBanner(), &capture{}).Test(multipartRequest(t,
		map[string]string{"title": "Eid sale"}, nil))
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)
	assert.Equal(t, "Image file is required!", validationErrors(t, resp)["image"])
}

func TestItemContentUpdateNeedsAudioAndLanguageTogether(t *testing.T) {
	resp, err := formApp(UpdateItemContent(), &capture{}).Test(multipartRequest(t,
		map[string]string{"language": "bn"}, nil))
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)
	assert.Equal(t, "Audio and language must be provided together!", validationErrors(t, resp)["audio"])
}

func TestAudioRows(t *testing.T) {
	indexes, languages, headers := audioRows(
		map[string]string{"audio_language_3": "ar", "audio_language_0": "en", "audio_language_x": "??"},
		map[string]*multipart.FileHeader{"audio_0": {Filename: "en.mp3"}, "audio_7": {Filename: "orphan.mp3"}},
	)

	assert.Equal(t, []int{0, 3, 7}, indexes)
	assert.Equal(t, "en", languages[0])
	assert.Equal(t, "ar", languages[3])
	assert.Nil(t, headers[3])
	assert.Equal(t, "orphan.mp3", headers[7].Filename)
}
