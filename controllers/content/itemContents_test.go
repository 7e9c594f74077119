package contentControllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"coursedesk/database"
	"coursedesk/models"
	contentValidator "coursedesk/validators/content"
)

type fakePlatform struct {
	mu           sync.Mutex
	parentStatus int
	parentBody   string
	failLanguage string
	audioCalls   int
}

func (f *fakePlatform) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	r.ParseMultipartForm(1 << 20)
	f.mu.Lock()
	defer f.mu.Unlock()

	switch r.URL.Path {
	case "/api/item-contents":
		w.WriteHeader(f.parentStatus)
		w.Write([]byte(f.parentBody))
	case "/api/item-audios":
		f.audioCalls++
		if r.FormValue("language") == f.failLanguage {
			w.WriteHeader(http.StatusBadRequest)
			w.Write([]byte(`{"message":"Bad audio"}`))
			return
		}
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"audio":{"id":5}}`))
	default:
		w.WriteHeader(http.StatusNotFound)
	}
}

func itemContentApp() *fiber.App {
	app := fiber.New()
	app.Get("/item-contents/submissions", withOperator, ListSubmissions)
	app.Post("/item-contents", withOperator, contentValidator.CreateItemContent(), CreateItemContent)
	return app
}

type envelope struct {
	Status  bool            `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func send(t *testing.T, app *fiber.App, req *http.Request) (int, envelope) {
	t.Helper()
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	var env envelope
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
	return resp.StatusCode, env
}

func fullSubmission() *multipartBody {
	return newMultipartBody().
		field("chapter_details_id", "4").
		field("content", "Water cycle").
		field("content_and_language", `[{"language":"bn","content":"জলচক্র"},{"language":""}]`).
		file("image", "cycle.png", "png").
		field("audio_language_0", "en").file("audio_0", "en.mp3", "mp3").
		field("audio_language_2", "ar").file("audio_2", "ar.mp3", "mp3")
}

func TestCreateItemContent_Complete(t *testing.T) {
	fake := &fakePlatform{parentStatus: http.StatusCreated, parentBody: `{"content":{"id":20}}`}
	srv := httptest.NewServer(fake)
	defer srv.Close()
	setup(t, srv)

	status, env := send(t, itemContentApp(), fullSubmission().request(http.MethodPost, "/item-contents"))

	assert.Equal(t, fiber.StatusCreated, status)
	assert.Equal(t, "Item content & audios added successfully!", env.Message)
	assert.Equal(t, 2, fake.audioCalls)

	var row models.ContentSubmission
	require.NoError(t, database.Database.Db.Preload("Audios").First(&row).Error)
	assert.Equal(t, models.SubmissionComplete, row.Status)
	assert.Equal(t, uint(20), row.ItemContentID)
	assert.Equal(t, uint(7), row.SubmittedBy)
	assert.Len(t, row.Audios, 2)
	assert.JSONEq(t, `[{"language":"bn","content":"জলচক্র"}]`, string(row.Translations))
}

func TestCreateItemContent_PartialAudioFailure(t *testing.T) {
	fake := &fakePlatform{parentStatus: http.StatusCreated, parentBody: `{"content":{"id":21}}`, failLanguage: "ar"}
	srv := httptest.NewServer(fake)
	defer srv.Close()
	setup(t, srv)

	status, env := send(t, itemContentApp(), fullSubmission().request(http.MethodPost, "/item-contents"))

	assert.Equal(t, fiber.StatusMultiStatus, status)
	assert.False(t, env.Status)
	assert.Equal(t, "Item content saved, but 1 audio failed to upload", env.Message)

	var outcome struct {
		ParentID uint `json:"parent_id"`
		Audios   []struct {
			Index    int    `json:"index"`
			Language string `json:"language"`
			Status   string `json:"status"`
			Error    string `json:"error"`
		} `json:"audios"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &outcome))
	assert.Equal(t, uint(21), outcome.ParentID)
	require.Len(t, outcome.Audios, 2)
	assert.Equal(t, 0, outcome.Audios[0].Index)
	assert.Equal(t, "uploaded", outcome.Audios[0].Status)
	assert.Equal(t, "ar", outcome.Audios[1].Language)
	assert.Equal(t, 2, outcome.Audios[1].Index)
	assert.Equal(t, "failed", outcome.Audios[1].Status)
	assert.Equal(t, "Bad audio", outcome.Audios[1].Error)

	var row models.ContentSubmission
	require.NoError(t, database.Database.Db.Preload("Audios").First(&row).Error)
	assert.Equal(t, models.SubmissionPartial, row.Status)
	require.Len(t, row.Audios, 2)
	for _, audio := range row.Audios {
		if audio.Language == "ar" {
			assert.Equal(t, 2, audio.EntryIndex)
			assert.Equal(t, "failed", audio.Status)
		}
	}
}

func TestCreateItemContent_ParentRejectedEchoesForm(t *testing.T) {
	fake := &fakePlatform{parentStatus: http.StatusUnprocessableEntity, parentBody: `{"message":"Chapter detail not found"}`}
	srv := httptest.NewServer(fake)
	defer srv.Close()
	setup(t, srv)

	status, env := send(t, itemContentApp(), fullSubmission().request(http.MethodPost, "/item-contents"))

	assert.Equal(t, fiber.StatusUnprocessableEntity, status)
	assert.Equal(t, "Chapter detail not found", env.Message)
	assert.Zero(t, fake.audioCalls)

	var data struct {
		Form struct {
			Content        string            `json:"content"`
			AudioLanguages map[string]string `json:"audio_languages"`
		} `json:"form"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &data))
	assert.Equal(t, "Water cycle", data.Form.Content)
	assert.Equal(t, map[string]string{"0": "en", "2": "ar"}, data.Form.AudioLanguages)

	var row models.ContentSubmission
	require.NoError(t, database.Database.Db.First(&row).Error)
	assert.Equal(t, models.SubmissionFailed, row.Status)
	assert.Equal(t, "Chapter detail not found", row.Error)
}

func TestCreateItemContent_Validation(t *testing.T) {
	fake := &fakePlatform{}
	srv := httptest.NewServer(fake)
	defer srv.Close()
	setup(t, srv)

	body := newMultipartBody().field("content", "  ").field("content_and_language", "{not json")
	status, env := send(t, itemContentApp(), body.request(http.MethodPost, "/item-contents"))

	assert.Equal(t, fiber.StatusUnprocessableEntity, status)
	var errs map[string]string
	require.NoError(t, json.Unmarshal(env.Data, &errs))
	assert.Equal(t, "Please select a chapter detail", errs["chapter_details_id"])
	assert.Equal(t, "Content is required", errs["content"])
	assert.Contains(t, errs, "content_and_language")
}

func TestListSubmissions_FiltersByStatus(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	defer srv.Close()
	setup(t, srv)

	db := database.Database.Db
	require.NoError(t, db.Create(&models.ContentSubmission{SubmissionID: "a", Status: models.SubmissionComplete}).Error)
	require.NoError(t, db.Create(&models.ContentSubmission{SubmissionID: "b", Status: models.SubmissionPartial,
		Audios: []models.AudioUploadResult{{EntryIndex: 0, Status: "failed"}}}).Error)
	require.NoError(t, db.Create(&models.ContentSubmission{SubmissionID: "c", Status: models.SubmissionPartial}).Error)

	status, env := send(t, itemContentApp(), httptest.NewRequest(http.MethodGet, "/item-contents/submissions?status=PARTIAL&limit=1", nil))

	assert.Equal(t, fiber.StatusOK, status)
	var data struct {
		Submissions []models.ContentSubmission `json:"submissions"`
		Pagination  struct {
			Total int64 `json:"total"`
		} `json:"pagination"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &data))
	assert.Equal(t, int64(2), data.Pagination.Total)
	require.Len(t, data.Submissions, 1)
	assert.Equal(t, "c", data.Submissions[0].SubmissionID)
}
