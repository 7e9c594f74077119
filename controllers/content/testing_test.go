package contentControllers

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"coursedesk/config"
	"coursedesk/database"
	"coursedesk/platform"
)

var operator = platform.Auth{Token: "platform-token", UserID: 7, AdminType: "super_admin"}

// setup points the global client at srv and gives every test its own ledger.
func setup(t *testing.T, srv *httptest.Server) {
	t.Helper()
	config.AppConfig = &config.Config{DefaultPageLimit: 10}

	db, err := database.Open("sqlite", "file:"+uuid.NewString()+"?mode=memory&cache=shared")
	require.NoError(t, err)
	require.NoError(t, database.RunMigrations(db))
	database.Database = database.DbInstance{Db: db}

	platform.API = platform.New(platform.Config{
		BaseURL:          srv.URL,
		RateURL:          srv.URL,
		Timeout:          5 * time.Second,
		AudioConcurrency: 2,
	})
}

func withOperator(c *fiber.Ctx) error {
	c.Locals("auth", operator)
	return c.Next()
}

type multipartBody struct {
	buf    bytes.Buffer
	writer *multipart.Writer
}

func newMultipartBody() *multipartBody {
	b := &multipartBody{}
	b.writer = multipart.NewWriter(&b.buf)
	return b
}

func (b *multipartBody) field(name, value string) *multipartBody {
	b.writer.WriteField(name, value)
	return b
}

func (b *multipartBody) file(field, name, content string) *multipartBody {
	w, _ := b.writer.CreateFormFile(field, name)
	w.Write([]byte(content))
	return b
}

func (b *multipartBody) request(method, target string) *http.Request {
	b.writer.Close()
	req := httptest.NewRequest(method, target, &b.buf)
	req.Header.Set("Content-Type", b.writer.FormDataContentType())
	return req
}
