package contentValidator

import (
	"coursedesk/middleware"
	"coursedesk/platform"
	"coursedesk/utils"
	"log"
	"mime/multipart"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
)

type fieldKind int

const (
	textField fieldKind = iota
	numberField
	idField
)

type formField struct {
	name     string
	label    string
	kind     fieldKind
	required bool
}

// formSpec describes one multipart form forwarded to the platform
type formSpec struct {
	fields        []formField
	files         []string
	requiredFiles []string
}

// requestForm gathers the submitted text values and files. Only keys the
// client actually sent are returned so updates never blank untouched fields.
func requestForm(c *fiber.Ctx) (map[string]string, map[string]*multipart.FileHeader) {
	values := make(map[string]string)
	files := make(map[string]*multipart.FileHeader)

	if form, err := c.MultipartForm(); err == nil {
		for key, vals := range form.Value {
			if len(vals) > 0 {
				values[key] = vals[0]
			}
		}
		for key, headers := range form.File {
			if len(headers) > 0 {
				files[key] = headers[0]
			}
		}
		return values, files
	}

	c.Request().PostArgs().VisitAll(func(key, value []byte) {
		values[string(key)] = string(value)
	})
	return values, files
}

// handler validates the form and stores a ready platform.Form under
// c.Locals("validatedForm"). Uploaded files stay open until the controller
// returns. Required fields are only enforced on create.
func (s formSpec) handler(create bool) fiber.Handler {
	return func(c *fiber.Ctx) error {
		values, files := requestForm(c)
		errors := make(map[string]string)
		fields := make(map[string]string)

		for _, f := range s.fields {
			raw, sent := values[f.name]
			value := strings.TrimSpace(raw)
			if value == "" {
				if f.required && (create || sent) {
					errors[f.name] = f.label + " is required!"
				} else if sent && f.kind == textField {
					fields[f.name] = ""
				}
				continue
			}

			switch f.kind {
			case numberField:
				n, err := strconv.ParseFloat(value, 64)
				if err != nil || n < 0 {
					errors[f.name] = f.label + " must be a non-negative number!"
					continue
				}
			case idField:
				id, err := strconv.ParseUint(value, 10, 64)
				if err != nil || id == 0 {
					errors[f.name] = "Invalid " + f.label + "!"
					continue
				}
			}
			fields[f.name] = value
		}

		uploads := make(map[string]*multipart.FileHeader)
		for _, name := range s.files {
			if header, ok := files[name]; ok {
				uploads[name] = header
			}
		}
		if create {
			for _, name := range s.requiredFiles {
				if uploads[name] == nil {
					errors[name] = strings.ToUpper(name[:1]) + name[1:] + " file is required!"
				}
			}
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		opened, closeAll, err := utils.OpenUploads(uploads)
		defer closeAll()
		if err != nil {
			log.Printf("[UPLOAD] failed to open upload: %v", err)
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Failed to read uploaded file!", nil)
		}

		c.Locals("validatedForm", platform.Form{Fields: fields, Files: opened})
		return c.Next()
	}
}
