package commonValidator

import (
	"coursedesk/middleware"
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// Validate is shared by every JSON body validator; errors are keyed by the
// json field name.
var Validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// ValidationMessages turns validator errors into the field -> message map the
// console returns.
func ValidationMessages(err error) map[string]string {
	errors := make(map[string]string)
	ve, ok := err.(validator.ValidationErrors)
	if !ok {
		errors["body"] = "Invalid request body!"
		return errors
	}
	for _, fe := range ve {
		errors[fieldKey(fe)] = message(fe)
	}
	return errors
}

func fieldKey(fe validator.FieldError) string {
	// updates[0].rate rather than the struct-qualified namespace
	ns := fe.Namespace()
	if i := strings.Index(ns, "."); i >= 0 {
		return ns[i+1:]
	}
	return fe.Field()
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required!", fe.Field())
	case "gt":
		return fmt.Sprintf("%s must be greater than %s!", fe.Field(), fe.Param())
	case "min":
		return fmt.Sprintf("%s must be at least %s characters long!", fe.Field(), fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters long!", fe.Field(), fe.Param())
	case "len":
		return fmt.Sprintf("%s must be exactly %s characters long!", fe.Field(), fe.Param())
	case "url", "http_url":
		return fmt.Sprintf("%s must be a valid URL!", fe.Field())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s!", fe.Field(), fe.Param())
	case "alpha":
		return fmt.Sprintf("%s must contain letters only!", fe.Field())
	default:
		return fmt.Sprintf("%s is invalid!", fe.Field())
	}
}

// BodyValidator parses the JSON body into a fresh T, validates it and stores
// it under c.Locals(key).
func BodyValidator[T any](key string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(T)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}
		if err := Validate.Struct(reqData); err != nil {
			return middleware.ValidationErrorResponse(c, ValidationMessages(err))
		}
		c.Locals(key, reqData)
		return c.Next()
	}
}

// ParseID reads a positive integer id from a path parameter.
func ParseID(c *fiber.Ctx, param string) (uint, bool) {
	raw := strings.TrimSpace(c.Params(param))
	if raw == "" {
		return 0, false
	}
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}

// IDParams validates the named path ids and stores each as c.Locals(name).
func IDParams(params ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		errors := make(map[string]string)
		for _, param := range params {
			id, ok := ParseID(c, param)
			if !ok {
				errors[param] = "Invalid " + param + "!"
				continue
			}
			c.Locals(param, id)
		}
		if len(errors) > 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid ID!", errors)
		}
		return c.Next()
	}
}
