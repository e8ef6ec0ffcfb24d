package handlers

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"usergroups/internal/services"
)

// newValidator reports fields by their JSON names. The "anyuuid" tag accepts every
// spelling uuid.Parse does, not only the lower-case hyphenated one.
func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterValidation("anyuuid", func(fl validator.FieldLevel) bool {
		_, err := uuid.Parse(fl.Field().String())
		return err == nil
	})
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// bindInput parses the JSON body into dst and validates it. On failure the error
// response has already been written and ok is false.
func bindInput(c *fiber.Ctx, validate *validator.Validate, dst interface{}) (bool, error) {
	if err := c.BodyParser(dst); err != nil {
		zerolog.Ctx(c.UserContext()).Debug().Err(err).Msg("failed to parse request body")
		return false, respondError(c, &services.Error{
			Kind:    services.ErrInvalidInput,
			Message: "Invalid request body",
			Err:     err,
		})
	}

	if err := validate.Struct(dst); err != nil {
		validationErrors, ok := err.(validator.ValidationErrors)
		if !ok {
			return false, respondError(c, err)
		}
		errorMessages := make(map[string]string)
		for _, e := range validationErrors {
			errorMessages[e.Field()] = fmt.Sprintf("Field '%s' failed on the '%s' tag", e.Field(), e.Tag())
		}
		return false, respondValidationError(c, errorMessages)
	}
	return true, nil
}

// pathID returns the :id parameter in canonical form. Stores keep ids lower-case and
// hyphenated, so upper-case, braced and urn:uuid: spellings must be rewritten first.
func pathID(c *fiber.Ctx) (string, error) {
	id := c.Params("id")
	parsed, err := uuid.Parse(id)
	if err != nil {
		return "", &services.Error{
			Kind:    services.ErrInvalidInput,
			Message: fmt.Sprintf("invalid id: %s", id),
		}
	}
	return parsed.String(), nil
}

// canonicalID rewrites an already validated id in place.
func canonicalID(id *string) {
	if id == nil {
		return
	}
	if parsed, err := uuid.Parse(*id); err == nil {
		*id = parsed.String()
	}
}
