package middleware

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"reflect"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

const payloadKey = "payload"

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Report failing fields by their JSON names.
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Validate decodes the request body into T and checks its validate tags.
// An incomplete payload or one carrying unknown fields aborts with 422 before
// the next handler runs. Malformed JSON aborts with 400.
func Validate[T any]() gin.HandlerFunc {
	return func(c *gin.Context) {
		var payload T

		decoder := json.NewDecoder(c.Request.Body)
		decoder.DisallowUnknownFields()
		if err := decoder.Decode(&payload); err != nil && !errors.Is(err, io.EOF) {
			var syntaxErr *json.SyntaxError
			if errors.As(err, &syntaxErr) || errors.Is(err, io.ErrUnexpectedEOF) {
				c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON payload"})
				return
			}
			abortInvalid(c, decodeErrorFields(err))
			return
		}

		if err := validate.Struct(payload); err != nil {
			var verrs validator.ValidationErrors
			if !errors.As(err, &verrs) {
				c.AbortWithStatusJSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
				return
			}
			fields := make([]string, 0, len(verrs))
			for _, fe := range verrs {
				fields = append(fields, fe.Field())
			}
			abortInvalid(c, fields)
			return
		}

		c.Set(payloadKey, &payload)
		c.Next()
	}
}

func abortInvalid(c *gin.Context, fields []string) {
	c.AbortWithStatusJSON(http.StatusUnprocessableEntity, gin.H{
		"error":  "invalid payload",
		"fields": fields,
	})
}

// decodeErrorFields names the JSON fields behind a mistyped or unknown field
// decode error.
func decodeErrorFields(err error) []string {
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field != "" {
		return []string{typeErr.Field}
	}
	// encoding/json has no typed error for unknown fields.
	if name, ok := strings.CutPrefix(err.Error(), "json: unknown field "); ok {
		if unquoted, uerr := strconv.Unquote(name); uerr == nil {
			name = unquoted
		}
		return []string{name}
	}
	return []string{}
}

// Payload returns the body stored by Validate[T], or nil when the route has
// no validation step.
func Payload[T any](c *gin.Context) *T {
	value, ok := c.Get(payloadKey)
	if !ok {
		return nil
	}
	payload, _ := value.(*T)
	return payload
}
