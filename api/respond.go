package api

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"reflect"
	"strconv"
	"time"

	"github.com/Domenick1991/airport-service/internal/errs"
	"github.com/Domenick1991/airport-service/internal/representation"
	"github.com/gin-gonic/gin"
)

// descriptor resolves the representation for this request. An unknown
// pair is a malformed request.
func descriptor(c *gin.Context, resource representation.Resource, action representation.Action) (representation.Descriptor, bool) {
	d, err := representation.Select(resource, action)
	if err != nil {
		respondError(c, errs.Validation(err.Error()))
		return representation.Descriptor{}, false
	}
	return d, true
}

func parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		respondError(c, errs.Field("id", "must be a positive integer"))
		return 0, false
	}
	return id, true
}

func bindJSON(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		respondError(c, decodeError(err))
		return false
	}
	return true
}

// bodyField names errors that belong to the request body as a whole.
const bodyField = "body"

var timeType = reflect.TypeOf(time.Time{})

// decodeError turns a JSON decoding failure into a field error without
// echoing decoder internals.
func decodeError(err error) *errs.Error {
	var typeErr *json.UnmarshalTypeError
	var syntaxErr *json.SyntaxError
	switch {
	case errors.As(err, &typeErr):
		field := typeErr.Field
		if field == "" {
			field = bodyField
		}
		if typeErr.Type != nil && typeErr.Type.ConvertibleTo(timeType) {
			return errs.Field(field, "Datetime has wrong format. Use YYYY-MM-DDThh:mm[:ss[.uuuuuu]][Z|+HH:MM].")
		}
		return errs.Field(field, "Incorrect type. Expected "+jsonKind(typeErr.Type)+".")
	case errors.Is(err, io.EOF):
		return errs.Field(bodyField, "Request body is empty.")
	case errors.As(err, &syntaxErr), errors.Is(err, io.ErrUnexpectedEOF):
		return errs.Field(bodyField, "Malformed JSON.")
	default:
		return errs.Field(bodyField, "Invalid request body.")
	}
}

func jsonKind(t reflect.Type) string {
	if t == nil {
		return "value"
	}
	switch t.Kind() {
	case reflect.Bool:
		return "boolean"
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return "integer"
	case reflect.Float32, reflect.Float64:
		return "number"
	case reflect.String:
		return "string"
	case reflect.Slice, reflect.Array:
		return "list"
	case reflect.Struct, reflect.Map:
		return "object"
	default:
		return "value"
	}
}

func renderOne(c *gin.Context, status int, d representation.Descriptor, v any) {
	body, err := representation.Render(d, v)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(status, body)
}

func renderMany[T any](c *gin.Context, d representation.Descriptor, items []T) {
	body, err := representation.RenderList(d, items)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, body)
}
