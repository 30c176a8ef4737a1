package httpx

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"reflect"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// Report validation failures under their JSON names.
func init() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterTagNameFunc(jsonName)
	}
}

func jsonName(f reflect.StructField) string {
	name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
	switch name {
	case "-":
		return ""
	case "":
		return f.Name
	}
	return name
}

// FieldError names one violated field of a request body.
// swagger:model FieldError
type FieldError struct {
	Field  string `json:"field"  example:"total"`
	Reason string `json:"reason" example:"required"`
}

// HTTPError is the body of every 4xx answer.
// swagger:model HTTPError
type HTTPError struct {
	Error   string       `json:"error"             example:"invalid request body"`
	Details []FieldError `json:"details,omitempty"`
}

const msgInvalidBody = "invalid request body"

// BindError answers 400 with the fields that made err.
func BindError(c *gin.Context, err error) {
	c.AbortWithStatusJSON(http.StatusBadRequest, HTTPError{
		Error:   msgInvalidBody,
		Details: FieldErrors(err),
	})
}

// FieldErrors maps a binding error to per-field details.
func FieldErrors(err error) []FieldError {
	var (
		verrs  validator.ValidationErrors
		typErr *json.UnmarshalTypeError
		synErr *json.SyntaxError
	)
	switch {
	case errors.As(err, &verrs):
		out := make([]FieldError, 0, len(verrs))
		for _, fe := range verrs {
			out = append(out, FieldError{Field: fieldPath(fe.Namespace()), Reason: reason(fe)})
		}
		return out
	case errors.As(err, &typErr):
		field := typErr.Field
		if field == "" {
			field = "body"
		}
		return []FieldError{{
			Field:  field,
			Reason: fmt.Sprintf("expected %s, got %s", typeName(typErr), typErr.Value),
		}}
	case errors.As(err, &synErr):
		return []FieldError{{Field: "body", Reason: fmt.Sprintf("malformed JSON at offset %d", synErr.Offset)}}
	case errors.Is(err, io.EOF):
		return []FieldError{{Field: "body", Reason: "required"}}
	case errors.Is(err, io.ErrUnexpectedEOF):
		return []FieldError{{Field: "body", Reason: "truncated JSON"}}
	}
	return []FieldError{{Field: "body", Reason: err.Error()}}
}

func reason(fe validator.FieldError) string {
	if fe.Param() == "" {
		return fe.Tag()
	}
	return fe.Tag() + "=" + fe.Param()
}

// fieldPath drops the root struct name: "Order.items[0].quantity" -> "items[0].quantity".
func fieldPath(ns string) string {
	if _, rest, ok := strings.Cut(ns, "."); ok {
		return rest
	}
	return ns
}

func typeName(e *json.UnmarshalTypeError) string {
	if e.Type == nil {
		return "value"
	}
	switch e.Type.Kind() {
	case reflect.String:
		return "string"
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return "integer"
	case reflect.Float32, reflect.Float64:
		return "number"
	case reflect.Bool:
		return "bool"
	case reflect.Slice, reflect.Array:
		return "array"
	case reflect.Struct, reflect.Map:
		return "object"
	}
	return e.Type.String()
}
