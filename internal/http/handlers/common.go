package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"strings"

	"bookingapi/internal/domain"

	"github.com/gin-gonic/gin"
)

// bindEnvelope decodes a {"data": {...}} request body into dst. Decode
// failures come back as domain.ValidationError; a wrong-typed field names
// the offending key.
func bindEnvelope(c *gin.Context, dst any) error {
	if c.Request.Body == nil {
		return domain.ValidationError{Msg: "request body is required"}
	}
	err := c.ShouldBindJSON(dst)
	if err == nil {
		return nil
	}

	var typeErr *json.UnmarshalTypeError
	switch {
	case errors.As(err, &typeErr):
		field := strings.TrimPrefix(typeErr.Field, "data.")
		if field == "" {
			field = "data"
		}
		return domain.ValidationError{Field: field, Msg: "wrong type, expected " + typeErr.Type.String(), Err: err}
	case errors.Is(err, io.EOF):
		return domain.ValidationError{Msg: "request body is required", Err: err}
	default:
		return domain.ValidationError{Msg: "invalid JSON payload", Err: err}
	}
}

// hasBody reports whether the request carries a body worth decoding.
func hasBody(c *gin.Context) bool {
	return c.Request.Body != nil && c.Request.ContentLength != 0
}
