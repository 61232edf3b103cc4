package errors

import (
	"encoding/json"
	stderrors "errors"
	"fmt"
	"io"
	"net/http"
	"reflect"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// Public error strings. Clients match on these, keep them stable.
const (
	HttpValidationFailed   = "Validation failed"
	HttpInvalidInput       = "Invalid input"
	HttpPayloadTooLarge    = "Payload too large"
	HttpRouteNotFound      = "Route not found"
	HttpCatalogNotReady    = "Catalog not ready"
	HttpInternalError      = "Internal server error"
	HttpForbidden          = "Forbidden"
	HttpMetricsUnavailable = "Metrics unavailable"
)

// ErrorResponse is the JSON body of every error reply.
type ErrorResponse struct {
	Error   string      `json:"error"`
	Message string      `json:"message,omitempty"`
	Details interface{} `json:"details,omitempty"`
}

// FieldError is one entry of a validation failure's details.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Coder is implemented by errors that choose their own HTTP status.
type Coder interface {
	StatusCode() int
}

func init() {
	// Report JSON field names instead of Go struct field names in validation details.
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterTagNameFunc(jsonTagName)
	}
}

func jsonTagName(fld reflect.StructField) string {
	name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
	if name == "-" {
		return ""
	}
	if name == "" {
		return fld.Name
	}
	return name
}

// Abort writes the envelope and stops the handler chain.
func Abort(c *gin.Context, status int, resp ErrorResponse) {
	c.AbortWithStatusJSON(status, resp)
}

// AbortBind answers a failed ShouldBindJSON: 413 when the body hit the size cap,
// otherwise 400 with label as the error and per-field details.
func AbortBind(c *gin.Context, err error, label string) {
	if BodyTooLarge(err) {
		Abort(c, http.StatusRequestEntityTooLarge, ErrorResponse{Error: HttpPayloadTooLarge})
		return
	}
	Abort(c, http.StatusBadRequest, ErrorResponse{Error: label, Details: ValidationDetails(err)})
}

// BodyTooLarge reports whether err came from reading past http.MaxBytesReader's limit.
func BodyTooLarge(err error) bool {
	var tooLarge *http.MaxBytesError
	return stderrors.As(err, &tooLarge)
}

// ValidationDetails turns binding errors into per-field details.
func ValidationDetails(err error) []FieldError {
	var verrs validator.ValidationErrors
	if stderrors.As(err, &verrs) {
		details := make([]FieldError, 0, len(verrs))
		for _, fe := range verrs {
			details = append(details, FieldError{Field: fe.Field(), Message: fieldMessage(fe)})
		}
		return details
	}

	var typeErr *json.UnmarshalTypeError
	if stderrors.As(err, &typeErr) {
		return []FieldError{{
			Field:   typeErr.Field,
			Message: fmt.Sprintf("must be a %s", typeErr.Type.String()),
		}}
	}

	var syntaxErr *json.SyntaxError
	if stderrors.As(err, &syntaxErr) || stderrors.Is(err, io.EOF) {
		return []FieldError{{Field: "body", Message: "must be valid JSON"}}
	}

	return []FieldError{{Field: "body", Message: err.Error()}}
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("must be at least %s characters", fe.Param())
		}
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("must be at most %s characters", fe.Param())
		}
		return fmt.Sprintf("must be at most %s", fe.Param())
	case "email":
		return "must be a valid email"
	case "url", "http_url":
		return "must be a valid URL"
	case "oneof":
		return fmt.Sprintf("must be one of: %s", strings.ReplaceAll(fe.Param(), " ", ", "))
	case "gt":
		return fmt.Sprintf("must be greater than %s", fe.Param())
	default:
		return fmt.Sprintf("failed %q validation", fe.Tag())
	}
}
