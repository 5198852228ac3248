package trips

import (
	"encoding/json"
	"errors"
	"net/http"
	"reflect"
	"sort"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"trip-planner/internal/shared/server/respond"
)

// FieldIssue is one entry of a validation error's details.
type FieldIssue struct {
	Field string `json:"field"`
	Issue string `json:"issue"`
}

// Bind decodes and validates the trip payload. On failure it writes a 422 response
// and returns false.
func Bind(c *gin.Context) (Request, bool) {
	body, err := c.GetRawData()
	if err != nil {
		respond.Error(c, http.StatusUnprocessableEntity, "validation_error", "invalid trip request", []FieldIssue{{Field: "body", Issue: "malformed_json"}})
		return Request{}, false
	}
	if issues := nullIssues(body); len(issues) > 0 {
		respond.Error(c, http.StatusUnprocessableEntity, "validation_error", "invalid trip request", issues)
		return Request{}, false
	}
	var payload Payload
	if err := binding.JSON.BindBody(body, &payload); err != nil {
		respond.Error(c, http.StatusUnprocessableEntity, "validation_error", "invalid trip request", bindIssues(err))
		return Request{}, false
	}
	req, err := payload.Request()
	if err != nil {
		respond.Error(c, http.StatusUnprocessableEntity, "validation_error", err.Error(), nil)
		return Request{}, false
	}
	return req, true
}

// nullIssues reports payload fields sent as an explicit JSON null.
// Omitting a field applies its default; null does not.
func nullIssues(body []byte) []FieldIssue {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil
	}
	var issues []FieldIssue
	for name, v := range raw {
		if _, known := payloadFields[name]; known && string(v) == "null" {
			issues = append(issues, FieldIssue{Field: name, Issue: "invalid_type"})
		}
	}
	sort.Slice(issues, func(i, j int) bool { return issues[i].Field < issues[j].Field })
	return issues
}

var payloadFields = func() map[string]struct{} {
	typ := reflect.TypeOf(Payload{})
	fields := make(map[string]struct{}, typ.NumField())
	for i := 0; i < typ.NumField(); i++ {
		name, _, _ := strings.Cut(typ.Field(i).Tag.Get("json"), ",")
		if name != "" && name != "-" {
			fields[name] = struct{}{}
		}
	}
	return fields
}()

func bindIssues(err error) []FieldIssue {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		out := make([]FieldIssue, 0, len(verrs))
		for _, fe := range verrs {
			out = append(out, FieldIssue{Field: jsonFieldName(fe.StructField()), Issue: issueFor(fe)})
		}
		return out
	}
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		return []FieldIssue{{Field: typeErr.Field, Issue: "invalid_type"}}
	}
	return []FieldIssue{{Field: "body", Issue: "malformed_json"}}
}

func issueFor(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "required"
	case "datetime":
		return "invalid_date"
	case "min", "gte":
		return "too_small"
	case "max", "lte":
		return "too_large"
	default:
		return fe.Tag()
	}
}

func jsonFieldName(structField string) string {
	f, ok := reflect.TypeOf(Payload{}).FieldByName(structField)
	if !ok {
		return structField
	}
	name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
	if name == "" {
		return structField
	}
	return name
}
