package server

import (
	"math"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Blazehue/TaskMasterV1/internal/storage"
)

// listDefaults holds the per-resource pagination and sorting defaults.
type listDefaults struct {
	limit    int
	maxLimit int
	sort     string
	order    string
}

var (
	projectListDefaults  = listDefaults{limit: 10, maxLimit: 100, sort: "createdAt", order: "desc"}
	taskListDefaults     = listDefaults{limit: 10, maxLimit: 100, sort: "createdAt", order: "desc"}
	upcomingListDefaults = listDefaults{limit: 50, maxLimit: 100, sort: "dueDate", order: "asc"}
	eventListDefaults    = listDefaults{limit: 100, maxLimit: 200}
)

// parseListQuery reads pagination, search and sorting query parameters,
// clamping the limit to the resource maximum. Malformed numbers fall back to
// the defaults rather than erroring.
func parseListQuery(c *gin.Context, d listDefaults) storage.ListQuery {
	q := storage.ListQuery{
		Limit:  d.limit,
		Sort:   d.sort,
		Order:  d.order,
		Search: strings.TrimSpace(c.Query("search")),
	}
	if raw := c.Query("limit"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			q.Limit = n
		}
	}
	if q.Limit > d.maxLimit {
		q.Limit = d.maxLimit
	}
	if raw := c.Query("offset"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			q.Offset = n
		}
	}
	if raw := c.Query("sort"); raw != "" {
		q.Sort = raw
	}
	if raw := strings.ToLower(c.Query("order")); raw == "asc" || raw == "desc" {
		q.Order = raw
	}
	return q
}

// queryID reads the ?id= parameter; anything but a positive integer is a 400.
func queryID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Query("id"), 10, 64)
	if err != nil || id < 1 {
		respondError(c, http.StatusBadRequest, codeInvalidID, "Valid ID is required")
		return 0, false
	}
	return id, true
}

// pathID reads the :id path parameter with the same validation as queryID.
func pathID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id < 1 {
		respondError(c, http.StatusBadRequest, codeInvalidID, "Valid ID is required")
		return 0, false
	}
	return id, true
}

// bindBody decodes the request body into a generic map so handlers can tell
// an absent field from an explicit null.
func bindBody(c *gin.Context) (map[string]any, bool) {
	var body map[string]any
	if err := c.ShouldBindJSON(&body); err != nil {
		respondError(c, http.StatusBadRequest, codeInvalidBody, "Invalid JSON body")
		return nil, false
	}
	return body, true
}

// textValue returns the trimmed string under key, reporting whether the key
// held a string at all.
func textValue(body map[string]any, key string) (string, bool) {
	s, ok := body[key].(string)
	if !ok {
		return "", false
	}
	return strings.TrimSpace(s), true
}

// optionalText reads a nullable text field. Null, empty and whitespace-only
// values all collapse to nil; present reports whether the key appeared.
func optionalText(body map[string]any, key string) (val *string, present bool) {
	raw, exists := body[key]
	if !exists {
		return nil, false
	}
	s, _ := raw.(string)
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, true
	}
	return &s, true
}

// optionalID reads a nullable reference id. Null, zero and the empty string
// all mean "no reference"; fractional, negative or non-numeric values report
// ok=false.
func optionalID(body map[string]any, key string) (id *int64, present, ok bool) {
	raw, exists := body[key]
	if !exists {
		return nil, false, true
	}
	switch v := raw.(type) {
	case nil:
		return nil, true, true
	case float64:
		if v != math.Trunc(v) || v < 0 {
			return nil, true, false
		}
		if v == 0 {
			return nil, true, true
		}
		n := int64(v)
		return &n, true, true
	case string:
		if v == "" {
			return nil, true, true
		}
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil || n < 0 {
			return nil, true, false
		}
		if n == 0 {
			return nil, true, true
		}
		return &n, true, true
	default:
		return nil, true, false
	}
}

// intValue reads an integer field sent as a JSON number or numeric string.
func intValue(body map[string]any, key string) (int64, bool) {
	switch v := body[key].(type) {
	case float64:
		return int64(v), true
	case string:
		if n, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64); err == nil {
			return n, true
		}
	}
	return 0, false
}

// boolValue reads a boolean field.
func boolValue(body map[string]any, key string) (bool, bool) {
	v, ok := body[key].(bool)
	return v, ok
}
