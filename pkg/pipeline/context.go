package pipeline

import (
	"encoding/json"
	"net/url"
	"strings"
)

// WorkingSet is the per-request mutable key/value store the pipeline
// operates over. It is allocated fresh for every request and never escapes
// it.
type WorkingSet map[string]interface{}

// BuildWorkingSet seeds the working set from the normalized request:
// query parameters for GET, otherwise the JSON or form body. Anything
// unparseable seeds an empty set.
func BuildWorkingSet(method, contentType string, body []byte, query map[string]string) WorkingSet {
	if strings.EqualFold(method, "GET") {
		ws := make(WorkingSet, len(query))
		for k, v := range query {
			ws[k] = v
		}
		return ws
	}
	return bodyWorkingSet(contentType, body)
}

// BuildWebhookWorkingSet seeds from a webhook's JSON body, defaulting to an
// empty set on parse failure.
func BuildWebhookWorkingSet(body []byte) WorkingSet {
	var ws WorkingSet
	if err := json.Unmarshal(body, &ws); err != nil || ws == nil {
		return WorkingSet{}
	}
	return ws
}

func bodyWorkingSet(contentType string, body []byte) WorkingSet {
	if len(body) == 0 {
		return WorkingSet{}
	}

	if strings.Contains(contentType, "application/x-www-form-urlencoded") {
		values, err := url.ParseQuery(string(body))
		if err != nil {
			return WorkingSet{}
		}
		ws := make(WorkingSet, len(values))
		for k := range values {
			ws[k] = values.Get(k)
		}
		return ws
	}

	var ws WorkingSet
	if err := json.Unmarshal(body, &ws); err != nil || ws == nil {
		return WorkingSet{}
	}
	return ws
}

// Truthy reports whether a working-set value counts as present for
// validation: defined and not an empty string, false, or numeric zero.
func Truthy(value interface{}) bool {
	switch v := value.(type) {
	case nil:
		return false
	case string:
		return v != ""
	case bool:
		return v
	case float64:
		return v != 0
	case int:
		return v != 0
	default:
		return true
	}
}
