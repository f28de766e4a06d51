package pipeline

import "encoding/json"

// StepResult is one entry of the per-request execution trace, kept for
// operator debugging and embedded in the default response envelope.
type StepResult struct {
	Type    string   `json:"type"`
	Passed  bool     `json:"passed,omitempty"`
	Applied []string `json:"applied,omitempty"`
	Skipped bool     `json:"skipped,omitempty"`
}

type Trace []StepResult

// Outcome is a terminal pipeline response: status plus a JSON-serializable
// body. A nil Outcome from the executor means fall through to Synthesize.
type Outcome struct {
	StatusCode int
	Body       interface{}
}

// Synthesize renders the definition's response template, or the default
// success envelope carrying the trace, when no action produced a terminal
// response.
func Synthesize(responseTemplate string, trace Trace) *Outcome {
	if responseTemplate != "" {
		if body, ok := parseTemplate(responseTemplate); ok {
			return &Outcome{StatusCode: 200, Body: body}
		}
	}
	if trace == nil {
		trace = Trace{}
	}
	return &Outcome{
		StatusCode: 200,
		Body:       map[string]interface{}{"success": true, "results": trace},
	}
}

func parseTemplate(template string) (interface{}, bool) {
	var body interface{}
	if err := json.Unmarshal([]byte(template), &body); err != nil {
		return nil, false
	}
	// A template stored as a JSON-encoded string may wrap the real value.
	if inner, ok := body.(string); ok {
		var unwrapped interface{}
		if err := json.Unmarshal([]byte(inner), &unwrapped); err == nil {
			return unwrapped, true
		}
	}
	return body, true
}
