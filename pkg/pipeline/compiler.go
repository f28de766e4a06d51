package pipeline

import "encoding/json"

// Compile parses a definition's stored action list into an ordered action
// sequence. Operator configuration is untrusted input: any parse failure
// (malformed JSON, non-array, double-encoded garbage) degrades to an empty
// pipeline instead of failing the request. Unrecognized action types are
// kept, not dropped, so they surface in the execution trace.
func Compile(raw []byte) []Action {
	if len(raw) == 0 {
		return nil
	}

	data := raw

	// Spreadsheet-backed stores tend to double-encode: the actions cell may
	// hold a JSON string that itself contains the array.
	var asString string
	if err := json.Unmarshal(data, &asString); err == nil {
		data = []byte(asString)
	}

	var actions []Action
	if err := json.Unmarshal(data, &actions); err != nil {
		return nil
	}
	return actions
}
