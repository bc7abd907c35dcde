package api

import (
	"encoding/json"
	"strings"
)

// ErrorBody is the error envelope returned by the API on non-2xx responses.
// "detail" is either a plain message or a list of field-level validation
// errors; ErrorDetail absorbs both forms.
type ErrorBody struct {
	Detail ErrorDetail `json:"detail"`
}

// FieldError is one field-level validation failure.
type FieldError struct {
	Loc []string `json:"loc"`
	Msg string   `json:"msg"`
}

// ErrorDetail holds either a plain message or field errors, whichever the
// server sent.
type ErrorDetail struct {
	Message string
	Fields  []FieldError
}

// UnmarshalJSON accepts both the string and the array form of "detail".
func (d *ErrorDetail) UnmarshalJSON(data []byte) error {
	var msg string
	if err := json.Unmarshal(data, &msg); err == nil {
		d.Message = msg
		d.Fields = nil
		return nil
	}

	var fields []FieldError
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}
	d.Message = ""
	d.Fields = fields
	return nil
}

// MarshalJSON emits whichever form the detail holds.
func (d ErrorDetail) MarshalJSON() ([]byte, error) {
	if len(d.Fields) > 0 {
		return json.Marshal(d.Fields)
	}
	return json.Marshal(d.Message)
}

// String renders the detail for display. Field errors are joined as
// "loc.path: msg" pairs.
func (d ErrorDetail) String() string {
	if len(d.Fields) == 0 {
		return d.Message
	}

	parts := make([]string, 0, len(d.Fields))
	for _, fe := range d.Fields {
		if len(fe.Loc) == 0 {
			parts = append(parts, fe.Msg)
			continue
		}
		parts = append(parts, strings.Join(fe.Loc, ".")+": "+fe.Msg)
	}
	return strings.Join(parts, "; ")
}
