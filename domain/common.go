package domain

import (
	"encoding/json"
	"errors"
	"strconv"
	"strings"
)

var (
	MessageFailedBodyRequest    = "Invalid JSON input."
	MessageFailedProcessRequest = "failed to process request"

	ErrInvalidJSONPayload = errors.New("Invalid JSON payload")
)

// Number unmarshals any JSON value, coercing missing or non-numeric input to
// zero instead of rejecting the request. Numeric strings parse normally.
type Number float64

func (n *Number) UnmarshalJSON(b []byte) error {
	s := strings.TrimSpace(string(b))
	if s == "" || s == "null" {
		*n = 0
		return nil
	}
	s = strings.Trim(s, `"`)
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		*n = 0
		return nil
	}
	*n = Number(v)
	return nil
}

// FlexScalar keeps the literal text of a JSON string or number.
type FlexScalar string

func (f *FlexScalar) UnmarshalJSON(b []byte) error {
	s := strings.TrimSpace(string(b))
	if s == "" || s == "null" {
		*f = ""
		return nil
	}
	if strings.HasPrefix(s, `"`) {
		var v string
		if err := json.Unmarshal(b, &v); err != nil {
			return err
		}
		*f = FlexScalar(v)
		return nil
	}
	*f = FlexScalar(s)
	return nil
}

// FlexStrings accepts either a JSON array of strings or a single string.
type FlexStrings []string

func (f *FlexStrings) UnmarshalJSON(b []byte) error {
	s := strings.TrimSpace(string(b))
	if s == "" || s == "null" {
		*f = nil
		return nil
	}
	if strings.HasPrefix(s, "[") {
		var list []string
		if err := json.Unmarshal(b, &list); err != nil {
			return err
		}
		*f = list
		return nil
	}
	var single string
	if err := json.Unmarshal(b, &single); err != nil {
		return err
	}
	*f = FlexStrings{single}
	return nil
}

func (f FlexStrings) Join() string {
	return strings.Join(f, ", ")
}
