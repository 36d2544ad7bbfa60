package models

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
)

// Payload normalization errors
var (
	// ErrEmptyUserPayload indicates the backend returned an empty user array
	ErrEmptyUserPayload = errors.New("user payload is empty")

	// ErrUserMissingID indicates the user record has no recognizable identifier
	ErrUserMissingID = errors.New("user payload has no _id field")
)

// User represents the Talaria account profile as returned by the backend.
// The backend is loosely typed: /user/info may answer with either a bare
// object or a one-element array, and sneakerSize arrives as a string or a
// number depending on which endpoint last wrote it.
type User struct {
	ID          string     `json:"_id"`
	Name        string     `json:"name,omitempty"`
	Email       string     `json:"email,omitempty"`
	PhoneNumber string     `json:"phoneNumber,omitempty"`
	SneakerSize FlexString `json:"sneakerSize,omitempty"`
	Birthday    string     `json:"birthday,omitempty"`
	Role        string     `json:"role,omitempty"`
}

// FlexString is a string that also accepts JSON numbers when decoding.
type FlexString string

// UnmarshalJSON accepts a JSON string, number, or null.
func (f *FlexString) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*f = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*f = FlexString(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("value is neither string nor number: %w", err)
	}
	*f = FlexString(n.String())
	return nil
}

// Float parses the value as a number. The second return reports whether
// parsing succeeded.
func (f FlexString) Float() (float64, bool) {
	v, err := strconv.ParseFloat(string(f), 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// UserFromPayload normalizes the duck-typed user payload the backend sends:
// either a bare user object or a one-element array containing it. The
// result must carry an _id, otherwise the payload is rejected.
func UserFromPayload(raw []byte) (*User, error) {
	// Array form first: it is also the on-disk session format
	var list []User
	if err := json.Unmarshal(raw, &list); err == nil {
		if len(list) == 0 {
			return nil, ErrEmptyUserPayload
		}
		u := list[0]
		if u.ID == "" {
			return nil, ErrUserMissingID
		}
		return &u, nil
	}

	var u User
	if err := json.Unmarshal(raw, &u); err != nil {
		return nil, fmt.Errorf("failed to decode user payload: %w", err)
	}
	if u.ID == "" {
		return nil, ErrUserMissingID
	}
	return &u, nil
}
