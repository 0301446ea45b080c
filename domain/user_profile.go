package domain

import (
	"encoding/json"
	"errors"
	"strings"
)

var (
	MessageUserCreated     = "User created"
	MessageAttributesAdded = "Attributes added"
	MessageUserExists      = "User exists"

	ErrMissingUserID        = errors.New("Missing required field: user_id")
	ErrMissingEmailOrName   = errors.New("Missing required fields: email or name")
	ErrCheckingExistingUser = errors.New("Error checking existing user")
	ErrFailedToUpdateUser   = errors.New("Failed to update user")
	ErrFailedToSaveProfile  = errors.New("Failed to save user profile")
	ErrProfileNotFound      = errors.New("User profile not found")
)

type (
	CompleteProfileRequest struct {
		UserID           string           `json:"user_id"`
		Email            string           `json:"email"`
		Name             string           `json:"name"`
		Height           *float64         `json:"height"`
		Weight           *float64         `json:"weight"`
		DateOfBirth      string           `json:"date_of_birth"`
		Gender           string           `json:"gender"`
		HealthConditions HealthConditions `json:"health_conditions"`
	}
)

// HealthConditions accepts either a JSON array of strings, kept as-is, or a
// single comma separated string, which gets split into trimmed entries.
type HealthConditions []string

func (h *HealthConditions) UnmarshalJSON(b []byte) error {
	s := strings.TrimSpace(string(b))
	if s == "" || s == "null" {
		*h = nil
		return nil
	}
	if strings.HasPrefix(s, "[") {
		var list []string
		if err := json.Unmarshal(b, &list); err != nil {
			return err
		}
		*h = list
		return nil
	}
	var single string
	if err := json.Unmarshal(b, &single); err != nil {
		return err
	}
	parts := strings.Split(single, ",")
	out := make(HealthConditions, 0, len(parts))
	for _, p := range parts {
		out = append(out, strings.TrimSpace(p))
	}
	*h = out
	return nil
}
