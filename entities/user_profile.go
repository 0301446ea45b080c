package entities

import (
	"time"
)

type UserProfile struct {
	UserID           string    `gorm:"type:varchar(255);primary_key" json:"user_id"`
	Email            string    `json:"email,omitempty"`
	Name             string    `json:"name,omitempty"`
	Height           *float64  `json:"height,omitempty"`
	Weight           *float64  `json:"weight,omitempty"`
	DateOfBirth      string    `json:"date_of_birth,omitempty"`
	Gender           string    `json:"gender,omitempty"`
	HealthConditions []string  `gorm:"serializer:json;type:jsonb" json:"health_conditions"`
	DateCreated      time.Time `json:"date_created"`
	LastUpdated      time.Time `json:"last_updated"`
}
