package entities

import (
	"encoding/json"
	"time"
)

type DietPlan struct {
	UserID      string          `gorm:"type:varchar(255);primaryKey" json:"user_id"`
	PlanDate    time.Time       `gorm:"primaryKey" json:"plan_date"`
	DietPlanID  string          `gorm:"type:uuid;uniqueIndex" json:"diet_plan_id"`
	Active      bool            `json:"active"`
	PlanDetails json.RawMessage `gorm:"type:jsonb" json:"plan_details"`
	CreatedAt   time.Time       `json:"created_at"`
}
