package dietplan

import (
	"NutriPlan-Backend/domain"
	"NutriPlan-Backend/entities"
	"NutriPlan-Backend/pkg/profile"
	"NutriPlan-Backend/pkg/subscription"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	DietPlanService interface {
		GeneratePlan(ctx context.Context, req domain.GeneratePlanRequest) (json.RawMessage, error)
		GetUserPlans(ctx context.Context, userID string) (domain.UserPlansResponse, error)
	}

	dietPlanService struct {
		dietPlanRepository     DietPlanRepository
		profileRepository      profile.ProfileRepository
		subscriptionRepository subscription.SubscriptionRepository
		subscriptionService    subscription.SubscriptionService
		generator              PlanGenerator
	}
)

func NewDietPlanService(
	dietPlanRepository DietPlanRepository,
	profileRepository profile.ProfileRepository,
	subscriptionRepository subscription.SubscriptionRepository,
	subscriptionService subscription.SubscriptionService,
	generator PlanGenerator,
) DietPlanService {
	return &dietPlanService{
		dietPlanRepository:     dietPlanRepository,
		profileRepository:      profileRepository,
		subscriptionRepository: subscriptionRepository,
		subscriptionService:    subscriptionService,
		generator:              generator,
	}
}

// GeneratePlan builds the generation brief from the stored profile plus the
// request, asks the model for a plan, then runs the four-step persistence
// sequence: insert the new plan active, deactivate the old ones, drop the
// user's subscription rows, insert one fresh subscription. The steps are
// independent writes; a crash in between can leave two active plans or a
// subscription gap. That window is accepted, not papered over.
func (s *dietPlanService) GeneratePlan(ctx context.Context, req domain.GeneratePlanRequest) (json.RawMessage, error) {
	userProfile, err := s.profileRepository.GetByUserID(ctx, req.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}

	currentWeight := 0.0
	if userProfile.Weight != nil {
		currentWeight = *userProfile.Weight
	}

	age := AgeInYears(userProfile.DateOfBirth, time.Now().UTC())
	goal := GoalLabel(currentWeight, float64(req.TargetWeight))
	prompt := buildPrompt(userProfile, age, goal, req)

	planDetails, err := s.generator.Generate(ctx, prompt)
	if err != nil {
		return nil, err
	}

	dietPlanID := uuid.NewString()
	now := time.Now().UTC()

	newPlan := &entities.DietPlan{
		UserID:      req.UserID,
		PlanDate:    now,
		DietPlanID:  dietPlanID,
		Active:      true,
		PlanDetails: planDetails,
		CreatedAt:   now,
	}
	if err := s.dietPlanRepository.Insert(ctx, newPlan); err != nil {
		return nil, err
	}

	existing, err := s.dietPlanRepository.ListByUserID(ctx, req.UserID)
	if err != nil {
		return nil, err
	}
	for _, plan := range existing {
		if plan.DietPlanID != dietPlanID && plan.Active {
			if err := s.dietPlanRepository.Deactivate(ctx, req.UserID, plan.PlanDate); err != nil {
				return nil, err
			}
		}
	}

	newSub := &entities.Subscription{
		UserID:                req.UserID,
		SubscriptionStartDate: now,
		SubscriptionStatus:    domain.SubscriptionStatusActive,
		DietaryPreferences:    req.DietaryPreferences,
		HealthConditions:      userProfile.HealthConditions,
		FitnessGoals:          req.FitnessGoals,
		PlanFrequency:         req.ActivityFrequency,
		LastDietPlanID:        dietPlanID,
		NextPlanDue:           "",
		UpdatedAt:             now,
	}
	if err := s.subscriptionService.Replace(ctx, req.UserID, newSub); err != nil {
		return nil, err
	}

	return planDetails, nil
}

func (s *dietPlanService) GetUserPlans(ctx context.Context, userID string) (domain.UserPlansResponse, error) {
	plans, err := s.dietPlanRepository.ListByUserID(ctx, userID)
	if err != nil {
		return domain.UserPlansResponse{}, err
	}
	subs, err := s.subscriptionRepository.ListByUserID(ctx, userID)
	if err != nil {
		return domain.UserPlansResponse{}, err
	}

	resp := domain.UserPlansResponse{
		DietPlans:           make([]domain.DietPlanRecord, 0, len(plans)),
		SubscriptionRecords: make([]domain.SubscriptionRecord, 0, len(subs)),
	}
	for _, p := range plans {
		resp.DietPlans = append(resp.DietPlans, domain.DietPlanRecord{
			UserID:      p.UserID,
			PlanDate:    p.PlanDate.Format(time.RFC3339),
			DietPlanID:  p.DietPlanID,
			Active:      p.Active,
			PlanDetails: p.PlanDetails,
			CreatedAt:   p.CreatedAt.Format(time.RFC3339),
		})
	}
	for _, sub := range subs {
		resp.SubscriptionRecords = append(resp.SubscriptionRecords, domain.SubscriptionRecord{
			UserID:                sub.UserID,
			SubscriptionStartDate: sub.SubscriptionStartDate.Format(time.RFC3339),
			SubscriptionStatus:    sub.SubscriptionStatus,
			DietaryPreferences:    sub.DietaryPreferences,
			HealthConditions:      sub.HealthConditions,
			FitnessGoals:          sub.FitnessGoals,
			PlanFrequency:         sub.PlanFrequency,
			LastDietPlanID:        sub.LastDietPlanID,
			NextPlanDue:           sub.NextPlanDue,
			UpdatedAt:             sub.UpdatedAt.Format(time.RFC3339),
		})
	}
	return resp, nil
}

// AgeInYears is the floor of whole years elapsed since the birth date. An
// unparsable date of birth counts as zero.
func AgeInYears(dateOfBirth string, now time.Time) int {
	birth, err := time.Parse("2006-01-02", dateOfBirth)
	if err != nil {
		return 0
	}
	years := now.Year() - birth.Year()
	anniversary := time.Date(now.Year(), birth.Month(), birth.Day(), 0, 0, 0, 0, time.UTC)
	if now.Before(anniversary) {
		years--
	}
	if years < 0 {
		years = 0
	}
	return years
}

// GoalLabel classifies the requested change by the sign of the difference.
// The label only feeds the generation brief.
func GoalLabel(currentWeight, targetWeight float64) string {
	diff := currentWeight - targetWeight
	switch {
	case diff > 0:
		return "weight loss"
	case diff < 0:
		return "weight gain"
	default:
		return "maintenance"
	}
}

func buildPrompt(userProfile *entities.UserProfile, age int, goal string, req domain.GeneratePlanRequest) string {
	height := ""
	if userProfile.Height != nil {
		height = fmt.Sprintf("%g", *userProfile.Height)
	}
	currentWeight := ""
	if userProfile.Weight != nil {
		currentWeight = fmt.Sprintf("%g", *userProfile.Weight)
	}

	var sb strings.Builder
	sb.WriteString("Generate a customized diet plan in JSON format for a user with the following details:\n")
	sb.WriteString(fmt.Sprintf("- Current Weight: %s kg\n", currentWeight))
	sb.WriteString(fmt.Sprintf("- Target Weight: %g kg (Goal: %s)\n", float64(req.TargetWeight), goal))
	sb.WriteString(fmt.Sprintf("- Height: %s\n", height))
	sb.WriteString(fmt.Sprintf("- Age: %d\n", age))
	sb.WriteString(fmt.Sprintf("- Health Conditions: %s\n", strings.Join(userProfile.HealthConditions, ", ")))
	sb.WriteString(fmt.Sprintf("- Dietary Preferences: %s\n", req.DietaryPreferences))
	sb.WriteString(fmt.Sprintf("- Food Intake: %s\n", req.FoodIntake.Join()))
	sb.WriteString(fmt.Sprintf("- Physical Activities: %s\n", req.Activities.Join()))
	sb.WriteString(fmt.Sprintf("- Activity Frequency: %s\n", req.ActivityFrequency))
	sb.WriteString(fmt.Sprintf("- Fitness Goals: %s\n", req.FitnessGoals))
	sb.WriteString(fmt.Sprintf("- Emotional Eating Triggers: %s\n", req.Triggers.Join()))
	sb.WriteString("\nReturn only a valid JSON object exactly following this structure:\n")
	sb.WriteString(planSchema)
	return sb.String()
}

const planSchema = `{
  "diet_goal": "<string>",
  "target_weight": "<string>",
  "food_allergies": [ "<string>" ],
  "physical_activity": [ "<string>" ],
  "frequency": "<string>",
  "time_constraint": "<string>",
  "emotional_eating_triggers": [ "<string>" ],
  "breakfast": { "option1": { "dish": "", "ingredients": [], "calories": "" }, "option2": { "dish": "", "ingredients": [], "calories": "" } },
  "lunch": { "option1": { "dish": "", "ingredients": [], "calories": "" }, "option2": { "dish": "", "ingredients": [], "calories": "" } },
  "dinner": { "option1": { "dish": "", "ingredients": [], "calories": "" }, "option2": { "dish": "", "ingredients": [], "calories": "" } },
  "snacks": { "option1": { "dish": "", "ingredients": [], "calories": "" }, "option2": { "dish": "", "ingredients": [], "calories": "" } },
  "total_daily_calories": <number>,
  "notes": "<string>"
}`
