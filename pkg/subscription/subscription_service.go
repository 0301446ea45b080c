package subscription

import (
	"NutriPlan-Backend/domain"
	"NutriPlan-Backend/entities"
	"context"
)

type (
	SubscriptionService interface {
		GetActiveSubscription(ctx context.Context, userID string) (*entities.Subscription, error)
		Replace(ctx context.Context, userID string, sub *entities.Subscription) error
	}

	subscriptionService struct {
		subscriptionRepository SubscriptionRepository
	}
)

func NewSubscriptionService(subscriptionRepository SubscriptionRepository) SubscriptionService {
	return &subscriptionService{subscriptionRepository: subscriptionRepository}
}

// GetActiveSubscription returns the first active row for the user. More than
// one active row is a should-not-happen state; the first encountered wins.
func (s *subscriptionService) GetActiveSubscription(ctx context.Context, userID string) (*entities.Subscription, error) {
	subs, err := s.subscriptionRepository.ListByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	for _, sub := range subs {
		if sub.SubscriptionStatus == domain.SubscriptionStatusActive {
			return sub, nil
		}
	}
	return nil, domain.ErrNoActiveSubscription
}

// Replace deletes every subscription row for the user and inserts exactly one
// replacement. The two writes are independent; concurrent callers can observe
// a gap between them.
func (s *subscriptionService) Replace(ctx context.Context, userID string, sub *entities.Subscription) error {
	if err := s.subscriptionRepository.DeleteAllForUser(ctx, userID); err != nil {
		return err
	}
	return s.subscriptionRepository.Insert(ctx, sub)
}
