package service

import (
	"context"
	"fmt"

	"velodesk/internal/models"
)

type PushKeys struct {
	P256dh string `json:"p256dh"`
	Auth   string `json:"auth"`
}

type SubscribeInput struct {
	Endpoint  string   `json:"endpoint"`
	Keys      PushKeys `json:"keys"`
	UserAgent string   `json:"userAgent,omitempty"`
}

// Subscribe persists the browser push subscription descriptor for the
// caller; re-subscribing the same endpoint refreshes the keys.
func (s *Service) Subscribe(ctx context.Context, caller Caller, in SubscribeInput) error {
	if err := Authorize(caller).Err(); err != nil {
		return err
	}
	if in.Endpoint == "" || in.Keys.P256dh == "" || in.Keys.Auth == "" {
		return fmt.Errorf("%w: endpoint and keys required", ErrValidation)
	}
	return s.st.SavePushSubscription(ctx, &models.PushSubscription{
		UserID:    caller.ID,
		Endpoint:  in.Endpoint,
		P256dh:    in.Keys.P256dh,
		Auth:      in.Keys.Auth,
		UserAgent: in.UserAgent,
	})
}

func (s *Service) Unsubscribe(ctx context.Context, caller Caller, endpoint string) error {
	if err := Authorize(caller).Err(); err != nil {
		return err
	}
	if endpoint == "" {
		return fmt.Errorf("%w: endpoint required", ErrValidation)
	}
	return s.st.RemovePushSubscription(ctx, caller.ID, endpoint)
}
