// Package push delivers notification events to persisted browser push
// subscriptions using Web Push with VAPID authentication.
package push

import (
	"context"
	"encoding/json"

	webpush "github.com/SherClockHolmes/webpush-go"
	"go.uber.org/zap"

	"velodesk/internal/models"
	"velodesk/internal/service"
	"velodesk/internal/store"
)

// payload matches what the client service worker expects on a push event.
type payload struct {
	Title              string `json:"title"`
	Body               string `json:"body"`
	Tag                string `json:"tag,omitempty"`
	RequireInteraction bool   `json:"requireInteraction,omitempty"`
	Data               struct {
		URL string `json:"url,omitempty"`
	} `json:"data"`
}

type Sender struct {
	st         *store.Store
	lg         *zap.SugaredLogger
	publicKey  string
	privateKey string
	subject    string
}

func NewSender(st *store.Store, lg *zap.SugaredLogger, publicKey, privateKey, subject string) *Sender {
	return &Sender{st: st, lg: lg, publicKey: publicKey, privateKey: privateKey, subject: subject}
}

// Hook adapts the sender into a service notification hook. Delivery runs in
// the background: a dead endpoint only produces a log line.
func (s *Sender) Hook() service.Hook {
	return func(ctx context.Context, evt service.Event) error {
		subs, err := s.st.PushSubscriptionsByUser(ctx, evt.RecipientID)
		if err != nil {
			return err
		}
		if len(subs) == 0 {
			return nil
		}
		var p payload
		p.Title = evt.Title
		p.Body = evt.Body
		p.Tag = string(evt.Type)
		p.Data.URL = evt.URL
		body, err := json.Marshal(p)
		if err != nil {
			return err
		}
		for _, sub := range subs {
			go s.send(sub, body)
		}
		return nil
	}
}

func (s *Sender) send(sub models.PushSubscription, body []byte) {
	resp, err := webpush.SendNotification(body, &webpush.Subscription{
		Endpoint: sub.Endpoint,
		Keys:     webpush.Keys{P256dh: sub.P256dh, Auth: sub.Auth},
	}, &webpush.Options{
		Subscriber:      s.subject,
		VAPIDPublicKey:  s.publicKey,
		VAPIDPrivateKey: s.privateKey,
		TTL:             60,
	})
	if err != nil {
		s.lg.Warnw("push delivery failed", "endpoint", sub.Endpoint, "error", err)
		return
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 400 {
		s.lg.Warnw("push rejected", "endpoint", sub.Endpoint, "status", resp.StatusCode)
	}
}
