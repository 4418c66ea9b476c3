package push

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	webpush "github.com/SherClockHolmes/webpush-go"
	"github.com/remindly/remindly/engine/task"
	"github.com/remindly/remindly/pkg/logger"
)

// Subscription is a browser push subscription as delivered by the
// PushManager API.
type Subscription = webpush.Subscription

// Sender delivers Web Push notifications to subscribed clients using
// VAPID keys. Subscriptions live in memory for the process lifetime.
type Sender struct {
	options webpush.Options

	mu   sync.RWMutex
	subs map[string]*Subscription
}

// Config for the Web Push sender.
type Config struct {
	VAPIDPublicKey  string
	VAPIDPrivateKey string
	Subject         string
}

// NewSender creates a sender. Both VAPID keys are required; callers treat
// a configuration error as the integration being disabled.
func NewSender(cfg *Config) (*Sender, error) {
	if cfg == nil || cfg.VAPIDPublicKey == "" || cfg.VAPIDPrivateKey == "" {
		return nil, fmt.Errorf("push: VAPID keys are required")
	}
	return &Sender{
		options: webpush.Options{
			Subscriber:      cfg.Subject,
			VAPIDPublicKey:  cfg.VAPIDPublicKey,
			VAPIDPrivateKey: cfg.VAPIDPrivateKey,
			TTL:             60,
		},
		subs: make(map[string]*Subscription),
	}, nil
}

// Subscribe registers a client subscription, keyed by endpoint.
func (s *Sender) Subscribe(sub *Subscription) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subs[sub.Endpoint] = sub
}

// SubscriberCount reports the number of registered subscriptions.
func (s *Sender) SubscriberCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.subs)
}

// BroadcastUrgent pushes the urgent notifications to every subscriber.
// Delivery failures are logged per subscription and never surfaced; push
// is advisory and must not fail the request that triggered it.
func (s *Sender) BroadcastUrgent(ctx context.Context, notifications []task.Notification) {
	urgent := make([]task.Notification, 0, len(notifications))
	for _, n := range notifications {
		if n.Urgency == task.UrgencyUrgent {
			urgent = append(urgent, n)
		}
	}
	if len(urgent) == 0 {
		return
	}
	log := logger.FromContext(ctx)
	payload, err := json.Marshal(urgent)
	if err != nil {
		log.Error("Failed to encode push payload", "error", err)
		return
	}
	s.mu.RLock()
	subs := make([]*Subscription, 0, len(s.subs))
	for _, sub := range s.subs {
		subs = append(subs, sub)
	}
	s.mu.RUnlock()
	for _, sub := range subs {
		resp, err := webpush.SendNotificationWithContext(ctx, payload, sub, &s.options)
		if err != nil {
			log.Warn("Push delivery failed", "endpoint", sub.Endpoint, "error", err)
			continue
		}
		resp.Body.Close()
	}
}
