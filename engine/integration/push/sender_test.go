package push

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSender(t *testing.T) {
	t.Run("Should require both VAPID keys", func(t *testing.T) {
		_, err := NewSender(&Config{VAPIDPublicKey: "pub"})
		assert.Error(t, err)
		_, err = NewSender(&Config{VAPIDPrivateKey: "priv"})
		assert.Error(t, err)
		_, err = NewSender(nil)
		assert.Error(t, err)
	})

	t.Run("Should create a sender with both keys", func(t *testing.T) {
		sender, err := NewSender(&Config{
			VAPIDPublicKey:  "pub",
			VAPIDPrivateKey: "priv",
			Subject:         "mailto:ops@example.com",
		})
		require.NoError(t, err)
		assert.NotNil(t, sender)
		assert.Zero(t, sender.SubscriberCount())
	})
}

func TestSubscribe(t *testing.T) {
	t.Run("Should deduplicate subscriptions by endpoint", func(t *testing.T) {
		sender, err := NewSender(&Config{VAPIDPublicKey: "pub", VAPIDPrivateKey: "priv"})
		require.NoError(t, err)
		sender.Subscribe(&Subscription{Endpoint: "https://push.example.com/1"})
		sender.Subscribe(&Subscription{Endpoint: "https://push.example.com/1"})
		sender.Subscribe(&Subscription{Endpoint: "https://push.example.com/2"})
		assert.Equal(t, 2, sender.SubscriberCount())
	})
}
