package ports

import (
	"context"
)

// NotificationChannel names a delivery channel of the external notification
// service.
type NotificationChannel string

const (
	ChannelEmail    NotificationChannel = "email"
	ChannelSMS      NotificationChannel = "sms"
	ChannelWhatsApp NotificationChannel = "whatsapp"
)

// Notifier publishes customer and rider notifications to the external
// notification service. Publishing is best-effort: the request path never
// waits on delivery, and a failed publish is logged and dropped.
type Notifier interface {
	// Notify publishes one message to the given recipient over the given
	// channels. The returned map reports per-channel publish success;
	// the error is non-nil only when no channel could be published at all.
	Notify(ctx context.Context, recipient string, message string, channels []NotificationChannel) (map[NotificationChannel]bool, error)
}
