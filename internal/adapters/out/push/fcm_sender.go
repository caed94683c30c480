// Package push delivers driver notifications through Firebase Cloud
// Messaging.
package push

import (
	"context"
	"fmt"
	"log/slog"

	"roadside/internal/pkg/errs"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"google.golang.org/api/option"
)

type messageClient interface {
	Send(ctx context.Context, message *messaging.Message) (string, error)
}

// FCMSender implements ports.PushSender.
type FCMSender struct {
	client messageClient
	logger *slog.Logger
}

// NewFCMSender initialises the Firebase Admin SDK. When credentialsFile is
// empty, application default credentials are used.
func NewFCMSender(ctx context.Context, projectID, credentialsFile string, logger *slog.Logger) (*FCMSender, error) {
	var opts []option.ClientOption
	if credentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(credentialsFile))
	}

	app, err := firebase.NewApp(ctx, &firebase.Config{ProjectID: projectID}, opts...)
	if err != nil {
		return nil, fmt.Errorf("firebase.NewApp: %w", err)
	}

	client, err := app.Messaging(ctx)
	if err != nil {
		return nil, fmt.Errorf("firebase app.Messaging: %w", err)
	}

	return newFCMSender(client, logger), nil
}

func newFCMSender(client messageClient, logger *slog.Logger) *FCMSender {
	return &FCMSender{client: client, logger: logger.With("component", "fcm-sender")}
}

func (s *FCMSender) Send(ctx context.Context, deviceToken, title, body string, data map[string]string) error {
	if deviceToken == "" {
		return errs.NewValueIsRequiredError("deviceToken")
	}

	msg := &messaging.Message{
		Token: deviceToken,
		Data:  data,
		Notification: &messaging.Notification{
			Title: title,
			Body:  body,
		},
		Android: &messaging.AndroidConfig{
			Priority: "high",
		},
	}

	messageID, err := s.client.Send(ctx, msg)
	if err != nil {
		return fmt.Errorf("send FCM message: %w", err)
	}

	s.logger.DebugContext(ctx, "push notification sent", "message_id", messageID, "order_id", data["order_id"])
	return nil
}
