package pubsub

import (
	"encoding/base64"
	"encoding/json"
	"time"

	"style/internal/domain/constants"
	"style/internal/domain/service"
	"style/internal/errors"

	"github.com/google/uuid"
)

// PushMessage is the body Pub/Sub sends to push subscriptions.
type PushMessage struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

// orphanedImageAttributes are set on every published orphaned image message.
func orphanedImageAttributes(event *service.OrphanedImageEvent) map[string]string {
	attributes := map[string]string{
		constants.AttributeBucket: event.Bucket.String(),
		constants.AttributeReason: event.Reason,
	}
	if event.RequestID != "" {
		attributes[constants.AttributeRequestID] = event.RequestID
	}

	return attributes
}

// NewOrphanedImagePush wraps event the way a push subscription would deliver it.
func NewOrphanedImagePush(event *service.OrphanedImageEvent, subscription string) (*PushMessage, error) {
	data, err := json.Marshal(event)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	msg := &PushMessage{Subscription: subscription}
	msg.Message.Data = base64.StdEncoding.EncodeToString(data)
	msg.Message.Attributes = orphanedImageAttributes(event)
	msg.Message.MessageID = uuid.NewString()
	msg.Message.PublishTime = time.Now().UTC().Format(time.RFC3339)

	return msg, nil
}

// DecodeOrphanedImage extracts the event carried by a push message.
func (m *PushMessage) DecodeOrphanedImage() (*service.OrphanedImageEvent, error) {
	data, err := base64.StdEncoding.DecodeString(m.Message.Data)
	if err != nil {
		return nil, errors.Wrap(err, "decode message data")
	}

	var event service.OrphanedImageEvent
	if err := json.Unmarshal(data, &event); err != nil {
		return nil, errors.Wrap(err, "parse orphaned image event")
	}

	if requestID := m.Message.Attributes[constants.AttributeRequestID]; requestID != "" && event.RequestID == "" {
		event.RequestID = requestID
	}

	return &event, nil
}
