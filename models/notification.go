package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// NotificationLog records a contact notification email that was sent.
type NotificationLog struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	ContactID primitive.ObjectID `bson:"contactId" json:"contactId"`
	ToEmail   string             `bson:"toEmail" json:"toEmail"`
	Subject   string             `bson:"subject" json:"subject"`
	SentAt    time.Time          `bson:"sentAt" json:"sentAt"`
}
