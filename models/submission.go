package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Contact statuses.
const (
	ContactPending   = "pending"
	ContactContacted = "contacted"
	ContactResolved  = "resolved"
)

// Contact priorities.
const (
	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
)

// Job application statuses.
const (
	ApplicationApplied   = "applied"
	ApplicationScreening = "screening"
	ApplicationInterview = "interview"
	ApplicationPlaced    = "placed"
	ApplicationRejected  = "rejected"
)

// Fraud case statuses.
const (
	FraudReported      = "reported"
	FraudInvestigating = "investigating"
	FraudResolved      = "resolved"
	FraudClosed        = "closed"
)

var (
	ContactStatuses     = []string{ContactPending, ContactContacted, ContactResolved}
	ApplicationStatuses = []string{ApplicationApplied, ApplicationScreening, ApplicationInterview, ApplicationPlaced, ApplicationRejected}
	FraudStatuses       = []string{FraudReported, FraudInvestigating, FraudResolved, FraudClosed}
	Priorities          = []string{PriorityLow, PriorityMedium, PriorityHigh}
)

// StatusValid reports whether status belongs to the closed set for its kind.
// Transitions are not ordered: the dashboard moves records both ways.
func StatusValid(statuses []string, status string) bool {
	for _, s := range statuses {
		if s == status {
			return true
		}
	}
	return false
}

type Contact struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name      string             `bson:"name" json:"name"`
	Email     string             `bson:"email" json:"email"`
	Phone     string             `bson:"phone" json:"phone"`
	Service   string             `bson:"service" json:"service"`
	Message   string             `bson:"message" json:"message"`
	Priority  string             `bson:"priority" json:"priority"`
	Status    string             `bson:"status" json:"status"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
}

type JobApplication struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name           string             `bson:"name" json:"name"`
	Email          string             `bson:"email" json:"email"`
	Phone          string             `bson:"phone" json:"phone"`
	Position       string             `bson:"position" json:"position"`
	Experience     string             `bson:"experience" json:"experience"`
	Skills         string             `bson:"skills" json:"skills"`
	ExpectedSalary string             `bson:"expectedSalary,omitempty" json:"expectedSalary,omitempty"`
	Location       string             `bson:"location,omitempty" json:"location,omitempty"`
	Resume         string             `bson:"resume,omitempty" json:"resume,omitempty"` // stored path
	Status         string             `bson:"status" json:"status"`
	CreatedAt      time.Time          `bson:"createdAt" json:"createdAt"`
}

type FraudCase struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name            string             `bson:"name" json:"name"`
	Email           string             `bson:"email" json:"email"`
	Phone           string             `bson:"phone" json:"phone"`
	FraudType       string             `bson:"fraudType" json:"fraudType"`
	Description     string             `bson:"description" json:"description"`
	Amount          float64            `bson:"amount,omitempty" json:"amount,omitempty"`
	DateOfIncident  *time.Time         `bson:"dateOfIncident,omitempty" json:"dateOfIncident,omitempty"`
	PoliceComplaint bool               `bson:"policeComplaint" json:"policeComplaint"`
	Evidence        []string           `bson:"evidence,omitempty" json:"evidence,omitempty"` // stored paths
	Status          string             `bson:"status" json:"status"`
	CreatedAt       time.Time          `bson:"createdAt" json:"createdAt"`
}

type NewsletterSignup struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Email      string             `bson:"email" json:"email"`
	Subscribed bool               `bson:"subscribed" json:"subscribed"`
	CreatedAt  time.Time          `bson:"createdAt" json:"createdAt"`
}
