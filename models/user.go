package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Role constants for user authorization.
const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

var ValidRoles = []string{RoleAdmin, RoleUser}

type User struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name     string             `bson:"name" json:"name"`
	Email    string             `bson:"email" json:"email"`
	Password string             `bson:"password" json:"-"` // bcrypt hash
	Role     string             `bson:"role" json:"role"`  // admin or user

	// Personal details (detailed registration)
	Phone       string     `bson:"phone,omitempty" json:"phone,omitempty"`
	DateOfBirth *time.Time `bson:"dateOfBirth,omitempty" json:"dateOfBirth,omitempty"`
	Gender      string     `bson:"gender,omitempty" json:"gender,omitempty"`
	Address     string     `bson:"address,omitempty" json:"address,omitempty"`
	City        string     `bson:"city,omitempty" json:"city,omitempty"`
	State       string     `bson:"state,omitempty" json:"state,omitempty"`
	Pincode     string     `bson:"pincode,omitempty" json:"pincode,omitempty"`

	// Professional details
	CurrentPosition   string `bson:"currentPosition,omitempty" json:"currentPosition,omitempty"`
	Experience        string `bson:"experience,omitempty" json:"experience,omitempty"`
	Skills            string `bson:"skills,omitempty" json:"skills,omitempty"`
	Education         string `bson:"education,omitempty" json:"education,omitempty"`
	ExpectedSalary    string `bson:"expectedSalary,omitempty" json:"expectedSalary,omitempty"`
	PreferredLocation string `bson:"preferredLocation,omitempty" json:"preferredLocation,omitempty"`

	// Preferences
	JobType            string   `bson:"jobType,omitempty" json:"jobType,omitempty"`
	WorkMode           string   `bson:"workMode,omitempty" json:"workMode,omitempty"`
	InterestedServices []string `bson:"interestedServices,omitempty" json:"interestedServices,omitempty"`

	// Resume is a stored path; the bytes live in file storage.
	Resume string `bson:"resume,omitempty" json:"resume,omitempty"`

	ProfileCompleted bool      `bson:"profileCompleted" json:"profileCompleted"`
	CreatedAt        time.Time `bson:"createdAt" json:"createdAt"`
}

func RoleValid(role string) bool {
	for _, r := range ValidRoles {
		if r == role {
			return true
		}
	}
	return false
}
