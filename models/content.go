package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Content section names for the section-keyed update endpoint.
const (
	SectionHero     = "hero"
	SectionAbout    = "about"
	SectionServices = "services"
	SectionStats    = "stats"
)

// HeroContent is a singleton content type: at most one instance is active.
type HeroContent struct {
	ID                  primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title               string             `bson:"title" json:"title"`
	Subtitle            string             `bson:"subtitle" json:"subtitle"`
	PrimaryButtonText   string             `bson:"primaryButtonText" json:"primaryButtonText"`
	SecondaryButtonText string             `bson:"secondaryButtonText" json:"secondaryButtonText"`
	BackgroundImage     string             `bson:"backgroundImage,omitempty" json:"backgroundImage,omitempty"`
	Active              bool               `bson:"active" json:"active"`
	CreatedAt           time.Time          `bson:"createdAt" json:"createdAt"`
}

type AboutValue struct {
	Title       string `bson:"title" json:"title"`
	Description string `bson:"description" json:"description"`
	Icon        string `bson:"icon" json:"icon"`
}

// AboutContent is a singleton content type like HeroContent.
type AboutContent struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title       string             `bson:"title" json:"title"`
	Subtitle    string             `bson:"subtitle" json:"subtitle"`
	Description string             `bson:"description" json:"description"`
	Values      []AboutValue       `bson:"values,omitempty" json:"values,omitempty"`
	Commitments []string           `bson:"commitments,omitempty" json:"commitments,omitempty"`
	Active      bool               `bson:"active" json:"active"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
}

// Service is ordered content: displayed ascending by Order.
type Service struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title       string             `bson:"title" json:"title"`
	Description string             `bson:"description" json:"description"`
	Icon        string             `bson:"icon" json:"icon"`
	Color       string             `bson:"color" json:"color"`
	Features    []string           `bson:"features,omitempty" json:"features,omitempty"`
	Order       int                `bson:"order" json:"order"`
	Active      bool               `bson:"active" json:"active"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
}

// Stat is ordered content like Service.
type Stat struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Label     string             `bson:"label" json:"label"`
	Value     string             `bson:"value" json:"value"`
	Color     string             `bson:"color" json:"color"`
	Icon      string             `bson:"icon" json:"icon"`
	Order     int                `bson:"order" json:"order"`
	Active    bool               `bson:"active" json:"active"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
}

// Testimonial is publicly visible only when approved.
type Testimonial struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name      string             `bson:"name" json:"name"`
	Role      string             `bson:"role" json:"role"`
	Company   string             `bson:"company" json:"company"`
	Rating    int                `bson:"rating" json:"rating"` // 1..5
	Text      string             `bson:"text" json:"text"`
	Avatar    string             `bson:"avatar" json:"avatar"`
	Service   string             `bson:"service" json:"service"`
	Featured  bool               `bson:"featured" json:"featured"`
	Approved  bool               `bson:"approved" json:"approved"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
}

// WebsiteContent is the aggregate the public landing page renders from.
type WebsiteContent struct {
	Hero         *HeroContent  `json:"hero"`
	Services     []Service     `json:"services"`
	Stats        []Stat        `json:"stats"`
	About        *AboutContent `json:"about"`
	Testimonials []Testimonial `json:"testimonials"`
}
