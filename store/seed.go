package store

import (
	"context"
	"log"
	"time"

	"github.com/dravedigitals/careerguard/server/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"golang.org/x/crypto/bcrypt"
)

// Seed creates the bootstrap admin and the default website content when the
// respective collections are empty. It is idempotent and invoked once from
// the entry point after the database connection is established.
func (db *DB) Seed(ctx context.Context, adminEmail, adminPassword string) error {
	if err := db.ensureIndexes(ctx); err != nil {
		return err
	}
	if err := db.seedAdmin(ctx, adminEmail, adminPassword); err != nil {
		return err
	}
	if err := db.seedHero(ctx); err != nil {
		return err
	}
	if err := db.seedServices(ctx); err != nil {
		return err
	}
	if err := db.seedStats(ctx); err != nil {
		return err
	}
	if err := db.seedAbout(ctx); err != nil {
		return err
	}
	return db.seedTestimonials(ctx)
}

// ensureIndexes backs the application-level duplicate checks with unique
// indexes, so concurrent registrations or subscriptions cannot both pass
// the check-then-insert.
func (db *DB) ensureIndexes(ctx context.Context) error {
	emailUnique := mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	}
	if _, err := db.Users().Indexes().CreateOne(ctx, emailUnique); err != nil {
		return err
	}
	_, err := db.Newsletter().Indexes().CreateOne(ctx, emailUnique)
	return err
}

func (db *DB) seedAdmin(ctx context.Context, email, password string) error {
	existing, err := db.UserByEmail(ctx, email)
	if err != nil {
		return err
	}
	if existing != nil {
		return nil
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	_, err = db.CreateUser(ctx, &models.User{
		Name:      "Admin",
		Email:     email,
		Password:  string(hash),
		Role:      models.RoleAdmin,
		CreatedAt: time.Now(),
	})
	if err == nil {
		log.Println("Default admin user created")
	}
	return err
}

func (db *DB) seedHero(ctx context.Context) error {
	count, err := db.HeroContent().CountDocuments(ctx, bson.M{})
	if err != nil || count > 0 {
		return err
	}
	_, err = db.InsertHero(ctx, &models.HeroContent{
		Title:               "Your Professional Success Partner",
		Subtitle:            "From landing your dream job to protecting against cyber fraud, we provide comprehensive career solutions and digital security services that empower your professional journey.",
		PrimaryButtonText:   "Get Started Today",
		SecondaryButtonText: "Explore Services",
		Active:              true,
		CreatedAt:           time.Now(),
	})
	if err == nil {
		log.Println("Default hero content created")
	}
	return err
}

func (db *DB) seedServices(ctx context.Context) error {
	count, err := db.Services().CountDocuments(ctx, bson.M{})
	if err != nil || count > 0 {
		return err
	}
	defaults := []models.Service{
		{
			Title:       "Cyber Crime Fraud Assistance",
			Description: "Complete protection against cyber fraud with expert guidance and legal support.",
			Icon:        "Shield",
			Color:       "from-red-500 to-pink-600",
			Features:    []string{"Cyber fraud complaint support", "FIR filing guidance", "Online complaint assistance", "Prevention tips & awareness"},
			Order:       1,
		},
		{
			Title:       "Job Consultancy Services",
			Description: "End-to-end job placement services for IT & Non-IT professionals.",
			Icon:        "Briefcase",
			Color:       "from-blue-500 to-cyan-600",
			Features:    []string{"IT & Non-IT placements", "Resume building support", "Interview preparation", "Work from home opportunities"},
			Order:       2,
		},
		{
			Title:       "Web & App Development",
			Description: "Custom digital solutions from websites to mobile applications.",
			Icon:        "Code",
			Color:       "from-green-500 to-emerald-600",
			Features:    []string{"Website development", "E-commerce platforms", "Mobile app development", "UI/UX design services"},
			Order:       3,
		},
		{
			Title:       "Digital Marketing",
			Description: "Comprehensive digital marketing solutions to grow your business online.",
			Icon:        "TrendingUp",
			Color:       "from-purple-500 to-violet-600",
			Features:    []string{"Social media marketing", "SEO optimization", "Google Ads management", "Meta Ads campaigns"},
			Order:       4,
		},
		{
			Title:       "Training & Certification",
			Description: "Professional skill development programs with industry certifications.",
			Icon:        "GraduationCap",
			Color:       "from-orange-500 to-amber-600",
			Features:    []string{"IT training programs", "Digital marketing courses", "Freelancing skills", "Industry certifications"},
			Order:       5,
		},
	}
	now := time.Now()
	for i := range defaults {
		defaults[i].Active = true
		defaults[i].CreatedAt = now
		if _, err := db.InsertService(ctx, &defaults[i]); err != nil {
			return err
		}
	}
	log.Println("Default services created")
	return nil
}

func (db *DB) seedStats(ctx context.Context) error {
	count, err := db.Stats().CountDocuments(ctx, bson.M{})
	if err != nil || count > 0 {
		return err
	}
	defaults := []models.Stat{
		{Label: "Happy Clients", Value: "5000+", Color: "text-blue-400", Icon: "Users", Order: 1},
		{Label: "Success Rate", Value: "98%", Color: "text-green-400", Icon: "Award", Order: 2},
		{Label: "Support", Value: "24/7", Color: "text-purple-400", Icon: "Clock", Order: 3},
	}
	now := time.Now()
	for i := range defaults {
		defaults[i].Active = true
		defaults[i].CreatedAt = now
		if _, err := db.InsertStat(ctx, &defaults[i]); err != nil {
			return err
		}
	}
	log.Println("Default stats created")
	return nil
}

func (db *DB) seedAbout(ctx context.Context) error {
	count, err := db.AboutContent().CountDocuments(ctx, bson.M{})
	if err != nil || count > 0 {
		return err
	}
	_, err = db.InsertAbout(ctx, &models.AboutContent{
		Title:       "Your Trusted Career Partner",
		Subtitle:    "About Us",
		Description: "Drave Digitals is more than just a consultancy. We're your comprehensive career protection and growth partner, combining job placement expertise with cybersecurity awareness and cutting-edge technology solutions.",
		Values: []models.AboutValue{
			{Title: "Mission Driven", Description: "Empowering careers while protecting against digital threats with innovative solutions.", Icon: "Target"},
			{Title: "Client First", Description: "Your success is our priority. We provide personalized solutions for every client.", Icon: "Heart"},
			{Title: "Trust & Security", Description: "Building trust through transparency, security, and reliable service delivery.", Icon: "Shield"},
		},
		Commitments: []string{
			"Personalized career guidance for every individual",
			"Comprehensive fraud protection and awareness",
			"Cutting-edge technology solutions",
			"24/7 support and consultation",
			"Transparent pricing with no hidden costs",
			"Continuous skill development programs",
		},
		Active:    true,
		CreatedAt: time.Now(),
	})
	if err == nil {
		log.Println("Default about content created")
	}
	return err
}

func (db *DB) seedTestimonials(ctx context.Context) error {
	count, err := db.Testimonials().CountDocuments(ctx, bson.M{})
	if err != nil || count > 0 {
		return err
	}
	defaults := []models.Testimonial{
		{Name: "Priya Sharma", Role: "Software Engineer", Company: "Tech Solutions Inc.", Rating: 5, Text: "CareerGuard helped me land my dream job in just 2 weeks! Their resume building and interview preparation services are exceptional.", Avatar: "👩‍💻", Service: "Job Consultancy"},
		{Name: "Rajesh Kumar", Role: "Business Owner", Company: "Kumar Enterprises", Rating: 5, Text: "When I faced cyber fraud, CareerGuard guided me through the entire process. They helped me file the FIR and recover my money.", Avatar: "👨‍💼", Service: "Fraud Assistance"},
		{Name: "Anita Patel", Role: "Digital Marketer", Company: "Creative Agency", Rating: 5, Text: "The digital marketing training program transformed my career. Now I run successful campaigns for multiple clients.", Avatar: "👩‍🎨", Service: "Training"},
		{Name: "Vikram Singh", Role: "Startup Founder", Company: "InnovateTech", Rating: 5, Text: "Their web development team created an amazing e-commerce platform for my business. Professional and timely delivery!", Avatar: "👨‍💻", Service: "Development"},
		{Name: "Meera Joshi", Role: "HR Manager", Company: "Global Corp", Rating: 5, Text: "CareerGuard provided excellent candidates for our IT positions. Their screening process is thorough and reliable.", Avatar: "👩‍💼", Service: "Recruitment"},
		{Name: "Arjun Reddy", Role: "Freelancer", Company: "Independent", Rating: 5, Text: "The freelancing skills program helped me build a successful remote career. Earning 6 figures now working from home!", Avatar: "👨‍🎯", Service: "Training"},
	}
	now := time.Now()
	for i := range defaults {
		defaults[i].Featured = true
		defaults[i].Approved = true
		defaults[i].CreatedAt = now
		if _, err := db.InsertTestimonial(ctx, &defaults[i]); err != nil {
			return err
		}
	}
	log.Println("Default testimonials created")
	return nil
}
