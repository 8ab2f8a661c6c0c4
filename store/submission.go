package store

import (
	"context"

	"github.com/dravedigitals/careerguard/server/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var newestFirst = options.Find().SetSort(bson.M{"createdAt": -1})

func (db *DB) InsertContact(ctx context.Context, c *models.Contact) (primitive.ObjectID, error) {
	res, err := db.Contacts().InsertOne(ctx, c)
	if err != nil {
		return primitive.NilObjectID, err
	}
	return res.InsertedID.(primitive.ObjectID), nil
}

func (db *DB) ListContacts(ctx context.Context) ([]models.Contact, error) {
	cur, err := db.Contacts().Find(ctx, bson.M{}, newestFirst)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	var contacts []models.Contact
	if err := cur.All(ctx, &contacts); err != nil {
		return nil, err
	}
	return contacts, nil
}

func (db *DB) UpdateContactStatus(ctx context.Context, id primitive.ObjectID, status string) error {
	_, err := db.Contacts().UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{"status": status}})
	return err
}

func (db *DB) InsertJobApplication(ctx context.Context, a *models.JobApplication) (primitive.ObjectID, error) {
	res, err := db.JobApplications().InsertOne(ctx, a)
	if err != nil {
		return primitive.NilObjectID, err
	}
	return res.InsertedID.(primitive.ObjectID), nil
}

func (db *DB) ListJobApplications(ctx context.Context) ([]models.JobApplication, error) {
	cur, err := db.JobApplications().Find(ctx, bson.M{}, newestFirst)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	var apps []models.JobApplication
	if err := cur.All(ctx, &apps); err != nil {
		return nil, err
	}
	return apps, nil
}

func (db *DB) UpdateJobApplicationStatus(ctx context.Context, id primitive.ObjectID, status string) error {
	_, err := db.JobApplications().UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{"status": status}})
	return err
}

func (db *DB) InsertFraudCase(ctx context.Context, f *models.FraudCase) (primitive.ObjectID, error) {
	res, err := db.FraudCases().InsertOne(ctx, f)
	if err != nil {
		return primitive.NilObjectID, err
	}
	return res.InsertedID.(primitive.ObjectID), nil
}

func (db *DB) ListFraudCases(ctx context.Context) ([]models.FraudCase, error) {
	cur, err := db.FraudCases().Find(ctx, bson.M{}, newestFirst)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	var cases []models.FraudCase
	if err := cur.All(ctx, &cases); err != nil {
		return nil, err
	}
	return cases, nil
}

func (db *DB) UpdateFraudCaseStatus(ctx context.Context, id primitive.ObjectID, status string) error {
	_, err := db.FraudCases().UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{"status": status}})
	return err
}

// NewsletterByEmail returns the signup for email, or nil if none exists.
func (db *DB) NewsletterByEmail(ctx context.Context, email string) (*models.NewsletterSignup, error) {
	var n models.NewsletterSignup
	err := db.Newsletter().FindOne(ctx, bson.M{"email": email}).Decode(&n)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &n, nil
}

func (db *DB) InsertNewsletterSignup(ctx context.Context, n *models.NewsletterSignup) (primitive.ObjectID, error) {
	res, err := db.Newsletter().InsertOne(ctx, n)
	if err != nil {
		return primitive.NilObjectID, err
	}
	return res.InsertedID.(primitive.ObjectID), nil
}

func (db *DB) InsertNotificationLog(ctx context.Context, n *models.NotificationLog) error {
	_, err := db.NotificationLogs().InsertOne(ctx, n)
	return err
}

// DashboardCounts backs GET /api/dashboard/stats.
type DashboardCounts struct {
	TotalContacts         int64 `json:"totalContacts"`
	TotalApplications     int64 `json:"totalApplications"`
	TotalFraudCases       int64 `json:"totalFraudCases"`
	PlacedJobs            int64 `json:"placedJobs"`
	ResolvedFraudCases    int64 `json:"resolvedFraudCases"`
	TotalUsers            int64 `json:"totalUsers"`
	NewsletterSubscribers int64 `json:"newsletterSubscribers"`
	TotalTestimonials     int64 `json:"totalTestimonials"`
	SuccessRate           int   `json:"successRate"`
}

// CountSubmissions aggregates the dashboard numbers. SuccessRate is the
// rounded percentage of placed applications, 0 when there are none.
func (db *DB) CountSubmissions(ctx context.Context) (*DashboardCounts, error) {
	counts := &DashboardCounts{}
	var err error
	if counts.TotalContacts, err = db.Contacts().CountDocuments(ctx, bson.M{}); err != nil {
		return nil, err
	}
	if counts.TotalApplications, err = db.JobApplications().CountDocuments(ctx, bson.M{}); err != nil {
		return nil, err
	}
	if counts.TotalFraudCases, err = db.FraudCases().CountDocuments(ctx, bson.M{}); err != nil {
		return nil, err
	}
	if counts.PlacedJobs, err = db.JobApplications().CountDocuments(ctx, bson.M{"status": models.ApplicationPlaced}); err != nil {
		return nil, err
	}
	if counts.ResolvedFraudCases, err = db.FraudCases().CountDocuments(ctx, bson.M{"status": models.FraudResolved}); err != nil {
		return nil, err
	}
	if counts.TotalUsers, err = db.Users().CountDocuments(ctx, bson.M{}); err != nil {
		return nil, err
	}
	if counts.NewsletterSubscribers, err = db.Newsletter().CountDocuments(ctx, bson.M{}); err != nil {
		return nil, err
	}
	if counts.TotalTestimonials, err = db.Testimonials().CountDocuments(ctx, bson.M{"approved": true}); err != nil {
		return nil, err
	}
	counts.SuccessRate = SuccessRate(counts.PlacedJobs, counts.TotalApplications)
	return counts, nil
}

// SuccessRate returns round(placed/total*100), or 0 when total is 0.
func SuccessRate(placed, total int64) int {
	if total <= 0 {
		return 0
	}
	return int((placed*100 + total/2) / total)
}
