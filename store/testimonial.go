package store

import (
	"context"

	"github.com/dravedigitals/careerguard/server/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ApprovedTestimonials returns publicly visible testimonials newest-first.
func (db *DB) ApprovedTestimonials(ctx context.Context) ([]models.Testimonial, error) {
	cur, err := db.Testimonials().Find(ctx, bson.M{"approved": true}, newestFirst)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	var ts []models.Testimonial
	if err := cur.All(ctx, &ts); err != nil {
		return nil, err
	}
	return ts, nil
}

// AllTestimonials returns every testimonial newest-first, approved or not.
func (db *DB) AllTestimonials(ctx context.Context) ([]models.Testimonial, error) {
	cur, err := db.Testimonials().Find(ctx, bson.M{}, newestFirst)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	var ts []models.Testimonial
	if err := cur.All(ctx, &ts); err != nil {
		return nil, err
	}
	return ts, nil
}

func (db *DB) InsertTestimonial(ctx context.Context, t *models.Testimonial) (primitive.ObjectID, error) {
	res, err := db.Testimonials().InsertOne(ctx, t)
	if err != nil {
		return primitive.NilObjectID, err
	}
	return res.InsertedID.(primitive.ObjectID), nil
}

// SetTestimonialFlags updates approved and/or featured. A nil pointer
// leaves the corresponding flag untouched (partial update).
func (db *DB) SetTestimonialFlags(ctx context.Context, id primitive.ObjectID, approved, featured *bool) error {
	set := bson.M{}
	if approved != nil {
		set["approved"] = *approved
	}
	if featured != nil {
		set["featured"] = *featured
	}
	if len(set) == 0 {
		return nil
	}
	_, err := db.Testimonials().UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": set})
	return err
}

func (db *DB) DeleteTestimonial(ctx context.Context, id primitive.ObjectID) error {
	_, err := db.Testimonials().DeleteOne(ctx, bson.M{"_id": id})
	return err
}
