package store

import (
	"context"

	"github.com/dravedigitals/careerguard/server/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Ordered content sorts ascending by order; _id ascending breaks ties so
// equal orders keep insertion order.
var byDisplayOrder = options.Find().SetSort(bson.D{{Key: "order", Value: 1}, {Key: "_id", Value: 1}})

// ActiveHero returns the active hero content, or nil when none is active.
func (db *DB) ActiveHero(ctx context.Context) (*models.HeroContent, error) {
	var h models.HeroContent
	err := db.HeroContent().FindOne(ctx, bson.M{"active": true}).Decode(&h)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &h, nil
}

func (db *DB) ListHero(ctx context.Context) ([]models.HeroContent, error) {
	cur, err := db.HeroContent().Find(ctx, bson.M{}, newestFirst)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	var heroes []models.HeroContent
	if err := cur.All(ctx, &heroes); err != nil {
		return nil, err
	}
	return heroes, nil
}

// DeactivateHero clears the active flag on all hero documents except the
// given one (pass NilObjectID to deactivate everything). This runs before
// the activating write; the two steps are not atomic.
func (db *DB) DeactivateHero(ctx context.Context, except primitive.ObjectID) error {
	filter := bson.M{}
	if except != primitive.NilObjectID {
		filter["_id"] = bson.M{"$ne": except}
	}
	_, err := db.HeroContent().UpdateMany(ctx, filter, bson.M{"$set": bson.M{"active": false}})
	return err
}

func (db *DB) InsertHero(ctx context.Context, h *models.HeroContent) (primitive.ObjectID, error) {
	res, err := db.HeroContent().InsertOne(ctx, h)
	if err != nil {
		return primitive.NilObjectID, err
	}
	return res.InsertedID.(primitive.ObjectID), nil
}

func (db *DB) UpdateHero(ctx context.Context, id primitive.ObjectID, h *models.HeroContent) error {
	set := bson.M{
		"title":               h.Title,
		"subtitle":            h.Subtitle,
		"primaryButtonText":   h.PrimaryButtonText,
		"secondaryButtonText": h.SecondaryButtonText,
		"backgroundImage":     h.BackgroundImage,
		"active":              h.Active,
	}
	_, err := db.HeroContent().UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": set})
	return err
}

func (db *DB) DeleteHero(ctx context.Context, id primitive.ObjectID) error {
	_, err := db.HeroContent().DeleteOne(ctx, bson.M{"_id": id})
	return err
}

// ActiveAbout returns the active about content, or nil when none is active.
func (db *DB) ActiveAbout(ctx context.Context) (*models.AboutContent, error) {
	var a models.AboutContent
	err := db.AboutContent().FindOne(ctx, bson.M{"active": true}).Decode(&a)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (db *DB) ListAbout(ctx context.Context) ([]models.AboutContent, error) {
	cur, err := db.AboutContent().Find(ctx, bson.M{}, newestFirst)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	var abouts []models.AboutContent
	if err := cur.All(ctx, &abouts); err != nil {
		return nil, err
	}
	return abouts, nil
}

func (db *DB) DeactivateAbout(ctx context.Context, except primitive.ObjectID) error {
	filter := bson.M{}
	if except != primitive.NilObjectID {
		filter["_id"] = bson.M{"$ne": except}
	}
	_, err := db.AboutContent().UpdateMany(ctx, filter, bson.M{"$set": bson.M{"active": false}})
	return err
}

func (db *DB) InsertAbout(ctx context.Context, a *models.AboutContent) (primitive.ObjectID, error) {
	res, err := db.AboutContent().InsertOne(ctx, a)
	if err != nil {
		return primitive.NilObjectID, err
	}
	return res.InsertedID.(primitive.ObjectID), nil
}

func (db *DB) UpdateAbout(ctx context.Context, id primitive.ObjectID, a *models.AboutContent) error {
	set := bson.M{
		"title":       a.Title,
		"subtitle":    a.Subtitle,
		"description": a.Description,
		"values":      a.Values,
		"commitments": a.Commitments,
		"active":      a.Active,
	}
	_, err := db.AboutContent().UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": set})
	return err
}

func (db *DB) DeleteAbout(ctx context.Context, id primitive.ObjectID) error {
	_, err := db.AboutContent().DeleteOne(ctx, bson.M{"_id": id})
	return err
}

// ListServices returns all services sorted by display order.
// When activeOnly is set, inactive services are excluded.
func (db *DB) ListServices(ctx context.Context, activeOnly bool) ([]models.Service, error) {
	filter := bson.M{}
	if activeOnly {
		filter["active"] = true
	}
	cur, err := db.Services().Find(ctx, filter, byDisplayOrder)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	var services []models.Service
	if err := cur.All(ctx, &services); err != nil {
		return nil, err
	}
	return services, nil
}

func (db *DB) InsertService(ctx context.Context, s *models.Service) (primitive.ObjectID, error) {
	res, err := db.Services().InsertOne(ctx, s)
	if err != nil {
		return primitive.NilObjectID, err
	}
	return res.InsertedID.(primitive.ObjectID), nil
}

func (db *DB) UpdateService(ctx context.Context, id primitive.ObjectID, s *models.Service) error {
	set := bson.M{
		"title":       s.Title,
		"description": s.Description,
		"icon":        s.Icon,
		"color":       s.Color,
		"features":    s.Features,
		"order":       s.Order,
		"active":      s.Active,
	}
	_, err := db.Services().UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": set})
	return err
}

func (db *DB) DeleteService(ctx context.Context, id primitive.ObjectID) error {
	_, err := db.Services().DeleteOne(ctx, bson.M{"_id": id})
	return err
}

// DeleteAllServices clears the collection for a whole-section replace.
func (db *DB) DeleteAllServices(ctx context.Context) error {
	_, err := db.Services().DeleteMany(ctx, bson.M{})
	return err
}

// ListStats returns all stats sorted by display order.
func (db *DB) ListStats(ctx context.Context, activeOnly bool) ([]models.Stat, error) {
	filter := bson.M{}
	if activeOnly {
		filter["active"] = true
	}
	cur, err := db.Stats().Find(ctx, filter, byDisplayOrder)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	var stats []models.Stat
	if err := cur.All(ctx, &stats); err != nil {
		return nil, err
	}
	return stats, nil
}

func (db *DB) InsertStat(ctx context.Context, s *models.Stat) (primitive.ObjectID, error) {
	res, err := db.Stats().InsertOne(ctx, s)
	if err != nil {
		return primitive.NilObjectID, err
	}
	return res.InsertedID.(primitive.ObjectID), nil
}

func (db *DB) UpdateStat(ctx context.Context, id primitive.ObjectID, s *models.Stat) error {
	set := bson.M{
		"label":  s.Label,
		"value":  s.Value,
		"color":  s.Color,
		"icon":   s.Icon,
		"order":  s.Order,
		"active": s.Active,
	}
	_, err := db.Stats().UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": set})
	return err
}

func (db *DB) DeleteStat(ctx context.Context, id primitive.ObjectID) error {
	_, err := db.Stats().DeleteOne(ctx, bson.M{"_id": id})
	return err
}

// DeleteAllStats clears the collection for a whole-section replace.
func (db *DB) DeleteAllStats(ctx context.Context) error {
	_, err := db.Stats().DeleteMany(ctx, bson.M{})
	return err
}
