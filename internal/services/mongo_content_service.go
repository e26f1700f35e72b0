package services

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/skaran/portfolio/internal/models"
)

// contentDocID pins the singleton document to a fixed key so concurrent
// creates collide on _id instead of producing a second document.
const contentDocID = "portfolio-content"

type MongoContentService struct {
	col *mongo.Collection
}

func NewMongoContentService(db *mongo.Database) *MongoContentService {
	return &MongoContentService{col: db.Collection("portfolio_content")}
}

func (s *MongoContentService) Get(ctx context.Context) (*models.PortfolioContent, error) {
	var content models.PortfolioContent
	if err := s.col.FindOne(ctx, bson.M{"_id": contentDocID}).Decode(&content); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrContentNotFound
		}
		return nil, err
	}
	return &content, nil
}

func (s *MongoContentService) Update(ctx context.Context, content *models.PortfolioContent) (*models.PortfolioContent, error) {
	now := time.Now().UTC()

	set := bson.M{
		"hero_title":       content.HeroTitle,
		"hero_subtitle":    content.HeroSubtitle,
		"hero_description": content.HeroDescription,
		"about_text":       content.AboutText,
		"skills":           content.Skills,
		"projects":         content.Projects,
		"profile_image":    content.ProfileImage,
		"updated_at":       now,
	}

	filter := bson.M{"_id": contentDocID}
	if content.Version > 0 {
		filter["version"] = content.Version
	}

	res, err := s.col.UpdateOne(ctx, filter, bson.M{
		"$set": set,
		"$inc": bson.M{"version": 1},
	})
	if err != nil {
		return nil, err
	}

	if res.MatchedCount == 0 {
		// Either no document exists yet, or the caller holds a stale version.
		count, err := s.col.CountDocuments(ctx, bson.M{"_id": contentDocID})
		if err != nil {
			return nil, err
		}
		if count > 0 {
			return nil, ErrVersionConflict
		}

		doc := *content
		doc.ID = contentDocID
		doc.Version = 1
		doc.UpdatedAt = now
		if _, err := s.col.InsertOne(ctx, doc); err != nil {
			if mongo.IsDuplicateKeyError(err) {
				// A concurrent save created it first.
				return nil, ErrVersionConflict
			}
			return nil, err
		}
		return &doc, nil
	}

	return s.Get(ctx)
}
