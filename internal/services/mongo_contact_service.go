package services

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/skaran/portfolio/internal/models"
)

type MongoContactService struct {
	col *mongo.Collection
}

func NewMongoContactService(ctx context.Context, db *mongo.Database) *MongoContactService {
	col := db.Collection("contacts")

	// Best-effort index for the newest-first listing.
	_, _ = col.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "created_at", Value: -1}},
	})

	return &MongoContactService{col: col}
}

func (s *MongoContactService) Create(ctx context.Context, req *models.ContactRequest) (*models.Contact, error) {
	contact := &models.Contact{
		ID:        uuid.NewString(),
		Name:      strings.TrimSpace(req.Name),
		Email:     strings.TrimSpace(req.Email),
		Message:   strings.TrimSpace(req.Message),
		CreatedAt: time.Now().UTC(),
	}

	if _, err := s.col.InsertOne(ctx, contact); err != nil {
		return nil, err
	}
	return contact, nil
}

func (s *MongoContactService) List(ctx context.Context) ([]models.Contact, error) {
	cursor, err := s.col.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	contacts := []models.Contact{}
	if err := cursor.All(ctx, &contacts); err != nil {
		return nil, err
	}
	return contacts, nil
}
