package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/smartspending/coach-api/internal/core/domain"
)

const profileCollection = "user_profiles"

type MongoProfileRepository struct {
	coll *mongo.Collection
}

func NewProfileRepository(db *mongo.Database) *MongoProfileRepository {
	return &MongoProfileRepository{coll: db.Collection(profileCollection)}
}

type mongoProfile struct {
	ID              primitive.ObjectID `bson:"_id,omitempty"`
	UserID          primitive.ObjectID `bson:"user_id"`
	Role            string             `bson:"role"`
	Income          float64            `bson:"income"`
	Age             int                `bson:"age"`
	FinancialGoal   string             `bson:"financial_goal"`
	ExpenseCategory string             `bson:"expense_category"`
	Budgeting       string             `bson:"budgeting"`
	CreatedAt       int64              `bson:"created_at"`
}

func ensureProfileIndexes(ctx context.Context, db *mongo.Database) error {
	// One profile per user, enforced by the store so concurrent first
	// submissions collapse to a single winner.
	_, err := db.Collection(profileCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "user_id", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("create profile user_id index: %w", err)
	}
	return nil
}

func (r *MongoProfileRepository) ExistsForUser(ctx context.Context, userID string) (bool, error) {
	oid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return false, nil
	}

	n, err := r.coll.CountDocuments(ctx, bson.M{"user_id": oid}, options.Count().SetLimit(1))
	if err != nil {
		return false, fmt.Errorf("count profiles: %w", err)
	}
	return n > 0, nil
}

func (r *MongoProfileRepository) Create(ctx context.Context, profile *domain.Profile) error {
	oid, err := primitive.ObjectIDFromHex(profile.UserID)
	if err != nil {
		return fmt.Errorf("invalid user id %q", profile.UserID)
	}

	doc := mongoProfile{
		UserID:          oid,
		Role:            profile.Role,
		Income:          profile.Income,
		Age:             profile.Age,
		FinancialGoal:   profile.FinancialGoal,
		ExpenseCategory: profile.ExpenseCategory,
		Budgeting:       profile.Budgeting,
		CreatedAt:       time.Now().UTC().Unix(),
	}

	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domain.ErrProfileExists
		}
		return fmt.Errorf("insert profile: %w", err)
	}
	return nil
}
