package users

import (
	"context"
	"phonebook-service/internal/app/models"
	"phonebook-service/internal/pkg/constvars"
	"phonebook-service/internal/pkg/exceptions"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type UserMongoRepository struct {
	Collection *mongo.Collection
}

// NewUserMongoRepository also ensures the unique index on email; the index is
// the actual arbiter of the registration check-then-create race.
func NewUserMongoRepository(db *mongo.Client, dbName string) UserRepository {
	collection := db.Database(dbName).Collection(constvars.MongoCollectionUsers)

	indexModel := mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	}
	collection.Indexes().CreateOne(context.TODO(), indexModel)

	return &UserMongoRepository{
		Collection: collection,
	}
}

func (repo *UserMongoRepository) CreateUser(ctx context.Context, userModel *models.User) (userID string, err error) {
	now := time.Now()
	userModel.ID = primitive.NewObjectID().Hex()
	userModel.CreatedAt = now
	userModel.UpdatedAt = now

	_, err = repo.Collection.InsertOne(ctx, userModel)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return "", exceptions.ErrMongoDBDuplicateKey(err)
		}
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	return userModel.ID, nil
}

func (r *UserMongoRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := r.Collection.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &user, nil
}

func (r *UserMongoRepository) FindByID(ctx context.Context, userID string) (*models.User, error) {
	var user models.User
	if _, err := primitive.ObjectIDFromHex(userID); err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}
	err := r.Collection.FindOne(ctx, bson.M{"_id": userID}).Decode(&user)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &user, nil
}

func (r *UserMongoRepository) FindByVerificationToken(ctx context.Context, token string) (*models.User, error) {
	var user models.User
	err := r.Collection.FindOne(ctx, bson.M{"verificationToken": token}).Decode(&user)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &user, nil
}

func (r *UserMongoRepository) UpdateFields(ctx context.Context, userID string, updateData map[string]interface{}) error {
	if _, err := primitive.ObjectIDFromHex(userID); err != nil {
		return exceptions.ErrMongoDBNotObjectID(err)
	}

	updateData["updatedAt"] = time.Now()
	filter := bson.M{"_id": userID}
	update := bson.M{"$set": updateData}

	_, err := r.Collection.UpdateOne(ctx, filter, update, options.Update().SetUpsert(false))
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}
