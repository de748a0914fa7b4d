package contacts

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

type ContactMongoRepository struct {
	Collection *mongo.Collection
}

func NewContactMongoRepository(db *mongo.Client, dbName string) ContactRepository {
	collection := db.Database(dbName).Collection(constvars.MongoCollectionContacts)

	indexModel := mongo.IndexModel{
		Keys: bson.D{{Key: "owner", Value: 1}},
	}
	collection.Indexes().CreateOne(context.TODO(), indexModel)

	return &ContactMongoRepository{
		Collection: collection,
	}
}

func (r *ContactMongoRepository) CreateContact(ctx context.Context, contactModel *models.Contact) (contactID string, err error) {
	now := time.Now()
	contactModel.ID = primitive.NewObjectID().Hex()
	contactModel.CreatedAt = now
	contactModel.UpdatedAt = now

	_, err = r.Collection.InsertOne(ctx, contactModel)
	if err != nil {
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	return contactModel.ID, nil
}

func (r *ContactMongoRepository) FindByOwner(ctx context.Context, ownerID string) ([]models.Contact, error) {
	cursor, err := r.Collection.Find(ctx, bson.M{"owner": ownerID})
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	contacts := make([]models.Contact, 0)
	if err := cursor.All(ctx, &contacts); err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return contacts, nil
}

func (r *ContactMongoRepository) FindByIDAndOwner(ctx context.Context, contactID, ownerID string) (*models.Contact, error) {
	var contact models.Contact
	err := r.Collection.FindOne(ctx, bson.M{"_id": contactID, "owner": ownerID}).Decode(&contact)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &contact, nil
}

func (r *ContactMongoRepository) UpdateFields(ctx context.Context, contactID, ownerID string, updateData map[string]interface{}) (*models.Contact, error) {
	updateData["updatedAt"] = time.Now()
	filter := bson.M{"_id": contactID, "owner": ownerID}
	update := bson.M{"$set": updateData}

	var contact models.Contact
	err := r.Collection.FindOneAndUpdate(
		ctx,
		filter,
		update,
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&contact)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBUpdateDocument(err)
	}
	return &contact, nil
}

func (r *ContactMongoRepository) DeleteByIDAndOwner(ctx context.Context, contactID, ownerID string) (bool, error) {
	result, err := r.Collection.DeleteOne(ctx, bson.M{"_id": contactID, "owner": ownerID})
	if err != nil {
		return false, exceptions.ErrMongoDBDeleteDocument(err)
	}
	return result.DeletedCount > 0, nil
}
