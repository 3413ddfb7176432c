package repository

import (
	"context"
	"errors"
	"time"

	"festival-lineup/internal/database"
	"festival-lineup/internal/model"
	apperrors "festival-lineup/pkg/app_errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type eventDocument struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Name        string             `bson:"name"`
	Genre       string             `bson:"genre"`
	Image       string             `bson:"image"`
	Description string             `bson:"description"`
	WebsiteURL  string             `bson:"websiteUrl"`
	CreatedAt   time.Time          `bson:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt"`
}

func (d *eventDocument) toModel() *model.Event {
	return &model.Event{
		ID:          d.ID.Hex(),
		Name:        d.Name,
		Genre:       d.Genre,
		Image:       d.Image,
		Description: d.Description,
		WebsiteURL:  d.WebsiteURL,
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
	}
}

type MongoEventRepository struct {
	collection *mongo.Collection
}

func NewMongoEventRepository(db *mongo.Database) EventRepository {
	return &MongoEventRepository{
		collection: db.Collection(database.EventsCollection),
	}
}

// mongoNow matches BSON datetime precision so returned timestamps equal stored ones.
func mongoNow() time.Time {
	return time.Now().UTC().Truncate(time.Millisecond)
}

func (r *MongoEventRepository) Create(ctx context.Context, event *model.Event) (*model.Event, error) {
	now := mongoNow()
	doc := eventDocument{
		ID:          primitive.NewObjectID(),
		Name:        event.Name,
		Genre:       event.Genre,
		Image:       event.Image,
		Description: event.Description,
		WebsiteURL:  event.WebsiteURL,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if _, err := r.collection.InsertOne(ctx, doc); err != nil {
		return nil, translateMongoError(err)
	}
	return doc.toModel(), nil
}

func (r *MongoEventRepository) List(ctx context.Context) ([]*model.Event, error) {
	cursor, err := r.collection.Find(ctx, bson.D{}, options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	events := make([]*model.Event, 0)
	for cursor.Next(ctx) {
		var doc eventDocument
		if err := cursor.Decode(&doc); err != nil {
			return nil, err
		}
		events = append(events, doc.toModel())
	}
	return events, cursor.Err()
}

func (r *MongoEventRepository) FindByID(ctx context.Context, id string) (*model.Event, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, apperrors.ErrEventNotFound
	}

	var doc eventDocument
	err = r.collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrEventNotFound
		}
		return nil, err
	}
	return doc.toModel(), nil
}

func (r *MongoEventRepository) Update(ctx context.Context, id string, params model.UpdateEventParams) (*model.Event, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, apperrors.ErrEventNotFound
	}

	fields := params.Fields()
	if len(fields) == 0 {
		return nil, apperrors.ErrInvalidInput
	}

	set := bson.M{"updatedAt": mongoNow()}
	for k, v := range fields {
		set[k] = v
	}

	var doc eventDocument
	err = r.collection.FindOneAndUpdate(ctx,
		bson.M{"_id": oid},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrEventNotFound
		}
		return nil, translateMongoError(err)
	}
	return doc.toModel(), nil
}

func (r *MongoEventRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return apperrors.ErrEventNotFound
	}

	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return apperrors.ErrEventNotFound
	}
	return nil
}
