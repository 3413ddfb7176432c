package database

import (
	"context"
	"errors"
	"festival-lineup/config"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	UsersCollection  = "users"
	EventsCollection = "events"

	// MongoDB "NamespaceExists"
	codeNamespaceExists = 48
)

func InitMongo(ctx context.Context, config *config.MongoConfig) (*mongo.Client, error) {
	opts := options.Client().
		ApplyURI(config.URI).
		SetConnectTimeout(10 * time.Second).
		SetMaxPoolSize(25)

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("connect mongo: %w", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("ping mongo: %w", err)
	}

	return client, nil
}

// requiredStrings builds a $jsonSchema requiring non-empty string fields.
func requiredStrings(fields ...string) bson.M {
	props := bson.M{}
	for _, f := range fields {
		props[f] = bson.M{"bsonType": "string", "minLength": 1, "pattern": `\S`}
	}
	return bson.M{
		"$jsonSchema": bson.M{
			"bsonType":   "object",
			"required":   fields,
			"properties": props,
		},
	}
}

// MigrateMongo creates both collections with schema validators and the unique email index.
func MigrateMongo(ctx context.Context, db *mongo.Database) error {
	validators := map[string]bson.M{
		UsersCollection:  requiredStrings("name", "email", "mobile"),
		EventsCollection: requiredStrings("name", "genre", "image", "description", "websiteUrl"),
	}

	for name, validator := range validators {
		err := db.CreateCollection(ctx, name, options.CreateCollection().SetValidator(validator))
		if err == nil {
			continue
		}
		var cmdErr mongo.CommandError
		if !errors.As(err, &cmdErr) || cmdErr.Code != codeNamespaceExists {
			return fmt.Errorf("create collection %s: %w", name, err)
		}
		// 已存在：更新 validator 以保持一致
		cmd := bson.D{{Key: "collMod", Value: name}, {Key: "validator", Value: validator}}
		if err := db.RunCommand(ctx, cmd).Err(); err != nil {
			return fmt.Errorf("update validator %s: %w", name, err)
		}
	}

	_, err := db.Collection(UsersCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true).SetName("users_email_key"),
	})
	if err != nil {
		return fmt.Errorf("create email index: %w", err)
	}

	return nil
}
