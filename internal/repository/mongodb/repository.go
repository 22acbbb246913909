package mongodb

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/farmconnect/trader/internal/domain/models"
)

// ErrNotFound indicates the requested record does not exist in the store.
var ErrNotFound = errors.New("record not found")

const (
	goodsCollection     = "farmers_goods"
	customersCollection = "customers"
	summariesCollection = "daily_summaries"
)

// Repository defines the ledger store gateway. Listings always come back
// newest-first by created_at; downstream code preserves that order.
type Repository interface {
	ListGoods(ctx context.Context) ([]models.GoodsRecord, error)
	ListCustomers(ctx context.Context) ([]models.CustomerRecord, error)
	GetGoods(ctx context.Context, id string) (models.GoodsRecord, error)
	GetCustomer(ctx context.Context, id string) (models.CustomerRecord, error)
	InsertGoods(ctx context.Context, record models.GoodsRecord) (models.GoodsRecord, error)
	InsertCustomer(ctx context.Context, record models.CustomerRecord) (models.CustomerRecord, error)
	SaveDailySummary(ctx context.Context, summary models.DailySummary) error
}

// MongoDBRepository implements Repository against MongoDB.
type MongoDBRepository struct {
	client *mongo.Client
	dbName string
}

// NewMongoDBRepository connects to MongoDB and verifies the connection.
func NewMongoDBRepository(ctx context.Context, uri string, dbName string) (*MongoDBRepository, error) {
	clientOptions := options.Client().ApplyURI(uri)
	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongodb: %w", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("failed to ping mongodb: %w", err)
	}

	return &MongoDBRepository{client: client, dbName: dbName}, nil
}

// ListGoods returns the full goods ledger, newest first.
func (r *MongoDBRepository) ListGoods(ctx context.Context) ([]models.GoodsRecord, error) {
	cursor, err := r.collection(goodsCollection).Find(ctx, bson.D{}, newestFirst())
	if err != nil {
		return nil, fmt.Errorf("list goods: %w", err)
	}
	defer cursor.Close(ctx)

	records := make([]models.GoodsRecord, 0)
	if err := cursor.All(ctx, &records); err != nil {
		return nil, fmt.Errorf("decode goods: %w", err)
	}
	return records, nil
}

// ListCustomers returns the full customer ledger, newest first.
func (r *MongoDBRepository) ListCustomers(ctx context.Context) ([]models.CustomerRecord, error) {
	cursor, err := r.collection(customersCollection).Find(ctx, bson.D{}, newestFirst())
	if err != nil {
		return nil, fmt.Errorf("list customers: %w", err)
	}
	defer cursor.Close(ctx)

	records := make([]models.CustomerRecord, 0)
	if err := cursor.All(ctx, &records); err != nil {
		return nil, fmt.Errorf("decode customers: %w", err)
	}
	return records, nil
}

// GetGoods fetches a single goods record by its hex id.
func (r *MongoDBRepository) GetGoods(ctx context.Context, id string) (models.GoodsRecord, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return models.GoodsRecord{}, fmt.Errorf("%w: invalid id %q", ErrNotFound, id)
	}

	var record models.GoodsRecord
	err = r.collection(goodsCollection).FindOne(ctx, bson.M{"_id": oid}).Decode(&record)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.GoodsRecord{}, ErrNotFound
	}
	if err != nil {
		return models.GoodsRecord{}, fmt.Errorf("get goods %s: %w", id, err)
	}
	return record, nil
}

// GetCustomer fetches a single customer record by its hex id.
func (r *MongoDBRepository) GetCustomer(ctx context.Context, id string) (models.CustomerRecord, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return models.CustomerRecord{}, fmt.Errorf("%w: invalid id %q", ErrNotFound, id)
	}

	var record models.CustomerRecord
	err = r.collection(customersCollection).FindOne(ctx, bson.M{"_id": oid}).Decode(&record)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.CustomerRecord{}, ErrNotFound
	}
	if err != nil {
		return models.CustomerRecord{}, fmt.Errorf("get customer %s: %w", id, err)
	}
	return record, nil
}

// InsertGoods appends a goods record and returns it with the assigned id.
func (r *MongoDBRepository) InsertGoods(ctx context.Context, record models.GoodsRecord) (models.GoodsRecord, error) {
	res, err := r.collection(goodsCollection).InsertOne(ctx, record)
	if err != nil {
		return models.GoodsRecord{}, fmt.Errorf("insert goods record: %w", err)
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		record.ID = oid
	}
	return record, nil
}

// InsertCustomer appends a customer record and returns it with the assigned id.
func (r *MongoDBRepository) InsertCustomer(ctx context.Context, record models.CustomerRecord) (models.CustomerRecord, error) {
	res, err := r.collection(customersCollection).InsertOne(ctx, record)
	if err != nil {
		return models.CustomerRecord{}, fmt.Errorf("insert customer record: %w", err)
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		record.ID = oid
	}
	return record, nil
}

// SaveDailySummary persists one aggregated trading-day snapshot.
func (r *MongoDBRepository) SaveDailySummary(ctx context.Context, summary models.DailySummary) error {
	if _, err := r.collection(summariesCollection).InsertOne(ctx, summary); err != nil {
		return fmt.Errorf("insert daily summary: %w", err)
	}
	return nil
}

// Close closes the MongoDB connection.
func (r *MongoDBRepository) Close(ctx context.Context) error {
	return r.client.Disconnect(ctx)
}

func (r *MongoDBRepository) collection(name string) *mongo.Collection {
	return r.client.Database(r.dbName).Collection(name)
}

func newestFirst() *options.FindOptions {
	return options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
}
