package customerRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"sparklewash/database"
	"sparklewash/database/repository"
	"sparklewash/models"
)

// mongoCustomerRepo implements CustomerRepository using MongoDB.
type mongoCustomerRepo struct {
	coll *mongo.Collection
}

// NewMongoCustomerRepo returns a CustomerRepository backed by the "customers"
// collection.
func NewMongoCustomerRepo() CustomerRepository {
	repo := &mongoCustomerRepo{coll: database.DB().Collection("customers")}
	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create customer indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

// ensureIndexes enforces the one-document-per-phone invariant.
func (r *mongoCustomerRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "phone", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "totalBookings", Value: -1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// Upsert creates the customer on first contact and refreshes contact fields
// plus the advisory rollups on every later booking. Idempotent per phone; the
// unique phone index backs the invariant under concurrent creates.
func (r *mongoCustomerRepo) Upsert(ctx context.Context, customer models.Customer) error {
	filter := bson.M{"phone": customer.Phone}
	update := bson.M{
		"$set": bson.M{
			"firstName":     customer.FirstName,
			"lastName":      customer.LastName,
			"email":         customer.Email,
			"location":      customer.Location,
			"totalBookings": customer.TotalBookings,
			"totalSpent":    customer.TotalSpent,
			"lastBooking":   customer.LastBooking,
		},
		"$setOnInsert": bson.M{
			"id":        uuid.New().String(),
			"phone":     customer.Phone,
			"createdAt": time.Now(),
		},
	}

	opts := options.Update().SetUpsert(true)
	_, err := r.coll.UpdateOne(ctx, filter, update, opts)
	return err
}

// GetByPhone returns the customer with the given phone number.
func (r *mongoCustomerRepo) GetByPhone(ctx context.Context, phone string) (*models.Customer, error) {
	var customer models.Customer
	err := r.coll.FindOne(ctx, bson.M{"phone": phone}).Decode(&customer)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &customer, nil
}

// GetAll returns every customer, most bookings first.
func (r *mongoCustomerRepo) GetAll(ctx context.Context) ([]models.Customer, error) {
	opts := options.Find().SetSort(bson.D{{Key: "totalBookings", Value: -1}})
	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var customers []models.Customer
	if err := cursor.All(ctx, &customers); err != nil {
		return nil, err
	}
	return customers, nil
}

// SetFCMToken stores the push token registered by the customer's device.
func (r *mongoCustomerRepo) SetFCMToken(ctx context.Context, phone, token string) error {
	res, err := r.coll.UpdateOne(ctx, bson.M{"phone": phone}, bson.M{"$set": bson.M{"fcmToken": token}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}
