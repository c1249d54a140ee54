package paymentRepo

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"sparklewash/database/repository"
	"sparklewash/models"
)

// Create inserts a new payment record and returns its document ID.
func (r *mongoPaymentRepo) Create(ctx context.Context, payment models.Payment) (string, error) {
	if payment.ID == "" {
		payment.ID = uuid.New().String()
	}
	payment.CreatedAt = time.Now()
	payment.UpdatedAt = payment.CreatedAt

	if _, err := r.coll.InsertOne(ctx, payment); err != nil {
		return "", err
	}
	return payment.ID, nil
}

// GetByID returns a payment by its document ID.
func (r *mongoPaymentRepo) GetByID(ctx context.Context, id string) (*models.Payment, error) {
	var payment models.Payment
	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&payment)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &payment, nil
}

// GetAll returns every payment, newest first.
func (r *mongoPaymentRepo) GetAll(ctx context.Context) ([]models.Payment, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var payments []models.Payment
	if err := cursor.All(ctx, &payments); err != nil {
		return nil, err
	}
	return payments, nil
}

// UpdateStatus records the settlement outcome of a payment. The amount is
// never touched here.
func (r *mongoPaymentRepo) UpdateStatus(ctx context.Context, id string, status models.PaymentStatus, notes string) error {
	set := bson.M{"status": status, "updatedAt": time.Now()}
	if notes != "" {
		set["notes"] = notes
	}

	res, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": set})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}
