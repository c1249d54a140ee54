package paymentRepo

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"sparklewash/models"
)

// GetByStatus returns all payments with the given status, newest first.
func (r *mongoPaymentRepo) GetByStatus(ctx context.Context, status models.PaymentStatus) ([]models.Payment, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.coll.Find(ctx, bson.M{"status": status}, opts)
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

// GetByDateRange returns payments whose date falls within [startDate, endDate],
// most recent date first.
func (r *mongoPaymentRepo) GetByDateRange(ctx context.Context, startDate, endDate string) ([]models.Payment, error) {
	filter := bson.M{"date": bson.M{"$gte": startDate, "$lte": endDate}}
	opts := options.Find().SetSort(bson.D{{Key: "date", Value: -1}})
	cursor, err := r.coll.Find(ctx, filter, opts)
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

// Watch opens a change stream on the payments collection and calls onChange
// for every event.
func (r *mongoPaymentRepo) Watch(ctx context.Context, onChange func()) error {
	opts := options.ChangeStream().SetFullDocument(options.UpdateLookup)
	stream, err := r.coll.Watch(ctx, mongo.Pipeline{}, opts)
	if err != nil {
		return err
	}
	defer stream.Close(ctx)

	for stream.Next(ctx) {
		onChange()
	}
	return stream.Err()
}
