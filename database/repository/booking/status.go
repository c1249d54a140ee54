package bookingRepo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"

	"sparklewash/database/repository"
	"sparklewash/models"
)

// UpdateStatus persists a status transition. The filter matches on both the
// document ID and the expected current status, so a concurrent transition on
// the same booking loses with ErrConflict instead of double-advancing.
func (r *mongoBookingRepo) UpdateStatus(ctx context.Context, id string, from, to models.BookingStatus, at time.Time) error {
	filter := bson.M{"id": id, "status": from}
	update := bson.M{"$set": bson.M{"status": to, "updatedAt": at}}

	res, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		// Distinguish a missing booking from a lost race.
		count, err := r.coll.CountDocuments(ctx, bson.M{"id": id})
		if err != nil {
			return err
		}
		if count == 0 {
			return repository.ErrNotFound
		}
		return repository.ErrConflict
	}
	return nil
}

// BulkUpdateStatus sets the status on every listed booking and returns how
// many documents were modified. Admin-table multi-select path; it does not
// CAS, callers validate the transition per booking first.
func (r *mongoBookingRepo) BulkUpdateStatus(ctx context.Context, ids []string, to models.BookingStatus, at time.Time) (int64, error) {
	filter := bson.M{"id": bson.M{"$in": ids}}
	update := bson.M{"$set": bson.M{"status": to, "updatedAt": at}}

	res, err := r.coll.UpdateMany(ctx, filter, update)
	if err != nil {
		return 0, err
	}
	return res.ModifiedCount, nil
}
