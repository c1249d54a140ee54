package bookingRepo

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Watch opens a change stream on the bookings collection and calls onChange
// for every insert/update/replace event. Requires a replica set; callers fall
// back to poll-based refresh when the stream cannot be opened.
func (r *mongoBookingRepo) Watch(ctx context.Context, onChange func()) error {
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
