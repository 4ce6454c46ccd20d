package firestore

import (
	"context"

	"cloud.google.com/go/firestore"
	"github.com/pkg/errors"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const (
	collectionUsers         = "users"
	collectionDevices       = "devices"
	collectionGeofences     = "geofences"
	collectionNotifications = "notifications"
	collectionActivity      = "activity"
	collectionPushTokens    = "pushTokens"

	// Firestore caps "in" filters and batched reads at this many values.
	maxInFilterValues = 30
)

func userCollection(client *firestore.Client, userID, name string) *firestore.CollectionRef {
	return client.Collection(collectionUsers).Doc(userID).Collection(name)
}

func isNotFound(err error) bool {
	return status.Code(err) == codes.NotFound
}

// watchQuery attaches a snapshot listener to q and hands every full result
// set to onDocs. It returns nil once ctx is done.
func watchQuery(ctx context.Context, q firestore.Query, onDocs func([]*firestore.DocumentSnapshot)) error {
	it := q.Snapshots(ctx)
	defer it.Stop()

	for {
		qs, err := it.Next()
		if err != nil {
			if ctx.Err() != nil || status.Code(err) == codes.Canceled || errors.Is(err, iterator.Done) {
				return nil
			}

			return errors.Wrap(err, "snapshot listener failed")
		}

		docs, err := qs.Documents.GetAll()
		if err != nil {
			return errors.Wrap(err, "failed to read snapshot documents")
		}

		onDocs(docs)
	}
}

// drain runs fn on every document of q.
func drain(ctx context.Context, q firestore.Query, fn func(*firestore.DocumentSnapshot) error) error {
	it := q.Documents(ctx)
	defer it.Stop()

	for {
		doc, err := it.Next()
		if errors.Is(err, iterator.Done) {
			return nil
		}
		if err != nil {
			return err
		}
		if err := fn(doc); err != nil {
			return err
		}
	}
}
