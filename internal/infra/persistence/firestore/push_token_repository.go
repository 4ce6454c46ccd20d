package firestore

import (
	"context"

	"tracenfind/internal/domain/entity"
	domainerrors "tracenfind/internal/domain/errors"
	"tracenfind/internal/domain/repository"

	"cloud.google.com/go/firestore"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

type pushTokenRepository struct {
	client *firestore.Client
}

// NewPushTokenRepository returns the users/{uid}/pushTokens collection.
func NewPushTokenRepository(client *firestore.Client) repository.PushTokenRepository {
	return &pushTokenRepository{client: client}
}

func (repo *pushTokenRepository) collection(userID string) *firestore.CollectionRef {
	return userCollection(repo.client, userID, collectionPushTokens)
}

// tokenDocID derives a stable document ID from the installation so that
// re-registering replaces the previous token.
func tokenDocID(userID, installationID string) string {
	return uuid.NewSHA1(uuid.NameSpaceURL, []byte(userID+"/"+installationID)).String()
}

func (repo *pushTokenRepository) UpsertToken(ctx context.Context, token *entity.PushToken) error {
	ref := repo.collection(token.UserID).Doc(tokenDocID(token.UserID, token.InstallationID))

	fields := map[string]any{
		fieldFCMToken:       token.FCMToken,
		fieldInstallationID: token.InstallationID,
		fieldPlatform:       token.Platform,
		fieldIsActive:       true,
		fieldUpdatedAt:      firestore.ServerTimestamp,
	}

	existing, err := ref.Get(ctx)
	switch {
	case err != nil && isNotFound(err):
		fields[fieldCreatedAt] = firestore.ServerTimestamp
	case err != nil:
		return errors.Wrap(err, "failed to get push token")
	default:
		token.CreatedAt = entity.TimeFromAny(existing.Data()[fieldCreatedAt])
	}

	wr, err := ref.Set(ctx, fields, firestore.MergeAll)
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to save push token")
	}

	token.ID = ref.ID
	token.IsActive = true
	token.UpdatedAt = wr.UpdateTime.UTC()
	if token.CreatedAt.IsZero() {
		token.CreatedAt = token.UpdatedAt
	}

	return nil
}

func (repo *pushTokenRepository) FindActiveTokensByUser(ctx context.Context, userID string) ([]*entity.PushToken, error) {
	docs, err := repo.collection(userID).Where(fieldIsActive, "==", true).Documents(ctx).GetAll()
	if err != nil {
		return nil, errors.Wrap(err, "failed to query push tokens")
	}

	tokens := make([]*entity.PushToken, 0, len(docs))
	for _, doc := range docs {
		tokens = append(tokens, decodePushToken(doc.Ref.ID, userID, doc.Data()))
	}

	return tokens, nil
}

func (repo *pushTokenRepository) DeactivateTokens(ctx context.Context, userID string, fcmTokens []string) error {
	if len(fcmTokens) == 0 {
		return nil
	}

	writes := newBulkWrites(ctx, repo.client)

	var err error
	for start := 0; start < len(fcmTokens) && err == nil; start += maxInFilterValues {
		end := min(start+maxInFilterValues, len(fcmTokens))

		q := repo.collection(userID).Where(fieldFCMToken, "in", fcmTokens[start:end])
		err = drain(ctx, q, func(doc *firestore.DocumentSnapshot) error {
			return writes.update(doc.Ref, []firestore.Update{
				{Path: fieldIsActive, Value: false},
				{Path: fieldUpdatedAt, Value: firestore.ServerTimestamp},
			})
		})
	}
	_, writeErr := writes.finish()
	if err != nil {
		return errors.Wrap(err, "failed to deactivate push tokens")
	}
	if writeErr != nil {
		return errors.Wrap(writeErr, "failed to deactivate push tokens")
	}

	return nil
}

func (repo *pushTokenRepository) DeleteToken(ctx context.Context, userID, id string) error {
	if _, err := repo.collection(userID).Doc(id).Delete(ctx, firestore.Exists); err != nil {
		if isNotFound(err) {
			return repository.ErrPushTokenNotFound
		}

		return errors.Wrap(err, "failed to delete push token")
	}

	return nil
}
