package firestore

import (
	"context"
	"os"
	"strconv"
	"testing"
	"time"

	"tracenfind/internal/domain/entity"

	"cloud.google.com/go/firestore"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newEmulatorClient connects to the emulator named by FIRESTORE_EMULATOR_HOST.
func newEmulatorClient(t *testing.T) *firestore.Client {
	t.Helper()

	if os.Getenv("FIRESTORE_EMULATOR_HOST") == "" {
		t.Skip("FIRESTORE_EMULATOR_HOST not set")
	}

	client, err := firestore.NewClient(context.Background(), "tracenfind-test")
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })

	return client
}

func uniqueUser(t *testing.T) string {
	return t.Name() + "-" + strconv.FormatInt(time.Now().UnixNano(), 10)
}

func TestBulkWrites_CountsOnlyAppliedWrites(t *testing.T) {
	ctx := context.Background()
	client := newEmulatorClient(t)
	col := userCollection(client, uniqueUser(t), collectionNotifications)

	existing, _, err := col.Add(ctx, map[string]any{fieldRead: false})
	require.NoError(t, err)

	writes := newBulkWrites(ctx, client)
	require.NoError(t, writes.update(existing, []firestore.Update{{Path: fieldRead, Value: true}}))
	// Update requires the document to exist, so the server rejects this one.
	require.NoError(t, writes.update(col.Doc("missing"), []firestore.Update{{Path: fieldRead, Value: true}}))

	applied, err := writes.finish()
	assert.Equal(t, 1, applied)
	require.Error(t, err)

	snap, err := existing.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, true, snap.Data()[fieldRead])
}

func TestNotificationRepository_BulkOperations(t *testing.T) {
	ctx := context.Background()
	client := newEmulatorClient(t)
	repo := NewNotificationRepository(client)
	userID := uniqueUser(t)

	for _, title := range []string{"Phone went offline", "Phone left Home"} {
		require.NoError(t, repo.Create(ctx, userID, &entity.Notification{
			Kind:    entity.EventKindTrackingStop,
			Title:   title,
			Message: title,
		}))
	}

	marked, err := repo.MarkAllRead(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, 2, marked)

	unread, err := repo.FindUnread(ctx, userID)
	require.NoError(t, err)
	assert.Empty(t, unread)

	deleted, err := repo.DeleteAll(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, 2, deleted)

	recent, err := repo.FindRecent(ctx, userID, 10)
	require.NoError(t, err)
	assert.Empty(t, recent)
}

func TestPushTokenRepository_DeactivateTokens(t *testing.T) {
	ctx := context.Background()
	client := newEmulatorClient(t)
	repo := NewPushTokenRepository(client)
	userID := uniqueUser(t)

	for _, inst := range []string{"browser", "phone"} {
		require.NoError(t, repo.UpsertToken(ctx, &entity.PushToken{
			UserID:         userID,
			FCMToken:       "token-" + inst,
			InstallationID: inst,
			Platform:       "web",
		}))
	}

	require.NoError(t, repo.DeactivateTokens(ctx, userID, []string{"token-browser"}))

	active, err := repo.FindActiveTokensByUser(ctx, userID)
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, "token-phone", active[0].FCMToken)
}
