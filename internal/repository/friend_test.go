package repository

import (
	"context"
	"fmt"
	"testing"

	"gymhum/internal/database"
	"gymhum/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupRepoDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(database.Models()...))
	return db
}

func createUser(t *testing.T, db *gorm.DB, username string) *models.User {
	t.Helper()
	user := &models.User{
		Username:     username,
		Email:        fmt.Sprintf("%s@example.com", username),
		PasswordHash: "irrelevant",
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

func TestFriendshipPairUniqueIndex(t *testing.T) {
	db := setupRepoDB(t)
	repo := NewFriendRepository(db)
	ctx := context.Background()

	alice := createUser(t, db, "alice")
	bob := createUser(t, db, "bob")

	require.NoError(t, repo.Create(ctx, &models.Friendship{
		RequesterID: alice.ID,
		AddresseeID: bob.ID,
		Status:      models.FriendshipStatusPending,
	}))

	err := repo.Create(ctx, &models.Friendship{
		RequesterID: alice.ID,
		AddresseeID: bob.ID,
		Status:      models.FriendshipStatusPending,
	})
	require.Error(t, err)

	var appErr *models.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "VALIDATION_ERROR", appErr.Code)
}

func TestGetFriendsReturnsOppositeSideOfEachEdge(t *testing.T) {
	db := setupRepoDB(t)
	repo := NewFriendRepository(db)
	ctx := context.Background()

	alice := createUser(t, db, "alice")
	bob := createUser(t, db, "bob")
	carol := createUser(t, db, "carol")
	dave := createUser(t, db, "dave")

	// alice requested bob, carol requested alice, both accepted.
	// dave is only pending and must not show up.
	require.NoError(t, repo.Create(ctx, &models.Friendship{
		RequesterID: alice.ID, AddresseeID: bob.ID, Status: models.FriendshipStatusAccepted,
	}))
	require.NoError(t, repo.Create(ctx, &models.Friendship{
		RequesterID: carol.ID, AddresseeID: alice.ID, Status: models.FriendshipStatusAccepted,
	}))
	require.NoError(t, repo.Create(ctx, &models.Friendship{
		RequesterID: dave.ID, AddresseeID: alice.ID, Status: models.FriendshipStatusPending,
	}))

	friends, err := repo.GetFriends(ctx, alice.ID)
	require.NoError(t, err)

	names := make([]string, 0, len(friends))
	for _, f := range friends {
		names = append(names, f.Username)
	}
	assert.ElementsMatch(t, []string{"bob", "carol"}, names)

	ids, err := repo.GetFriendIDs(ctx, alice.ID)
	require.NoError(t, err)
	assert.ElementsMatch(t, []uint{bob.ID, carol.ID}, ids)

	// Connected includes the pending edge from dave.
	connected, err := repo.GetConnectedUserIDs(ctx, alice.ID)
	require.NoError(t, err)
	assert.ElementsMatch(t, []uint{bob.ID, carol.ID, dave.ID}, connected)
}

func TestGetFriendshipBetweenUsersIsDirectionless(t *testing.T) {
	db := setupRepoDB(t)
	repo := NewFriendRepository(db)
	ctx := context.Background()

	alice := createUser(t, db, "alice")
	bob := createUser(t, db, "bob")
	carol := createUser(t, db, "carol")

	require.NoError(t, repo.Create(ctx, &models.Friendship{
		RequesterID: alice.ID, AddresseeID: bob.ID, Status: models.FriendshipStatusPending,
	}))

	forward, err := repo.GetFriendshipBetweenUsers(ctx, alice.ID, bob.ID)
	require.NoError(t, err)
	require.NotNil(t, forward)

	reverse, err := repo.GetFriendshipBetweenUsers(ctx, bob.ID, alice.ID)
	require.NoError(t, err)
	require.NotNil(t, reverse)
	assert.Equal(t, forward.ID, reverse.ID)

	missing, err := repo.GetFriendshipBetweenUsers(ctx, alice.ID, carol.ID)
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestUpdateStatusAcceptsSingleEdge(t *testing.T) {
	db := setupRepoDB(t)
	repo := NewFriendRepository(db)
	ctx := context.Background()

	alice := createUser(t, db, "alice")
	bob := createUser(t, db, "bob")

	f := &models.Friendship{
		RequesterID: alice.ID, AddresseeID: bob.ID, Status: models.FriendshipStatusPending,
	}
	require.NoError(t, repo.Create(ctx, f))

	require.NoError(t, repo.UpdateStatus(ctx, f.ID, models.FriendshipStatusAccepted))

	// Exactly one row exists for the pair after accept.
	var count int64
	require.NoError(t, db.Model(&models.Friendship{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)

	updated, err := repo.GetByID(ctx, f.ID)
	require.NoError(t, err)
	assert.Equal(t, models.FriendshipStatusAccepted, updated.Status)
}

func TestRemoveFriendshipDeletesEitherDirection(t *testing.T) {
	db := setupRepoDB(t)
	repo := NewFriendRepository(db)
	ctx := context.Background()

	alice := createUser(t, db, "alice")
	bob := createUser(t, db, "bob")

	require.NoError(t, repo.Create(ctx, &models.Friendship{
		RequesterID: bob.ID, AddresseeID: alice.ID, Status: models.FriendshipStatusAccepted,
	}))

	// Caller passes the pair in the opposite order from the stored edge.
	require.NoError(t, repo.RemoveFriendship(ctx, alice.ID, bob.ID))

	gone, err := repo.GetFriendshipBetweenUsers(ctx, alice.ID, bob.ID)
	require.NoError(t, err)
	assert.Nil(t, gone)
}
