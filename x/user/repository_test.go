package user

import (
	"context"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/totegamma/timeline/core"
	"github.com/totegamma/timeline/internal/testutil"
)

func TestRepository(t *testing.T) {
	var ctx = context.Background()

	db, cleanup_db := testutil.CreateDB()
	defer cleanup_db()

	rdb, cleanup_rdb := testutil.CreateRDB()
	defer cleanup_rdb()

	mc, cleanup_mc := testutil.CreateMC()
	defer cleanup_mc()

	repo := NewRepository(db, rdb, mc)

	alice, err := repo.Create(ctx, core.User{Username: "alice", Nickname: "Alice", UsernameChangeTime: epoch, LastModified: epoch})
	if assert.NoError(t, err) {
		assert.NotZero(t, alice.ID)
	}

	_, err = repo.Create(ctx, core.User{Username: "alice", UsernameChangeTime: epoch, LastModified: epoch})
	assert.ErrorAs(t, err, &core.ErrorInvalidArgument{})

	times, err := repo.GetIdentityChangeTimes(ctx, []uint{alice.ID, alice.ID + 100})
	if assert.NoError(t, err) {
		assert.Len(t, times, 1)
		assert.True(t, epoch.Equal(times[alice.ID]))
	}

	// nickname does not move the identity change time, even through the cache
	later := epoch.Add(time.Hour)
	updated, err := repo.UpdateNickname(ctx, alice.ID, "Ally", later)
	if assert.NoError(t, err) {
		assert.Equal(t, "Ally", updated.Nickname)
		assert.True(t, epoch.Equal(updated.UsernameChangeTime))
		assert.True(t, later.Equal(updated.LastModified))
	}

	times, err = repo.GetIdentityChangeTimes(ctx, []uint{alice.ID})
	if assert.NoError(t, err) {
		assert.True(t, epoch.Equal(times[alice.ID]))
	}

	latest := later.Add(time.Hour)
	updated, err = repo.UpdateUsername(ctx, alice.ID, "alicia", latest)
	if assert.NoError(t, err) {
		assert.Equal(t, "alicia", updated.Username)
		assert.True(t, latest.Equal(updated.UsernameChangeTime))
	}

	times, err = repo.GetIdentityChangeTimes(ctx, []uint{alice.ID})
	if assert.NoError(t, err) {
		assert.True(t, latest.Equal(times[alice.ID]))
	}

	pubsub := rdb.Subscribe(ctx, core.UserDeletedChannel)
	defer pubsub.Close()
	_, err = pubsub.Receive(ctx)
	assert.NoError(t, err)

	assert.NoError(t, repo.Delete(ctx, alice.ID))
	assert.NoError(t, repo.PublishDeleted(ctx, alice.ID))

	select {
	case msg := <-pubsub.Channel():
		assert.Equal(t, strconv.FormatUint(uint64(alice.ID), 10), msg.Payload)
	case <-time.After(5 * time.Second):
		t.Error("deletion notification not received")
	}

	times, err = repo.GetIdentityChangeTimes(ctx, []uint{alice.ID})
	if assert.NoError(t, err) {
		assert.Empty(t, times)
	}

	assert.ErrorIs(t, repo.Delete(ctx, alice.ID), core.ErrorNotFound{})
}

// A reader loads the row, then a rename or deletion commits before the reader fills the cache.
func TestRepositoryLateCacheFill(t *testing.T) {
	var ctx = context.Background()

	db, cleanup_db := testutil.CreateDB()
	defer cleanup_db()

	rdb, cleanup_rdb := testutil.CreateRDB()
	defer cleanup_rdb()

	mc, cleanup_mc := testutil.CreateMC()
	defer cleanup_mc()

	repo := NewRepository(db, rdb, mc).(*repository)

	bob, err := repo.Create(ctx, core.User{Username: "bob", UsernameChangeTime: epoch, LastModified: epoch})
	assert.NoError(t, err)

	// the reader missed the cache and read the row
	assert.NoError(t, mc.Delete(ictKey(bob.ID)))
	var loaded []core.User
	assert.NoError(t, db.Select("id", "username_change_time").Where("id IN ?", []uint{bob.ID}).Find(&loaded).Error)

	renamed := epoch.Add(time.Hour)
	_, err = repo.UpdateUsername(ctx, bob.ID, "robert", renamed)
	assert.NoError(t, err)

	repo.fillIdentityChangeTimes(loaded)

	times, err := repo.GetIdentityChangeTimes(ctx, []uint{bob.ID})
	if assert.NoError(t, err) {
		assert.True(t, renamed.Equal(times[bob.ID]))
	}

	// the same reader races the deletion
	assert.NoError(t, mc.Delete(ictKey(bob.ID)))
	var beforeDelete []core.User
	assert.NoError(t, db.Select("id", "username_change_time").Where("id IN ?", []uint{bob.ID}).Find(&beforeDelete).Error)
	assert.Len(t, beforeDelete, 1)

	assert.NoError(t, repo.Delete(ctx, bob.ID))

	repo.fillIdentityChangeTimes(beforeDelete)

	times, err = repo.GetIdentityChangeTimes(ctx, []uint{bob.ID})
	if assert.NoError(t, err) {
		assert.Empty(t, times)
	}

	// a plain miss is filled from the database
	carol, err := repo.Create(ctx, core.User{Username: "carol", UsernameChangeTime: epoch, LastModified: epoch})
	assert.NoError(t, err)
	assert.NoError(t, mc.Delete(ictKey(carol.ID)))

	times, err = repo.GetIdentityChangeTimes(ctx, []uint{carol.ID})
	if assert.NoError(t, err) {
		assert.True(t, epoch.Equal(times[carol.ID]))
	}

	item, err := mc.Get(ictKey(carol.ID))
	if assert.NoError(t, err) {
		assert.Equal(t, epoch.Format(time.RFC3339Nano), string(item.Value))
	}
}
