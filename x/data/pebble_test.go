package data

import (
	"context"
	"testing"
	"time"

	"github.com/cockroachdb/pebble"
	"github.com/cockroachdb/pebble/vfs"
	"github.com/stretchr/testify/assert"

	"github.com/totegamma/timeline/core"
)

func openMemPebble(t *testing.T) *pebble.DB {
	db, err := OpenPebble("", &pebble.Options{FS: vfs.NewMem()})
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func TestPebbleRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewPebbleRepository(openMemPebble(t))

	payload := []byte("hello timeline")
	tag := ComputeTag(payload)

	ref, err := repo.Retain(ctx, tag, payload)
	assert.NoError(t, err)
	assert.Equal(t, int64(1), ref)

	ref, err = repo.Retain(ctx, tag, payload)
	assert.NoError(t, err)
	assert.Equal(t, int64(2), ref)

	count, err := repo.Count(ctx)
	assert.NoError(t, err)
	assert.Equal(t, int64(1), count)

	got, err := repo.Get(ctx, tag)
	if assert.NoError(t, err) {
		assert.Equal(t, payload, got)
	}

	// still referenced once
	ref, err = repo.Release(ctx, tag)
	assert.NoError(t, err)
	assert.Equal(t, int64(1), ref)

	_, err = repo.Get(ctx, tag)
	assert.NoError(t, err)

	ref, err = repo.Release(ctx, tag)
	assert.NoError(t, err)
	assert.Equal(t, int64(0), ref)

	_, err = repo.Get(ctx, tag)
	assert.ErrorIs(t, err, core.ErrorNotFound{})

	_, err = repo.Release(ctx, tag)
	assert.ErrorAs(t, err, &core.ErrorDataNotExist{})

	count, err = repo.Count(ctx)
	assert.NoError(t, err)
	assert.Equal(t, int64(0), count)
}

func TestPebbleRepositorySweep(t *testing.T) {
	ctx := context.Background()
	db := openMemPebble(t)
	repo := NewPebbleRepository(db).(*pebbleRepository)

	retainedAt := time.Date(2024, 4, 1, 12, 0, 0, 0, time.UTC)
	repo.now = func() time.Time { return retainedAt }

	kept := []byte("kept")
	_, err := repo.Retain(ctx, ComputeTag(kept), kept)
	assert.NoError(t, err)

	// stored for a post that never committed
	orphan := []byte("orphan")
	orphanTag := ComputeTag(orphan)
	_, err = repo.Retain(ctx, orphanTag, orphan)
	assert.NoError(t, err)

	// a blob whose ref record never made it
	lost := []byte("lost")
	lostTag := ComputeTag(lost)
	err = db.Set(blobKey(lostTag), lost, pebble.Sync)
	assert.NoError(t, err)

	referenced := map[string]bool{ComputeTag(kept): true}

	// inside the grace period only the record-less blob goes
	removed, err := repo.Sweep(ctx, referenced, retainedAt)
	assert.NoError(t, err)
	assert.Equal(t, int64(1), removed)

	_, err = repo.Get(ctx, orphanTag)
	assert.NoError(t, err)

	removed, err = repo.Sweep(ctx, referenced, retainedAt.Add(time.Hour))
	assert.NoError(t, err)
	assert.Equal(t, int64(1), removed)

	_, err = repo.Get(ctx, orphanTag)
	assert.ErrorIs(t, err, core.ErrorNotFound{})
	_, err = repo.Get(ctx, lostTag)
	assert.ErrorIs(t, err, core.ErrorNotFound{})

	_, err = repo.Get(ctx, ComputeTag(kept))
	assert.NoError(t, err)

	removed, err = repo.Sweep(ctx, referenced, retainedAt.Add(time.Hour))
	assert.NoError(t, err)
	assert.Equal(t, int64(0), removed)
}
