package data

import (
	"bytes"
	"context"
	"encoding/binary"
	"sync"
	"time"

	"github.com/cockroachdb/pebble"
	"github.com/pkg/errors"
	"go.opentelemetry.io/otel/attribute"

	"github.com/totegamma/timeline/core"
)

const (
	pebbleBlobPrefix = "blob:"
	pebbleRefPrefix  = "ref:"
)

// pebbleRepository keeps blobs in a local pebble store.
// blob:<tag> holds the bytes. ref:<tag> holds the big endian uint64 count
// followed by the unix nano time of the last retain.
type pebbleRepository struct {
	db  *pebble.DB
	mu  sync.Mutex
	now func() time.Time
}

// NewPebbleRepository creates a blob repository on top of an opened pebble db
func NewPebbleRepository(db *pebble.DB) Repository {
	return &pebbleRepository{db: db, now: time.Now}
}

// OpenPebble opens (or creates) the pebble store at path
func OpenPebble(path string, opts *pebble.Options) (*pebble.DB, error) {
	if opts == nil {
		opts = &pebble.Options{}
	}
	db, err := pebble.Open(path, opts)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open pebble")
	}
	return db, nil
}

func blobKey(tag string) []byte {
	return []byte(pebbleBlobPrefix + tag)
}

func refKey(tag string) []byte {
	return []byte(pebbleRefPrefix + tag)
}

type refRecord struct {
	count    uint64
	retained time.Time
}

func encodeRef(record refRecord) []byte {
	buf := make([]byte, 16)
	binary.BigEndian.PutUint64(buf, record.count)
	binary.BigEndian.PutUint64(buf[8:], uint64(record.retained.UnixNano()))
	return buf
}

func decodeRef(value []byte) refRecord {
	var record refRecord
	if len(value) >= 8 {
		record.count = binary.BigEndian.Uint64(value)
	}
	if len(value) >= 16 {
		record.retained = time.Unix(0, int64(binary.BigEndian.Uint64(value[8:])))
	}
	return record
}

// readRef returns the record of tag, and false when the tag is unknown
func (r *pebbleRepository) readRef(tag string) (refRecord, bool, error) {
	value, closer, err := r.db.Get(refKey(tag))
	if err != nil {
		if errors.Is(err, pebble.ErrNotFound) {
			return refRecord{}, false, nil
		}
		return refRecord{}, false, err
	}
	defer closer.Close()

	return decodeRef(value), true, nil
}

func (r *pebbleRepository) Retain(ctx context.Context, tag string, data []byte) (int64, error) {
	_, span := tracer.Start(ctx, "Data.PebbleRepository.Retain")
	defer span.End()
	span.SetAttributes(attribute.String("tag", tag))

	r.mu.Lock()
	defer r.mu.Unlock()

	record, exists, err := r.readRef(tag)
	if err != nil {
		span.RecordError(err)
		return 0, errors.Wrap(err, "failed to read ref")
	}

	batch := r.db.NewBatch()
	defer batch.Close()

	if !exists {
		record.count = 0
		if err := batch.Set(blobKey(tag), data, nil); err != nil {
			span.RecordError(err)
			return 0, err
		}
	}
	record.count++
	record.retained = r.now()
	if err := batch.Set(refKey(tag), encodeRef(record), nil); err != nil {
		span.RecordError(err)
		return 0, err
	}

	if err := batch.Commit(pebble.Sync); err != nil {
		span.RecordError(err)
		return 0, errors.Wrap(err, "failed to commit blob")
	}

	return int64(record.count), nil
}

func (r *pebbleRepository) Get(ctx context.Context, tag string) ([]byte, error) {
	_, span := tracer.Start(ctx, "Data.PebbleRepository.Get")
	defer span.End()
	span.SetAttributes(attribute.String("tag", tag))

	value, closer, err := r.db.Get(blobKey(tag))
	if err != nil {
		if errors.Is(err, pebble.ErrNotFound) {
			return nil, core.ErrorDataNotExist{Tag: tag}
		}
		span.RecordError(err)
		return nil, errors.Wrap(err, "failed to load blob")
	}
	defer closer.Close()

	return append([]byte(nil), value...), nil
}

func (r *pebbleRepository) Release(ctx context.Context, tag string) (int64, error) {
	_, span := tracer.Start(ctx, "Data.PebbleRepository.Release")
	defer span.End()
	span.SetAttributes(attribute.String("tag", tag))

	r.mu.Lock()
	defer r.mu.Unlock()

	record, exists, err := r.readRef(tag)
	if err != nil {
		span.RecordError(err)
		return 0, errors.Wrap(err, "failed to read ref")
	}
	if !exists {
		return 0, core.ErrorDataNotExist{Tag: tag}
	}

	batch := r.db.NewBatch()
	defer batch.Close()

	if record.count <= 1 {
		record.count = 0
		if err := batch.Delete(blobKey(tag), nil); err != nil {
			span.RecordError(err)
			return 0, err
		}
		if err := batch.Delete(refKey(tag), nil); err != nil {
			span.RecordError(err)
			return 0, err
		}
	} else {
		record.count--
		if err := batch.Set(refKey(tag), encodeRef(record), nil); err != nil {
			span.RecordError(err)
			return 0, err
		}
	}

	if err := batch.Commit(pebble.Sync); err != nil {
		span.RecordError(err)
		return 0, errors.Wrap(err, "failed to commit release")
	}

	return int64(record.count), nil
}

// Sweep removes blobs no post refers to that were last retained before before.
// Blobs without a reference record are removed as well.
func (r *pebbleRepository) Sweep(ctx context.Context, referenced map[string]bool, before time.Time) (int64, error) {
	_, span := tracer.Start(ctx, "Data.PebbleRepository.Sweep")
	defer span.End()

	r.mu.Lock()
	defer r.mu.Unlock()

	prefix := []byte(pebbleBlobPrefix)
	iter, err := r.db.NewIter(&pebble.IterOptions{})
	if err != nil {
		span.RecordError(err)
		return 0, err
	}

	var orphans []string
	for iter.SeekGE(prefix); iter.Valid(); iter.Next() {
		if !bytes.HasPrefix(iter.Key(), prefix) {
			break
		}
		tag := string(iter.Key()[len(prefix):])
		record, exists, err := r.readRef(tag)
		if err != nil {
			iter.Close()
			span.RecordError(err)
			return 0, err
		}
		if !exists || record.count == 0 {
			orphans = append(orphans, tag)
			continue
		}
		if !referenced[tag] && record.retained.Before(before) {
			orphans = append(orphans, tag)
		}
	}
	if err := iter.Error(); err != nil {
		iter.Close()
		span.RecordError(err)
		return 0, err
	}
	iter.Close()

	if len(orphans) == 0 {
		return 0, nil
	}

	batch := r.db.NewBatch()
	defer batch.Close()
	for _, tag := range orphans {
		if err := batch.Delete(blobKey(tag), nil); err != nil {
			return 0, err
		}
		if err := batch.Delete(refKey(tag), nil); err != nil {
			return 0, err
		}
	}
	if err := batch.Commit(pebble.Sync); err != nil {
		span.RecordError(err)
		return 0, err
	}

	return int64(len(orphans)), nil
}

func (r *pebbleRepository) Count(ctx context.Context) (int64, error) {
	_, span := tracer.Start(ctx, "Data.PebbleRepository.Count")
	defer span.End()

	prefix := []byte(pebbleRefPrefix)
	iter, err := r.db.NewIter(&pebble.IterOptions{})
	if err != nil {
		span.RecordError(err)
		return 0, err
	}
	defer iter.Close()

	var count int64
	for iter.SeekGE(prefix); iter.Valid(); iter.Next() {
		if !bytes.HasPrefix(iter.Key(), prefix) {
			break
		}
		count++
	}

	return count, iter.Error()
}
