package hashtable

import (
	"github.com/cockroachdb/errors"
	"github.com/gostonefire/hashtable/crt"
	"github.com/gostonefire/hashtable/internal/model"
	"github.com/gostonefire/hashtable/internal/utils"
	"log/slog"
)

// Put - Updates an existing entry with new data or adds it if no existing is found with same key.
// The table stores its own copy of value, the caller keeps ownership of the given slice.
//   - key is the identifier of an entry
//   - value is the bytes to store along with the key
//   - size is the length of value, it must equal len(value)
//
// It returns:
//   - err is either of type crt.InvalidSize, crt.TableDestroyed, crt.TableFull or a standard error if something went wrong
func (T *Table) Put(key string, value []byte, size int64) (err error) {
	if T.destroyed {
		err = crt.TableDestroyed{}
		return
	}

	// Check validity of the value
	if size != int64(len(value)) {
		err = errors.Wrapf(crt.InvalidSize{}, "size %d given for value of length %d", size, len(value))
		return
	}

	if T.loadFactor() > growThreshold {
		if capacity, ok := T.growCapacity(); ok {
			err = T.resize(capacity)
			if err != nil {
				return
			}
		}
	}

	err = T.slots.Set(model.Entry{Key: key, Value: utils.CopyValue(value), Size: size})
	if err != nil {
		err = errors.Wrapf(err, "error while putting key %q", key)
	}

	return
}

// Get - Gets the value stored for key.
// The returned slice is the table's own copy and must not be modified or kept past the next Put or Remove of the same key.
//   - key is the identifier of an entry
//
// It returns:
//   - value is the value of the matching entry if found
//   - ok is false if no entry was found
func (T *Table) Get(key string) (value []byte, ok bool) {
	if T.destroyed {
		return
	}

	slot, err := T.slots.Get(key)
	if err != nil {
		T.logProbingError(err, key)
		return
	}

	value = slot.Entry.Value
	ok = true

	return
}

// Remove - Removes the entry for key, leaving a tombstone behind in its slot.
//   - key is the identifier of an entry
//
// It returns:
//   - removed is true if a matching entry existed and was deleted
func (T *Table) Remove(key string) (removed bool) {
	if T.destroyed {
		return
	}

	if T.loadFactor() < shrinkThreshold && T.canShrink() {
		// A failed shrink leaves the table untouched and the remove can go ahead anyway
		if err := T.resize(T.Capacity() / 2); err != nil {
			T.logger.Error("shrink failed", slog.Any("error", err))
		}
	}

	slot, err := T.slots.Get(key)
	if err != nil {
		T.logProbingError(err, key)
		return
	}

	err = T.slots.Delete(slot)
	if err != nil {
		T.logger.Error("delete failed", slog.Any("error", err), slog.String("key", key))
		return
	}
	removed = true

	return
}

// Pop - Returns the value corresponding to key and removes it from the table.
//   - key is the identifier of an entry
//
// It returns:
//   - value is the value of the matching entry if found, if not found an error of type crt.NoRecordFound is also returned.
//   - err is either of type crt.NoRecordFound or crt.TableDestroyed
func (T *Table) Pop(key string) (value []byte, err error) {
	if T.destroyed {
		err = crt.TableDestroyed{}
		return
	}

	value, ok := T.Get(key)
	if !ok {
		err = crt.NoRecordFound{}
		return
	}

	T.Remove(key)

	return
}

// logProbingError - Logs probing errors other than the key simply not being there
func (T *Table) logProbingError(err error, key string) {
	if !errors.Is(err, crt.NoRecordFound{}) {
		T.logger.Error("probing failed", slog.Any("error", err), slog.String("key", key))
	}
}
