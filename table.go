package hashtable

import (
	"github.com/cockroachdb/errors"
	"github.com/gostonefire/hashtable/hashfunc"
	"github.com/gostonefire/hashtable/internal/model"
	"github.com/gostonefire/hashtable/internal/storage/openaddressing"
	"github.com/gostonefire/hashtable/internal/utils"
	"io"
	"log/slog"
)

// DefaultCapacity - Capacity used when none is given, also the default floor for shrinking
const DefaultCapacity int64 = 53

// MaxCapacity - Default ceiling for growing
const MaxCapacity int64 = 1 << 40

// growThreshold - Load factor in percent above which a Put first grows the table
const growThreshold int64 = 70

// shrinkThreshold - Load factor in percent below which a Remove first shrinks the table
const shrinkThreshold int64 = 30

// TableConf - Is a struct used in the call to NewTable holding configuration for the table.
//   - Capacity is the initial logical capacity, the number of buckets is the nearest prime at or above it. Zero or less selects DefaultCapacity.
//   - MinCapacity is the logical capacity the table will never shrink below. Zero or less selects DefaultCapacity.
//   - MaxCapacity is the logical capacity the table will never grow beyond. Zero or less selects MaxCapacity.
//   - HashAlgorithm is an optional entry to provide a custom hash algorithm following the hashfunc.HashAlgorithm interface.
//   - Logger receives debug records on every resize, nil discards them.
type TableConf struct {
	Capacity      int64
	MinCapacity   int64
	MaxCapacity   int64
	HashAlgorithm hashfunc.HashAlgorithm
	Logger        *slog.Logger
}

// TableStat - Statistics on the overall usage of the table
//   - Buckets is the number of physical slots
//   - Capacity is the logical capacity last requested by create or resize
//   - Occupied is the number of stored entries
//   - Tombstones is the number of slots left behind by removed entries
//   - Empty is the number of never used slots
//   - LoadFactor is Occupied divided by Buckets
//   - LongestProbe is the largest number of slots visited to reach any stored entry
type TableStat struct {
	Buckets      int64
	Capacity     int64
	Occupied     int64
	Tombstones   int64
	Empty        int64
	LoadFactor   float64
	LongestProbe int64
}

// Table - An in memory hash table mapping string keys to byte values using open addressing with double hashing.
// The table grows when more than 70% of the buckets are occupied and shrinks when less than 30% are.
// A Table is not safe for concurrent use.
type Table struct {
	slots         *openaddressing.OASlots
	minCapacity   int64
	maxCapacity   int64
	hashAlgorithm hashfunc.HashAlgorithm
	logger        *slog.Logger
	destroyed     bool
}

// New - Returns a new table prepared for the given logical capacity using the internal hash algorithm.
// Zero or less selects DefaultCapacity. It panics if capacity is higher than MaxCapacity.
func New(capacity int64) *Table {
	table, err := NewTable(TableConf{Capacity: capacity})
	if err != nil {
		panic(errors.NewAssertionErrorWithWrappedErrf(err, "creating table with capacity %d", capacity))
	}

	return table
}

// NewTable - Returns a new table given a TableConf.
//
// It returns:
//   - table is a pointer to a Table struct
//   - err is a normal go Error which should be nil if everything went ok
func NewTable(conf TableConf) (table *Table, err error) {
	if conf.Capacity <= 0 {
		conf.Capacity = DefaultCapacity
	}
	if conf.MinCapacity <= 0 {
		conf.MinCapacity = DefaultCapacity
	}
	if conf.MaxCapacity <= 0 {
		conf.MaxCapacity = MaxCapacity
	}
	if conf.MinCapacity > conf.MaxCapacity {
		err = errors.Newf("min capacity %d can not be higher than max capacity %d", conf.MinCapacity, conf.MaxCapacity)
		return
	}
	if conf.Capacity > conf.MaxCapacity {
		err = errors.Newf("capacity %d can not be higher than max capacity %d", conf.Capacity, conf.MaxCapacity)
		return
	}
	if conf.Logger == nil {
		conf.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	slots, err := openaddressing.NewOASlots(model.CRTConf{
		NumberOfBucketsNeeded: conf.Capacity,
		HashAlgorithm:         conf.HashAlgorithm,
	})
	if err != nil {
		err = errors.Wrapf(err, "error while creating table with capacity %d", conf.Capacity)
		return
	}

	table = &Table{
		slots:         slots,
		minCapacity:   conf.MinCapacity,
		maxCapacity:   conf.MaxCapacity,
		hashAlgorithm: conf.HashAlgorithm,
		logger:        conf.Logger,
	}

	return
}

// Destroy - Drops every entry and the slot array. Afterwards Put fails with crt.TableDestroyed, Get reports
// every key as absent and Remove returns false.
func (T *Table) Destroy() {
	if T.destroyed {
		return
	}
	T.slots.Release()
	T.destroyed = true
}

// Count - Returns the number of entries stored
func (T *Table) Count() int64 {
	return T.slots.GetUtilizationInfo().Occupied
}

// Buckets - Returns the number of physical slots, always a prime
func (T *Table) Buckets() int64 {
	return T.slots.GetStorageParameters().NumberOfBucketsAvailable
}

// Capacity - Returns the logical capacity last requested by create or resize
func (T *Table) Capacity() int64 {
	return T.slots.GetStorageParameters().NumberOfBucketsNeeded
}

// Stat - Walks through the entire slot array and produces a TableStat struct
func (T *Table) Stat() (tableStat TableStat) {
	info := T.slots.GetUtilizationInfo()
	buckets := T.Buckets()

	tableStat = TableStat{
		Buckets:    buckets,
		Capacity:   T.Capacity(),
		Occupied:   info.Occupied,
		Tombstones: info.Tombstone,
		Empty:      info.Empty,
	}
	if buckets > 0 {
		tableStat.LoadFactor = float64(info.Occupied) / float64(buckets)
	}

	for i := int64(0); i < buckets; i++ {
		slot, err := T.slots.GetSlot(i)
		if err != nil || slot.State != model.SlotOccupied {
			continue
		}
		n, err := T.slots.GetProbeLength(slot.Entry.Key)
		if err == nil && n > tableStat.LongestProbe {
			tableStat.LongestProbe = n
		}
	}

	return
}

// loadFactor - Returns the load factor in whole percent
func (T *Table) loadFactor() int64 {
	return T.Count() * 100 / T.Buckets()
}

// canShrink - Returns true if the table is above its floor
func (T *Table) canShrink() bool {
	return T.Buckets() > utils.NextPrime(T.minCapacity)
}

// growCapacity - Returns the doubled capacity, capped at max capacity, and false if the table is already at max
func (T *Table) growCapacity() (capacity int64, ok bool) {
	capacity = T.Capacity()
	if capacity >= T.maxCapacity {
		return
	}

	if capacity > T.maxCapacity/2 {
		capacity = T.maxCapacity
	} else {
		capacity *= 2
	}
	ok = true

	return
}

// resize - Rehashes every entry into a new slot array sized for the given capacity and swaps it in.
// Tombstones are dropped. If anything fails, the table is left exactly as it was.
func (T *Table) resize(capacity int64) (err error) {
	if capacity < T.minCapacity {
		capacity = T.minCapacity
	}

	oldParams := T.slots.GetStorageParameters()

	newSlots, err := openaddressing.NewOASlots(model.CRTConf{
		NumberOfBucketsNeeded: capacity,
		HashAlgorithm:         T.hashAlgorithm,
	})
	if err != nil {
		T.restoreHashAlgorithm(oldParams)
		err = errors.Wrapf(err, "error while resizing table to capacity %d", capacity)
		return
	}

	var slot model.Slot
	for i := int64(0); i < oldParams.NumberOfBucketsAvailable; i++ {
		slot, err = T.slots.GetSlot(i)
		if err == nil && slot.State == model.SlotOccupied {
			err = newSlots.Set(slot.Entry)
		}
		if err != nil {
			newSlots.Release()
			T.restoreHashAlgorithm(oldParams)
			err = errors.Wrapf(err, "error while rehashing into capacity %d", capacity)
			return
		}
	}

	T.logger.Debug("resized table",
		slog.Int64("old_buckets", oldParams.NumberOfBucketsAvailable),
		slog.Int64("new_buckets", newSlots.GetStorageParameters().NumberOfBucketsAvailable),
		slog.Int64("capacity", capacity),
		slog.Int64("count", newSlots.GetUtilizationInfo().Occupied),
	)

	T.slots.Release()
	T.slots = newSlots

	return
}

// restoreHashAlgorithm - A custom hash algorithm is shared between the old and the new slot array, so it has to
// be set back to the old table size when a resize is abandoned.
func (T *Table) restoreHashAlgorithm(oldParams model.StorageParameters) {
	if T.hashAlgorithm != nil {
		T.hashAlgorithm.SetTableSize(oldParams.NumberOfBucketsNeeded)
	}
}
