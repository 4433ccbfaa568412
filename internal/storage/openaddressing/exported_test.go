//go:build unit

package openaddressing

import (
	"fmt"
	"github.com/gostonefire/hashtable/crt"
	"github.com/gostonefire/hashtable/internal/model"
	"github.com/gostonefire/hashtable/internal/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"testing"
)

// collidingHashAlgorithm - Sends every key to bucket 0 with a step of 1, which turns probing linear and makes
// slot placement predictable.
type collidingHashAlgorithm struct {
	tableSize int64
}

func (C *collidingHashAlgorithm) SetTableSize(tableSize int64) { C.tableSize = utils.NextPrime(tableSize) }
func (C *collidingHashAlgorithm) HashFunc1(string) int64      { return 0 }
func (C *collidingHashAlgorithm) HashFunc2(string) int64      { return 1 }
func (C *collidingHashAlgorithm) GetTableSize() int64         { return C.tableSize }
func (C *collidingHashAlgorithm) ProbeIteration(hf1Value, hf2Value, iteration int64) int64 {
	return (hf1Value + iteration*hf2Value) % C.tableSize
}

// evenHashAlgorithm - Returns whatever table size it is given, which is not allowed for even numbers
type evenHashAlgorithm struct {
	collidingHashAlgorithm
}

func (E *evenHashAlgorithm) SetTableSize(tableSize int64) { E.tableSize = tableSize }

func entry(key, value string) model.Entry {
	return model.Entry{Key: key, Value: []byte(value), Size: int64(len(value))}
}

func TestNewOASlots(t *testing.T) {
	t.Run("creates a slot array with internal hash algorithm", func(t *testing.T) {
		// Prepare
		crtConf := model.CRTConf{NumberOfBucketsNeeded: 50}

		// Execute
		oaSlots, err := NewOASlots(crtConf)

		// Check
		require.NoError(t, err, "create new OASlots instance")
		sp := oaSlots.GetStorageParameters()
		assert.Equal(t, int64(50), sp.NumberOfBucketsNeeded, "needed buckets preserved")
		assert.Equal(t, int64(53), sp.NumberOfBucketsAvailable, "buckets rounded up to prime")
		assert.True(t, sp.InternalAlgorithm, "indicates using internal hash algorithm")
		assert.Len(t, oaSlots.slots, 53, "slot array allocated")

		info := oaSlots.GetUtilizationInfo()
		assert.Equal(t, int64(53), info.Empty, "all slots empty")
		assert.Zero(t, info.Occupied, "no occupied slots")
		assert.Zero(t, info.Tombstone, "no tombstones")
	})

	t.Run("creates a slot array with custom hash algorithm", func(t *testing.T) {
		// Prepare
		crtConf := model.CRTConf{NumberOfBucketsNeeded: 7, HashAlgorithm: &collidingHashAlgorithm{}}

		// Execute
		oaSlots, err := NewOASlots(crtConf)

		// Check
		require.NoError(t, err, "create new OASlots instance")
		sp := oaSlots.GetStorageParameters()
		assert.Equal(t, int64(7), sp.NumberOfBucketsAvailable, "prime preserved")
		assert.False(t, sp.InternalAlgorithm, "indicates using custom hash algorithm")
	})

	t.Run("fails on zero buckets", func(t *testing.T) {
		// Execute
		_, err := NewOASlots(model.CRTConf{NumberOfBucketsNeeded: 0})

		// Check
		assert.Error(t, err, "zero buckets not allowed")
	})

	t.Run("fails on custom hash algorithm with non prime table size", func(t *testing.T) {
		// Execute
		_, err := NewOASlots(model.CRTConf{NumberOfBucketsNeeded: 10, HashAlgorithm: &evenHashAlgorithm{}})

		// Check
		assert.Error(t, err, "non prime table size not allowed")
	})
}

func TestOASlots_Set(t *testing.T) {
	t.Run("sets and gets entries", func(t *testing.T) {
		// Prepare
		oaSlots, err := NewOASlots(model.CRTConf{NumberOfBucketsNeeded: 1000})
		require.NoError(t, err, "create new OASlots instance")

		// Execute
		for i := 0; i < 500; i++ {
			err = oaSlots.Set(entry(fmt.Sprintf("key-%d", i), fmt.Sprintf("value-%d", i)))
			require.NoErrorf(t, err, "set entry #%d", i)
		}

		// Check
		for i := 0; i < 500; i++ {
			slot, err := oaSlots.Get(fmt.Sprintf("key-%d", i))
			require.NoErrorf(t, err, "get entry #%d", i)
			assert.Equal(t, model.SlotOccupied, slot.State, "slot occupied")
			assert.Equal(t, []byte(fmt.Sprintf("value-%d", i)), slot.Entry.Value, "value preserved")
		}
		assert.Equal(t, int64(500), oaSlots.GetUtilizationInfo().Occupied, "occupied count")
	})

	t.Run("updates an existing entry in place", func(t *testing.T) {
		// Prepare
		oaSlots, err := NewOASlots(model.CRTConf{NumberOfBucketsNeeded: 7, HashAlgorithm: &collidingHashAlgorithm{}})
		require.NoError(t, err, "create new OASlots instance")
		require.NoError(t, oaSlots.Set(entry("x", "A")), "set entry")

		// Execute
		err = oaSlots.Set(entry("x", "B"))

		// Check
		assert.NoError(t, err, "update entry")
		slot, err := oaSlots.Get("x")
		assert.NoError(t, err, "get entry")
		assert.Equal(t, []byte("B"), slot.Entry.Value, "value updated")
		assert.Equal(t, int64(0), slot.SlotIndex, "same slot")
		assert.Equal(t, int64(1), oaSlots.GetUtilizationInfo().Occupied, "still one occupied")
	})

	t.Run("keeps keys unique when an earlier slot is a tombstone", func(t *testing.T) {
		// Prepare
		oaSlots, err := NewOASlots(model.CRTConf{NumberOfBucketsNeeded: 7, HashAlgorithm: &collidingHashAlgorithm{}})
		require.NoError(t, err, "create new OASlots instance")
		require.NoError(t, oaSlots.Set(entry("a", "1")), "set a")
		require.NoError(t, oaSlots.Set(entry("b", "2")), "set b")
		require.NoError(t, oaSlots.Set(entry("c", "3")), "set c")
		slot, err := oaSlots.Get("b")
		require.NoError(t, err, "get b")
		require.NoError(t, oaSlots.Delete(slot), "delete b")

		// Execute
		err = oaSlots.Set(entry("c", "33"))

		// Check
		assert.NoError(t, err, "update c")
		slot, err = oaSlots.Get("c")
		assert.NoError(t, err, "get c")
		assert.Equal(t, int64(2), slot.SlotIndex, "c stays in its slot")
		assert.Equal(t, []byte("33"), slot.Entry.Value, "c updated")
		assert.Equal(t, model.SlotTombstone, oaSlots.slots[1].State, "tombstone untouched")
		assert.Equal(t, int64(2), oaSlots.GetUtilizationInfo().Occupied, "two occupied")
	})

	t.Run("reuses the first tombstone for a new key", func(t *testing.T) {
		// Prepare
		oaSlots, err := NewOASlots(model.CRTConf{NumberOfBucketsNeeded: 7, HashAlgorithm: &collidingHashAlgorithm{}})
		require.NoError(t, err, "create new OASlots instance")
		require.NoError(t, oaSlots.Set(entry("a", "1")), "set a")
		require.NoError(t, oaSlots.Set(entry("b", "2")), "set b")
		slot, err := oaSlots.Get("a")
		require.NoError(t, err, "get a")
		require.NoError(t, oaSlots.Delete(slot), "delete a")

		// Execute
		err = oaSlots.Set(entry("d", "4"))

		// Check
		assert.NoError(t, err, "set d")
		slot, err = oaSlots.Get("d")
		assert.NoError(t, err, "get d")
		assert.Equal(t, int64(0), slot.SlotIndex, "d reuses the tombstone")

		info := oaSlots.GetUtilizationInfo()
		assert.Equal(t, int64(2), info.Occupied, "two occupied")
		assert.Zero(t, info.Tombstone, "no tombstones left")
		assert.Equal(t, int64(5), info.Empty, "five empty")
	})

	t.Run("reports a full table", func(t *testing.T) {
		// Prepare
		oaSlots, err := NewOASlots(model.CRTConf{NumberOfBucketsNeeded: 5})
		require.NoError(t, err, "create new OASlots instance")
		for i := 0; i < 5; i++ {
			require.NoErrorf(t, oaSlots.Set(entry(fmt.Sprintf("key-%d", i), "v")), "set entry #%d", i)
		}

		// Execute
		err = oaSlots.Set(entry("one-too-many", "v"))

		// Check
		assert.ErrorIs(t, err, crt.TableFull{}, "table full")
		assert.Equal(t, int64(5), oaSlots.GetUtilizationInfo().Occupied, "nothing added")
	})
}

func TestOASlots_Get(t *testing.T) {
	t.Run("returns NoRecordFound for missing key", func(t *testing.T) {
		// Prepare
		oaSlots, err := NewOASlots(model.CRTConf{NumberOfBucketsNeeded: 53})
		require.NoError(t, err, "create new OASlots instance")
		require.NoError(t, oaSlots.Set(entry("a", "1")), "set a")

		// Execute
		_, err = oaSlots.Get("b")

		// Check
		assert.ErrorIs(t, err, crt.NoRecordFound{}, "get correct error")
	})

	t.Run("terminates on a table without empty slots", func(t *testing.T) {
		// Prepare
		oaSlots, err := NewOASlots(model.CRTConf{NumberOfBucketsNeeded: 5})
		require.NoError(t, err, "create new OASlots instance")
		for i := 0; i < 5; i++ {
			require.NoErrorf(t, oaSlots.Set(entry(fmt.Sprintf("key-%d", i), "v")), "set entry #%d", i)
		}
		for i := 0; i < 5; i++ {
			slot, err := oaSlots.Get(fmt.Sprintf("key-%d", i))
			require.NoErrorf(t, err, "get entry #%d", i)
			require.NoErrorf(t, oaSlots.Delete(slot), "delete entry #%d", i)
		}

		// Execute
		_, err = oaSlots.Get("key-0")

		// Check
		assert.ErrorIs(t, err, crt.NoRecordFound{}, "get correct error")
		assert.Equal(t, int64(5), oaSlots.GetUtilizationInfo().Tombstone, "all tombstones")
	})

	t.Run("probes past tombstones", func(t *testing.T) {
		// Prepare
		oaSlots, err := NewOASlots(model.CRTConf{NumberOfBucketsNeeded: 7, HashAlgorithm: &collidingHashAlgorithm{}})
		require.NoError(t, err, "create new OASlots instance")
		require.NoError(t, oaSlots.Set(entry("a", "1")), "set a")
		require.NoError(t, oaSlots.Set(entry("b", "2")), "set b")
		slot, err := oaSlots.Get("a")
		require.NoError(t, err, "get a")
		require.NoError(t, oaSlots.Delete(slot), "delete a")

		// Execute
		slot, err = oaSlots.Get("b")

		// Check
		assert.NoError(t, err, "b found behind tombstone")
		assert.Equal(t, []byte("2"), slot.Entry.Value, "value of b")
	})
}

func TestOASlots_GetProbeLength(t *testing.T) {
	t.Run("counts visited slots", func(t *testing.T) {
		// Prepare
		oaSlots, err := NewOASlots(model.CRTConf{NumberOfBucketsNeeded: 7, HashAlgorithm: &collidingHashAlgorithm{}})
		require.NoError(t, err, "create new OASlots instance")
		for _, k := range []string{"a", "b", "c"} {
			require.NoErrorf(t, oaSlots.Set(entry(k, k)), "set %s", k)
		}

		// Execute and Check
		for i, k := range []string{"a", "b", "c"} {
			n, err := oaSlots.GetProbeLength(k)
			assert.NoErrorf(t, err, "probe length of %s", k)
			assert.Equalf(t, int64(i+1), n, "probe length of %s", k)
		}
	})
}

func TestOASlots_Delete(t *testing.T) {
	t.Run("marks slot as tombstone", func(t *testing.T) {
		// Prepare
		oaSlots, err := NewOASlots(model.CRTConf{NumberOfBucketsNeeded: 53})
		require.NoError(t, err, "create new OASlots instance")
		require.NoError(t, oaSlots.Set(entry("a", "1")), "set a")
		slot, err := oaSlots.Get("a")
		require.NoError(t, err, "get a")

		// Execute
		err = oaSlots.Delete(slot)

		// Check
		assert.NoError(t, err, "delete a")
		deleted, err := oaSlots.GetSlot(slot.SlotIndex)
		assert.NoError(t, err, "get slot")
		assert.Equal(t, model.SlotTombstone, deleted.State, "tombstone")
		assert.Nil(t, deleted.Entry.Value, "value released")

		info := oaSlots.GetUtilizationInfo()
		assert.Zero(t, info.Occupied, "no occupied")
		assert.Equal(t, int64(1), info.Tombstone, "one tombstone")
	})

	t.Run("refuses to delete a slot not holding the key", func(t *testing.T) {
		// Prepare
		oaSlots, err := NewOASlots(model.CRTConf{NumberOfBucketsNeeded: 53})
		require.NoError(t, err, "create new OASlots instance")

		// Execute
		err = oaSlots.Delete(model.Slot{State: model.SlotOccupied, SlotIndex: 3, Entry: entry("a", "1")})

		// Check
		assert.Error(t, err, "nothing to delete")
	})
}

func TestOASlots_Release(t *testing.T) {
	t.Run("drops all slots", func(t *testing.T) {
		// Prepare
		oaSlots, err := NewOASlots(model.CRTConf{NumberOfBucketsNeeded: 53})
		require.NoError(t, err, "create new OASlots instance")
		require.NoError(t, oaSlots.Set(entry("a", "1")), "set a")

		// Execute
		oaSlots.Release()

		// Check
		assert.Nil(t, oaSlots.slots, "slot array dropped")
		assert.Zero(t, oaSlots.GetStorageParameters().NumberOfBucketsAvailable, "no buckets")
		_, err = oaSlots.Get("a")
		assert.Error(t, err, "nothing to get")
		assert.Zero(t, oaSlots.GetUtilizationInfo().Occupied, "no occupied")
	})
}
