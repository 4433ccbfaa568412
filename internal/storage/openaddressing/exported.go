package openaddressing

import (
	"github.com/cockroachdb/errors"
	"github.com/gostonefire/hashtable/hashfunc"
	"github.com/gostonefire/hashtable/internal/hash"
	"github.com/gostonefire/hashtable/internal/model"
	"github.com/gostonefire/hashtable/internal/utils"
)

// OASlots - Represents an in memory slot array for the Open Addressing Collision Resolution Technique using
// double hashing. Each bucket holds at most one entry. In case of a collision, it probes through the slot array
// using the hash algorithm, looking for an empty slot, and assigns the free slot to the entry.
// Deleted entries leave a tombstone behind so that probe sequences passing through the slot stay intact.
type OASlots struct {
	slots                    []model.Slot
	numberOfBucketsNeeded    int64
	numberOfBucketsAvailable int64
	hashAlgorithm            hashfunc.HashAlgorithm
	internalAlgorithm        bool
	nEmpty                   int64
	nOccupied                int64
	nTombstone               int64
}

// NewOASlots - Returns a pointer to a new instance of the Open Addressing slot array, all slots empty.
//   - crtConf is a model.CRTConf struct providing configuration parameters affecting slot array creation and probing
//
// It returns:
//   - oaSlots which is a pointer to the created instance
//   - err which is a standard Go type of error
func NewOASlots(crtConf model.CRTConf) (oaSlots *OASlots, err error) {
	if crtConf.NumberOfBucketsNeeded <= 0 {
		err = errors.Newf("number of buckets needed must be a positive value higher than 0 (zero), got %d", crtConf.NumberOfBucketsNeeded)
		return
	}

	// If no HashAlgorithm was given then use the default internal
	var internalAlg bool
	if crtConf.HashAlgorithm == nil {
		crtConf.HashAlgorithm = hash.NewDoubleHashAlgorithm(crtConf.NumberOfBucketsNeeded)
		internalAlg = true
	} else {
		crtConf.HashAlgorithm.SetTableSize(crtConf.NumberOfBucketsNeeded)
	}

	numberOfBuckets := crtConf.HashAlgorithm.GetTableSize()
	if numberOfBuckets < crtConf.NumberOfBucketsNeeded || !utils.IsPrime(numberOfBuckets) {
		err = errors.Newf("hash algorithm table size %d is not a prime at least %d", numberOfBuckets, crtConf.NumberOfBucketsNeeded)
		return
	}

	oaSlots = &OASlots{
		slots:                    make([]model.Slot, numberOfBuckets),
		numberOfBucketsNeeded:    crtConf.NumberOfBucketsNeeded,
		numberOfBucketsAvailable: numberOfBuckets,
		hashAlgorithm:            crtConf.HashAlgorithm,
		internalAlgorithm:        internalAlg,
		nEmpty:                   numberOfBuckets,
	}

	return
}

// Release - Drops all entries and the slot array itself, afterwards the instance addresses zero buckets
func (O *OASlots) Release() {
	for i := range O.slots {
		O.slots[i] = model.Slot{}
	}
	O.slots = nil
	O.numberOfBucketsAvailable = 0
	O.nEmpty = 0
	O.nOccupied = 0
	O.nTombstone = 0
}

// GetStorageParameters - Returns a struct with storage parameters from OASlots
func (O *OASlots) GetStorageParameters() (params model.StorageParameters) {
	params = model.StorageParameters{
		NumberOfBucketsNeeded:    O.numberOfBucketsNeeded,
		NumberOfBucketsAvailable: O.numberOfBucketsAvailable,
		InternalAlgorithm:        O.internalAlgorithm,
	}

	return
}

// GetUtilizationInfo - Returns the number of slots in each state
func (O *OASlots) GetUtilizationInfo() (info model.UtilizationInfo) {
	info = model.UtilizationInfo{
		Empty:     O.nEmpty,
		Occupied:  O.nOccupied,
		Tombstone: O.nTombstone,
	}

	return
}

// GetSlot - Returns the slot at the given bucket number
//   - slotIndex is the bucket number, between 0 and number of buckets - 1
func (O *OASlots) GetSlot(slotIndex int64) (slot model.Slot, err error) {
	if slotIndex < 0 || slotIndex >= int64(len(O.slots)) {
		err = errors.Newf("slot index %d outside slot array of length %d", slotIndex, len(O.slots))
		return
	}

	slot = O.slots[slotIndex]

	return
}

// Get - Gets the slot holding the given key.
// The model.Slot that is returned contains also the slot index, this is to speed up higher level functions
// such as Pop where the same slot is also supposed to be deleted in a call to Delete.
//   - key is the identifier of an entry
//
// It returns:
//   - slot is the matching slot if found, if not found an error of type crt.NoRecordFound is also returned.
//   - err is either of type crt.NoRecordFound or crt.ProbingAlgorithm
func (O *OASlots) Get(key string) (slot model.Slot, err error) {
	slot, _, err = O.probingForGet(key)

	return
}

// GetProbeLength - Returns the number of slots visited to find the given key, the home bucket counting as one.
func (O *OASlots) GetProbeLength(key string) (n int64, err error) {
	_, n, err = O.probingForGet(key)

	return
}

// Set - Updates an existing entry with the same key or adds it to the first reusable slot.
//   - entry is the entry to set, it is stored as given so any copying has to be done by the caller
//
// It returns:
//   - err is either of type crt.TableFull or crt.ProbingAlgorithm if no slot could be found
func (O *OASlots) Set(entry model.Entry) (err error) {
	selectedSlot, err := O.probingForSet(entry.Key)
	if err != nil {
		return
	}

	fromState := selectedSlot.State
	selectedSlot.State = model.SlotOccupied
	selectedSlot.Entry = entry

	O.slots[selectedSlot.SlotIndex] = selectedSlot
	O.updateUtilizationInfo(fromState, selectedSlot.State)

	return
}

// Delete - Deletes an entry by setting state to SlotTombstone
//   - slot is the model.Slot to mark as deleted, and it must contain SlotIndex
//
// It returns:
//   - err is a standard error, if the slot doesn't hold an entry
func (O *OASlots) Delete(slot model.Slot) (err error) {
	current, err := O.GetSlot(slot.SlotIndex)
	if err != nil {
		return
	}
	if current.State != model.SlotOccupied || current.Entry.Key != slot.Entry.Key {
		err = errors.Newf("slot %d doesn't hold key %q", slot.SlotIndex, slot.Entry.Key)
		return
	}

	O.slots[slot.SlotIndex] = model.Slot{State: model.SlotTombstone, SlotIndex: slot.SlotIndex}
	O.updateUtilizationInfo(model.SlotOccupied, model.SlotTombstone)

	return
}
