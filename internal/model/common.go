package model

import hashfunc "github.com/gostonefire/hashtable/hashfunc"

// SlotEmpty - State indicating a slot that has never been in use
const SlotEmpty uint8 = 0

// SlotOccupied - State indicating a slot that is in use
const SlotOccupied uint8 = 1

// SlotTombstone - State indicating a slot that has been in use but was deleted
const SlotTombstone uint8 = 2

// Entry - Represents one key/value pair owned by the table
type Entry struct {
	Key   string
	Value []byte
	Size  int64
}

// Slot - Represents one slot in the slot array, Entry is only meaningful when State is SlotOccupied
type Slot struct {
	State     uint8
	SlotIndex int64
	Entry     Entry
}

// StorageParameters - Represents parameters specific for the slot array implementation
type StorageParameters struct {
	NumberOfBucketsNeeded    int64
	NumberOfBucketsAvailable int64
	InternalAlgorithm        bool
}

// UtilizationInfo - Number of slots in each state
type UtilizationInfo struct {
	Empty     int64
	Occupied  int64
	Tombstone int64
}

// CRTConf - Is a struct to be passed in the call to NewOASlots and contains configuration that affects
// slot array creation and probing.
//   - NumberOfBucketsNeeded is the number of buckets to calculate storage for
//   - HashAlgorithm is the hash function(s) to use, nil selects the internal double hash algorithm
type CRTConf struct {
	NumberOfBucketsNeeded int64
	HashAlgorithm         hashfunc.HashAlgorithm
}
