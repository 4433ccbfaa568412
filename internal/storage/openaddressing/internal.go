package openaddressing

import (
	"github.com/gostonefire/hashtable/crt"
	"github.com/gostonefire/hashtable/internal/model"
)

// probingForGet - Is the Probing Collision Resolution Technique algorithm for getting an entry.
// Tombstones are passed over, an empty slot ends the search.
func (O *OASlots) probingForGet(key string) (slot model.Slot, n int64, err error) {
	var probe int64

	hf1Value := O.hashAlgorithm.HashFunc1(key)
	hf2Value := O.hashAlgorithm.HashFunc2(key)

	iMax := O.numberOfBucketsAvailable * 10 // To avoid infinite loop if hash algorithm is behaving bad

	for i := int64(0); i < iMax; i++ {
		probe = O.hashAlgorithm.ProbeIteration(hf1Value, hf2Value, i)
		if probe < O.numberOfBucketsAvailable && probe >= 0 {
			n++

			switch O.slots[probe].State {
			case model.SlotEmpty:
				slot = model.Slot{}
				err = crt.NoRecordFound{}
				return

			case model.SlotOccupied:
				if O.slots[probe].Entry.Key == key {
					slot = O.slots[probe]
					return
				}
			}

			// Relies on the underlying probing function to distinctively go through the entire set of buckets
			if n >= O.numberOfBucketsAvailable {
				slot = model.Slot{}
				err = crt.NoRecordFound{}
				return
			}
		}
	}

	// When we have traversed long enough we just have to give up
	// This is just a failsafe, should (with emphasis on should) never occur
	slot = model.Slot{}
	err = crt.ProbingAlgorithm{}
	return
}

// probingForSet - Is the Probing Collision Resolution Technique algorithm for getting a slot for set.
// The first tombstone on the way is remembered but probing goes on until a matching key or an empty slot
// is found, since the key may live further down the sequence.
func (O *OASlots) probingForSet(key string) (slot model.Slot, err error) {
	var tombstone model.Slot
	var hasCached bool
	var probe, n int64

	hf1Value := O.hashAlgorithm.HashFunc1(key)
	hf2Value := O.hashAlgorithm.HashFunc2(key)

	iMax := O.numberOfBucketsAvailable * 10 // To avoid infinite loop if hash algorithm is behaving bad

	for i := int64(0); i < iMax; i++ {
		probe = O.hashAlgorithm.ProbeIteration(hf1Value, hf2Value, i)
		if probe < O.numberOfBucketsAvailable && probe >= 0 {
			switch O.slots[probe].State {
			case model.SlotEmpty:
				if hasCached {
					slot = tombstone
				} else {
					slot = model.Slot{State: model.SlotEmpty, SlotIndex: probe}
				}
				return

			case model.SlotOccupied:
				if O.slots[probe].Entry.Key == key {
					slot = O.slots[probe]
					slot.SlotIndex = probe
					return
				}

			case model.SlotTombstone:
				if !hasCached {
					tombstone = model.Slot{State: model.SlotTombstone, SlotIndex: probe}
					hasCached = true
				}
			}

			// Relies on the underlying probing function to distinctively go through the entire set of buckets
			n++
			if n >= O.numberOfBucketsAvailable {
				if hasCached {
					slot = tombstone
					return
				}
				err = crt.TableFull{}
				return
			}
		}
	}

	// When we have traversed long enough we just have to give up
	// This is just a failsafe, should (with emphasis on should) never occur
	if hasCached {
		slot = tombstone
		return
	}
	err = crt.ProbingAlgorithm{}
	return
}

// updateUtilizationInfo - Updates the number of slots in each state given a transition
func (O *OASlots) updateUtilizationInfo(fromState, toState uint8) {
	if fromState == toState {
		return
	}

	switch fromState {
	case model.SlotEmpty:
		O.nEmpty--
	case model.SlotOccupied:
		O.nOccupied--
	case model.SlotTombstone:
		O.nTombstone--
	}

	switch toState {
	case model.SlotEmpty:
		O.nEmpty++
	case model.SlotOccupied:
		O.nOccupied++
	case model.SlotTombstone:
		O.nTombstone++
	}
}
