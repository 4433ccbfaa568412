package crt

// NoRecordFound - Custom error to inform that no record was found
type NoRecordFound struct {
	msg string
}

// Error - Used to notify that no record was found
func (E NoRecordFound) Error() string {
	if E.msg == "" {
		return "no record found"
	}
	return E.msg
}

// TableFull - Custom error to inform that the table has no free slot left and is not allowed to grow
type TableFull struct {
	msg string
}

// Error - Used to notify that the table is full
func (E TableFull) Error() string {
	if E.msg == "" {
		return "table full"
	}
	return E.msg
}

// ProbingAlgorithm - Custom error to inform that something went wrong concerning a probing algorithm
type ProbingAlgorithm struct {
	msg string
}

// Error - Used to notify that the probing algorithm was exhausted
func (P ProbingAlgorithm) Error() string {
	if P.msg == "" {
		return "probing algorithm exhausted"
	}
	return P.msg
}

// InvalidSize - Custom error to inform that a value's stated size doesn't match its actual length
type InvalidSize struct {
	msg string
}

// Error - Used to notify that a value size is wrong
func (I InvalidSize) Error() string {
	if I.msg == "" {
		return "value size doesn't match value length"
	}
	return I.msg
}

// TableDestroyed - Custom error to inform that the table has been destroyed and can't take more records
type TableDestroyed struct {
	msg string
}

// Error - Used to notify that the table is destroyed
func (T TableDestroyed) Error() string {
	if T.msg == "" {
		return "table destroyed"
	}
	return T.msg
}
