package asynclog

// recordOverhead approximates the per-record bookkeeping cost counted into a
// buffer's size estimate on top of the payload length.
const recordOverhead = 48

// recordBuffer is one of the two buffers owned by an AsyncLogger. At any
// instant exactly one is active (the append target) and one is flushing (the
// drain source); the writer swaps the roles under the coordinator's lock.
//
// recordBuffer holds no lock of its own. The coordinator serializes all
// access, which is what keeps append ordering intact within a generation.
type recordBuffer struct {
	records   []Record
	sizeBytes int
	mustFlush bool
}

func newRecordBuffer() *recordBuffer {
	return &recordBuffer{}
}

// append adds a record to the end of the buffer, grows the size estimate, and
// ORs the sticky flush flag.
func (b *recordBuffer) append(r Record, forceFlush bool) {
	b.records = append(b.records, r)
	b.sizeBytes += r.ApproximateSize()
	b.mustFlush = b.mustFlush || forceFlush
}

// clear resets the buffer to empty with a zero size estimate. Payload
// references are released so drained generations can be collected.
func (b *recordBuffer) clear() {
	for i := range b.records {
		b.records[i] = Record{}
	}

	b.records = b.records[:0]
	b.sizeBytes = 0
	b.mustFlush = false
}

// markFlush forces the sticky flush flag without appending a record. Flush
// uses it as a zero-length forced-flush write.
func (b *recordBuffer) markFlush() {
	b.mustFlush = true
}

// needsFlushOrWrite reports whether the writer has work: buffered records or
// a pending forced flush.
func (b *recordBuffer) needsFlushOrWrite() bool {
	return b.mustFlush || len(b.records) > 0
}

func (b *recordBuffer) approximateSize() int {
	return b.sizeBytes
}
