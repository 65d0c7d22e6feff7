package title

// MaxSeedLen is the maximum number of digits the seed box accepts.
const MaxSeedLen = 8

// SeedBuffer is the bounded digit string typed into the seed box.
// Every byte is '0'-'9' and the length never exceeds MaxSeedLen.
type SeedBuffer struct {
	digits []byte
}

// AppendDigit adds d (0-9) to the end of the buffer. A full buffer is left
// unchanged.
func (b *SeedBuffer) AppendDigit(d int) {
	if d < 0 || d > 9 {
		panic("title: AppendDigit called with non-digit value")
	}
	if len(b.digits) >= MaxSeedLen {
		return
	}
	b.digits = append(b.digits, byte('0'+d))
}

// DeleteLast removes the last digit, if any.
func (b *SeedBuffer) DeleteLast() {
	if len(b.digits) == 0 {
		return
	}
	b.digits = b.digits[:len(b.digits)-1]
}

func (b *SeedBuffer) IsEmpty() bool { return len(b.digits) == 0 }
func (b *SeedBuffer) IsFull() bool  { return len(b.digits) >= MaxSeedLen }
func (b *SeedBuffer) Len() int      { return len(b.digits) }

// String returns the digits as typed, leading zeros included.
func (b *SeedBuffer) String() string { return string(b.digits) }
