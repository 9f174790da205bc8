package tokenizer

import "github.com/renato-zannon/html5ever/internal/constants"

// SmallCharSet re-exports the tokenizer's ASCII bitmask type for scan
// delimiters.
type SmallCharSet = constants.SmallCharSet

// NewSmallCharSet builds a SmallCharSet from individual ASCII bytes.
func NewSmallCharSet(chars ...byte) SmallCharSet { return constants.NewSmallCharSet(chars...) }

// chunk is one pushed string, pre-decoded to runes so pop_except_from and
// pop_front never need to reason about UTF-8 byte boundaries.
type chunk struct {
	runes []rune
	pos   int
}

func (c *chunk) remaining() int { return len(c.runes) - c.pos }

// BufferQueue is an ordered queue of pending input chunks with a live
// cursor into the front chunk. It is the tokenizer's only view of "not yet
// consumed" input, and is what lets Feed accept input in arbitrarily small
// pieces: chunks queue up, and decoding resumes exactly where it left off.
type BufferQueue struct {
	chunks []chunk
}

// PushBack appends buf to the end of the queue. startOffset lets the
// caller skip a byte range already consumed elsewhere (e.g. a BOM handled
// by an earlier layer); it is a rune count here since chunks are
// pre-decoded.
func (q *BufferQueue) PushBack(buf string, startOffset int) {
	runes := []rune(buf)
	if startOffset > 0 {
		if startOffset > len(runes) {
			startOffset = len(runes)
		}
		runes = runes[startOffset:]
	}
	if len(runes) == 0 {
		return
	}
	q.chunks = append(q.chunks, chunk{runes: runes})
}

// PushFront prepends buf as the new front chunk; used by Unconsume to put
// back characters a lookahead decided not to take.
func (q *BufferQueue) PushFront(buf []rune) {
	if len(buf) == 0 {
		return
	}
	q.chunks = append([]chunk{{runes: buf}}, q.chunks...)
}

func (q *BufferQueue) dropEmptyFront() {
	for len(q.chunks) > 0 && q.chunks[0].remaining() == 0 {
		q.chunks = q.chunks[1:]
	}
}

// Peek returns the next character without consuming it.
func (q *BufferQueue) Peek() (rune, bool) {
	q.dropEmptyFront()
	if len(q.chunks) == 0 {
		return 0, false
	}
	c := &q.chunks[0]
	return c.runes[c.pos], true
}

// Next pops and returns the next character.
func (q *BufferQueue) Next() (rune, bool) {
	q.dropEmptyFront()
	if len(q.chunks) == 0 {
		return 0, false
	}
	c := &q.chunks[0]
	r := c.runes[c.pos]
	c.pos++
	q.dropEmptyFront()
	return r, true
}

// SetResult is the outcome of PopExceptFrom.
type SetResult struct {
	// FromSet is true when Run holds exactly one character, which is a
	// member of the set passed to PopExceptFrom.
	FromSet bool
	Run     string
}

// PopExceptFrom consumes either a single set-member character (FromSet), or
// a maximal non-empty run of non-member characters. Returns ok=false only
// when the queue is empty.
func (q *BufferQueue) PopExceptFrom(set SmallCharSet) (SetResult, bool) {
	q.dropEmptyFront()
	if len(q.chunks) == 0 {
		return SetResult{}, false
	}
	c := &q.chunks[0]
	first := c.runes[c.pos]
	if set.Contains(first) {
		c.pos++
		q.dropEmptyFront()
		return SetResult{FromSet: true, Run: string(first)}, true
	}

	start := c.pos
	for c.pos < len(c.runes) && !set.Contains(c.runes[c.pos]) {
		c.pos++
	}
	run := string(c.runes[start:c.pos])
	q.dropEmptyFront()
	return SetResult{FromSet: false, Run: run}, true
}

// PopFront consumes exactly n characters if that many are currently
// buffered; otherwise it consumes nothing and returns ok=false.
func (q *BufferQueue) PopFront(n int) (string, bool) {
	if !q.Has(n) {
		return "", false
	}
	out := make([]rune, 0, n)
	for n > 0 {
		q.dropEmptyFront()
		c := &q.chunks[0]
		take := c.remaining()
		if take > n {
			take = n
		}
		out = append(out, c.runes[c.pos:c.pos+take]...)
		c.pos += take
		n -= take
	}
	q.dropEmptyFront()
	return string(out), true
}

// Has reports whether at least n characters are currently buffered.
func (q *BufferQueue) Has(n int) bool {
	total := 0
	for i := range q.chunks {
		total += q.chunks[i].remaining()
		if total >= n {
			return true
		}
	}
	return n <= 0
}

// Empty reports whether the queue currently holds no characters.
func (q *BufferQueue) Empty() bool {
	q.dropEmptyFront()
	return len(q.chunks) == 0
}
