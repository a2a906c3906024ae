// Package codec implements the reversible order-preserving pair-merge
// compressor for document text.
//
// Compression maps the text to its code-point sequence, then repeatedly
// replaces the most frequent adjacent pair with a fresh synthetic id
// (starting at 256), recording each merge in creation order. The frame is
// fully self-describing: merge table first, remaining token ids after,
// all little-endian with 2-byte ids. The frame bytes travel as a
// single-byte-per-character (Latin-1) string.
//
// The 2-byte id width is a format constraint. Ids that do not fit (code
// points beyond the BMP) make the frame unrepresentable and Compress
// fails loudly instead of writing a corrupt frame.
package codec

import (
	"errors"
	"fmt"

	"fortio.org/safecast"
)

const (
	// maxRounds bounds the merge search; it is the only bound on
	// unbounded work in the system.
	maxRounds = 100
	// firstSyntheticID is the first merge id; real code points stay below.
	firstSyntheticID = 256
	// maxFrameID is the largest id the 2-byte frame format can carry.
	maxFrameID = 0xFFFF
)

var (
	// ErrTruncated reports a frame too short for its own header or body.
	ErrTruncated = errors.New("codec: compressed frame is truncated")
	// ErrBadFrame reports a frame that is not a single-byte string.
	ErrBadFrame = errors.New("codec: compressed frame is malformed")
	// ErrIDOverflow reports an id that does not fit the 2-byte format.
	ErrIDOverflow = errors.New("codec: id does not fit the 2-byte frame format")
)

// pair is a genuine pair key with structural equality. The original
// closed-form (left<<16)|right hash silently corrupted ids >= 65536; a
// struct key has no such ceiling, the frame width check happens at
// serialization instead.
type pair struct {
	left  uint32
	right uint32
}

type merge struct {
	pair
	id uint32
}

// Options controls compression; the zero value uses the defaults.
type Options struct {
	// MaxRounds caps merge rounds; 0 means the default of 100.
	MaxRounds int
}

func (o Options) withDefaults() Options {
	if o.MaxRounds == 0 {
		o.MaxRounds = maxRounds
	}
	return o
}

// Compress encodes text into the compact frame string. Empty input
// compresses to the empty string.
func Compress(text string, opts Options) (string, error) {
	if text == "" {
		return "", nil
	}
	opts = opts.withDefaults()

	seq := make([]uint32, 0, len(text))
	for _, r := range text {
		seq = append(seq, uint32(r))
	}

	var merges []merge
	nextID := uint32(firstSyntheticID)

	for round := 0; round < opts.MaxRounds; round++ {
		best, count := mostFrequentPair(seq)
		if count < 2 {
			break
		}

		merges = append(merges, merge{pair: best, id: nextID})
		seq = rewritePairs(seq, best, nextID)
		nextID++
	}

	frame, err := serialize(merges, seq)
	if err != nil {
		return "", err
	}

	// Каждый байт кадра становится символом U+0000..U+00FF.
	return FrameFromBytes(frame), nil
}

// mostFrequentPair counts all adjacent ordered pairs and returns the most
// frequent one. Ties break deterministically: the pair that first appears
// in the left-to-right scan wins.
func mostFrequentPair(seq []uint32) (pair, int) {
	counts := make(map[pair]int, len(seq))
	order := make([]pair, 0, len(seq))

	for i := 0; i+1 < len(seq); i++ {
		p := pair{left: seq[i], right: seq[i+1]}
		if counts[p] == 0 {
			order = append(order, p)
		}
		counts[p]++
	}

	var best pair
	bestCount := 0
	for _, p := range order {
		if counts[p] > bestCount {
			bestCount = counts[p]
			best = p
		}
	}
	return best, bestCount
}

// rewritePairs replaces every non-overlapping occurrence of p with id,
// left to right, first match wins at each position.
func rewritePairs(seq []uint32, p pair, id uint32) []uint32 {
	out := make([]uint32, 0, len(seq))
	i := 0
	for i < len(seq) {
		if i+1 < len(seq) && seq[i] == p.left && seq[i+1] == p.right {
			out = append(out, id)
			i += 2
			continue
		}
		out = append(out, seq[i])
		i++
	}
	return out
}

func serialize(merges []merge, seq []uint32) ([]byte, error) {
	mergeCount, err := safecast.Conv[uint32](len(merges))
	if err != nil {
		return nil, fmt.Errorf("codec: merge count overflow: %w", err)
	}
	tokenCount, err := safecast.Conv[uint32](len(seq))
	if err != nil {
		return nil, fmt.Errorf("codec: token count overflow: %w", err)
	}

	out := make([]byte, 0, 4+6*len(merges)+4+2*len(seq))
	out = packU32(out, mergeCount)
	for _, m := range merges {
		for _, id := range [3]uint32{m.left, m.right, m.id} {
			if id > maxFrameID {
				return nil, fmt.Errorf("%w: id %d", ErrIDOverflow, id)
			}
			out = packU16(out, uint16(id))
		}
	}
	out = packU32(out, tokenCount)
	for _, id := range seq {
		if id > maxFrameID {
			return nil, fmt.Errorf("%w: id %d", ErrIDOverflow, id)
		}
		out = packU16(out, uint16(id))
	}
	return out, nil
}

// Decompress reverses the framing exactly: merge table in creation order,
// token ids, then expansion in reverse creation order. A frame shorter
// than any of its own counts fails with ErrTruncated; nothing here ever
// reads past the buffer.
func Decompress(compressed string) (string, error) {
	// Символы за пределами U+00FF не могут быть кадром.
	data, err := FrameToBytes(compressed)
	if err != nil {
		return "", err
	}

	offset := 0
	need := func(n int) error {
		if len(data) < offset+n {
			return ErrTruncated
		}
		return nil
	}

	if err := need(4); err != nil {
		return "", fmt.Errorf("%w: merge count", err)
	}
	mergeCount := int(unpackU32(data, offset))
	offset += 4

	// Счётчики в кадре — данные с диска: секция обязана помещаться в
	// остаток кадра ДО аллокации, иначе враждебный заголовок заставит нас
	// запросить гигабайты.
	if mergeCount > (len(data)-offset)/6 {
		return "", fmt.Errorf("%w: merge table", ErrTruncated)
	}

	merges := make([]merge, 0, mergeCount)
	for i := 0; i < mergeCount; i++ {
		left := uint32(unpackU16(data, offset))
		right := uint32(unpackU16(data, offset+2))
		id := uint32(unpackU16(data, offset+4))
		offset += 6
		merges = append(merges, merge{pair: pair{left: left, right: right}, id: id})
	}

	if err := need(4); err != nil {
		return "", fmt.Errorf("%w: token count", err)
	}
	tokenCount := int(unpackU32(data, offset))
	offset += 4

	if tokenCount > (len(data)-offset)/2 {
		return "", fmt.Errorf("%w: token body", ErrTruncated)
	}

	seq := make([]uint32, 0, tokenCount)
	for i := 0; i < tokenCount; i++ {
		seq = append(seq, uint32(unpackU16(data, offset)))
		offset += 2
	}

	// Разворачиваем merges в обратном порядке создания.
	for i := len(merges) - 1; i >= 0; i-- {
		m := merges[i]
		expanded := make([]uint32, 0, len(seq)*2)
		for _, id := range seq {
			if id == m.id {
				expanded = append(expanded, m.left, m.right)
			} else {
				expanded = append(expanded, id)
			}
		}
		seq = expanded
	}

	runes := make([]rune, len(seq))
	for i, id := range seq {
		runes[i] = rune(id)
	}
	return string(runes), nil
}
