package wire

import (
	"iter"
	"slices"
	"sort"

	"github.com/fastfix-go/fastfix/dict"
)

// tagPos pairs a tag with its original position so that lookups on a
// duplicated tag (legal in FIX, e.g. inside repeating groups) resolve to the
// first occurrence in wire order.
type tagPos struct {
	tag uint32
	pos uint32
}

// tagIndex is a lazily built sorted index over a message's fields. It is
// owned by the Decoder and reused across messages; building happens at most
// once per decoded message, on the first Find call.
type tagIndex struct {
	entries []tagPos
	built   bool
}

func (x *tagIndex) reset() {
	x.entries = x.entries[:0]
	x.built = false
}

func (x *tagIndex) build(offsets []fieldOffset) {
	for i, f := range offsets {
		x.entries = append(x.entries, tagPos{tag: f.tag, pos: uint32(i)})
	}
	slices.SortFunc(x.entries, func(a, b tagPos) int {
		if a.tag != b.tag {
			if a.tag < b.tag {
				return -1
			}
			return 1
		}
		if a.pos < b.pos {
			return -1
		}
		if a.pos > b.pos {
			return 1
		}
		return 0
	})
	x.built = true
}

// lookup returns the position of the first occurrence of tag, or -1.
func (x *tagIndex) lookup(tag uint32) int {
	i := sort.Search(len(x.entries), func(i int) bool {
		return x.entries[i].tag >= tag
	})
	if i < len(x.entries) && x.entries[i].tag == tag {
		return int(x.entries[i].pos)
	}
	return -1
}

// Message is a decoded view over a raw FIX buffer. It stores no field
// bytes of its own: every accessor resolves offsets against the original
// buffer, so field values alias that buffer directly.
//
// A Message produced by Decoder.Decode is valid until the next Decode call
// on the same Decoder.
type Message struct {
	buf     []byte
	offsets []fieldOffset
	idx     *tagIndex
}

// Len returns the number of decoded fields.
func (m *Message) Len() int {
	return len(m.offsets)
}

// IsEmpty reports whether the message has no fields.
func (m *Message) IsEmpty() bool {
	return len(m.offsets) == 0
}

// Field returns the field at position i in wire order. The boolean is false
// when i is out of range.
func (m *Message) Field(i int) (Field, bool) {
	if i < 0 || i >= len(m.offsets) {
		return Field{}, false
	}
	return m.field(i), true
}

func (m *Message) field(i int) Field {
	f := m.offsets[i]
	return Field{Tag: f.tag, Value: m.buf[f.start:f.end]}
}

// All returns an iterator over every field in wire order. Unlike Groups, the
// returned sequence is restartable: each range statement walks the message
// from the beginning.
func (m *Message) All() iter.Seq[Field] {
	return func(yield func(Field) bool) {
		for i := range m.offsets {
			if !yield(m.field(i)) {
				return
			}
		}
	}
}

// Find returns the value of the first field carrying tag. The boolean is
// false when the tag is absent.
//
// The first call on a message builds a sorted index over the fields;
// subsequent calls are binary searches. The index storage lives in the
// owning Decoder and is reused across messages, so the build allocates only
// when a message has more fields than any before it.
func (m *Message) Find(tag uint32) ([]byte, bool) {
	if len(m.offsets) == 0 {
		return nil, false
	}
	if m.idx == nil {
		// Zero-value Message (not produced by a Decoder): fall back to a
		// linear scan.
		for i, f := range m.offsets {
			if f.tag == tag {
				return m.field(i).Value, true
			}
		}
		return nil, false
	}
	if !m.idx.built {
		m.idx.build(m.offsets)
	}
	pos := m.idx.lookup(tag)
	if pos < 0 {
		return nil, false
	}
	return m.field(pos).Value, true
}

// FixVersion returns the BeginString (tag 8) value, typically "FIX.4.2" or
// "FIX.4.4". The boolean is false when tag 8 is absent.
func (m *Message) FixVersion() ([]byte, bool) {
	return m.Find(dict.BeginString)
}

// FindField is Find returning the whole field.
func (m *Message) FindField(tag uint32) (Field, bool) {
	v, ok := m.Find(tag)
	if !ok {
		return Field{}, false
	}
	return Field{Tag: tag, Value: v}, true
}
