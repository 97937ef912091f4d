package wire

import (
	"bytes"
	"iter"

	"github.com/fastfix-go/fastfix/dict"
)

// Group is one instance of a repeating group: a zero-copy view over a
// contiguous run of the parent message's fields, beginning at the group's
// delimiter tag. It shares the lifetime of the Message it came from.
type Group struct {
	buf     []byte
	offsets []fieldOffset
}

// Len returns the number of fields in this instance.
func (g *Group) Len() int {
	return len(g.offsets)
}

// IsEmpty reports whether this instance contains no fields.
func (g *Group) IsEmpty() bool {
	return len(g.offsets) == 0
}

// Field returns the field at position i within the instance. The boolean is
// false when i is out of range.
func (g *Group) Field(i int) (Field, bool) {
	if i < 0 || i >= len(g.offsets) {
		return Field{}, false
	}
	return g.field(i), true
}

func (g *Group) field(i int) Field {
	f := g.offsets[i]
	return Field{Tag: f.tag, Value: g.buf[f.start:f.end]}
}

// All returns a restartable iterator over the instance's fields in wire
// order.
func (g *Group) All() iter.Seq[Field] {
	return func(yield func(Field) bool) {
		for i := range g.offsets {
			if !yield(g.field(i)) {
				return
			}
		}
	}
}

// Find returns the value of the first field carrying tag within this
// instance. Groups are small, so this is a linear scan; no index is built.
func (g *Group) Find(tag uint32) ([]byte, bool) {
	for i, f := range g.offsets {
		if f.tag == tag {
			return g.field(i).Value, true
		}
	}
	return nil, false
}

// Groups returns an iterator over a repeating group nested inside this
// instance. It mirrors Message.Groups exactly; because the instance's field
// run is already bounded, the nested iterator cannot reach into sibling
// parent instances.
func (g *Group) Groups(spec *dict.GroupSpec) GroupIter {
	return newGroupIter(g.buf, g.offsets, spec)
}

// GroupIter walks the instances of one repeating group. It is a pull
// cursor: each Next call consumes one instance, and a spent iterator cannot
// be restarted. Obtain a fresh one from Message.Groups or Group.Groups to
// walk the instances again.
type GroupIter struct {
	buf       []byte
	remaining []fieldOffset
	delimiter uint32
	count     int
	emitted   int
}

// Groups returns an iterator over the instances of the repeating group
// described by spec.
//
// The iterator locates the count tag, parses the declared instance count,
// and segments the fields that follow: each instance starts at an
// occurrence of the delimiter tag and runs until the delimiter reappears or
// the fields run out. Emission stops at the declared count even when more
// delimiter occurrences follow, and stops early when the fields are
// exhausted before the declared count; a count that fails to parse reads as
// zero. An absent count tag yields an empty iterator.
func (m *Message) Groups(spec *dict.GroupSpec) GroupIter {
	return newGroupIter(m.buf, m.offsets, spec)
}

func newGroupIter(buf []byte, offsets []fieldOffset, spec *dict.GroupSpec) GroupIter {
	it := GroupIter{buf: buf, delimiter: spec.DelimiterTag}
	for i, f := range offsets {
		if f.tag == spec.CountTag {
			it.count = parseCount(buf[f.start:f.end])
			it.remaining = offsets[i+1:]
			break
		}
	}
	return it
}

// Next returns the next group instance. The boolean is false once the
// declared count has been emitted or the fields are exhausted.
func (it *GroupIter) Next() (Group, bool) {
	if it.emitted >= it.count || len(it.remaining) == 0 {
		return Group{}, false
	}

	// The instance ends at the next delimiter occurrence after its first
	// field, or at the end of the region.
	end := len(it.remaining)
	for i := 1; i < len(it.remaining); i++ {
		if it.remaining[i].tag == it.delimiter {
			end = i
			break
		}
	}

	g := Group{buf: it.buf, offsets: it.remaining[:end]}
	it.remaining = it.remaining[end:]
	it.emitted++
	return g, true
}

// Remaining returns the number of instances Next has yet to emit, assuming
// the wire data holds as many as declared.
func (it *GroupIter) Remaining() int {
	left := it.count - it.emitted
	if left < 0 {
		return 0
	}
	return left
}

// AllGroups returns an iterator over every repeating group present in the
// message, as (spec, instances) pairs.
//
// The spec table is chosen by the BeginString (tag 8) value: FIX 4.4
// messages are matched against the full FIX 4.4 table, which is a superset
// of FIX 4.2; everything else uses the FIX 4.2 table. Specs whose count tag
// is absent or zero are skipped. Pairs follow table order, not the order
// the groups appear on the wire.
func (m *Message) AllGroups() iter.Seq2[*dict.GroupSpec, GroupIter] {
	specs := dict.FIX42Groups
	if v, ok := m.Find(dict.BeginString); ok && bytes.Equal(v, []byte(dict.VersionFIX44)) {
		specs = dict.FIX44Groups
	}

	return func(yield func(*dict.GroupSpec, GroupIter) bool) {
		for _, spec := range specs {
			v, ok := m.Find(spec.CountTag)
			if !ok || parseCount(v) == 0 {
				continue
			}
			if !yield(spec, m.Groups(spec)) {
				return
			}
		}
	}
}

// parseCount parses a decimal ASCII instance count. Any non-digit byte,
// including an empty value, reads as zero; group counts never justify
// failing the whole message.
func parseCount(b []byte) int {
	n := 0
	for _, c := range b {
		if c < '0' || c > '9' {
			return 0
		}
		n = n*10 + int(c-'0')
	}
	return n
}
