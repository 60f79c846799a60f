package address

import (
	"errors"
	"sort"
	"strings"
)

// ErrEmptyPart indicates that a part passed to New contains the separator
// byte, which would make part boundaries ambiguous.
var ErrEmptyPart = errors.New("address: part contains separator byte")

// sep is the byte used to join parts into the opaque wire form. It is a
// control character unlikely to appear in caller-supplied identifiers, and
// New rejects parts that contain it so joining stays unambiguous.
const sep = "\x00"

// Address is an opaque, totally ordered, prefix-matchable identifier.
//
// Two Addresses are equal iff Raw() is equal. Ordering is lexicographic
// over the joined representation, which — because parts never contain sep —
// coincides with lexicographic ordering over the part sequence.
type Address struct {
	raw string
}

// New builds an Address from an ordered sequence of parts. Returns
// ErrEmptyPart if any part contains the internal separator byte.
func New(parts ...string) (Address, error) {
	for _, p := range parts {
		if strings.Contains(p, sep) {
			return Address{}, ErrEmptyPart
		}
	}
	return Address{raw: strings.Join(parts, sep)}, nil
}

// MustNew is New but panics on error. Intended for tests and static
// addresses known at compile time to be well-formed.
func MustNew(parts ...string) Address {
	a, err := New(parts...)
	if err != nil {
		panic(err)
	}
	return a
}

// FromRaw reconstructs an Address from a string previously produced by
// Raw. It performs no validation, since a value that already round-tripped
// through Raw cannot contain an unescaped separator.
func FromRaw(raw string) Address {
	return Address{raw: raw}
}

// Parts splits the Address back into its constituent parts.
func (a Address) Parts() []string {
	if a.raw == "" {
		return nil
	}
	return strings.Split(a.raw, sep)
}

// Raw returns the opaque wire-comparable string form of the Address. Raw is
// suitable as a map key and sorts consistently with Less.
func (a Address) Raw() string { return a.raw }

// String implements fmt.Stringer with a human-readable, slash-joined form.
func (a Address) String() string {
	return strings.Join(a.Parts(), "/")
}

// Equal reports whether a and b denote the same Address.
func (a Address) Equal(b Address) bool { return a.raw == b.raw }

// Less reports whether a sorts strictly before b in canonical order.
func (a Address) Less(b Address) bool { return a.raw < b.raw }

// HasPrefix reports whether prefix's parts are a leading subsequence of a's
// parts. Every Address has itself as a prefix; the empty Address is a
// prefix of every Address.
func (a Address) HasPrefix(prefix Address) bool {
	if prefix.raw == "" {
		return true
	}
	return a.raw == prefix.raw || strings.HasPrefix(a.raw, prefix.raw+sep)
}

// Empty reports whether a has zero parts.
func (a Address) Empty() bool { return a.raw == "" }

// Slice is a sortable []Address in canonical (lexicographic) order.
type Slice []Address

func (s Slice) Len() int           { return len(s) }
func (s Slice) Less(i, j int) bool { return s[i].Less(s[j]) }
func (s Slice) Swap(i, j int)      { s[i], s[j] = s[j], s[i] }

// Sort sorts addrs in place into canonical order.
func Sort(addrs []Address) {
	sort.Sort(Slice(addrs))
}

// SortedCopy returns a new, canonically ordered copy of addrs.
func SortedCopy(addrs []Address) []Address {
	out := make([]Address, len(addrs))
	copy(out, addrs)
	Sort(out)
	return out
}
