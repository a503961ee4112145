package ngram

import (
	"strconv"
	"strings"
)

// Dict assigns dense ids to distinct n-grams, keyed by the exact,
// order-sensitive sequence of term ids. Like TermDict, it is owned by a
// single call and never reused across calls.
type Dict struct {
	ids   map[string]int
	grams [][]int
}

// NewDict returns an empty n-gram dictionary.
func NewDict() *Dict {
	return &Dict{ids: make(map[string]int)}
}

// IDFor returns the id for the given term-id sequence, assigning a new
// dense id on first sight. Two sequences are the same n-gram iff they are
// element-wise equal.
func (d *Dict) IDFor(seq []int) int {
	key := encodeKey(seq)
	if id, ok := d.ids[key]; ok {
		return id
	}
	id := len(d.grams)
	stored := make([]int, len(seq))
	copy(stored, seq)
	d.grams = append(d.grams, stored)
	d.ids[key] = id
	return id
}

// Terms returns the term-id sequence an n-gram id decodes to.
func (d *Dict) Terms(id int) []int {
	return d.grams[id]
}

// Len returns the number of distinct n-grams seen so far.
func (d *Dict) Len() int {
	return len(d.grams)
}

// encodeKey builds a map key from a term-id sequence that cannot collide
// between sequences of different element values (each id written with
// strconv.Itoa and terminated by a '|', which strconv.Itoa never produces).
func encodeKey(seq []int) string {
	var b strings.Builder
	for _, v := range seq {
		b.WriteString(strconv.Itoa(v))
		b.WriteByte('|')
	}
	return b.String()
}
