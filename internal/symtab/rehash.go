// Package symtab holds the identifier tables used to compare lookup costs.
package symtab

import "github.com/tliron/commonlog"

var log = commonlog.GetLogger("triadc.symtab")

// DefaultTableSize is the capacity of a RehashTable when none is given.
const DefaultTableSize = 1024

// RehashTable is an open-addressing hash table resolving collisions by
// simple rehashing: the i-th probe looks at (h + i) mod size.
type RehashTable struct {
	slots []string
	used  []bool
	count int
}

func NewRehashTable(size int) *RehashTable {
	if size <= 0 {
		size = DefaultTableSize
	}
	return &RehashTable{
		slots: make([]string, size),
		used:  make([]bool, size),
	}
}

func (t *RehashTable) Size() int { return len(t.slots) }
func (t *RehashTable) Len() int  { return t.count }

// Insert adds id and reports whether it was stored. It returns false when
// id is already present, the table is full, or the probe sequence never
// reaches a free slot. The offsets accumulate, so for sizes that are not a
// power of two some slots can stay out of reach.
func (t *RehashTable) Insert(id string) bool {
	if t.count == len(t.slots) {
		log.Warning("table is full", "size", len(t.slots), "identifier", id)
		return false
	}

	h := t.hash(id)
	for i := 0; i < len(t.slots); i++ {
		switch {
		case !t.used[h]:
			t.slots[h] = id
			t.used[h] = true
			t.count++
			return true
		case t.slots[h] == id:
			log.Debugf("%q is already present", id)
			return false
		}
		h = t.rehash(h, i+1)
	}
	log.Warningf("no free slot reached for %q after %d probes (%d of %d slots used)", id, len(t.slots), t.count, len(t.slots))
	return false
}

// Find returns the number of probes spent looking for id.
func (t *RehashTable) Find(id string) (int, bool) {
	h := t.hash(id)
	for attempts := 1; attempts <= len(t.slots); attempts++ {
		switch {
		case !t.used[h]:
			return attempts, false
		case t.slots[h] == id:
			return attempts, true
		}
		h = t.rehash(h, attempts)
	}
	return len(t.slots), false
}

// hash folds the runes as digits of a base-32 number modulo the table size.
func (t *RehashTable) hash(id string) int {
	size := len(t.slots)
	h := 0
	for _, r := range id {
		h = (h*32 + int(r)) % size
	}
	return h
}

func (t *RehashTable) rehash(h, i int) int {
	return (h + i) % len(t.slots)
}
