package process

import (
	"bytes"
	"fmt"
	"sort"
)

// SortOrder names one of the available comparators
type SortOrder string

const (
	OrderPID  SortOrder = "pid"
	OrderName SortOrder = "comm"
)

// Comparator is a total order over entries. Compare returns a negative number
// when a sorts before b, zero when they are equal and a positive number otherwise.
type Comparator interface {
	Compare(a, b *Entry) int
	Name() SortOrder
}

// ByPID orders entries by ascending process id
type ByPID struct{}

func (ByPID) Compare(a, b *Entry) int {
	switch {
	case a.PID < b.PID:
		return -1
	case a.PID > b.PID:
		return 1
	}
	return 0
}

func (ByPID) Name() SortOrder { return OrderPID }

// ByName orders entries by their comm field, byte by byte, case sensitive.
//
// A name whose second byte is '(' (the record had "((...") is compared without
// its first byte, so "((sd-pam))" sorts next to "(sd-pam)" rather than ahead of
// every other name. Possibly an incidental workaround, left as is.
type ByName struct{}

func (ByName) Compare(a, b *Entry) int {
	return bytes.Compare(sortKey(a.Name), sortKey(b.Name))
}

func (ByName) Name() SortOrder { return OrderName }

// sortKey never modifies name.
func sortKey(name string) []byte {
	if len(name) > 1 && name[1] == '(' {
		return []byte(name[1:])
	}
	return []byte(name)
}

// ComparatorFor returns the comparator registered for order
func ComparatorFor(order SortOrder) (Comparator, error) {
	switch order {
	case OrderPID, "":
		return ByPID{}, nil
	case OrderName:
		return ByName{}, nil
	}
	return nil, fmt.Errorf("unknown sort order %q", order)
}

// SortEntries sorts entries in place. Equal keys keep no particular order.
func SortEntries(entries []*Entry, cmp Comparator) {
	sort.Slice(entries, func(i, j int) bool {
		return cmp.Compare(entries[i], entries[j]) < 0
	})
}
