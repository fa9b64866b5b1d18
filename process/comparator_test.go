package process

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestByPID(t *testing.T) {
	a := &Entry{PID: 3}
	b := &Entry{PID: 50}
	assert.Negative(t, ByPID{}.Compare(a, b))
	assert.Positive(t, ByPID{}.Compare(b, a))
	assert.Zero(t, ByPID{}.Compare(a, &Entry{PID: 3}))
}

func TestByName(t *testing.T) {
	tests := []struct {
		name string
		a, b string
		want int
	}{
		{"plain", "(bash)", "(zsh)", -1},
		{"case sensitive", "(Zsh)", "(bash)", -1},
		{"equal", "(bash)", "(bash)", 0},
		{"doubled marker compares as single", "((weird))", "(weird))", 0},
		{"doubled marker sorts by second", "((weird))", "(bash)", 1},
		{"prefix sorts first", "(ba)", "(bash)", -1},
		{"one byte name", "(", "((", 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ByName{}.Compare(&Entry{Name: tt.a}, &Entry{Name: tt.b})
			switch {
			case tt.want < 0:
				assert.Negative(t, got)
			case tt.want > 0:
				assert.Positive(t, got)
			default:
				assert.Zero(t, got)
			}
		})
	}
}

func TestByNameLeavesNameUntouched(t *testing.T) {
	e := &Entry{Name: "((weird))"}
	ByName{}.Compare(e, &Entry{Name: "(bash)"})
	assert.Equal(t, "((weird))", e.Name)
}

func TestSortEntriesByPID(t *testing.T) {
	entries := []*Entry{{PID: 50}, {PID: 3}, {PID: 200}, {PID: 1}}
	SortEntries(entries, ByPID{})
	got := make([]ProcessID, len(entries))
	for i, e := range entries {
		got[i] = e.PID
	}
	assert.Equal(t, []ProcessID{1, 3, 50, 200}, got)
}

func TestSortEntriesByName(t *testing.T) {
	entries := []*Entry{{Name: "(bash)"}, {Name: "(Zsh)"}, {Name: "((weird))"}}
	SortEntries(entries, ByName{})
	got := make([]string, len(entries))
	for i, e := range entries {
		got[i] = e.Name
	}
	assert.Equal(t, []string{"(Zsh)", "(bash)", "((weird))"}, got)
}

func TestComparatorFor(t *testing.T) {
	c, err := ComparatorFor(OrderPID)
	require.NoError(t, err)
	assert.Equal(t, OrderPID, c.Name())

	c, err = ComparatorFor("")
	require.NoError(t, err)
	assert.IsType(t, ByPID{}, c)

	c, err = ComparatorFor(OrderName)
	require.NoError(t, err)
	assert.IsType(t, ByName{}, c)

	_, err = ComparatorFor("rss")
	assert.Error(t, err)
}
