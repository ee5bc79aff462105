package runtime

import (
	"errors"
	"fmt"
	"sort"

	"github.com/google/btree"
	"github.com/lithammer/fuzzysearch/fuzzy"
)

// ErrUndefined is wrapped by Get when a name has no binding.
var ErrUndefined = errors.New("undefined variable")

const btreeDegree = 8

// binding orders entries by name inside the tree.
type binding struct {
	name  string
	value Value
}

func (b binding) Less(than btree.Item) bool {
	return b.name < than.(binding).name
}

// Environment is the session-wide variable store. Names are kept ordered so
// listings are deterministic.
type Environment struct {
	values *btree.BTree
}

// NewEnvironment creates an empty environment.
func NewEnvironment() *Environment {
	return &Environment{values: btree.New(btreeDegree)}
}

// Define inserts or replaces a binding.
func (e *Environment) Define(name string, value Value) {
	e.values.ReplaceOrInsert(binding{name: name, value: value})
}

// Assign stores value under name, creating the binding when it does not exist.
func (e *Environment) Assign(name string, value Value) {
	e.Define(name, value)
}

// Get retrieves a binding.
func (e *Environment) Get(name string) (Value, error) {
	item := e.values.Get(binding{name: name})
	if item == nil {
		return nil, fmt.Errorf("%w '%s'", ErrUndefined, name)
	}
	return item.(binding).value, nil
}

// Has reports whether name is bound.
func (e *Environment) Has(name string) bool {
	return e.values.Has(binding{name: name})
}

// Len returns the number of bindings.
func (e *Environment) Len() int {
	return e.values.Len()
}

// Keys returns the bound names in sorted order.
func (e *Environment) Keys() []string {
	keys := make([]string, 0, e.values.Len())
	e.values.Ascend(func(item btree.Item) bool {
		keys = append(keys, item.(binding).name)
		return true
	})
	return keys
}

// Similar returns up to limit bound names that resemble name, closest first.
// A candidate matches when either name is a case-insensitive subsequence of
// the other.
func (e *Environment) Similar(name string, limit int) []string {
	if limit <= 0 || name == "" {
		return nil
	}
	keys := e.Keys()
	ranks := fuzzy.RankFindFold(name, keys)
	for i, key := range keys {
		if fuzzy.MatchFold(name, key) {
			continue
		}
		if fuzzy.MatchFold(key, name) {
			ranks = append(ranks, fuzzy.Rank{
				Source:        key,
				Target:        key,
				Distance:      fuzzy.LevenshteinDistance(key, name),
				OriginalIndex: i,
			})
		}
	}
	sort.Sort(ranks)

	out := make([]string, 0, limit)
	for _, rank := range ranks {
		if rank.Target == name {
			continue
		}
		out = append(out, rank.Target)
		if len(out) == limit {
			break
		}
	}
	return out
}
