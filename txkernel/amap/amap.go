// Package amap provides the authenticated key→word map backing map storage
// slots and asset vaults. The service is accessed strictly by value: every
// lookup and mutation names a root, and mutations return the new root
// instead of modifying anything in place, so two logical copies of a map can
// never alias each other.
package amap

import (
	"bytes"
	"errors"
	"fmt"
	"sort"

	"golang.org/x/exp/maps"

	"github.com/veilmesh/go-veilmesh/common/types"
	"github.com/veilmesh/go-veilmesh/hash"
)

// EmptyRoot is the root of the empty map.
var EmptyRoot = types.EmptyWord

// ErrUnknownRoot is returned when a root does not name any map known to the
// service.
var ErrUnknownRoot = errors.New("amap: unknown root")

// Service holds every version of every authenticated map touched by one
// transaction, keyed by root. Old versions stay resolvable so that callers
// holding a stale root keep a consistent view.
type Service struct {
	trees map[types.Word]map[types.Word]types.Word
}

// New creates an empty service.
func New() *Service {
	return &Service{trees: map[types.Word]map[types.Word]types.Word{}}
}

// Get returns the value stored under key in the map named by root. Missing
// keys resolve to the empty word.
func (s *Service) Get(root, key types.Word) (types.Word, error) {
	if root == EmptyRoot {
		return types.EmptyWord, nil
	}
	tree, ok := s.trees[root]
	if !ok {
		return types.EmptyWord, fmt.Errorf("%w: %s", ErrUnknownRoot, root)
	}
	return tree[key], nil
}

// Set writes value under key in the map named by root and returns the new
// root together with the previous value. Writing the empty word deletes the
// key.
func (s *Service) Set(root, key, value types.Word) (newRoot, old types.Word, err error) {
	var entries map[types.Word]types.Word
	if root == EmptyRoot {
		entries = map[types.Word]types.Word{}
	} else {
		tree, ok := s.trees[root]
		if !ok {
			return types.EmptyWord, types.EmptyWord, fmt.Errorf("%w: %s", ErrUnknownRoot, root)
		}
		entries = maps.Clone(tree)
	}
	old = entries[key]
	if value.IsEmpty() {
		delete(entries, key)
	} else {
		entries[key] = value
	}
	newRoot = commit(entries)
	if newRoot != EmptyRoot {
		s.trees[newRoot] = entries
	}
	return newRoot, old, nil
}

// Count returns the number of entries in the map named by root.
func (s *Service) Count(root types.Word) (int, error) {
	if root == EmptyRoot {
		return 0, nil
	}
	tree, ok := s.trees[root]
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrUnknownRoot, root)
	}
	return len(tree), nil
}

// Build registers a map with the given entries and returns its root. Used
// when reconstructing maps from witness data; the caller is responsible for
// comparing the returned root against a trusted commitment.
func (s *Service) Build(entries map[types.Word]types.Word) types.Word {
	clean := map[types.Word]types.Word{}
	for key, value := range entries {
		if !value.IsEmpty() {
			clean[key] = value
		}
	}
	root := commit(clean)
	if root != EmptyRoot {
		s.trees[root] = clean
	}
	return root
}

// commit derives the root of a map: the hash over its entries in canonical
// key order. The empty map commits to the empty word.
func commit(entries map[types.Word]types.Word) types.Word {
	if len(entries) == 0 {
		return EmptyRoot
	}
	keys := maps.Keys(entries)
	sort.Slice(keys, func(i, j int) bool {
		return bytes.Compare(keys[i].Bytes(), keys[j].Bytes()) < 0
	})
	elements := make([]types.Felt, 0, len(keys)*2*types.WordLength)
	for _, key := range keys {
		value := entries[key]
		elements = append(elements, key[:]...)
		elements = append(elements, value[:]...)
	}
	return hash.Elements(elements...)
}
