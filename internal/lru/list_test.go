// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package lru

import (
	"slices"
	"testing"
)

// drain removes every key, oldest first.
func drain[K comparable](l *List[K]) []K {
	var keys []K
	for {
		k, ok := l.RemoveOldest()
		if !ok {
			return keys
		}
		keys = append(keys, k)
	}
}

func TestListOrder(t *testing.T) {
	var l List[int]
	nodes := make([]*Node[int], 4)
	for i := range nodes {
		nodes[i] = l.PushFront(i)
	}
	if l.Len() != 4 {
		t.Fatalf("Len() = %d, want 4", l.Len())
	}

	// 0 becomes the most recently used; 1 is now the oldest.
	l.MoveToFront(nodes[0])
	if got, want := drain(&l), []int{1, 2, 3, 0}; !slices.Equal(got, want) {
		t.Errorf("eviction order = %v, want %v", got, want)
	}
	if _, ok := l.RemoveOldest(); ok {
		t.Error("RemoveOldest() on empty list reported true")
	}
	if l.Len() != 0 {
		t.Errorf("Len() = %d after draining, want 0", l.Len())
	}
}

func TestListMoveToFront(t *testing.T) {
	var l List[string]
	a := l.PushFront("a")
	l.PushFront("b")
	c := l.PushFront("c")

	l.MoveToFront(c)
	l.MoveToFront(nil)
	l.MoveToFront(a)
	if got, want := drain(&l), []string{"b", "c", "a"}; !slices.Equal(got, want) {
		t.Errorf("eviction order = %v, want %v", got, want)
	}
}

func TestListMoveTail(t *testing.T) {
	var l List[int]
	first := l.PushFront(1)
	l.PushFront(2)
	l.MoveToFront(first)
	if l.Len() != 2 {
		t.Errorf("Len() = %d, want 2", l.Len())
	}
	if k, ok := l.RemoveOldest(); !ok || k != 2 {
		t.Errorf("RemoveOldest() = %d, %v; want 2, true", k, ok)
	}
	if k, ok := l.RemoveOldest(); !ok || k != 1 {
		t.Errorf("RemoveOldest() = %d, %v; want 1, true", k, ok)
	}
}

func TestListClear(t *testing.T) {
	var l List[int]
	l.PushFront(1)
	l.PushFront(2)
	l.Clear()
	if l.Len() != 0 {
		t.Errorf("Len() = %d after Clear, want 0", l.Len())
	}
	if _, ok := l.RemoveOldest(); ok {
		t.Error("RemoveOldest() after Clear reported true")
	}
	l.PushFront(3)
	if got := drain(&l); !slices.Equal(got, []int{3}) {
		t.Errorf("after reuse = %v, want [3]", got)
	}
}
