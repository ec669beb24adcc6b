// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package lru provides the recency list behind the layout cache.
package lru

// Node is an element of a List. It stores its key so that evicting the
// oldest node can also remove the key from the owner's map.
type Node[K comparable] struct {
	key  K
	prev *Node[K]
	next *Node[K]
}

// List is a doubly-linked recency list. The head is the most recently used
// key, the tail the least recently used.
//
// List is not safe for concurrent use; callers synchronize.
type List[K comparable] struct {
	head *Node[K]
	tail *Node[K]
	len  int
}

// Len returns the number of nodes.
func (l *List[K]) Len() int { return l.len }

// PushFront inserts key as the most recently used and returns its node.
func (l *List[K]) PushFront(key K) *Node[K] {
	n := &Node[K]{key: key}
	l.linkFront(n)
	return n
}

// MoveToFront marks n as the most recently used.
func (l *List[K]) MoveToFront(n *Node[K]) {
	if n == nil || n == l.head {
		return
	}
	l.unlink(n)
	l.linkFront(n)
}

// RemoveOldest unlinks the least recently used node and returns its key.
// It reports false if the list is empty.
func (l *List[K]) RemoveOldest() (K, bool) {
	if l.tail == nil {
		var zero K
		return zero, false
	}
	n := l.tail
	l.unlink(n)
	return n.key, true
}

// Clear empties the list.
func (l *List[K]) Clear() {
	l.head, l.tail, l.len = nil, nil, 0
}

func (l *List[K]) linkFront(n *Node[K]) {
	n.prev = nil
	n.next = l.head
	if l.head != nil {
		l.head.prev = n
	}
	l.head = n
	if l.tail == nil {
		l.tail = n
	}
	l.len++
}

func (l *List[K]) unlink(n *Node[K]) {
	if n.prev != nil {
		n.prev.next = n.next
	} else {
		l.head = n.next
	}
	if n.next != nil {
		n.next.prev = n.prev
	} else {
		l.tail = n.prev
	}
	n.prev, n.next = nil, nil
	l.len--
}
