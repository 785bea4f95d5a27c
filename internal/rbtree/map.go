package rbtree

import (
	"cmp"
)

type color int8

const (
	red color = iota
	black
)

// Map is a persistent map backed by a binary search tree.
// Set never modifies the receiver. It copies the search path and shares every other node with the original.
// This implementation is based on red-black tree from Purely Functional Data Structures by Okasaki.
// The zero value is an empty map.
type Map[K cmp.Ordered, V any] struct {
	root *node[K, V]
	len  int
}

type node[K cmp.Ordered, V any] struct {
	color       color
	left, right *node[K, V]
	elem        elem[K, V]
}

type elem[K cmp.Ordered, V any] struct {
	key   K
	value V
}

// Len returns the number of keys.
func (m Map[K, V]) Len() int {
	return m.len
}

// Set returns a map which has a pair of key and value in addition to the pairs of m.
// If m already has the key, the value is replaced in the returned map.
func (m Map[K, V]) Set(key K, value V) Map[K, V] {
	n, added := insert(m.root, elem[K, V]{key: key, value: value})
	if n.color == red {
		n = &node[K, V]{
			color: black,
			left:  n.left,
			elem:  n.elem,
			right: n.right,
		}
	}
	ret := Map[K, V]{root: n, len: m.len}
	if added {
		ret.len++
	}
	return ret
}

// Get returns the associated value for a key.
func (m Map[K, V]) Get(key K) (V, bool) {
	for n := m.root; n != nil; {
		switch e := n.elem; {
		case key < e.key:
			n = n.left
		case key > e.key:
			n = n.right
		default:
			return e.value, true
		}
	}
	var zero V
	return zero, false
}

// Each calls f for every pair in ascending order of keys until f returns false.
func (m Map[K, V]) Each(f func(key K, value V) bool) {
	each(m.root, f)
}

func each[K cmp.Ordered, V any](n *node[K, V], f func(K, V) bool) bool {
	if n == nil {
		return true
	}
	return each(n.left, f) && f(n.elem.key, n.elem.value) && each(n.right, f)
}

func insert[K cmp.Ordered, V any](n *node[K, V], e elem[K, V]) (*node[K, V], bool) {
	if n == nil {
		return &node[K, V]{color: red, elem: e}, true
	}
	switch {
	case e.key < n.elem.key:
		l, added := insert(n.left, e)
		return balance(&node[K, V]{
			color: n.color,
			left:  l,
			elem:  n.elem,
			right: n.right,
		}), added
	case e.key > n.elem.key:
		r, added := insert(n.right, e)
		return balance(&node[K, V]{
			color: n.color,
			left:  n.left,
			elem:  n.elem,
			right: r,
		}), added
	default:
		return &node[K, V]{
			color: n.color,
			left:  n.left,
			elem:  e,
			right: n.right,
		}, false
	}
}

func isRed[K cmp.Ordered, V any](n *node[K, V]) bool {
	return n != nil && n.color == red
}

func balance[K cmp.Ordered, V any](n *node[K, V]) *node[K, V] {
	if n.color != black {
		return n
	}

	var (
		a, b, c, d *node[K, V]
		x, y, z    elem[K, V]
	)
	switch {
	case isRed(n.left) && isRed(n.left.left):
		l, ll := n.left, n.left.left
		a, b, c, d = ll.left, ll.right, l.right, n.right
		x, y, z = ll.elem, l.elem, n.elem
	case isRed(n.left) && isRed(n.left.right):
		l, lr := n.left, n.left.right
		a, b, c, d = l.left, lr.left, lr.right, n.right
		x, y, z = l.elem, lr.elem, n.elem
	case isRed(n.right) && isRed(n.right.left):
		r, rl := n.right, n.right.left
		a, b, c, d = n.left, rl.left, rl.right, r.right
		x, y, z = n.elem, rl.elem, r.elem
	case isRed(n.right) && isRed(n.right.right):
		r, rr := n.right, n.right.right
		a, b, c, d = n.left, r.left, rr.left, rr.right
		x, y, z = n.elem, r.elem, rr.elem
	default:
		return n
	}
	return &node[K, V]{
		color: red,
		left:  &node[K, V]{color: black, left: a, elem: x, right: b},
		elem:  y,
		right: &node[K, V]{color: black, left: c, elem: z, right: d},
	}
}
