// Copyright 2026 the dicelab authors
// This file is part of dicelab, a tabletop-dice probability toolkit.
//
// dicelab is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// dicelab is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with dicelab. If not, see <http://www.gnu.org/licenses/>.

// Package nested provides traversal over arbitrarily nested sequences.
// A nested sequence is expressed as a tagged variant: a tree node either
// carries one leaf value or an ordered sequence of subtrees. Both traversals
// run on an explicit work stack, so the supported nesting depth is bounded
// by available memory rather than by the call stack.
package nested

// Tree is a node of a nested sequence of values of type T.
// The zero value is a node with no children (an empty sequence).
type Tree[T any] struct {
	leaf     T
	isLeaf   bool
	children []Tree[T]
}

// Leaf wraps a single value.
func Leaf[T any](value T) Tree[T] {
	return Tree[T]{leaf: value, isLeaf: true}
}

// Node wraps an ordered sequence of subtrees.
func Node[T any](children ...Tree[T]) Tree[T] {
	return Tree[T]{children: children}
}

// IsLeaf reports whether the node carries a single value.
func (t Tree[T]) IsLeaf() bool {
	return t.isLeaf
}

// Value returns the leaf value; the second result is false for a sequence
// node.
func (t Tree[T]) Value() (T, bool) {
	return t.leaf, t.isLeaf
}

// Children returns the node's subtrees in order. It is nil for a leaf.
func (t Tree[T]) Children() []Tree[T] {
	return t.children
}

// Flatten collapses a nested sequence into one flat sequence preserving
// left-to-right leaf order. An empty sequence flattens to an empty result.
// Runs in linear time in the number of nodes; sub-results are appended to a
// single growable result instead of concatenated per level.
func Flatten[T any](t Tree[T]) []T {
	result := []T{}
	stack := []Tree[T]{t}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if cur.isLeaf {
			result = append(result, cur.leaf)
			continue
		}
		// push children in reverse so that the leftmost is processed first
		for i := len(cur.children) - 1; i >= 0; i-- {
			stack = append(stack, cur.children[i])
		}
	}
	return result
}

// Map applies f to every leaf of t and returns a tree of identical shape
// holding the results. The input tree is not modified; f must not mutate its
// argument.
func Map[T, U any](f func(T) U, t Tree[T]) Tree[U] {
	type frame struct {
		src  *Tree[T]
		dst  *Tree[U]
		next int // index of the next child to descend into
	}
	var root Tree[U]
	stack := []frame{{src: &t, dst: &root}}
	for len(stack) > 0 {
		fr := &stack[len(stack)-1]
		if fr.src.isLeaf {
			*fr.dst = Tree[U]{leaf: f(fr.src.leaf), isLeaf: true}
			stack = stack[:len(stack)-1]
			continue
		}
		if fr.next == 0 {
			fr.dst.children = make([]Tree[U], len(fr.src.children))
		}
		if fr.next < len(fr.src.children) {
			i := fr.next
			fr.next++
			stack = append(stack, frame{src: &fr.src.children[i], dst: &fr.dst.children[i]})
			continue
		}
		stack = stack[:len(stack)-1]
	}
	return root
}
