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

package nested

import (
	"reflect"
	"strconv"
	"testing"
)

// TestNested_FlattenEmpty checks that an empty sequence flattens to an empty result.
func TestNested_FlattenEmpty(t *testing.T) {
	if got := Flatten(Node[int]()); len(got) != 0 {
		t.Fatalf("empty node: want empty result, got %v", got)
	}
}

// TestNested_FlattenPreservesLeafOrder checks left-to-right order over mixed nesting.
func TestNested_FlattenPreservesLeafOrder(t *testing.T) {
	// the shape [1, [2, [3, 4], 5]]
	tree := Node(
		Leaf(1),
		Node(
			Leaf(2),
			Node(Leaf(3), Leaf(4)),
			Leaf(5),
		),
	)
	want := []int{1, 2, 3, 4, 5}
	if got := Flatten(tree); !reflect.DeepEqual(got, want) {
		t.Fatalf("flatten: want %v, got %v", want, got)
	}
}

// TestNested_FlattenSingleLeaf checks that a bare leaf passes through unchanged.
func TestNested_FlattenSingleLeaf(t *testing.T) {
	if got := Flatten(Leaf(42)); !reflect.DeepEqual(got, []int{42}) {
		t.Fatalf("single leaf: want [42], got %v", got)
	}
}

// TestNested_FlattenDeepNesting checks that nesting depth is not bounded by the call stack.
func TestNested_FlattenDeepNesting(t *testing.T) {
	const depth = 200_000
	tree := Leaf(7)
	for i := 0; i < depth; i++ {
		tree = Node(tree)
	}
	got := Flatten(tree)
	if !reflect.DeepEqual(got, []int{7}) {
		t.Fatalf("deep nesting: want [7], got %v", got)
	}
}

// TestNested_MapPreservesShape checks the structure-preserving property
// map(f, [d1, [d2, d3]]) == [f(d1), [f(d2), f(d3)]].
func TestNested_MapPreservesShape(t *testing.T) {
	f := func(v int) string { return strconv.Itoa(v * 10) }
	tree := Node(Leaf(1), Node(Leaf(2), Leaf(3)))

	got := Map(f, tree)
	want := Node(Leaf("10"), Node(Leaf("20"), Leaf("30")))
	if !reflect.DeepEqual(Flatten(got), Flatten(want)) {
		t.Fatalf("mapped leaves: want %v, got %v", Flatten(want), Flatten(got))
	}
	if got.IsLeaf() {
		t.Fatalf("mapped root: want sequence node, got leaf")
	}
	kids := got.Children()
	if len(kids) != 2 || !kids[0].IsLeaf() || kids[1].IsLeaf() || len(kids[1].Children()) != 2 {
		t.Fatalf("mapped tree shape differs from input shape: %+v", got)
	}
}

// TestNested_MapOnLeaf checks that a bare leaf maps to a bare leaf.
func TestNested_MapOnLeaf(t *testing.T) {
	got := Map(func(v int) int { return v + 1 }, Leaf(1))
	if v, ok := got.Value(); !ok || v != 2 {
		t.Fatalf("mapped leaf: want leaf 2, got (%v, %v)", v, ok)
	}
}

// TestNested_MapDoesNotMutateInput checks traversal purity.
func TestNested_MapDoesNotMutateInput(t *testing.T) {
	tree := Node(Leaf(1), Node(Leaf(2)))
	_ = Map(func(v int) int { return -v }, tree)
	if got := Flatten(tree); !reflect.DeepEqual(got, []int{1, 2}) {
		t.Fatalf("input mutated: want [1 2], got %v", got)
	}
}

// TestNested_MapDeepNesting checks map on deeply nested input.
func TestNested_MapDeepNesting(t *testing.T) {
	const depth = 200_000
	tree := Leaf(1)
	for i := 0; i < depth; i++ {
		tree = Node(tree)
	}
	got := Map(func(v int) int { return v * 2 }, tree)
	if leaves := Flatten(got); !reflect.DeepEqual(leaves, []int{2}) {
		t.Fatalf("deep map: want [2], got %v", leaves)
	}
}
