// File: wordset_test.go
// Title: Word Set Unit Tests
// Description: Unit tests for the word set value type. Tests cover
//              insertion, removal, set algebra, substring matching, and
//              the algebraic properties the language relies on.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-02-08
// Modified: 2025-02-08
//
// Change History:
// - 2025-02-08 v0.1.0: Initial test suite

package wordset

import (
	"reflect"
	"testing"
)

func TestSet_AddKeepsSortedUnique(t *testing.T) {
	s := New("dog", "cat", "dog", "ant")

	want := []string{"ant", "cat", "dog"}
	if got := s.Words(); !reflect.DeepEqual(got, want) {
		t.Errorf("Words() = %v, want %v", got, want)
	}
	if s.Len() != 3 {
		t.Errorf("Len() = %d, want 3", s.Len())
	}
}

func TestSet_Remove(t *testing.T) {
	s := New("a", "b", "c")
	s.Remove("b")
	s.Remove("missing") // no-op

	want := []string{"a", "c"}
	if got := s.Words(); !reflect.DeepEqual(got, want) {
		t.Errorf("Words() after Remove = %v, want %v", got, want)
	}
}

func TestSet_Has(t *testing.T) {
	s := New("apple", "banana")

	if !s.Has("apple") {
		t.Error("Has(apple) = false, want true")
	}
	if s.Has("cherry") {
		t.Error("Has(cherry) = true, want false")
	}
}

func TestUnion(t *testing.T) {
	tests := []struct {
		name string
		a, b []string
		want []string
	}{
		{
			name: "Disjoint sets",
			a:    []string{"cat"},
			b:    []string{"dog"},
			want: []string{"cat", "dog"},
		},
		{
			name: "Overlapping sets",
			a:    []string{"a", "b"},
			b:    []string{"b", "c"},
			want: []string{"a", "b", "c"},
		},
		{
			name: "Empty right operand",
			a:    []string{"x"},
			b:    nil,
			want: []string{"x"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := New(tt.a...)
			b := New(tt.b...)

			got := Union(a, b).Words()
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Union = %v, want %v", got, tt.want)
			}

			// Union is commutative.
			rev := Union(b, a).Words()
			if !reflect.DeepEqual(rev, tt.want) {
				t.Errorf("Union reversed = %v, want %v", rev, tt.want)
			}

			// Operands must not be mutated.
			if !reflect.DeepEqual(a.Words(), New(tt.a...).Words()) {
				t.Error("Union mutated its left operand")
			}
		})
	}
}

func TestDifference(t *testing.T) {
	tests := []struct {
		name string
		a, b []string
		want []string
	}{
		{
			name: "Removes intersection only",
			a:    []string{"a", "b", "c"},
			b:    []string{"b", "d"},
			want: []string{"a", "c"},
		},
		{
			name: "Disjoint operands",
			a:    []string{"a"},
			b:    []string{"z"},
			want: []string{"a"},
		},
		{
			name: "Full overlap",
			a:    []string{"a", "b"},
			b:    []string{"a", "b"},
			want: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Difference(New(tt.a...), New(tt.b...)).Words()
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Difference = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSet_MatchesAny(t *testing.T) {
	filters := New("an", "og")

	tests := []struct {
		candidate string
		want      bool
	}{
		{"banana", true},
		{"dog", true},
		{"cat", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := filters.MatchesAny(tt.candidate); got != tt.want {
			t.Errorf("MatchesAny(%q) = %v, want %v", tt.candidate, got, tt.want)
		}
	}

	if New().MatchesAny("anything") {
		t.Error("empty filter set must not match")
	}
}

func TestSet_CloneIsIndependent(t *testing.T) {
	s := New("a")
	c := s.Clone()
	c.Add("b")

	if s.Has("b") {
		t.Error("mutating a clone must not affect the original")
	}
}
