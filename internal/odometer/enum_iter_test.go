package odometer

import "testing"

func TestEnumIterInitMember(t *testing.T) {
	e := NewEnumIter([]int{1, 3, 5, 7})
	init := e.Init(5)
	if !init.Aligned() {
		t.Fatalf("5 is a member, should be aligned")
	}
	next, ok := init.Next()
	if !ok || next.Current() != 7 {
		t.Fatalf("next = %d,%v want 7,true", next.Current(), ok)
	}
	prev, ok := init.Prev()
	if !ok || prev.Current() != 3 {
		t.Fatalf("prev = %d,%v want 3,true", prev.Current(), ok)
	}
}

func TestEnumIterInitNonMemberBetween(t *testing.T) {
	e := NewEnumIter([]int{1, 3, 5, 7})
	init := e.Init(4)
	if init.Aligned() {
		t.Fatalf("4 is not a member, should be unaligned")
	}
	next, ok := init.Next()
	if !ok || next.Current() != 5 {
		t.Fatalf("next = %d,%v want 5,true", next.Current(), ok)
	}
	prev, ok := init.Prev()
	if !ok || prev.Current() != 3 {
		t.Fatalf("prev = %d,%v want 3,true", prev.Current(), ok)
	}
}

func TestEnumIterInitAboveMax(t *testing.T) {
	e := NewEnumIter([]int{1, 3, 5})
	init := e.Init(9)
	if init.Aligned() {
		t.Fatalf("9 is out of range, should be unaligned")
	}
	if _, ok := init.Next(); ok {
		t.Fatalf("next should not exist above max")
	}
	prev, ok := init.Prev()
	if !ok || prev.Current() != 5 {
		t.Fatalf("prev = %d,%v want 5,true", prev.Current(), ok)
	}
}

func TestEnumIterEmpty(t *testing.T) {
	e := NewEnumIter(nil)
	if _, ok := e.First(); ok {
		t.Fatalf("first should fail on empty set")
	}
}

func TestEnumIterRoundTrip(t *testing.T) {
	e := NewEnumIter([]int{2, 4, 6})
	cur, ok := e.First()
	var seen []int
	for ok {
		seen = append(seen, cur.Current())
		cur, ok = cur.Next()
	}
	want := []int{2, 4, 6}
	for i, w := range want {
		if seen[i] != w {
			t.Fatalf("seen %v, want %v", seen, want)
		}
	}
}
