package types

import (
	"errors"
	"testing"

	"golang.org/x/exp/slices"
)

// checkLinks walks the chain both ways and verifies size and neighbour links.
func checkLinks[T comparable](t *testing.T, l *List[T]) {
	t.Helper()
	if (l.size == 0) != (l.head == nil) || (l.size == 0) != (l.tail == nil) {
		t.Fatalf("size %d inconsistent with head %v / tail %v", l.size, l.head, l.tail)
	}
	forward := 0
	var last *node[T]
	for n := l.head; n != nil; n = n.next {
		if n.prev != last {
			t.Fatalf("node %d: prev link broken", forward)
		}
		last = n
		forward++
	}
	if last != l.tail {
		t.Fatal("forward walk does not end at tail")
	}
	backward := 0
	for n := l.tail; n != nil; n = n.prev {
		backward++
	}
	if forward != l.size || backward != l.size {
		t.Fatalf("size %d, forward %d, backward %d", l.size, forward, backward)
	}
}

func expectContents[T comparable](t *testing.T, l *List[T], expected ...T) {
	t.Helper()
	checkLinks(t, l)
	if l.Len() != len(expected) {
		t.Fatalf("expected length %d, actual %d", len(expected), l.Len())
	}
	for i, v := range expected {
		if actual := l.Get(i); actual != v {
			t.Errorf("at %d: expected %v, actual %v", i, v, actual)
		}
	}
	if !slices.Equal(l.Values(), expected) {
		t.Errorf("expected %v, actual %v", expected, l.Values())
	}
}

func expectIndexPanic(t *testing.T, position int, f func()) {
	t.Helper()
	defer func() {
		t.Helper()
		r := recover()
		err, ok := r.(error)
		var indexErr *IndexError
		if !ok || !errors.As(err, &indexErr) {
			t.Fatalf("expected *IndexError panic, got %v", r)
		}
		if indexErr.Position != position {
			t.Errorf("expected position %d in error, actual %d", position, indexErr.Position)
		}
	}()
	f()
}

func TestNewList(t *testing.T) {
	l := NewList[int]()
	if l.Len() != 0 || !l.IsEmpty() {
		t.Fatal("new list is not empty")
	}
	l.Clear()
	expectContents(t, l)
	l.Append(42)
	expectContents(t, l, 42)

	var zero List[string]
	zero.Append("one")
	expectContents(t, &zero, "one")
}

func TestCopy(t *testing.T) {
	empty := NewList[int]()
	expectContents(t, empty.Copy())

	a := NewList(1, 2, 3)
	b := a.Copy()
	expectContents(t, b, 1, 2, 3)

	a.Set(1, 99)
	expectContents(t, a, 1, 99, 3)
	expectContents(t, b, 1, 2, 3)

	b.Append(4)
	expectContents(t, a, 1, 99, 3)
}

func TestCopyFloat(t *testing.T) {
	a := NewList(1.1, 2.2, 3.3)
	b := a.Copy()
	*a.At(1) = 9.99
	expectContents(t, a, 1.1, 9.99, 3.3)
	expectContents(t, b, 1.1, 2.2, 3.3)
}

func TestAssign(t *testing.T) {
	a, b := NewList[int](), NewList[int]()
	b.Assign(a)
	expectContents(t, b)

	a = NewList(7, 8, 9)
	c := NewList[int]()
	c.Assign(a)
	expectContents(t, c, 7, 8, 9)

	d := NewList(1, 1, 1)
	d.Assign(d)
	expectContents(t, d, 1, 1, 1)

	d.Assign(a)
	expectContents(t, d, 7, 8, 9)
	a.Set(0, 70)
	expectContents(t, d, 7, 8, 9)

	a.Clear()
	d.Assign(a)
	expectContents(t, d)
}

func TestAppend(t *testing.T) {
	l := NewList[int]()
	l.Append(10)
	l.Append(20)
	l.Append(30)
	expectContents(t, l, 10, 20, 30)

	s := NewList[string]()
	s.Append("alpha")
	s.Append("beta")
	s.Append("gamma")
	expectContents(t, s, "alpha", "beta", "gamma")
}

func TestGetNegative(t *testing.T) {
	n := 10
	l := NewList[int]()
	for i := 0; i < n; i++ {
		l.Append(i * 3)
	}
	for i := 0; i < n; i++ {
		if v := l.Get(i); v != i*3 {
			t.Errorf("Get(%d): expected %d, actual %d", i, i*3, v)
		}
		if v := l.Get(i - n); v != i*3 {
			t.Errorf("Get(%d): expected %d, actual %d", i-n, i*3, v)
		}
	}
}

func TestSetAndAt(t *testing.T) {
	l := NewList(5, 6, 7)
	l.Set(1, 60)
	expectContents(t, l, 5, 60, 7)
	l.Set(-1, 70)
	expectContents(t, l, 5, 60, 70)
	*l.At(-3) += 1
	expectContents(t, l, 6, 60, 70)

	s := NewList("red", "green", "blue")
	*s.At(1) = "emerald"
	expectContents(t, s, "red", "emerald", "blue")
	if v := s.Get(2); v != "blue" {
		t.Errorf("expected blue, actual %s", v)
	}
}

func TestOutOfRange(t *testing.T) {
	l := NewList(1, 2, 3)
	expectIndexPanic(t, 3, func() { l.Get(3) })
	expectIndexPanic(t, -4, func() { l.Get(-4) })
	expectIndexPanic(t, 5, func() { l.Set(5, 0) })
	expectIndexPanic(t, 0, func() { NewList[int]().At(0) })
	expectContents(t, l, 1, 2, 3)
}

func TestFind(t *testing.T) {
	l := NewList(1, 2, 3, 4)
	if l.find(4) != nil || l.find(-5) != nil {
		t.Error("expected nil for out of range positions")
	}
	if l.find(-4) != l.head || l.find(3) != l.tail || l.find(-1) != l.tail {
		t.Error("boundary positions resolve to wrong nodes")
	}
	if NewList[int]().find(0) != nil {
		t.Error("empty list resolved a node")
	}
}

func TestInsert(t *testing.T) {
	l := NewList(10, 20, 30)
	l.Insert(0, 5)
	expectContents(t, l, 5, 10, 20, 30)
	l.Insert(2, 15)
	expectContents(t, l, 5, 10, 15, 20, 30)
	l.Insert(l.Len()+1000, 40)
	expectContents(t, l, 5, 10, 15, 20, 30, 40)
	l.Insert(-9999, 0)
	expectContents(t, l, 0, 5, 10, 15, 20, 30, 40)
	l.Insert(-1, 35)
	expectContents(t, l, 0, 5, 10, 15, 20, 30, 35, 40)
	l.Insert(l.Len(), 50)
	expectContents(t, l, 0, 5, 10, 15, 20, 30, 35, 40, 50)

	empty := NewList[int]()
	empty.Insert(3, 1)
	expectContents(t, empty, 1)
	empty.Clear()
	empty.Insert(-3, 1)
	expectContents(t, empty, 1)
}

func TestInsertString(t *testing.T) {
	l := NewList("b", "d", "f")
	l.Insert(0, "a")
	expectContents(t, l, "a", "b", "d", "f")
	l.Insert(2, "c")
	expectContents(t, l, "a", "b", "c", "d", "f")
	l.Insert(100, "g")
	expectContents(t, l, "a", "b", "c", "d", "f", "g")
	l.Insert(-9999, "AA")
	expectContents(t, l, "AA", "a", "b", "c", "d", "f", "g")
}

func TestInsertInterleaved(t *testing.T) {
	l := NewList[int]()
	for i := 0; i < 10; i++ {
		l.Append(i)
	}
	for i := 0; i < 10; i++ {
		l.Insert(i*2, i)
	}
	expected := make([]int, 0, 20)
	for i := 0; i < 10; i++ {
		expected = append(expected, i, i)
	}
	expectContents(t, l, expected...)
}

func TestClear(t *testing.T) {
	l := NewList(3.14, 2.71, 1.41)
	l.Clear()
	expectContents(t, l)
	l.Clear()
	expectContents(t, l)
	l.Append(6.28)
	expectContents(t, l, 6.28)
}

func TestPop(t *testing.T) {
	l := NewList(10, 20, 30, 40)
	if x := l.Pop(); x != 40 {
		t.Errorf("expected 40, actual %d", x)
	}
	expectContents(t, l, 10, 20, 30)
	if x := l.PopAt(0); x != 10 {
		t.Errorf("expected 10, actual %d", x)
	}
	expectContents(t, l, 20, 30)
	if x := l.PopAt(1); x != 30 {
		t.Errorf("expected 30, actual %d", x)
	}
	expectContents(t, l, 20)
	if x := l.PopAt(-1); x != 20 {
		t.Errorf("expected 20, actual %d", x)
	}
	expectContents(t, l)
}

func TestPopFloat(t *testing.T) {
	l := NewList(10.5, 20.5, 30.5, 40.5)
	if x := l.Pop(); x != 40.5 {
		t.Errorf("expected 40.5, actual %v", x)
	}
	if x := l.PopAt(-3); x != 10.5 {
		t.Errorf("expected 10.5, actual %v", x)
	}
	expectContents(t, l, 20.5, 30.5)
}

func TestPopInvalid(t *testing.T) {
	l := NewList(1, 2, 3)
	if x := l.PopAt(3); x != 0 {
		t.Errorf("expected zero value, actual %d", x)
	}
	if x := l.PopAt(-4); x != 0 {
		t.Errorf("expected zero value, actual %d", x)
	}
	expectContents(t, l, 1, 2, 3)

	if _, ok := l.PopOK(7); ok {
		t.Error("PopOK reported removal for invalid position")
	}
	if x, ok := l.PopOK(-2); !ok || x != 2 {
		t.Errorf("expected (2, true), actual (%d, %t)", x, ok)
	}
	expectContents(t, l, 1, 3)

	empty := NewList[string]()
	if x := empty.Pop(); x != "" {
		t.Errorf("expected empty string, actual %q", x)
	}
	expectContents(t, empty)
}

func TestRemove(t *testing.T) {
	l := NewList(1, 2, 3, 2, 4)
	l.Remove(2)
	expectContents(t, l, 1, 3, 2, 4)
	l.Remove(999)
	expectContents(t, l, 1, 3, 2, 4)
	l.Remove(4)
	expectContents(t, l, 1, 3, 2)
	l.Remove(1)
	expectContents(t, l, 3, 2)

	s := NewList(7.7)
	s.Remove(7.7)
	expectContents(t, s)
	s.Remove(7.7)
	expectContents(t, s)
}

func TestIndex(t *testing.T) {
	l := NewList(5, 7, 5, 9)
	cases := []struct {
		x, start, expected int
	}{
		{5, 0, 0},
		{5, 1, 2},
		{9, 0, 3},
		{42, 0, NotFound},
		{5, 3, NotFound},
		{7, 4, NotFound},
		{5, -2, 2},
		{5, -100, 0},
	}
	for _, c := range cases {
		if actual := l.Index(c.x, c.start); actual != c.expected {
			t.Errorf("Index(%d, %d): expected %d, actual %d", c.x, c.start, c.expected, actual)
		}
	}

	f := NewList(5.5, 7.7, 5.5, 9.9)
	if f.Index(5.5, 1) != 2 || f.Index(42.42, 0) != NotFound {
		t.Error("float index failed")
	}
}

func TestCount(t *testing.T) {
	l := NewList(2, 2, 2, 3, 4)
	if l.Count(2) != 3 || l.Count(3) != 1 || l.Count(99) != 0 {
		t.Errorf("unexpected counts %d %d %d", l.Count(2), l.Count(3), l.Count(99))
	}
	s := NewList("x", "y", "x", "z", "x", "y")
	if s.Count("x") != 3 || s.Count("y") != 2 || s.Count("nope") != 0 {
		t.Error("string count failed")
	}
}

func TestExtend(t *testing.T) {
	a := NewList[int]()
	b := NewList(1, 2, 3)
	a.Extend(b)
	expectContents(t, a, 1, 2, 3)
	a.Set(0, 100)
	expectContents(t, b, 1, 2, 3)

	c := NewList(10, 20)
	c.Extend(NewList[int]())
	expectContents(t, c, 10, 20)

	e := NewList(7)
	e.Extend(NewList(8, 9))
	expectContents(t, e, 7, 8, 9)

	g := NewList(1, 2, 3, 4)
	g.Extend(g)
	expectContents(t, g, 1, 2, 3, 4, 1, 2, 3, 4)

	s := NewList("solo")
	s.Extend(s)
	expectContents(t, s, "solo", "solo")

	empty := NewList[int]()
	empty.Extend(empty)
	expectContents(t, empty)
}

func TestMixedEdits(t *testing.T) {
	l := NewList[int]()
	var shadow []int
	for i := 0; i < 50; i++ {
		switch i % 5 {
		case 0, 1:
			l.Append(i)
			shadow = append(shadow, i)
		case 2:
			pos := (i * 7) % (len(shadow) + 1)
			l.Insert(pos, i)
			shadow = slices.Insert(shadow, pos, i)
		case 3:
			pos := i % len(shadow)
			l.PopAt(pos)
			shadow = slices.Delete(shadow, pos, pos+1)
		case 4:
			v := shadow[len(shadow)/2]
			l.Remove(v)
			shadow = slices.Delete(shadow, len(shadow)/2, len(shadow)/2+1)
		}
		expectContents(t, l, shadow...)
	}
}

func TestString(t *testing.T) {
	if s := NewList(1, 2, 3).String(); s != "[1 2 3]" {
		t.Errorf("expected [1 2 3], actual %s", s)
	}
	if s := NewList[string]().String(); s != "[]" {
		t.Errorf("expected [], actual %s", s)
	}
}

func BenchmarkList_Append(b *testing.B) {
	l := NewList[int]()
	for i := 0; i < b.N; i++ {
		l.Append(i)
	}
}
