package types

import (
	"fmt"
	"strings"
)

// NotFound is returned by Index when no element matches.
const NotFound = -1

// IndexError is the panic value of Get, Set and At when position
// does not resolve to an element.
type IndexError struct {
	Position int
	Len      int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("list index %d out of range for length %d", e.Position, e.Len)
}

type node[T comparable] struct {
	item T
	next *node[T]
	prev *node[T]
}

// List is a doubly linked sequence with Python list semantics.
// Positions are signed: 0 is the first element, -1 the last.
// The zero value is an empty list ready to use.
type List[T comparable] struct {
	head *node[T]
	tail *node[T]
	size int
}

func NewList[T comparable](items ...T) *List[T] {
	l := &List[T]{}
	for _, item := range items {
		l.Append(item)
	}
	return l
}

// Copy returns a deep copy of l.
func (l *List[T]) Copy() *List[T] {
	dst := &List[T]{}
	dst.copyFrom(l)
	return dst
}

// Assign replaces the contents of l with a deep copy of source.
// Assigning a list to itself leaves it unchanged.
func (l *List[T]) Assign(source *List[T]) {
	if l == source {
		return
	}
	l.Clear()
	l.copyFrom(source)
}

func (l *List[T]) copyFrom(source *List[T]) {
	var last *node[T]
	for n := source.head; n != nil; n = n.next {
		e := &node[T]{item: n.item, prev: last}
		if last == nil {
			l.head = e
		} else {
			last.next = e
		}
		last = e
	}
	l.tail = last
	l.size = source.size
}

func (l *List[T]) Len() int {
	return l.size
}

func (l *List[T]) IsEmpty() bool {
	return l.size == 0
}

// find returns the node at position or nil if position is outside [-size, size).
// Non-negative positions walk from head, negative ones from tail.
func (l *List[T]) find(position int) *node[T] {
	if position >= l.size || position < -l.size {
		return nil
	}
	if position >= 0 {
		n := l.head
		for i := 0; i < position; i++ {
			n = n.next
		}
		return n
	}
	n := l.tail
	for i := -1; i > position; i-- {
		n = n.prev
	}
	return n
}

func (l *List[T]) mustFind(position int) *node[T] {
	n := l.find(position)
	if n == nil {
		panic(&IndexError{Position: position, Len: l.size})
	}
	return n
}

// Get returns the element at position. It panics with *IndexError
// if position is outside [-Len(), Len()).
func (l *List[T]) Get(position int) T {
	return l.mustFind(position).item
}

// Set replaces the element at position. It panics like Get.
func (l *List[T]) Set(position int, x T) {
	l.mustFind(position).item = x
}

// At returns a pointer to the element stored at position for in-place edits.
// The pointer is valid until the element is removed. It panics like Get.
func (l *List[T]) At(position int) *T {
	return &l.mustFind(position).item
}

func (l *List[T]) Clear() {
	for l.head != nil {
		n := l.head
		l.head = n.next
		n.next = nil
		n.prev = nil
	}
	l.tail = nil
	l.size = 0
}

func (l *List[T]) Append(x T) {
	e := &node[T]{item: x}
	if l.size == 0 {
		l.head = e
		l.tail = e
	} else {
		e.prev = l.tail
		l.tail.next = e
		l.tail = e
	}
	l.size++
}

// Insert puts x before the element at position. Negative positions count
// from the end; positions past either end are clamped, so Insert never fails.
func (l *List[T]) Insert(position int, x T) {
	if position < 0 {
		position += l.size
	}
	if position < 0 {
		position = 0
	}
	if position >= l.size {
		l.Append(x)
		return
	}

	current := l.find(position)
	previous := current.prev
	e := &node[T]{item: x, prev: previous, next: current}
	if previous == nil {
		l.head = e
	} else {
		previous.next = e
	}
	current.prev = e
	l.size++
}

// Pop removes and returns the last element, or the zero value if l is empty.
func (l *List[T]) Pop() T {
	return l.delete(-1)
}

// PopAt removes and returns the element at position. An invalid position
// leaves the list unchanged and returns the zero value, which callers cannot
// tell apart from a stored zero value; use PopOK when that matters.
func (l *List[T]) PopAt(position int) T {
	return l.delete(position)
}

// PopOK is PopAt with an explicit report of whether anything was removed.
func (l *List[T]) PopOK(position int) (T, bool) {
	if position < 0 {
		position += l.size
	}
	if position < 0 || position >= l.size {
		var zero T
		return zero, false
	}
	return l.delete(position), true
}

func (l *List[T]) delete(position int) T {
	if position < 0 {
		position += l.size
	}
	if position < 0 || position >= l.size {
		var zero T
		return zero
	}
	n := l.find(position)
	l.unlink(n)
	return n.item
}

func (l *List[T]) unlink(n *node[T]) {
	if n.prev == nil {
		l.head = n.next
	} else {
		n.prev.next = n.next
	}
	if n.next == nil {
		l.tail = n.prev
	} else {
		n.next.prev = n.prev
	}
	n.next = nil
	n.prev = nil
	l.size--
}

// Remove deletes the first element equal to x. It does nothing if x is absent.
func (l *List[T]) Remove(x T) {
	for n := l.head; n != nil; n = n.next {
		if n.item == x {
			l.unlink(n)
			return
		}
	}
}

// Index returns the position of the first element equal to x at or after
// start, or NotFound. A negative start counts from the end.
func (l *List[T]) Index(x T, start int) int {
	if start < 0 {
		start += l.size
		if start < 0 {
			start = 0
		}
	}
	i := start
	for n := l.find(start); n != nil; n = n.next {
		if n.item == x {
			return i
		}
		i++
	}
	return NotFound
}

func (l *List[T]) Count(x T) int {
	count := 0
	for n := l.head; n != nil; n = n.next {
		if n.item == x {
			count++
		}
	}
	return count
}

// Extend appends a copy of every element of other. Extending a list with
// itself doubles it.
func (l *List[T]) Extend(other *List[T]) {
	// other may be l, so stop after the elements present before the first append
	n := other.head
	for i := other.size; i > 0; i-- {
		l.Append(n.item)
		n = n.next
	}
}

// Values returns the elements in order.
func (l *List[T]) Values() []T {
	values := make([]T, 0, l.size)
	for n := l.head; n != nil; n = n.next {
		values = append(values, n.item)
	}
	return values
}

func (l *List[T]) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for n := l.head; n != nil; n = n.next {
		if n != l.head {
			sb.WriteByte(' ')
		}
		fmt.Fprint(&sb, n.item)
	}
	sb.WriteByte(']')
	return sb.String()
}
