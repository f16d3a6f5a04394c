package mocks

import (
	"strings"

	"github.com/mcoot/connectn/internal/dependencies/random"
)

// MockRandom replays queued results instead of generating them.
// With nothing queued, Intn returns 0 and String repeats the first alphabet character.
type MockRandom struct {
	ints    queue[int]
	strings queue[string]

	// IntnBounds records the n passed to each Intn call
	IntnBounds []int
}

var _ random.Random = (*MockRandom)(nil)

// NewMockRandom creates a new MockRandom
func NewMockRandom() *MockRandom {
	return &MockRandom{}
}

func (r *MockRandom) Intn(n int) int {
	r.IntnBounds = append(r.IntnBounds, n)
	v, _ := r.ints.pop()
	return v
}

func (r *MockRandom) String(length int, alphabet string) string {
	if v, ok := r.strings.pop(); ok {
		return v
	}
	if length <= 0 || alphabet == "" {
		return ""
	}
	return strings.Repeat(alphabet[:1], length)
}

// QueueIntn adds values to the Intn result queue
func (r *MockRandom) QueueIntn(values ...int) {
	r.ints.push(values...)
}

// QueueString adds values to the String result queue
func (r *MockRandom) QueueString(values ...string) {
	r.strings.push(values...)
}

type queue[T any] struct {
	items []T
}

func (q *queue[T]) push(values ...T) {
	q.items = append(q.items, values...)
}

func (q *queue[T]) pop() (T, bool) {
	var zero T
	if len(q.items) == 0 {
		return zero, false
	}
	v := q.items[0]
	q.items = q.items[1:]
	return v, true
}
