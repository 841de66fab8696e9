package physics

// DefaultTrailCapacity is the number of past positions kept per body.
const DefaultTrailCapacity = 80

// Trail is a fixed-capacity ring buffer of positions, read oldest first.
// Pushing onto a full trail evicts the oldest entry.
type Trail struct {
	data []Vec2
	head int // index of the oldest entry
	n    int
}

func NewTrail(capacity int) *Trail {
	if capacity < 1 {
		capacity = 1
	}
	return &Trail{data: make([]Vec2, capacity)}
}

func (t *Trail) Push(p Vec2) {
	c := len(t.data)
	if t.n < c {
		t.data[(t.head+t.n)%c] = p
		t.n++
		return
	}
	t.data[t.head] = p
	t.head = (t.head + 1) % c
}

func (t *Trail) Len() int { return t.n }
func (t *Trail) Cap() int { return len(t.data) }

// At returns the i-th entry, 0 being the oldest.
func (t *Trail) At(i int) Vec2 {
	return t.data[(t.head+i)%len(t.data)]
}

func (t *Trail) Clear() {
	t.head = 0
	t.n = 0
}
