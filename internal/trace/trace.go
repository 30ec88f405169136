package trace

// Trace is an ordered sequence of points; insertion order defines the drawn path.
type Trace interface {
	Append(pt Point)
	// Points returns a copy, oldest first.
	Points() []Point
	Len() int
	Clear()
	// Translate shifts every stored point, used when the screen center moves.
	Translate(dx, dy float32)
}

// New returns an unbounded Buffer for limit <= 0, otherwise a Ring of that size.
func New(limit int) Trace {
	if limit <= 0 {
		return NewBuffer()
	}
	return NewRing(limit)
}

// Buffer grows without bound until Clear.
type Buffer struct {
	points []Point
}

func NewBuffer() *Buffer {
	return &Buffer{points: make([]Point, 0, 1024)}
}

func (b *Buffer) Append(pt Point) { b.points = append(b.points, pt) }

func (b *Buffer) Points() []Point {
	out := make([]Point, len(b.points))
	copy(out, b.points)
	return out
}

func (b *Buffer) Len() int { return len(b.points) }

func (b *Buffer) Clear() { b.points = b.points[:0] }

func (b *Buffer) Translate(dx, dy float32) {
	for i := range b.points {
		b.points[i].X += dx
		b.points[i].Y += dy
	}
}

// Ring keeps the newest len(buffer) points, overwriting the oldest.
type Ring struct {
	buffer    []Point
	nextIndex int
	count     int
}

func NewRing(size int) *Ring {
	if size < 1 {
		size = 1
	}
	return &Ring{buffer: make([]Point, size)}
}

func (r *Ring) Append(pt Point) {
	r.buffer[r.nextIndex] = pt
	r.nextIndex++
	if r.nextIndex >= len(r.buffer) {
		r.nextIndex = 0
	}
	if r.count < len(r.buffer) {
		r.count++
	}
}

func (r *Ring) Points() []Point {
	out := make([]Point, 0, r.count)
	start := r.nextIndex - r.count
	if start < 0 {
		start += len(r.buffer)
	}
	for i := 0; i < r.count; i++ {
		out = append(out, r.buffer[(start+i)%len(r.buffer)])
	}
	return out
}

func (r *Ring) Len() int { return r.count }

func (r *Ring) Cap() int { return len(r.buffer) }

func (r *Ring) Clear() {
	r.nextIndex = 0
	r.count = 0
}

func (r *Ring) Translate(dx, dy float32) {
	for i := range r.buffer {
		r.buffer[i].X += dx
		r.buffer[i].Y += dy
	}
}
