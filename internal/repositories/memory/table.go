package memory

// table is the keyed collection underlying every catalog. Ids start at 1
// and are assigned counter-style, so they are dense, monotonic and never
// reused. There is no remove operation.
//
// table does no locking itself; the owning repository serializes access
// with a single mutex per catalog, because compound operations (uniqueness
// check then insert, find row then accumulate) must not interleave.
type table[T any] struct {
	rows   map[uint]*T
	order  []uint
	nextID uint
}

func newTable[T any]() *table[T] {
	return &table[T]{
		rows:   make(map[uint]*T),
		nextID: 1,
	}
}

// insert stores row under a fresh id, reported to the caller through
// setID so the row's own id field stays in step with the key.
func (t *table[T]) insert(row *T, setID func(*T, uint)) *T {
	id := t.nextID
	t.nextID++
	setID(row, id)
	t.rows[id] = row
	t.order = append(t.order, id)
	return row
}

func (t *table[T]) get(id uint) (*T, bool) {
	row, ok := t.rows[id]
	return row, ok
}

// list returns all rows in insertion order.
func (t *table[T]) list() []*T {
	out := make([]*T, 0, len(t.order))
	for _, id := range t.order {
		out = append(out, t.rows[id])
	}
	return out
}

// find returns the first row (in insertion order) matching pred.
func (t *table[T]) find(pred func(*T) bool) (*T, bool) {
	for _, id := range t.order {
		if pred(t.rows[id]) {
			return t.rows[id], true
		}
	}
	return nil, false
}

// filter returns all rows (in insertion order) matching pred.
func (t *table[T]) filter(pred func(*T) bool) []*T {
	var out []*T
	for _, id := range t.order {
		if pred(t.rows[id]) {
			out = append(out, t.rows[id])
		}
	}
	return out
}

func (t *table[T]) len() int {
	return len(t.rows)
}
