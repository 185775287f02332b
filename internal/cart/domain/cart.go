package domain

// Cart maps product ids to quantities. The visitor's session cookie owns the
// state, so the type must round-trip cleanly through JSON (Go encodes
// int-keyed maps with string keys, matching the persisted session shape).
type Cart map[int]int

func New() Cart {
	return Cart{}
}

// Add increments the quantity for productID, creating the entry if absent.
// No bounds are enforced at this layer.
func (c Cart) Add(productID, qty int) {
	c[productID] += qty
}

// Set overwrites the quantity. Zero or negative removes the entry; this is
// the only removal-by-quantity path.
func (c Cart) Set(productID, qty int) {
	if qty <= 0 {
		delete(c, productID)
		return
	}
	c[productID] = qty
}

func (c Cart) Remove(productID int) {
	delete(c, productID)
}

func (c Cart) Clear() {
	clear(c)
}

func (c Cart) Empty() bool {
	return len(c) == 0
}
