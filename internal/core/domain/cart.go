package domain

// A CartLine is one product's entry in a cart.
type CartLine struct {
	Product  Product
	Quantity int
}

// A Cart holds the session's lines, at most one per product id,
// in the order products were first added.
//
// A cart has a single writer; callers serialize access.
type Cart struct {
	lines []CartLine
}

func NewCart() *Cart {
	return &Cart{}
}

// AddItem increments the quantity of an existing line or creates
// a new line with quantity 1. It never fails.
func (c *Cart) AddItem(p Product) {
	for i := range c.lines {
		if c.lines[i].Product.ID == p.ID {
			c.lines[i].Quantity++
			return
		}
	}
	c.lines = append(c.lines, CartLine{Product: p, Quantity: 1})
}

// RemoveItem decrements the line quantity, deleting the line when
// the quantity reaches zero. Unknown ids are a no-op.
func (c *Cart) RemoveItem(productID int64) {
	for i := range c.lines {
		if c.lines[i].Product.ID != productID {
			continue
		}
		if c.lines[i].Quantity > 1 {
			c.lines[i].Quantity--
			return
		}
		c.deleteLine(i)
		return
	}
}

// SetQuantity sets the line quantity to exactly quantity.
// A quantity of zero or below deletes the line.
func (c *Cart) SetQuantity(productID int64, quantity int) {
	for i := range c.lines {
		if c.lines[i].Product.ID != productID {
			continue
		}
		if quantity <= 0 {
			c.deleteLine(i)
			return
		}
		c.lines[i].Quantity = quantity
		return
	}
}

// Clear empties all lines unconditionally.
func (c *Cart) Clear() {
	c.lines = nil
}

func (c *Cart) Lines() []CartLine {
	ls := make([]CartLine, len(c.lines))
	copy(ls, c.lines)
	return ls
}

// TotalItems is the sum of quantities across all lines.
func (c *Cart) TotalItems() int {
	var n int
	for _, l := range c.lines {
		n += l.Quantity
	}
	return n
}

// TotalPrice is the sum of effective unit price times quantity
// across all lines.
func (c *Cart) TotalPrice() float64 {
	var total float64
	for _, l := range c.lines {
		total += l.Product.EffectivePrice() * float64(l.Quantity)
	}
	return total
}

func (c *Cart) deleteLine(i int) {
	c.lines = append(c.lines[:i], c.lines[i+1:]...)
}

// A CartSnapshot is the derived read model handed to the
// presentation boundary.
type CartSnapshot struct {
	Lines      []CartLine
	TotalItems int
	TotalPrice float64
}

func (c *Cart) Snapshot() CartSnapshot {
	return CartSnapshot{
		Lines:      c.Lines(),
		TotalItems: c.TotalItems(),
		TotalPrice: c.TotalPrice(),
	}
}
