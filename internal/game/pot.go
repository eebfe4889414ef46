package game

// Pot is the single shared pot for a hand. Every seated player holds a
// reference to the same Pot; cloning a table rewires the copies onto a
// fresh one. Fixed-limit play with a per-round cap keeps the model to
// one pot, so there is no side-pot ledger here.
type Pot struct {
	total int
}

// Add pays chips into the pot.
func (p *Pot) Add(chips int) {
	p.total += chips
}

// Total returns the chips currently in the pot.
func (p *Pot) Total() int {
	return p.total
}

// Take empties the pot and returns what was in it.
func (p *Pot) Take() int {
	t := p.total
	p.total = 0
	return t
}

// Clone returns an independent copy.
func (p *Pot) Clone() *Pot {
	return &Pot{total: p.total}
}
