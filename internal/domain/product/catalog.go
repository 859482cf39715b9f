package product

import (
	"sync"

	"storefront-sim/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

var (
	ErrProductNotFound   = errs.New("product not found")
	ErrOutOfStock        = errs.New("insufficient stock")
	ErrInvalidQuantity   = errs.New("quantity must be positive")
	ErrDuplicateProduct  = errs.New("duplicate product id")
	ErrNegativeStock     = errs.New("stock must not be negative")
	ErrStockOverReleased = errs.New("released quantity exceeds reserved stock")
)

// Seed is one catalog entry at construction time.
type Seed struct {
	Product *Product
	Stock   int
}

// Snapshot is a point-in-time copy of a product and its stock.
type Snapshot struct {
	ID            ID
	Name          string
	OriginalPrice decimal.Decimal
	Category      string
	Stock         int
}

func (s Snapshot) Status() StockStatus { return StatusOf(s.Stock) }

// Catalog owns the shared stock pool. Every stock change goes through
// Reserve or Release, each of which checks and mutates under one lock.
type Catalog struct {
	mu       sync.RWMutex
	products []*Product
	index    map[ID]*Product
	stock    map[ID]int
	initial  map[ID]int
}

func NewCatalog(seeds []Seed) (*Catalog, error) {
	c := &Catalog{
		products: make([]*Product, 0, len(seeds)),
		index:    make(map[ID]*Product, len(seeds)),
		stock:    make(map[ID]int, len(seeds)),
		initial:  make(map[ID]int, len(seeds)),
	}
	for _, s := range seeds {
		if s.Product == nil {
			continue
		}
		id := s.Product.ID()
		if _, dup := c.index[id]; dup {
			return nil, errs.Wrapf(ErrDuplicateProduct, "product %s", id)
		}
		if s.Stock < 0 {
			return nil, errs.Wrapf(ErrNegativeStock, "product %s", id)
		}
		c.products = append(c.products, s.Product)
		c.index[id] = s.Product
		c.stock[id] = s.Stock
		c.initial[id] = s.Stock
	}
	return c, nil
}

func (c *Catalog) Get(id ID) (Snapshot, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	p, ok := c.index[id]
	if !ok {
		return Snapshot{}, errs.Wrapf(ErrProductNotFound, "product %s", id)
	}
	return c.snapshotLocked(p), nil
}

func (c *Catalog) Contains(id ID) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	_, ok := c.index[id]
	return ok
}

// List returns every product in catalog order.
func (c *Catalog) List() []Snapshot {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]Snapshot, 0, len(c.products))
	for _, p := range c.products {
		out = append(out, c.snapshotLocked(p))
	}
	return out
}

// InStock returns products with stock > 0 in catalog order.
func (c *Catalog) InStock() []Snapshot {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]Snapshot, 0, len(c.products))
	for _, p := range c.products {
		if c.stock[p.ID()] > 0 {
			out = append(out, c.snapshotLocked(p))
		}
	}
	return out
}

func (c *Catalog) Stock(id ID) (int, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	n, ok := c.stock[id]
	if !ok {
		return 0, errs.Wrapf(ErrProductNotFound, "product %s", id)
	}
	return n, nil
}

// InitialStock is the stock the product was seeded with.
func (c *Catalog) InitialStock(id ID) (int, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	n, ok := c.initial[id]
	if !ok {
		return 0, errs.Wrapf(ErrProductNotFound, "product %s", id)
	}
	return n, nil
}

func (c *Catalog) TotalStock() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	total := 0
	for _, n := range c.stock {
		total += n
	}
	return total
}

// Reserve takes qty units out of stock, or fails without touching stock.
func (c *Catalog) Reserve(id ID, qty int) error {
	if qty <= 0 {
		return errs.Wrapf(ErrInvalidQuantity, "reserve %d of %s", qty, id)
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	available, ok := c.stock[id]
	if !ok {
		return errs.Wrapf(ErrProductNotFound, "product %s", id)
	}
	if available < qty {
		return errs.Wrapf(ErrOutOfStock, "product %s: requested %d, available %d", id, qty, available)
	}
	c.stock[id] = available - qty
	return nil
}

// Release puts qty units back into stock.
func (c *Catalog) Release(id ID, qty int) error {
	if qty <= 0 {
		return errs.Wrapf(ErrInvalidQuantity, "release %d of %s", qty, id)
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	current, ok := c.stock[id]
	if !ok {
		return errs.Wrapf(ErrProductNotFound, "product %s", id)
	}
	if current+qty > c.initial[id] {
		return errs.Wrapf(ErrStockOverReleased, "product %s: release %d onto %d", id, qty, current)
	}
	c.stock[id] = current + qty
	return nil
}

func (c *Catalog) snapshotLocked(p *Product) Snapshot {
	return Snapshot{
		ID:            p.ID(),
		Name:          p.Name(),
		OriginalPrice: p.OriginalPrice(),
		Category:      p.Category(),
		Stock:         c.stock[p.ID()],
	}
}
