package cart

import (
	"sync"
	"time"

	"storefront-sim/internal/domain/product"
	"storefront-sim/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrLineNotFound    = errs.New("cart line not found")
	ErrInvalidQuantity = product.ErrInvalidQuantity
)

const DefaultAddQuantity = 1

type Line struct {
	ProductID product.ID
	Quantity  int
}

// Ledger holds one cart's lines. Every unit on a line has been reserved from
// the catalog, so for each product: stock + held quantities == initial stock.
// Lock order is ledger then catalog.
type Ledger struct {
	mu        sync.Mutex
	id        uuid.UUID
	catalog   *product.Catalog
	lines     []*Line
	createdAt time.Time
	updatedAt time.Time
	now       func() time.Time
}

func NewLedger(id uuid.UUID, catalog *product.Catalog, now func() time.Time) *Ledger {
	if id == uuid.Nil {
		id = uuid.New()
	}
	if now == nil {
		now = time.Now
	}
	ts := now()
	return &Ledger{
		id:        id,
		catalog:   catalog,
		createdAt: ts,
		updatedAt: ts,
		now:       now,
	}
}

func (l *Ledger) ID() uuid.UUID { return l.id }

func (l *Ledger) CreatedAt() time.Time { return l.createdAt }

func (l *Ledger) UpdatedAt() time.Time {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.updatedAt
}

// AddLine reserves qty units and adds them to the product's line, creating it if needed.
// Only qty is checked against stock; units the line already holds are not counted again.
func (l *Ledger) AddLine(id product.ID, qty int) error {
	if qty <= 0 {
		return errs.Wrapf(ErrInvalidQuantity, "add %d of %s", qty, id)
	}
	l.mu.Lock()
	defer l.mu.Unlock()

	if err := l.catalog.Reserve(id, qty); err != nil {
		return err
	}
	if line := l.findLocked(id); line != nil {
		line.Quantity += qty
	} else {
		l.lines = append(l.lines, &Line{ProductID: id, Quantity: qty})
	}
	l.touchLocked()
	return nil
}

// ChangeQuantity applies delta to an existing line. A resulting quantity of
// zero or less removes the line and returns every held unit to stock.
func (l *Ledger) ChangeQuantity(id product.ID, delta int) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	line := l.findLocked(id)
	if line == nil {
		return errs.Wrapf(ErrLineNotFound, "product %s", id)
	}

	next := line.Quantity + delta
	switch {
	case delta == 0:
		return nil
	case delta > 0:
		if err := l.catalog.Reserve(id, delta); err != nil {
			return err
		}
		line.Quantity = next
	case next <= 0:
		if err := l.catalog.Release(id, line.Quantity); err != nil {
			return err
		}
		l.removeLocked(id)
	default:
		if err := l.catalog.Release(id, -delta); err != nil {
			return err
		}
		line.Quantity = next
	}
	l.touchLocked()
	return nil
}

// RemoveLine deletes the line and returns its full quantity to stock.
func (l *Ledger) RemoveLine(id product.ID) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	line := l.findLocked(id)
	if line == nil {
		return errs.Wrapf(ErrLineNotFound, "product %s", id)
	}
	if err := l.catalog.Release(id, line.Quantity); err != nil {
		return err
	}
	l.removeLocked(id)
	l.touchLocked()
	return nil
}

// Clear empties the cart, returning every held unit to stock.
func (l *Ledger) Clear() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	for len(l.lines) > 0 {
		line := l.lines[0]
		if err := l.catalog.Release(line.ProductID, line.Quantity); err != nil {
			return err
		}
		l.lines = l.lines[1:]
	}
	l.lines = nil
	l.touchLocked()
	return nil
}

// Lines returns a copy of the lines in insertion order.
func (l *Ledger) Lines() []Line {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]Line, len(l.lines))
	for i, line := range l.lines {
		out[i] = *line
	}
	return out
}

func (l *Ledger) Quantity(id product.ID) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	if line := l.findLocked(id); line != nil {
		return line.Quantity
	}
	return 0
}

func (l *Ledger) TotalQuantity() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	total := 0
	for _, line := range l.lines {
		total += line.Quantity
	}
	return total
}

func (l *Ledger) IsEmpty() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.lines) == 0
}

func (l *Ledger) findLocked(id product.ID) *Line {
	for _, line := range l.lines {
		if line.ProductID == id {
			return line
		}
	}
	return nil
}

func (l *Ledger) removeLocked(id product.ID) {
	for i, line := range l.lines {
		if line.ProductID == id {
			l.lines = append(l.lines[:i], l.lines[i+1:]...)
			return
		}
	}
}

func (l *Ledger) touchLocked() {
	l.updatedAt = l.now()
}
