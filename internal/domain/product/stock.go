package product

const (
	StockWarningThreshold = 5
	LowStockThreshold     = 2
)

type StockStatus string

const (
	StockSoldOut   StockStatus = "sold_out"
	StockCritical  StockStatus = "critical"
	StockLow       StockStatus = "low"
	StockAvailable StockStatus = "in_stock"
)

func StatusOf(stock int) StockStatus {
	switch {
	case stock <= 0:
		return StockSoldOut
	case stock <= LowStockThreshold:
		return StockCritical
	case stock <= StockWarningThreshold:
		return StockLow
	default:
		return StockAvailable
	}
}

type StockReport struct {
	LowStock   []Snapshot
	SoldOut    []Snapshot
	TotalStock int
}

// Report lists products running low (1..StockWarningThreshold) and sold out.
func (c *Catalog) Report() StockReport {
	report := StockReport{}
	for _, s := range c.List() {
		report.TotalStock += s.Stock
		switch {
		case s.Stock == 0:
			report.SoldOut = append(report.SoldOut, s)
		case s.Stock <= StockWarningThreshold:
			report.LowStock = append(report.LowStock, s)
		}
	}
	return report
}
