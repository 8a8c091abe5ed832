package report

import (
	"time"

	"github.com/google/uuid"

	"github.com/gaborage/stmtkit/database"
)

// SalesRow is one row of the sales report.
type SalesRow struct {
	ID       int64     `db:"id"`
	Region   string    `db:"region"`
	Amount   float64   `db:"amount"`
	ClosedAt time.Time `db:"closed_at"`
}

// InventoryRow is one row of the inventory report. Level classifies the stock (low, normal, high).
type InventoryRow struct {
	SKU       string `db:"sku"`
	Warehouse string `db:"warehouse"`
	Quantity  int    `db:"quantity"`
	Level     string `db:"level"`
}

// SalesReport lists closed sales, largest first.
type SalesReport struct {
	id uuid.UUID
}

// NewSalesReport creates a sales report with a fresh identifier.
func NewSalesReport() *SalesReport {
	return &SalesReport{id: uuid.New()}
}

// ID implements Document
func (r *SalesReport) ID() uuid.UUID { return r.id }

// Kind implements Document
func (r *SalesReport) Kind() Kind { return Sales }

// Title implements Document
func (r *SalesReport) Title() string { return "sales report" }

// Query implements Document
func (r *SalesReport) Query(f *database.Factory) (*database.Statement, error) {
	cols, err := database.Columns(&SalesRow{})
	if err != nil {
		return nil, err
	}
	stmt, err := f.New("sales")
	if err != nil {
		return nil, err
	}
	stmt.Select(cols...).
		Where("status = 'closed'").
		OrderBy("amount", database.Descending)
	return stmt, stmt.Err()
}

// InventoryReport lists items running low, ordered by SKU.
type InventoryReport struct {
	id uuid.UUID
}

// NewInventoryReport creates an inventory report with a fresh identifier.
func NewInventoryReport() *InventoryReport {
	return &InventoryReport{id: uuid.New()}
}

// ID implements Document
func (r *InventoryReport) ID() uuid.UUID { return r.id }

// Kind implements Document
func (r *InventoryReport) Kind() Kind { return Inventory }

// Title implements Document
func (r *InventoryReport) Title() string { return "inventory report" }

// Query implements Document
func (r *InventoryReport) Query(f *database.Factory) (*database.Statement, error) {
	cols, err := database.Columns(&InventoryRow{})
	if err != nil {
		return nil, err
	}
	stmt, err := f.New("inventory")
	if err != nil {
		return nil, err
	}
	stmt.Select(cols...).
		Where("quantity < 10").
		OrderBy("sku", database.Ascending)
	return stmt, stmt.Err()
}

// SalesCreator creates SalesReport documents.
type SalesCreator struct{}

// CreateReport implements Creator
func (SalesCreator) CreateReport() Document { return NewSalesReport() }

// InventoryCreator creates InventoryReport documents.
type InventoryCreator struct{}

// CreateReport implements Creator
func (InventoryCreator) CreateReport() Document { return NewInventoryReport() }
