package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// SalesOrderItem línea de una orden de venta.
type SalesOrderItem struct {
	ProductID   string
	ProductName string
	Quantity    int64
	UnitPrice   decimal.Decimal
	Discount    decimal.Decimal
	Total       decimal.Decimal
}

// SalesOrder orden de venta. Pertenece al módulo comercial; el núcleo de
// inventario solo la consume como snapshot de lectura para la analítica de
// rentabilidad.
type SalesOrder struct {
	ID             string
	CustomerID     string
	CustomerName   string
	OrderDate      time.Time
	Status         string
	Items          []SalesOrderItem
	Subtotal       decimal.Decimal
	DiscountAmount decimal.Decimal
	TaxAmount      decimal.Decimal
	TotalAmount    decimal.Decimal
	PaymentStatus  string
	SalesPerson    string
}
