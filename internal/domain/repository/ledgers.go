// Package repository define la forma de los ledgers de dominio que el
// almacén entrega a los casos de uso. Todo vive en memoria volátil; no hay
// capa de persistencia detrás.
package repository

import "github.com/jhoicas/pharma-erp-api/internal/domain/entity"

// Ledgers snapshot mutable de los cuatro ledgers del dominio más las alertas
// vivas y los snapshots comerciales de solo lectura. Los casos de uso lo
// reciben con acceso exclusivo dentro de Update/View del almacén.
type Ledgers struct {
	Items        []entity.StockItem
	Batches      []*entity.ProductionBatch
	WasteEvents  []*entity.WasteEvent
	Alerts       []entity.Alert
	SalesOrders  []entity.SalesOrder
	Transactions []entity.Transaction
}

// FindItem busca un ítem por id.
func (l *Ledgers) FindItem(id string) (entity.StockItem, bool) {
	for _, it := range l.Items {
		if it.Core().ID == id {
			return it, true
		}
	}
	return nil, false
}

// FindBatch busca un lote de producción por id.
func (l *Ledgers) FindBatch(id string) (*entity.ProductionBatch, bool) {
	for _, b := range l.Batches {
		if b.ID == id {
			return b, true
		}
	}
	return nil, false
}

// FindWasteEvent busca un registro de merma por id.
func (l *Ledgers) FindWasteEvent(id string) (*entity.WasteEvent, bool) {
	for _, w := range l.WasteEvents {
		if w.ID == id {
			return w, true
		}
	}
	return nil, false
}

// FindAlert busca una alerta por id y devuelve un puntero al elemento del
// slice, de modo que el llamador pueda marcarla reconocida en sitio.
func (l *Ledgers) FindAlert(id string) (*entity.Alert, bool) {
	for i := range l.Alerts {
		if l.Alerts[i].ID == id {
			return &l.Alerts[i], true
		}
	}
	return nil, false
}
