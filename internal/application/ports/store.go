// Package ports declara los contratos que los casos de uso esperan de la
// infraestructura, al estilo del TxRunner del motor de inventario.
package ports

import "github.com/jhoicas/pharma-erp-api/internal/domain/repository"

// LedgerStore acceso atómico a los ledgers en memoria. Modelo de un solo
// escritor lógico: cada mutación corre a término bajo un candado grueso antes
// de aceptar la siguiente.
type LedgerStore interface {
	// Update ejecuta fn con acceso exclusivo de escritura. Si fn devuelve
	// error la operación se considera no ocurrida (fn no debe dejar estado a
	// medias antes de fallar).
	Update(fn func(l *repository.Ledgers) error) error

	// UpdateInventory igual que Update, pero al terminar fn sin error
	// regenera el conjunto de alertas dentro del mismo candado. Es el gancho
	// post-mutación explícito: toda mutación de inventario debe pasar por
	// aquí para que el motor de alertas observe un snapshot consistente.
	UpdateInventory(fn func(l *repository.Ledgers) error) error

	// View ejecuta fn con acceso de solo lectura; puede correr en paralelo
	// con otras lecturas.
	View(fn func(l *repository.Ledgers) error) error
}
