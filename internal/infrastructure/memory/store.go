// Package memory implementa el almacén de dominio: ledgers en memoria
// volátil detrás de un candado grueso, un solo escritor lógico. Cumple el
// mismo papel que el TxRunner de una capa de base de datos, sin base de
// datos.
package memory

import (
	"sync"
	"time"

	"github.com/jhoicas/pharma-erp-api/internal/domain/repository"
	"github.com/jhoicas/pharma-erp-api/internal/domain/stock"
)

// AlertRegenerator recalcula el conjunto de alertas a partir del snapshot
// actual. El almacén lo invoca de forma síncrona dentro del candado de
// escritura: la regeneración nunca ve una cantidad a medio actualizar ni un
// status desfasado.
type AlertRegenerator interface {
	Regenerate(l *repository.Ledgers, now time.Time)
}

// Store almacén en memoria de los ledgers. Las lecturas pueden ser
// concurrentes entre sí; las escrituras se serializan con las lecturas.
type Store struct {
	mu      sync.RWMutex
	ledgers repository.Ledgers
	regen   AlertRegenerator
	now     stock.NowFunc
}

// NewStore construye el almacén. regen puede ser nil en tests que no ejercitan
// alertas; now es obligatorio (inyectable para determinismo).
func NewStore(regen AlertRegenerator, now stock.NowFunc) *Store {
	if now == nil {
		now = time.Now
	}
	return &Store{regen: regen, now: now}
}

// Update ejecuta fn con acceso exclusivo a los ledgers.
func (s *Store) Update(fn func(l *repository.Ledgers) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(&s.ledgers)
}

// UpdateInventory ejecuta fn con acceso exclusivo y, si fn no falla, regenera
// las alertas antes de soltar el candado. La dependencia mutación→alertas
// queda visible en la firma, no escondida en un recálculo implícito.
func (s *Store) UpdateInventory(fn func(l *repository.Ledgers) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := fn(&s.ledgers); err != nil {
		return err
	}
	if s.regen != nil {
		s.regen.Regenerate(&s.ledgers, s.now())
	}
	return nil
}

// View ejecuta fn con acceso de solo lectura. fn no debe retener referencias
// a los ledgers más allá de la llamada.
func (s *Store) View(fn func(l *repository.Ledgers) error) error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return fn(&s.ledgers)
}
