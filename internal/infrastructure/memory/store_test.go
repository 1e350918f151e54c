package memory_test

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/pharma-erp-api/internal/domain/entity"
	"github.com/jhoicas/pharma-erp-api/internal/domain/repository"
	"github.com/jhoicas/pharma-erp-api/internal/infrastructure/memory"
)

// regenSpy cuenta regeneraciones y registra el instante recibido.
type regenSpy struct {
	calls int
	last  time.Time
}

func (r *regenSpy) Regenerate(l *repository.Ledgers, now time.Time) {
	r.calls++
	r.last = now
	l.Alerts = append(l.Alerts, entity.Alert{ID: "regenerada"})
}

var testNow = time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)

func TestUpdateInventory_RegeneraDentroDelCandado(t *testing.T) {
	spy := &regenSpy{}
	store := memory.NewStore(spy, func() time.Time { return testNow })

	err := store.UpdateInventory(func(l *repository.Ledgers) error { return nil })
	require.NoError(t, err)

	assert.Equal(t, 1, spy.calls, "toda mutación de inventario regenera alertas")
	assert.Equal(t, testNow, spy.last, "la regeneración usa el reloj inyectado")

	require.NoError(t, store.View(func(l *repository.Ledgers) error {
		assert.Len(t, l.Alerts, 1)
		return nil
	}))
}

func TestUpdateInventory_NoRegeneraSiFalla(t *testing.T) {
	spy := &regenSpy{}
	store := memory.NewStore(spy, func() time.Time { return testNow })

	boom := errors.New("boom")
	err := store.UpdateInventory(func(l *repository.Ledgers) error { return boom })
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 0, spy.calls, "una mutación fallida no dispara regeneración")
}

func TestUpdate_NoRegenera(t *testing.T) {
	spy := &regenSpy{}
	store := memory.NewStore(spy, func() time.Time { return testNow })

	// Reconocer alertas o recibir snapshots comerciales no es mutación de
	// inventario: no regenera.
	require.NoError(t, store.Update(func(l *repository.Ledgers) error { return nil }))
	assert.Equal(t, 0, spy.calls)
}
