package alerts_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/pharma-erp-api/internal/application/alerts"
	"github.com/jhoicas/pharma-erp-api/internal/domain"
	"github.com/jhoicas/pharma-erp-api/internal/domain/entity"
	"github.com/jhoicas/pharma-erp-api/internal/domain/repository"
	"github.com/jhoicas/pharma-erp-api/internal/infrastructure/memory"
)

func seedAlert(t *testing.T, store *memory.Store, a entity.Alert) {
	t.Helper()
	require.NoError(t, store.Update(func(l *repository.Ledgers) error {
		l.Alerts = append(l.Alerts, a)
		return nil
	}))
}

func TestAcknowledge_Monotono(t *testing.T) {
	store := memory.NewStore(nil, nil)
	uc := alerts.NewUseCase(store)
	seedAlert(t, store, entity.Alert{ID: "a-1", Kind: entity.AlertLowStock})

	require.NoError(t, uc.Acknowledge("a-1"))

	// Reconocer dos veces no es error y no cambia nada.
	require.NoError(t, uc.Acknowledge("a-1"),
		"reconocer una alerta ya reconocida debe ser no-op, no error")

	list, err := uc.List()
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.True(t, list[0].Acknowledged)
}

func TestAcknowledge_NoEncontrada(t *testing.T) {
	store := memory.NewStore(nil, nil)
	uc := alerts.NewUseCase(store)

	err := uc.Acknowledge("no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
