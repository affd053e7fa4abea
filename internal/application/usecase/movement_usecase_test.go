package usecase_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sebastian04SRT/Proyecto-Final-Web-Dinamico/internal/application/dto"
	"github.com/Sebastian04SRT/Proyecto-Final-Web-Dinamico/internal/application/usecase"
	"github.com/Sebastian04SRT/Proyecto-Final-Web-Dinamico/internal/domain"
	"github.com/Sebastian04SRT/Proyecto-Final-Web-Dinamico/internal/domain/entity"
)

func newMovementUC(s *memStore) *usecase.MovementUseCase {
	return usecase.NewMovementUseCase(memMovementRepo{s: s})
}

// seedMovement inserta un asiento directamente en el almacén.
func seedMovement(s *memStore, id, productID, kind string, createdAt time.Time) {
	s.movements = append(s.movements, &entity.StockMovement{
		ID:        id,
		ProductID: productID,
		Type:      kind,
		Quantity:  1,
		CreatedAt: createdAt,
	})
}

func TestMovementListAll_PaginadoMasRecientePrimero(t *testing.T) {
	s := newMemStore()
	uc := newMovementUC(s)

	base := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	seedMovement(s, "mov-1", "prod-1", entity.MovementTypeENTRY, base)
	seedMovement(s, "mov-2", "prod-1", entity.MovementTypeEXIT, base.Add(time.Hour))
	seedMovement(s, "mov-3", "prod-2", entity.MovementTypeENTRY, base.Add(2*time.Hour))

	out, err := uc.ListAll(dto.PageRequest{Page: 0, Size: 2})
	require.NoError(t, err)

	assert.Equal(t, 3, out.Page.Total)
	require.Len(t, out.Items, 2)
	assert.Equal(t, "mov-3", out.Items[0].ID, "el más reciente va primero")
	assert.Equal(t, "mov-2", out.Items[1].ID)

	out, err = uc.ListAll(dto.PageRequest{Page: 1, Size: 2})
	require.NoError(t, err)
	require.Len(t, out.Items, 1)
	assert.Equal(t, "mov-1", out.Items[0].ID)
}

func TestMovementListByProduct_SoloDelProducto(t *testing.T) {
	s := newMemStore()
	uc := newMovementUC(s)

	base := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	seedMovement(s, "mov-1", "prod-1", entity.MovementTypeENTRY, base)
	seedMovement(s, "mov-2", "prod-2", entity.MovementTypeENTRY, base.Add(time.Hour))
	seedMovement(s, "mov-3", "prod-1", entity.MovementTypeEXIT, base.Add(2*time.Hour))

	out, err := uc.ListByProduct("prod-1")
	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Equal(t, "mov-3", out[0].ID)
	assert.Equal(t, "mov-1", out[1].ID)
}

func TestMovementListByDateRange_Inclusivo(t *testing.T) {
	s := newMemStore()
	uc := newMovementUC(s)

	base := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	seedMovement(s, "mov-1", "prod-1", entity.MovementTypeENTRY, base)
	seedMovement(s, "mov-2", "prod-1", entity.MovementTypeENTRY, base.AddDate(0, 0, 5))
	seedMovement(s, "mov-3", "prod-1", entity.MovementTypeENTRY, base.AddDate(0, 0, 10))

	out, err := uc.ListByDateRange(base, base.AddDate(0, 0, 5))
	require.NoError(t, err)
	require.Len(t, out, 2, "ambos extremos del rango son inclusivos")
}

func TestMovementGetByID_Inexistente(t *testing.T) {
	uc := newMovementUC(newMemStore())

	_, err := uc.GetByID("no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
