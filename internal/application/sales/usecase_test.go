package sales_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Sucursales-api/internal/application/dto"
	"github.com/jhoicas/Sucursales-api/internal/application/sales"
	"github.com/jhoicas/Sucursales-api/internal/domain"
	"github.com/jhoicas/Sucursales-api/internal/domain/entity"
	"github.com/jhoicas/Sucursales-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type fakeInventoryRepo struct {
	stock map[string]int
}

func (f *fakeInventoryRepo) ApplyDelta(_ context.Context, branchID, productID string, delta int) error {
	k := branchID + "|" + productID
	if _, ok := f.stock[k]; !ok {
		return domain.ErrNotFound
	}
	f.stock[k] += delta
	return nil
}

func (f *fakeInventoryRepo) Get(context.Context, string, string) (*entity.InventoryRecord, error) {
	return nil, domain.ErrNotFound
}

func (f *fakeInventoryRepo) ListByBranch(context.Context, string) ([]repository.BranchInventoryRow, error) {
	return nil, nil
}

type fakeSaleRepo struct {
	sales []*entity.Sale
}

func (f *fakeSaleRepo) Create(_ context.Context, sale *entity.Sale) error {
	f.sales = append(f.sales, sale)
	return nil
}

func (f *fakeSaleRepo) ListByBranch(_ context.Context, branchID string) ([]*entity.Sale, error) {
	out := []*entity.Sale{}
	for _, s := range f.sales {
		if s.BranchID == branchID {
			out = append(out, s)
		}
	}
	return out, nil
}

func (f *fakeSaleRepo) ListByProduct(_ context.Context, productID string) ([]*entity.Sale, error) {
	out := []*entity.Sale{}
	for _, s := range f.sales {
		if s.ProductID == productID {
			out = append(out, s)
		}
	}
	return out, nil
}

// fakeTxRunner imita Commit/Rollback: si fn falla restaura stock y ventas.
type fakeTxRunner struct {
	inv  *fakeInventoryRepo
	sale *fakeSaleRepo
}

func (r *fakeTxRunner) RunSale(_ context.Context, fn func(
	invRepo repository.InventoryRepository,
	saleRepo repository.SaleRepository,
) error) error {
	stockSnap := make(map[string]int, len(r.inv.stock))
	for k, v := range r.inv.stock {
		stockSnap[k] = v
	}
	salesSnap := append([]*entity.Sale{}, r.sale.sales...)

	if err := fn(r.inv, r.sale); err != nil {
		r.inv.stock = stockSnap
		r.sale.sales = salesSnap
		return err
	}
	return nil
}

func newRecorderFixture(stock map[string]int) (*sales.RecorderUseCase, *fakeInventoryRepo, *fakeSaleRepo) {
	inv := &fakeInventoryRepo{stock: stock}
	saleRepo := &fakeSaleRepo{}
	uc := sales.NewRecorderUseCase(&fakeTxRunner{inv: inv, sale: saleRepo}, saleRepo)
	return uc, inv, saleRepo
}

func saleReq(branchID, productID string, qty int, price string) dto.RecordSaleRequest {
	return dto.RecordSaleRequest{
		BranchID:     branchID,
		ProductID:    productID,
		QuantitySold: qty,
		UnitPrice:    decimal.RequireFromString(price),
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Record
// ──────────────────────────────────────────────────────────────────────────────

func TestRecord_InsertaVentaYDescuentaStock(t *testing.T) {
	uc, inv, saleRepo := newRecorderFixture(map[string]int{"b1|p1": 20})

	id, err := uc.Record(context.Background(), saleReq("b1", "p1", 5, "10.00"))

	require.NoError(t, err)
	assert.NotEmpty(t, id, "debe devolver el id de la venta")
	assert.Equal(t, 15, inv.stock["b1|p1"], "vender 5 sobre 20 debe dejar 15")

	require.Len(t, saleRepo.sales, 1, "debe quedar exactamente una fila de venta")
	s := saleRepo.sales[0]
	assert.Equal(t, id, s.ID)
	assert.Equal(t, 5, s.QuantitySold)
	assert.True(t, s.UnitPrice.Equal(decimal.RequireFromString("10.00")))
	assert.False(t, s.SaleDate.IsZero(), "la fecha la pone el servidor")
}

func TestRecord_SinInventarioRevierteLaVenta(t *testing.T) {
	uc, inv, saleRepo := newRecorderFixture(map[string]int{"b1|p1": 20})

	_, err := uc.Record(context.Background(), saleReq("b1", "p-fantasma", 5, "10.00"))

	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Empty(t, saleRepo.sales, "no deben quedar ventas colgantes sin descuento de stock")
	assert.Equal(t, 20, inv.stock["b1|p1"], "el stock existente no debe cambiar")
}

func TestRecord_CantidadYPrecioDebenSerPositivos(t *testing.T) {
	uc, _, saleRepo := newRecorderFixture(map[string]int{"b1|p1": 20})

	_, err := uc.Record(context.Background(), saleReq("b1", "p1", 0, "10.00"))
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "cantidad cero no es venta")

	_, err = uc.Record(context.Background(), saleReq("b1", "p1", -3, "10.00"))
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "cantidad negativa no es venta")

	_, err = uc.Record(context.Background(), saleReq("b1", "p1", 2, "0"))
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "precio cero no es venta")

	assert.Empty(t, saleRepo.sales)
}

// ──────────────────────────────────────────────────────────────────────────────
// Listados
// ──────────────────────────────────────────────────────────────────────────────

func TestListByBranch_SoloVentasDeLaSucursal(t *testing.T) {
	uc, _, _ := newRecorderFixture(map[string]int{"b1|p1": 50, "b2|p1": 50})

	_, err := uc.Record(context.Background(), saleReq("b1", "p1", 2, "10.00"))
	require.NoError(t, err)
	_, err = uc.Record(context.Background(), saleReq("b2", "p1", 3, "10.00"))
	require.NoError(t, err)

	list, err := uc.ListByBranch(context.Background(), "b1")
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "b1", list[0].BranchID)
	assert.Equal(t, 2, list[0].QuantitySold)
}

func TestListByProduct_CruzaSucursales(t *testing.T) {
	uc, _, _ := newRecorderFixture(map[string]int{"b1|p1": 50, "b2|p1": 50})

	_, err := uc.Record(context.Background(), saleReq("b1", "p1", 2, "10.00"))
	require.NoError(t, err)
	_, err = uc.Record(context.Background(), saleReq("b2", "p1", 3, "10.00"))
	require.NoError(t, err)

	list, err := uc.ListByProduct(context.Background(), "p1")
	require.NoError(t, err)
	assert.Len(t, list, 2, "el listado por producto cruza todas las sucursales")
}
