package transfer_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Sucursales-api/internal/application/dto"
	"github.com/jhoicas/Sucursales-api/internal/application/transfer"
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

type fakeTransferRepo struct {
	transfers map[string]*entity.Transfer
}

func (f *fakeTransferRepo) Create(_ context.Context, t *entity.Transfer) error {
	cp := *t
	f.transfers[t.ID] = &cp
	return nil
}

func (f *fakeTransferRepo) GetForUpdate(_ context.Context, id string) (*entity.Transfer, error) {
	t, ok := f.transfers[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	cp := *t
	return &cp, nil
}

func (f *fakeTransferRepo) UpdateStatus(_ context.Context, id, status string) error {
	t, ok := f.transfers[id]
	if !ok {
		return domain.ErrNotFound
	}
	t.Status = status
	return nil
}

func (f *fakeTransferRepo) ListAll(context.Context) ([]*entity.Transfer, error) {
	out := []*entity.Transfer{}
	for _, t := range f.transfers {
		out = append(out, t)
	}
	return out, nil
}

func (f *fakeTransferRepo) ListByBranch(_ context.Context, branchID string) ([]*entity.Transfer, error) {
	out := []*entity.Transfer{}
	for _, t := range f.transfers {
		if t.FromBranchID == branchID || t.ToBranchID == branchID {
			out = append(out, t)
		}
	}
	return out, nil
}

// fakeTxRunner imita Commit/Rollback: si fn falla restaura stock y estados.
type fakeTxRunner struct {
	inv *fakeInventoryRepo
	tr  *fakeTransferRepo
}

func (r *fakeTxRunner) RunTransfer(_ context.Context, fn func(
	invRepo repository.InventoryRepository,
	transferRepo repository.TransferRepository,
) error) error {
	stockSnap := make(map[string]int, len(r.inv.stock))
	for k, v := range r.inv.stock {
		stockSnap[k] = v
	}
	trSnap := make(map[string]*entity.Transfer, len(r.tr.transfers))
	for k, v := range r.tr.transfers {
		cp := *v
		trSnap[k] = &cp
	}

	if err := fn(r.inv, r.tr); err != nil {
		r.inv.stock = stockSnap
		r.tr.transfers = trSnap
		return err
	}
	return nil
}

type fixture struct {
	uc  *transfer.WorkflowUseCase
	inv *fakeInventoryRepo
	tr  *fakeTransferRepo
}

func newFixture(stock map[string]int) *fixture {
	inv := &fakeInventoryRepo{stock: stock}
	tr := &fakeTransferRepo{transfers: map[string]*entity.Transfer{}}
	return &fixture{
		uc:  transfer.NewWorkflowUseCase(&fakeTxRunner{inv: inv, tr: tr}, tr),
		inv: inv,
		tr:  tr,
	}
}

func (f *fixture) crearPendiente(t *testing.T, qty int) string {
	t.Helper()
	id, err := f.uc.Create(context.Background(), dto.CreateTransferRequest{
		FromBranchID: "bA",
		ToBranchID:   "bB",
		ProductID:    "p1",
		Quantity:     qty,
		TransferDate: "2026-03-15",
	})
	require.NoError(t, err)
	return id
}

// ──────────────────────────────────────────────────────────────────────────────
// Create
// ──────────────────────────────────────────────────────────────────────────────

func TestCreate_NaceEnPending(t *testing.T) {
	f := newFixture(map[string]int{})

	id := f.crearPendiente(t, 7)

	tr := f.tr.transfers[id]
	require.NotNil(t, tr)
	assert.Equal(t, entity.TransferStatusPending, tr.Status)
	assert.Equal(t, 7, tr.Quantity)
}

func TestCreate_MismaSucursalInvalida(t *testing.T) {
	f := newFixture(map[string]int{})

	_, err := f.uc.Create(context.Background(), dto.CreateTransferRequest{
		FromBranchID: "bA",
		ToBranchID:   "bA",
		ProductID:    "p1",
		Quantity:     1,
		TransferDate: "2026-03-15",
	})

	assert.ErrorIs(t, err, domain.ErrInvalidInput, "origen y destino no pueden coincidir")
}

func TestCreate_FechaMalFormadaInvalida(t *testing.T) {
	f := newFixture(map[string]int{})

	_, err := f.uc.Create(context.Background(), dto.CreateTransferRequest{
		FromBranchID: "bA",
		ToBranchID:   "bB",
		ProductID:    "p1",
		Quantity:     1,
		TransferDate: "15/03/2026",
	})

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// ──────────────────────────────────────────────────────────────────────────────
// SetStatus: la máquina de estados
// ──────────────────────────────────────────────────────────────────────────────

func TestSetStatus_CompletedMueveElStock(t *testing.T) {
	f := newFixture(map[string]int{"bA|p1": 10, "bB|p1": 3})
	id := f.crearPendiente(t, 7)

	err := f.uc.SetStatus(context.Background(), id, entity.TransferStatusCompleted)

	require.NoError(t, err)
	assert.Equal(t, 3, f.inv.stock["bA|p1"], "origen: 10 - 7 = 3")
	assert.Equal(t, 10, f.inv.stock["bB|p1"], "destino: 3 + 7 = 10")
	assert.Equal(t, entity.TransferStatusCompleted, f.tr.transfers[id].Status)
}

func TestSetStatus_DestinoSinInventarioRevierteTodo(t *testing.T) {
	// bB no tiene fila de inventario para p1: el crédito falla y el débito
	// ya aplicado debe revertirse junto con el cambio de estado.
	f := newFixture(map[string]int{"bA|p1": 10})
	id := f.crearPendiente(t, 7)

	err := f.uc.SetStatus(context.Background(), id, entity.TransferStatusCompleted)

	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Equal(t, 10, f.inv.stock["bA|p1"], "el débito en origen debe revertirse")
	assert.Equal(t, entity.TransferStatusPending, f.tr.transfers[id].Status,
		"el estado debe quedar como estaba")
}

func TestSetStatus_ApprovedYRejectedNoTocanInventario(t *testing.T) {
	for _, status := range []string{entity.TransferStatusApproved, entity.TransferStatusRejected} {
		t.Run(status, func(t *testing.T) {
			f := newFixture(map[string]int{"bA|p1": 10, "bB|p1": 3})
			id := f.crearPendiente(t, 7)

			err := f.uc.SetStatus(context.Background(), id, status)

			require.NoError(t, err)
			assert.Equal(t, 10, f.inv.stock["bA|p1"])
			assert.Equal(t, 3, f.inv.stock["bB|p1"])
			assert.Equal(t, status, f.tr.transfers[id].Status)
		})
	}
}

func TestSetStatus_ApprovedPuedeCompletarse(t *testing.T) {
	f := newFixture(map[string]int{"bA|p1": 10, "bB|p1": 3})
	id := f.crearPendiente(t, 7)

	require.NoError(t, f.uc.SetStatus(context.Background(), id, entity.TransferStatusApproved))
	require.NoError(t, f.uc.SetStatus(context.Background(), id, entity.TransferStatusCompleted))

	assert.Equal(t, 3, f.inv.stock["bA|p1"])
	assert.Equal(t, 10, f.inv.stock["bB|p1"])
}

func TestSetStatus_ReCompletarNoDuplicaElMovimiento(t *testing.T) {
	f := newFixture(map[string]int{"bA|p1": 10, "bB|p1": 3})
	id := f.crearPendiente(t, 7)

	require.NoError(t, f.uc.SetStatus(context.Background(), id, entity.TransferStatusCompleted))
	err := f.uc.SetStatus(context.Background(), id, entity.TransferStatusCompleted)

	assert.ErrorIs(t, err, domain.ErrConflict, "Completed es terminal")
	assert.Equal(t, 3, f.inv.stock["bA|p1"], "el stock solo debe moverse una vez")
	assert.Equal(t, 10, f.inv.stock["bB|p1"])
}

func TestSetStatus_RejectedEsTerminal(t *testing.T) {
	f := newFixture(map[string]int{"bA|p1": 10, "bB|p1": 3})
	id := f.crearPendiente(t, 7)

	require.NoError(t, f.uc.SetStatus(context.Background(), id, entity.TransferStatusRejected))
	err := f.uc.SetStatus(context.Background(), id, entity.TransferStatusCompleted)

	assert.ErrorIs(t, err, domain.ErrConflict)
	assert.Equal(t, 10, f.inv.stock["bA|p1"])
}

func TestSetStatus_EstadoDesconocidoRechazado(t *testing.T) {
	f := newFixture(map[string]int{})
	id := f.crearPendiente(t, 7)

	err := f.uc.SetStatus(context.Background(), id, "Teleported")

	assert.ErrorIs(t, err, domain.ErrInvalidStatus)
}

func TestSetStatus_TransferenciaInexistente(t *testing.T) {
	f := newFixture(map[string]int{})

	err := f.uc.SetStatus(context.Background(), "no-existe", entity.TransferStatusApproved)

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Listados
// ──────────────────────────────────────────────────────────────────────────────

func TestListByBranch_OrigenODestino(t *testing.T) {
	f := newFixture(map[string]int{})
	f.crearPendiente(t, 1) // bA -> bB

	deA, err := f.uc.ListByBranch(context.Background(), "bA")
	require.NoError(t, err)
	deB, err := f.uc.ListByBranch(context.Background(), "bB")
	require.NoError(t, err)
	deC, err := f.uc.ListByBranch(context.Background(), "bC")
	require.NoError(t, err)

	assert.Len(t, deA, 1, "aparece para la sucursal origen")
	assert.Len(t, deB, 1, "aparece para la sucursal destino")
	assert.Empty(t, deC, "no aparece para terceros")
}
