package http_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Sucursales-api/internal/application/alerts"
	"github.com/jhoicas/Sucursales-api/internal/application/dto"
	"github.com/jhoicas/Sucursales-api/internal/application/inventory"
	"github.com/jhoicas/Sucursales-api/internal/application/reports"
	"github.com/jhoicas/Sucursales-api/internal/application/transfer"
	"github.com/jhoicas/Sucursales-api/internal/domain"
	"github.com/jhoicas/Sucursales-api/internal/domain/entity"
	"github.com/jhoicas/Sucursales-api/internal/domain/repository"
	apphttp "github.com/jhoicas/Sucursales-api/internal/interfaces/http"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria (solo lo que tocan estas rutas)
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
	return []repository.BranchInventoryRow{}, nil
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
	return []*entity.Transfer{}, nil
}

func (f *fakeTransferRepo) ListByBranch(context.Context, string) ([]*entity.Transfer, error) {
	return []*entity.Transfer{}, nil
}

type fakeAlertRepo struct {
	alerts map[string]*entity.Alert
}

func (f *fakeAlertRepo) Create(_ context.Context, a *entity.Alert) error {
	cp := *a
	f.alerts[a.ID] = &cp
	return nil
}

func (f *fakeAlertRepo) ListAll(context.Context) ([]*entity.Alert, error) {
	return []*entity.Alert{}, nil
}

func (f *fakeAlertRepo) ListByBranch(context.Context, string) ([]*entity.Alert, error) {
	return []*entity.Alert{}, nil
}

func (f *fakeAlertRepo) MarkRead(_ context.Context, id string) error {
	a, ok := f.alerts[id]
	if !ok {
		return domain.ErrNotFound
	}
	a.IsRead = true
	return nil
}

func (f *fakeAlertRepo) Delete(_ context.Context, id string) error {
	if _, ok := f.alerts[id]; !ok {
		return domain.ErrNotFound
	}
	delete(f.alerts, id)
	return nil
}

type fakeReportRepo struct{}

func (fakeReportRepo) BranchRevenue(context.Context, string, string) (decimal.Decimal, error) {
	return decimal.RequireFromString("350.75"), nil
}

func (fakeReportRepo) TopProducts(context.Context, string, string, int) ([]repository.TopProductRow, error) {
	return []repository.TopProductRow{{ProductName: "Café molido", TotalSold: 9}}, nil
}

func (fakeReportRepo) LowStock(context.Context, string) ([]repository.LowStockRow, error) {
	return []repository.LowStockRow{}, nil
}

func (fakeReportRepo) RevenueByBranch(context.Context, string) ([]repository.BranchRevenueRow, error) {
	return []repository.BranchRevenueRow{}, nil
}

type fakePDF struct{}

func (fakePDF) GenerateBranchReportPDF(context.Context, dto.BranchReportDTO) ([]byte, error) {
	return []byte("%PDF-fake"), nil
}

// fakeTx corre las funciones sin transacción real; los tests de rollback
// viven en los paquetes de aplicación, aquí solo interesa el mapeo HTTP.
type fakeTx struct {
	inv *fakeInventoryRepo
	tr  *fakeTransferRepo
}

func (r *fakeTx) Run(_ context.Context, fn func(repository.InventoryRepository) error) error {
	return fn(r.inv)
}

func (r *fakeTx) RunTransfer(_ context.Context, fn func(
	repository.InventoryRepository, repository.TransferRepository,
) error) error {
	return fn(r.inv, r.tr)
}

// ──────────────────────────────────────────────────────────────────────────────
// App de prueba
// ──────────────────────────────────────────────────────────────────────────────

type testEnv struct {
	app    *fiber.App
	inv    *fakeInventoryRepo
	tr     *fakeTransferRepo
	alerts *fakeAlertRepo
}

func buildTestApp() *testEnv {
	inv := &fakeInventoryRepo{stock: map[string]int{"b1|p1": 20, "b2|p1": 3}}
	tr := &fakeTransferRepo{transfers: map[string]*entity.Transfer{}}
	alertRepo := &fakeAlertRepo{alerts: map[string]*entity.Alert{}}
	tx := &fakeTx{inv: inv, tr: tr}

	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		AdjustUC:   inventory.NewAdjustUseCase(tx, inv),
		TransferUC: transfer.NewWorkflowUseCase(tx, tr),
		AlertUC:    alerts.NewEmitterUseCase(alertRepo),
		ReportUC:   reports.NewAggregatorUseCase(fakeReportRepo{}, fakePDF{}),
	})
	return &testEnv{app: app, inv: inv, tr: tr, alerts: alertRepo}
}

func doJSON(t *testing.T, app *fiber.App, method, path, body string) *http.Response {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func errorCode(t *testing.T, resp *http.Response) string {
	t.Helper()
	var body dto.ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return body.Code
}

// ──────────────────────────────────────────────────────────────────────────────
// Inventario
// ──────────────────────────────────────────────────────────────────────────────

func TestAdjustEndpoint_ReceiveActualizaYDevuelve200(t *testing.T) {
	env := buildTestApp()

	resp := doJSON(t, env.app, http.MethodPost, "/api/inventory/adjust",
		`{"branch_id":"b1","product_id":"p1","quantity":5,"type":"receive"}`)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, 25, env.inv.stock["b1|p1"])
}

func TestAdjustEndpoint_TipoDesconocidoDevuelve400(t *testing.T) {
	env := buildTestApp()

	resp := doJSON(t, env.app, http.MethodPost, "/api/inventory/adjust",
		`{"branch_id":"b1","product_id":"p1","quantity":5,"type":"magia"}`)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "VALIDATION", errorCode(t, resp))
}

func TestAdjustEndpoint_FilaInexistenteDevuelve404(t *testing.T) {
	env := buildTestApp()

	resp := doJSON(t, env.app, http.MethodPost, "/api/inventory/adjust",
		`{"branch_id":"b9","product_id":"p1","quantity":5,"type":"receive"}`)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "NOT_FOUND", errorCode(t, resp))
}

func TestAdjustEndpoint_BodyMalFormadoDevuelve400(t *testing.T) {
	env := buildTestApp()

	resp := doJSON(t, env.app, http.MethodPost, "/api/inventory/adjust", `{esto no es json`)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "INVALID_BODY", errorCode(t, resp))
}

// ──────────────────────────────────────────────────────────────────────────────
// Transferencias
// ──────────────────────────────────────────────────────────────────────────────

func TestTransferStatusEndpoint_ReCompletarDevuelve409(t *testing.T) {
	env := buildTestApp()
	env.tr.transfers["t1"] = &entity.Transfer{
		ID: "t1", FromBranchID: "b1", ToBranchID: "b2", ProductID: "p1",
		Quantity: 7, Status: entity.TransferStatusCompleted,
	}

	resp := doJSON(t, env.app, http.MethodPut, "/api/transfers/t1/status", `{"status":"Completed"}`)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	assert.Equal(t, "CONFLICT", errorCode(t, resp))
}

func TestTransferStatusEndpoint_EstadoDesconocidoDevuelve400(t *testing.T) {
	env := buildTestApp()

	resp := doJSON(t, env.app, http.MethodPut, "/api/transfers/t1/status", `{"status":"Volando"}`)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "VALIDATION", errorCode(t, resp))
}

func TestTransferStatusEndpoint_CompletedMueveStock(t *testing.T) {
	env := buildTestApp()
	env.tr.transfers["t1"] = &entity.Transfer{
		ID: "t1", FromBranchID: "b1", ToBranchID: "b2", ProductID: "p1",
		Quantity: 7, Status: entity.TransferStatusPending,
	}

	resp := doJSON(t, env.app, http.MethodPut, "/api/transfers/t1/status", `{"status":"Completed"}`)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, 13, env.inv.stock["b1|p1"], "origen: 20 - 7")
	assert.Equal(t, 10, env.inv.stock["b2|p1"], "destino: 3 + 7")
}

// ──────────────────────────────────────────────────────────────────────────────
// Alertas
// ──────────────────────────────────────────────────────────────────────────────

func TestAlertDeleteEndpoint_InexistenteDevuelve404(t *testing.T) {
	env := buildTestApp()

	resp := doJSON(t, env.app, http.MethodDelete, "/api/alerts/no-existe", "")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "NOT_FOUND", errorCode(t, resp))
}

func TestAlertMarkReadEndpoint_EsIdempotente(t *testing.T) {
	env := buildTestApp()
	env.alerts.alerts["a1"] = &entity.Alert{ID: "a1", BranchID: "b1", IsRead: true}

	resp := doJSON(t, env.app, http.MethodPut, "/api/alerts/a1/read", "")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode, "marcar una alerta ya leída sigue siendo éxito")
}

// ──────────────────────────────────────────────────────────────────────────────
// Reportes
// ──────────────────────────────────────────────────────────────────────────────

func TestReportEndpoint_MesInvalidoDevuelve400(t *testing.T) {
	env := buildTestApp()

	resp := doJSON(t, env.app, http.MethodGet, "/api/reports/branch/b1/2026-13", "")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "VALIDATION", errorCode(t, resp))
}

func TestReportEndpoint_DevuelveElReporte(t *testing.T) {
	env := buildTestApp()

	resp := doJSON(t, env.app, http.MethodGet, "/api/reports/branch/b1/2026-03", "")
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	var body dto.BranchReportDTO
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "b1", body.BranchID)
	assert.Equal(t, "2026-03", body.Month)
	assert.True(t, body.TotalRevenue.Equal(decimal.RequireFromString("350.75")))
	require.Len(t, body.TopProducts, 1)
}

func TestReportPDFEndpoint_DevuelveContentTypePDF(t *testing.T) {
	env := buildTestApp()

	resp := doJSON(t, env.app, http.MethodGet, "/api/reports/branch/b1/2026-03/pdf", "")
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/pdf", resp.Header.Get("Content-Type"))
}
