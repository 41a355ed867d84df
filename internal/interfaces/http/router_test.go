package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/farmacia-api/internal/application/auth"
	"github.com/jhoicas/farmacia-api/internal/application/dto"
	"github.com/jhoicas/farmacia-api/internal/application/inventory"
	"github.com/jhoicas/farmacia-api/internal/application/notification"
	"github.com/jhoicas/farmacia-api/internal/application/usecase"
	"github.com/jhoicas/farmacia-api/internal/domain/entity"
	"github.com/jhoicas/farmacia-api/internal/infrastructure/memory"
	apphttp "github.com/jhoicas/farmacia-api/internal/interfaces/http"
	"github.com/jhoicas/farmacia-api/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

type testEnv struct {
	app   *fiber.App
	store *memory.Store
}

// buildTestApp arma la API completa sobre el almacén en memoria con un cajero,
// un farmacéutico, un empleado con rol desconocido y dos lotes.
func buildTestApp(t *testing.T) testEnv {
	t.Helper()
	store := memory.NewStore()
	ctx := context.Background()
	log := logger.Nop()

	employees := memory.NewEmployeeRepository(store)
	for _, e := range []entity.Employee{
		{EmpID: "E1", Name: "Ana", Role: "Cashier", AuthKey: "k1", Salary: decimal.NewFromInt(1000)},
		{EmpID: "E2", Name: "Luis", Role: "Pharmacist", AuthKey: "k2", Salary: decimal.NewFromInt(2000)},
		{EmpID: "E3", Name: "Eva", Role: "Intern", AuthKey: "k3"},
	} {
		e := e
		require.NoError(t, employees.Create(ctx, &e))
	}
	medicines := memory.NewMedicineRepository(store)
	yesterday := time.Now().AddDate(0, 0, -1)
	require.NoError(t, medicines.Create(ctx, &entity.Medicine{BatchNo: "B1", DrugName: "Aspirin", ExpiryDate: &yesterday, StockQuantity: 5, Price: decimal.NewFromInt(2)}))
	require.NoError(t, medicines.Create(ctx, &entity.Medicine{BatchNo: "B2", DrugName: "Vitamin C", StockQuantity: 1, Price: decimal.NewFromInt(3)}))
	store.AddCustomer("C1")

	holder := auth.NewSessionHolder()
	notifUC := notification.NewNotificationUseCase(
		memory.NewTxRunner(store), memory.NewNotificationRepository(store), memory.NewSeenRepository(store), employees, log,
	)
	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		AuthUC:         auth.NewAuthUseCase(employees, auth.AdminCredential{Username: "admin", Password: "secret"}, holder, log),
		Sessions:       holder,
		EmployeeUC:     usecase.NewEmployeeUseCase(employees, log),
		MedicineUC:     usecase.NewMedicineUseCase(medicines, log),
		PrescriptionUC: usecase.NewPrescriptionUseCase(memory.NewPrescriptionRepository(store), notifUC, log),
		NotificationUC: notifUC,
		ExpiryUC:       inventory.NewExpiryUseCase(medicines, notifUC, nil, log),
		WarnDays:       7,
	})
	return testEnv{app: app, store: store}
}

func (e testEnv) do(t *testing.T, method, path string, body any) *http.Response {
	t.Helper()
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := e.app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func (e testEnv) login(t *testing.T, user, pass string) {
	t.Helper()
	resp := e.do(t, http.MethodPost, "/api/session/login", dto.LoginRequest{Username: user, Password: pass})
	require.Equal(t, http.StatusOK, resp.StatusCode)
}

func decode[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	defer resp.Body.Close()
	var out T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

// ──────────────────────────────────────────────────────────────────────────────
// Sesión
// ──────────────────────────────────────────────────────────────────────────────

func TestLogin_CajeroRecibePerfil(t *testing.T) {
	env := buildTestApp(t)

	resp := env.do(t, http.MethodPost, "/api/session/login", dto.LoginRequest{Username: "E1", Password: "k1"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	out := decode[dto.SessionResponse](t, resp)
	assert.Equal(t, "Cashier", out.Role)
	assert.False(t, out.Capabilities.CanEdit)
	assert.NotContains(t, out.Capabilities.VisibleSections, "Medicines")
}

func TestLogin_RolDesconocido403(t *testing.T) {
	env := buildTestApp(t)

	resp := env.do(t, http.MethodPost, "/api/session/login", dto.LoginRequest{Username: "E3", Password: "k3"})
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	assert.Equal(t, "ROLE_NOT_RECOGNIZED", decode[dto.ErrorResponse](t, resp).Code)

	resp = env.do(t, http.MethodGet, "/api/session", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestLogin_CredencialesYValidacion(t *testing.T) {
	env := buildTestApp(t)

	resp := env.do(t, http.MethodPost, "/api/session/login", dto.LoginRequest{Username: "E1", Password: "mal"})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "INVALID_CREDENTIALS", decode[dto.ErrorResponse](t, resp).Code)

	resp = env.do(t, http.MethodPost, "/api/session/login", dto.LoginRequest{Username: "E1"})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestLogin_SegundaSesion409YLogout(t *testing.T) {
	env := buildTestApp(t)
	env.login(t, "admin", "secret")

	resp := env.do(t, http.MethodPost, "/api/session/login", dto.LoginRequest{Username: "E1", Password: "k1"})
	assert.Equal(t, http.StatusConflict, resp.StatusCode)

	resp = env.do(t, http.MethodDelete, "/api/session", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	resp = env.do(t, http.MethodGet, "/api/medicines", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestSinSesion401(t *testing.T) {
	env := buildTestApp(t)

	resp := env.do(t, http.MethodGet, "/api/dashboard/expiry", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "NO_SESSION", decode[dto.ErrorResponse](t, resp).Code)
}

// ──────────────────────────────────────────────────────────────────────────────
// Escenario cajero de punta a punta
// ──────────────────────────────────────────────────────────────────────────────

func TestCajero_DePuntaAPunta(t *testing.T) {
	env := buildTestApp(t)
	env.login(t, "E1", "k1")

	// La compuerta niega editar aunque la sección Bills sea visible.
	resp := env.do(t, http.MethodGet, "/api/session/permissions?section=Bills&action=edit", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.False(t, decode[dto.PermissionResponse](t, resp).Allowed)

	resp = env.do(t, http.MethodGet, "/api/session/permissions?section=Bills&action=add", nil)
	assert.True(t, decode[dto.PermissionResponse](t, resp).Allowed)

	// Medicines no es visible para el cajero: ni lectura ni edición llegan al almacén.
	before := env.store.Mutations()
	resp = env.do(t, http.MethodPut, "/api/medicines/B1/Aspirin", dto.UpdateMedicineRequest{StockQuantity: 50})
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	assert.Equal(t, before, env.store.Mutations())

	// Dashboard sí: la revisión de vencimientos funciona.
	resp = env.do(t, http.MethodGet, "/api/dashboard/expiry", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	report := decode[dto.ExpiryReportDTO](t, resp)
	require.Len(t, report.Expired, 1)
	assert.Equal(t, "B1", report.Expired[0].BatchNo)
	assert.Equal(t, 1, report.Skipped)

	resp = env.do(t, http.MethodGet, "/api/dashboard/expiry/last", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	// Publicar avisos exige la sección Notifications.
	resp = env.do(t, http.MethodPost, "/api/dashboard/expiry/notifications", nil)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	assert.Equal(t, "PERMISSION_DENIED", decode[dto.ErrorResponse](t, resp).Code)
}

func TestFarmaceutico_EdicionPermitidaBorradoNo(t *testing.T) {
	env := buildTestApp(t)
	env.login(t, "E2", "k2")

	resp := env.do(t, http.MethodPut, "/api/medicines/B2/Vitamin%20C", dto.UpdateMedicineRequest{StockQuantity: 9, ExpiryDate: "2030-01-01"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, 9, decode[dto.MedicineResponse](t, resp).StockQuantity)

	resp = env.do(t, http.MethodDelete, "/api/medicines/B2/Vitamin%20C", nil)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	assert.Equal(t, "PERMISSION_DENIED", decode[dto.ErrorResponse](t, resp).Code)
}

// ──────────────────────────────────────────────────────────────────────────────
// Notificaciones y recetas
// ──────────────────────────────────────────────────────────────────────────────

func TestRecetaGeneraNotificacionYMarcaIdempotente(t *testing.T) {
	env := buildTestApp(t)
	env.login(t, "E2", "k2")

	resp := env.do(t, http.MethodPost, "/api/prescriptions", dto.CreatePrescriptionRequest{PresID: "P1", CID: "C1"})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, "N001", decode[dto.PrescriptionResponse](t, resp).NotificationID)

	resp = env.do(t, http.MethodGet, "/api/notifications/unseen-count", nil)
	assert.Equal(t, 1, decode[dto.UnseenCountResponse](t, resp).Unseen)

	resp = env.do(t, http.MethodPost, "/api/notifications/N001/seen", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "created", decode[dto.MarkSeenResponse](t, resp).Outcome)

	resp = env.do(t, http.MethodPost, "/api/notifications/N001/seen", dto.MarkSeenRequest{EmpID: "E2"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "already_marked", decode[dto.MarkSeenResponse](t, resp).Outcome)
	assert.Equal(t, 1, env.store.SeenCount("E2", "N001"))

	resp = env.do(t, http.MethodPost, "/api/notifications/N404/seen", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp = env.do(t, http.MethodPost, "/api/notifications/N001/seen", dto.MarkSeenRequest{EmpID: "GHOST-999"})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "VALIDATION", decode[dto.ErrorResponse](t, resp).Code)
	assert.Equal(t, 0, env.store.SeenCount("GHOST-999", "N001"))
}

func TestRecetaClienteInexistente400(t *testing.T) {
	env := buildTestApp(t)
	env.login(t, "E2", "k2")

	resp := env.do(t, http.MethodPost, "/api/prescriptions", dto.CreatePrescriptionRequest{PresID: "P1", CID: "C9"})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "VALIDATION", decode[dto.ErrorResponse](t, resp).Code)
}

// ──────────────────────────────────────────────────────────────────────────────
// Almacén caído vs. permiso denegado
// ──────────────────────────────────────────────────────────────────────────────

func TestAlmacenCaido503DistintoDe403(t *testing.T) {
	env := buildTestApp(t)
	env.login(t, "admin", "secret")
	env.store.Fail(errors.New("dial tcp: connection refused"))

	resp := env.do(t, http.MethodGet, "/api/medicines", nil)
	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
	body := decode[dto.ErrorResponse](t, resp)
	assert.Equal(t, "STORE_UNAVAILABLE", body.Code)
	assert.NotContains(t, body.Message, "connection refused")

	resp = env.do(t, http.MethodGet, "/api/dashboard/stock-value", nil)
	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
}

func TestEmpleados_SalarioOcultoParaSupervisorNo(t *testing.T) {
	env := buildTestApp(t)
	env.login(t, "admin", "secret")

	resp := env.do(t, http.MethodGet, "/api/employees", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	out := decode[dto.EmployeeListResponse](t, resp)
	assert.False(t, out.SalaryHidden)
	require.NotEmpty(t, out.Items)
	assert.NotNil(t, out.Items[0].Salary)
}

func TestDueQuery_SoloConQueries(t *testing.T) {
	env := buildTestApp(t)
	env.login(t, "admin", "secret")

	resp := env.do(t, http.MethodGet, "/api/queries/expiring?days=30", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	out := decode[dto.DueListDTO](t, resp)
	assert.Equal(t, 30, out.Days)
	assert.Len(t, out.Items, 1)

	resp = env.do(t, http.MethodGet, "/api/queries/expiring?days=abc", nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
