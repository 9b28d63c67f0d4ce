package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/backoffice-api/internal/application/staff"
	"github.com/jhoicas/backoffice-api/internal/domain"
	"github.com/jhoicas/backoffice-api/internal/domain/entity"
	apphttp "github.com/jhoicas/backoffice-api/internal/interfaces/http"
	"github.com/jhoicas/backoffice-api/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Stubs de puertos para montar orquestadores reales detrás del handler
// ──────────────────────────────────────────────────────────────────────────────

type stubIdentity struct {
	createErr  error
	disableErr error
}

func (s *stubIdentity) CreateUser(context.Context, string, string, map[string]any) (string, error) {
	if s.createErr != nil {
		return "", s.createErr
	}
	return "identity-1", nil
}
func (s *stubIdentity) DeleteUser(context.Context, string) error { return nil }
func (s *stubIdentity) DisableUser(context.Context, string, string) error {
	return s.disableErr
}

type stubProfiles struct {
	existing *entity.Profile // devuelto por GetByEmail y GetByIdentityID
	saved    *entity.Profile
	inactive []string
}

func (s *stubProfiles) Create(_ context.Context, p *entity.Profile) error {
	s.saved = p
	return nil
}
func (s *stubProfiles) GetByID(context.Context, string) (*entity.Profile, error) { return nil, nil }
func (s *stubProfiles) GetByEmail(context.Context, string) (*entity.Profile, error) {
	return s.existing, nil
}
func (s *stubProfiles) GetByIdentityID(context.Context, string) (*entity.Profile, error) {
	return s.existing, nil
}
func (s *stubProfiles) List(context.Context, int, int) ([]*entity.Profile, error) { return nil, nil }
func (s *stubProfiles) SoftDelete(_ context.Context, id string) error {
	s.inactive = append(s.inactive, id)
	return nil
}
func (s *stubProfiles) Delete(context.Context, string) error { return nil }

type stubEmployees struct {
	createErr error
}

func (s *stubEmployees) Create(_ context.Context, e *entity.Employee) error { return s.createErr }
func (s *stubEmployees) GetByProfileID(context.Context, string) (*entity.Employee, error) {
	return nil, nil
}

// buildApp monta las rutas de staff sin middleware de auth (eso se prueba aparte).
func buildApp(identity *stubIdentity, profiles *stubProfiles, employees *stubEmployees) *fiber.App {
	prov := staff.NewProvisioningOrchestrator(identity, profiles, employees, logger.Nop())
	deprov := staff.NewDeprovisioningOrchestrator(identity, profiles, logger.Nop())
	h := apphttp.NewStaffHandler(prov, deprov, true)

	app := fiber.New()
	app.Post("/api/staff/provision", h.Provision)
	app.Post("/api/staff/deprovision", h.Deprovision)
	return app
}

func postJSON(t *testing.T, app *fiber.App, path string, payload any) (*http.Response, map[string]any) {
	t.Helper()
	raw, err := json.Marshal(payload)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return resp, body
}

func validPayload() map[string]any {
	return map[string]any{
		"email":    "nuevo@example.com",
		"password": "secreta123",
		"fullName": "Nuevo Empleado",
		"role":     "operador",
		"position": "Cajero",
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Provision
// ──────────────────────────────────────────────────────────────────────────────

// Alta válida: 201 con los tres ids en data.
func TestProvisionHandler_Exitoso(t *testing.T) {
	profiles := &stubProfiles{}
	app := buildApp(&stubIdentity{}, profiles, &stubEmployees{})

	resp, body := postJSON(t, app, "/api/staff/provision", validPayload())
	defer resp.Body.Close()

	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, true, body["success"])

	data, ok := body["data"].(map[string]any)
	require.True(t, ok, "la respuesta debe incluir data")
	assert.Equal(t, "identity-1", data["userId"])
	assert.NotEmpty(t, data["profileId"])
	assert.NotEmpty(t, data["employeeId"])
	require.NotNil(t, profiles.saved)
	assert.Equal(t, data["profileId"], profiles.saved.ID)
}

// Password de 6 caracteres: 400 de validación.
func TestProvisionHandler_PasswordCorto(t *testing.T) {
	app := buildApp(&stubIdentity{}, &stubProfiles{}, &stubEmployees{})
	payload := validPayload()
	payload["password"] = "corta6"

	resp, body := postJSON(t, app, "/api/staff/provision", payload)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, false, body["success"])
	assert.Contains(t, body["error"], "password")
}

// Email ya registrado: 400 con mensaje amigable, sin detalle crudo.
func TestProvisionHandler_EmailDuplicado(t *testing.T) {
	profiles := &stubProfiles{existing: &entity.Profile{ID: "p1", Email: "nuevo@example.com"}}
	app := buildApp(&stubIdentity{}, profiles, &stubEmployees{})

	resp, body := postJSON(t, app, "/api/staff/provision", validPayload())
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "El email ya está registrado", body["error"])
}

// Grupo inexistente: 400.
func TestProvisionHandler_GrupoInexistente(t *testing.T) {
	app := buildApp(&stubIdentity{}, &stubProfiles{}, &stubEmployees{createErr: domain.ErrInvalidGroupReference})

	resp, body := postJSON(t, app, "/api/staff/provision", validPayload())
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "El grupo indicado no existe", body["error"])
}

// Servicio de identidad caído: 500 y en producción sin detalle del error crudo.
func TestProvisionHandler_IdentidadCaida(t *testing.T) {
	identity := &stubIdentity{createErr: domain.ErrProviderUnavailable}
	app := buildApp(identity, &stubProfiles{}, &stubEmployees{})

	resp, body := postJSON(t, app, "/api/staff/provision", validPayload())
	defer resp.Body.Close()

	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	assert.Equal(t, "Servicio de identidad no disponible, intente más tarde", body["error"])
}

// ──────────────────────────────────────────────────────────────────────────────
// Deprovision
// ──────────────────────────────────────────────────────────────────────────────

// Baja válida: 200 incluso si el disable advisory falló.
func TestDeprovisionHandler_ExitosoConDisableCaido(t *testing.T) {
	identity := &stubIdentity{disableErr: errors.New("timeout")}
	profiles := &stubProfiles{existing: &entity.Profile{ID: "p1", IdentityID: "identity-1"}}
	app := buildApp(identity, profiles, &stubEmployees{})

	resp, body := postJSON(t, app, "/api/staff/deprovision", map[string]any{
		"userId": "identity-1",
		"reason": "fin de contrato",
	})
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, []string{"p1"}, profiles.inactive)
}

// userId faltante: 400.
func TestDeprovisionHandler_SinUserID(t *testing.T) {
	app := buildApp(&stubIdentity{}, &stubProfiles{}, &stubEmployees{})

	resp, body := postJSON(t, app, "/api/staff/deprovision", map[string]any{"reason": "x"})
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Contains(t, body["error"], "userId")
}

// userId sin perfil: 404.
func TestDeprovisionHandler_PerfilInexistente(t *testing.T) {
	app := buildApp(&stubIdentity{}, &stubProfiles{}, &stubEmployees{})

	resp, _ := postJSON(t, app, "/api/staff/deprovision", map[string]any{"userId": "nadie"})
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
