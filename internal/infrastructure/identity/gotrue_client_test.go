package identity_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/backoffice-api/internal/domain"
	"github.com/jhoicas/backoffice-api/internal/infrastructure/identity"
	"github.com/jhoicas/backoffice-api/pkg/config"
)

const testServiceKey = "service-role-key-de-test"

func newClient(baseURL string) *identity.GoTrueClient {
	return identity.NewGoTrueClient(config.IdentityConfig{
		BaseURL:    baseURL,
		ServiceKey: testServiceKey,
		Timeout:    2 * time.Second,
	})
}

// CreateUser arma la request admin correcta y devuelve el id de la credencial.
func TestCreateUser_Exitoso(t *testing.T) {
	var got map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/admin/users", r.URL.Path)
		assert.Equal(t, "Bearer "+testServiceKey, r.Header.Get("Authorization"))
		assert.Equal(t, testServiceKey, r.Header.Get("apikey"))

		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"7f6a2f10-0000-0000-0000-000000000001","email":"ana@example.com"}`))
	}))
	defer srv.Close()

	id, err := newClient(srv.URL).CreateUser(context.Background(), "ana@example.com", "secreta123", map[string]any{"role": "rrhh"})
	require.NoError(t, err)
	assert.Equal(t, "7f6a2f10-0000-0000-0000-000000000001", id)

	assert.Equal(t, "ana@example.com", got["email"])
	assert.Equal(t, true, got["email_confirm"], "la credencial se crea ya confirmada")
	assert.NotContains(t, got, "app_metadata")
}

// El 422 del servicio (email tomado) es el chequeo de unicidad autoritativo.
func TestCreateUser_EmailTomado(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		_, _ = w.Write([]byte(`{"msg":"A user with this email address has already been registered"}`))
	}))
	defer srv.Close()

	_, err := newClient(srv.URL).CreateUser(context.Background(), "ana@example.com", "secreta123", nil)
	require.ErrorIs(t, err, domain.ErrEmailAlreadyRegistered)
}

// Fallo de transporte (servicio apagado) se clasifica como proveedor caído.
func TestCreateUser_ServicioApagado(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // apagado antes de llamar

	_, err := newClient(srv.URL).CreateUser(context.Background(), "ana@example.com", "secreta123", nil)
	require.ErrorIs(t, err, domain.ErrProviderUnavailable)
}

// Un 5xx del servicio también es proveedor caído.
func TestCreateUser_Error5xx(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	_, err := newClient(srv.URL).CreateUser(context.Background(), "ana@example.com", "secreta123", nil)
	require.ErrorIs(t, err, domain.ErrProviderUnavailable)
}

// DisableUser banea la credencial y estampa metadata, sin borrarla.
func TestDisableUser(t *testing.T) {
	var got map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/admin/users/abc-123", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		_, _ = w.Write([]byte(`{"id":"abc-123"}`))
	}))
	defer srv.Close()

	err := newClient(srv.URL).DisableUser(context.Background(), "abc-123", "fin de contrato")
	require.NoError(t, err)

	assert.Equal(t, "87600h", got["ban_duration"])
	meta, ok := got["app_metadata"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "fin de contrato", meta["disabled_reason"])
	assert.NotEmpty(t, meta["disabled_at"])
}

// DeleteUser trata el 404 como éxito: la compensación ya no tiene nada que borrar.
func TestDeleteUser_NotFoundEsExito(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	err := newClient(srv.URL).DeleteUser(context.Background(), "ya-borrado")
	require.NoError(t, err)
}

// Sin service key configurada, las llamadas fallan con error descriptivo.
func TestCreateUser_SinServiceKey(t *testing.T) {
	client := identity.NewGoTrueClient(config.IdentityConfig{BaseURL: "http://localhost:9999"})

	_, err := client.CreateUser(context.Background(), "ana@example.com", "secreta123", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "IDENTITY_SERVICE_KEY")
}
