package staff_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/backoffice-api/internal/application/staff"
	"github.com/jhoicas/backoffice-api/internal/domain"
	"github.com/jhoicas/backoffice-api/internal/domain/entity"
	"github.com/jhoicas/backoffice-api/pkg/logger"
)

// provisionOne da de alta un miembro y devuelve la fixture con el id de identidad.
func provisionOne(t *testing.T) (*fixture, string) {
	t.Helper()
	f := newFixture()
	data, err := f.orch.Provision(context.Background(), validRequest())
	require.NoError(t, err)
	return f, data.UserID
}

func newDeprovisioner(f *fixture) *staff.DeprovisioningOrchestrator {
	return staff.NewDeprovisioningOrchestrator(f.identity, f.profiles, logger.Nop())
}

// Baja normal: credencial deshabilitada, perfil inactive, ninguna fila borrada.
func TestDeprovision_Exitoso(t *testing.T) {
	f, identityID := provisionOne(t)

	err := newDeprovisioner(f).Deprovision(context.Background(), identityID, "fin de contrato")
	require.NoError(t, err)

	assert.Equal(t, "fin de contrato", f.identity.disabled[identityID])
	assert.Len(t, f.identity.byEmail, 1, "la credencial se deshabilita, nunca se borra")

	require.Len(t, f.profiles.byID, 1, "la baja no borra el perfil")
	for _, p := range f.profiles.byID {
		assert.Equal(t, entity.StatusInactive, p.Status)
	}
}

// El disable de la credencial es advisory: si el servicio de identidad no
// responde, la baja igual reporta éxito y el perfil queda inactive.
func TestDeprovision_IdentidadCaida_SigueSiendoExito(t *testing.T) {
	f, identityID := provisionOne(t)
	f.identity.failDisable = errors.New("dial tcp: i/o timeout")

	err := newDeprovisioner(f).Deprovision(context.Background(), identityID, "baja administrativa")
	require.NoError(t, err, "el fallo del disable no es fatal")

	for _, p := range f.profiles.byID {
		assert.Equal(t, entity.StatusInactive, p.Status,
			"el estado autoritativo de la baja es el del perfil")
	}
	assert.Empty(t, f.identity.disabled, "la credencial quedó habilitada: estado degradado aceptado")
}

// El soft-delete del perfil es el paso mandatorio: su fallo sí llega al caller.
func TestDeprovision_FalloEnSoftDelete(t *testing.T) {
	f, identityID := provisionOne(t)
	f.profiles.failSoft = errors.New("connection refused")

	err := newDeprovisioner(f).Deprovision(context.Background(), identityID, "")
	require.Error(t, err)

	assert.Contains(t, f.identity.disabled, identityID,
		"la credencial alcanzó a deshabilitarse antes del fallo")
}

// userId vacío se rechaza antes de consultar nada.
func TestDeprovision_UserIDVacio(t *testing.T) {
	f := newFixture()

	err := newDeprovisioner(f).Deprovision(context.Background(), "", "x")
	require.ErrorIs(t, err, domain.ErrValidation)
	assert.Empty(t, f.log.ops)
}

// userId sin perfil asociado.
func TestDeprovision_PerfilInexistente(t *testing.T) {
	f := newFixture()

	err := newDeprovisioner(f).Deprovision(context.Background(), "identity-inexistente", "x")
	require.ErrorIs(t, err, domain.ErrNotFound)
	assert.NotContains(t, f.log.ops, "identity.disable",
		"sin perfil no hay nada que deshabilitar")
}

// La baja es idempotente: repetirla deja el mismo estado y sigue siendo éxito.
func TestDeprovision_Idempotente(t *testing.T) {
	f, identityID := provisionOne(t)
	d := newDeprovisioner(f)

	require.NoError(t, d.Deprovision(context.Background(), identityID, "primera"))
	require.NoError(t, d.Deprovision(context.Background(), identityID, "segunda"))

	for _, p := range f.profiles.byID {
		assert.Equal(t, entity.StatusInactive, p.Status)
	}
}
