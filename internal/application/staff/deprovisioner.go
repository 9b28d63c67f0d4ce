package staff

import (
	"context"
	"errors"
	"fmt"

	"github.com/jhoicas/backoffice-api/internal/domain"
	"github.com/jhoicas/backoffice-api/internal/domain/repository"
	"github.com/jhoicas/backoffice-api/pkg/logger"
)

// DeprovisioningOrchestrator coordina la baja de un miembro del staff.
//
// La baja nunca borra filas: deshabilita la credencial (advisory) y marca el
// perfil como inactive (mandatorio). Si el servicio de identidad no responde, el
// perfil igualmente queda inactivo y se registra un warning; es un estado
// degradado aceptado, no un loop de reintentos.
type DeprovisioningOrchestrator struct {
	identity IdentityProvider
	profiles repository.ProfileRepository
	log      *logger.Logger
}

// NewDeprovisioningOrchestrator construye el orquestador de bajas.
func NewDeprovisioningOrchestrator(
	identity IdentityProvider,
	profiles repository.ProfileRepository,
	log *logger.Logger,
) *DeprovisioningOrchestrator {
	return &DeprovisioningOrchestrator{identity: identity, profiles: profiles, log: log}
}

// Deprovision deshabilita la credencial identityID y desactiva su perfil.
// Solo el fallo del soft-delete del perfil se reporta al caller.
func (o *DeprovisioningOrchestrator) Deprovision(ctx context.Context, identityID, reason string) error {
	err := o.deprovision(ctx, identityID, reason)
	switch {
	case err == nil:
		deprovisioningTotal.WithLabelValues("success").Inc()
	case errors.Is(err, domain.ErrValidation), errors.Is(err, domain.ErrNotFound):
		deprovisioningTotal.WithLabelValues("rejected").Inc()
	default:
		deprovisioningTotal.WithLabelValues("store_error").Inc()
	}
	return err
}

func (o *DeprovisioningOrchestrator) deprovision(ctx context.Context, identityID, reason string) error {
	if identityID == "" {
		return fmt.Errorf("%w: userId es requerido", domain.ErrValidation)
	}

	profile, err := o.profiles.GetByIdentityID(ctx, identityID)
	if err != nil {
		return fmt.Errorf("buscar perfil por identity id: %w", err)
	}
	if profile == nil {
		return domain.ErrNotFound
	}

	// 1. Deshabilitar la credencial. Advisory: el fallo se loguea y se continúa,
	// el estado autoritativo de la baja es el status del perfil.
	if err := o.identity.DisableUser(ctx, identityID, reason); err != nil {
		o.log.Warn().
			Err(err).
			Str("identity_id", identityID).
			Msg("no se pudo deshabilitar la credencial, la baja continúa")
	}

	// 2. Soft-delete del perfil. Mandatorio: es el único fallo que ve el caller.
	if err := o.profiles.SoftDelete(ctx, profile.ID); err != nil {
		return fmt.Errorf("desactivar perfil: %w", err)
	}

	o.log.Info().
		Str("identity_id", identityID).
		Str("profile_id", profile.ID).
		Str("reason", reason).
		Msg("staff dado de baja")
	return nil
}
