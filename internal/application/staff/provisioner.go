package staff

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/backoffice-api/internal/application/dto"
	"github.com/jhoicas/backoffice-api/internal/domain"
	"github.com/jhoicas/backoffice-api/internal/domain/entity"
	"github.com/jhoicas/backoffice-api/internal/domain/repository"
	"github.com/jhoicas/backoffice-api/pkg/format"
	"github.com/jhoicas/backoffice-api/pkg/logger"
)

// ProvisioningOrchestrator coordina el alta de un miembro del staff sobre tres
// recursos que fallan de forma independiente:
//
//	precheck email → credencial (servicio de identidad) → perfil (DB) → empleado (DB)
//
// No hay transacción que cruce el servicio de identidad y la DB, así que el alta
// es una saga: cada paso exitoso apila su acción inversa y, ante el primer fallo,
// la pila se ejecuta en orden LIFO (perfil antes que credencial). La ejecución de
// compensaciones es best-effort: un delete compensatorio fallido se loguea y el
// caller recibe igualmente el error original del camino de avance.
type ProvisioningOrchestrator struct {
	identity  IdentityProvider
	profiles  repository.ProfileRepository
	employees repository.EmployeeRepository
	log       *logger.Logger
}

// NewProvisioningOrchestrator construye el orquestador con sus dependencias.
func NewProvisioningOrchestrator(
	identity IdentityProvider,
	profiles repository.ProfileRepository,
	employees repository.EmployeeRepository,
	log *logger.Logger,
) *ProvisioningOrchestrator {
	return &ProvisioningOrchestrator{
		identity:  identity,
		profiles:  profiles,
		employees: employees,
		log:       log,
	}
}

// compensation es la acción inversa de un paso ya completado.
type compensation struct {
	step string
	undo func(ctx context.Context) error
}

// Provision ejecuta el alta completa y devuelve los tres ids creados.
//
// Clasificación de errores hacia el caller: domain.ErrValidation,
// domain.ErrDuplicateEmail, domain.ErrEmailAlreadyRegistered,
// domain.ErrProviderUnavailable, domain.ErrInvalidGroupReference o un error de
// persistencia envuelto. domain.ErrEmployeeAlreadyExists se resuelve internamente
// como éxito (creación idempotente del empleado).
func (o *ProvisioningOrchestrator) Provision(ctx context.Context, in dto.ProvisionStaffRequest) (*dto.ProvisionStaffData, error) {
	data, err := o.provision(ctx, in)
	provisioningTotal.WithLabelValues(outcomeLabel(err)).Inc()
	return data, err
}

func (o *ProvisioningOrchestrator) provision(ctx context.Context, in dto.ProvisionStaffRequest) (*dto.ProvisionStaffData, error) {
	// 0. Validación: antes de cualquier efecto lateral, ninguna llamada remota.
	if err := in.Validate(); err != nil {
		return nil, err
	}

	// 1. Precheck de unicidad en la capa de perfiles. Solo lectura: evita crear
	// una credencial huérfana para un email que ya está tomado. No es un lock;
	// los constraints únicos de credencial y perfil son el árbitro real ante
	// altas concurrentes.
	existing, err := o.profiles.GetByEmail(ctx, in.Email)
	if err != nil {
		return nil, fmt.Errorf("precheck email: %w", err)
	}
	if existing != nil {
		return nil, domain.ErrDuplicateEmail
	}

	// Pila de compensaciones: cada paso exitoso apila su inversa antes de
	// intentar el siguiente.
	var undo []compensation

	// 2. Credencial en el servicio de identidad (chequeo de unicidad autoritativo).
	identityID, err := o.identity.CreateUser(ctx, in.Email, in.Password, map[string]any{
		"full_name":      in.FullName,
		"role":           in.Role,
		"provisioned_by": "backoffice-pro",
	})
	if err != nil {
		return nil, err
	}
	undo = append(undo, compensation{
		step: "delete-credential",
		undo: func(ctx context.Context) error { return o.identity.DeleteUser(ctx, identityID) },
	})

	// 3. Perfil. El hash bcrypt es el espejo local para el login del back-office;
	// la credencial autoritativa vive en el servicio de identidad.
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		o.compensate(ctx, undo)
		return nil, fmt.Errorf("hash password: %w", err)
	}
	now := time.Now()
	profile := &entity.Profile{
		ID:           uuid.New().String(),
		IdentityID:   identityID,
		Email:        in.Email,
		PasswordHash: string(hash),
		FullName:     format.FullName(in.FullName),
		Role:         in.Role,
		Status:       in.Status,
		Phone:        in.Phone,
		Address:      in.Address,
		DateOfBirth:  in.ParsedDateOfBirth(),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := o.profiles.Create(ctx, profile); err != nil {
		o.compensate(ctx, undo)
		return nil, err
	}
	undo = append(undo, compensation{
		step: "delete-profile",
		undo: func(ctx context.Context) error { return o.profiles.Delete(ctx, profile.ID) },
	})

	// 4. Empleado.
	var groupID *string
	if in.GroupID != "" {
		gid := in.GroupID
		groupID = &gid
	}
	employee := &entity.Employee{
		ID:        uuid.New().String(),
		ProfileID: profile.ID,
		Position:  in.Position,
		GroupID:   groupID,
		Salary:    in.Salary,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := o.employees.Create(ctx, employee); err != nil {
		if errors.Is(err, domain.ErrEmployeeAlreadyExists) {
			// Perdimos la carrera del insert pero el registro existe: la creación
			// de empleado es idempotente, recuperamos el id y reportamos éxito.
			won, getErr := o.employees.GetByProfileID(ctx, profile.ID)
			if getErr == nil && won != nil {
				employee.ID = won.ID
			}
			o.log.Warn().
				Str("profile_id", profile.ID).
				Msg("empleado ya existía para el perfil, alta tratada como idempotente")
		} else {
			o.compensate(ctx, undo)
			return nil, err
		}
	}

	// Éxito: la pila se descarta.
	o.log.Info().
		Str("identity_id", identityID).
		Str("profile_id", profile.ID).
		Str("employee_id", employee.ID).
		Str("email", in.Email).
		Msg("staff provisionado")

	return &dto.ProvisionStaffData{
		UserID:     identityID,
		ProfileID:  profile.ID,
		EmployeeID: employee.ID,
	}, nil
}

// compensate ejecuta la pila de compensaciones en orden LIFO. Best-effort: los
// fallos se loguean y se cuentan como huérfanos, nunca se re-lanzan, para que el
// orquestador siempre devuelva el error original dentro de un tiempo acotado.
func (o *ProvisioningOrchestrator) compensate(ctx context.Context, undo []compensation) {
	for i := len(undo) - 1; i >= 0; i-- {
		c := undo[i]
		if err := c.undo(ctx); err != nil {
			compensationsTotal.WithLabelValues(c.step, "error").Inc()
			orphansTotal.Inc()
			o.log.Error().
				Err(err).
				Str("step", c.step).
				Msg("compensación fallida, recurso posiblemente huérfano")
			continue
		}
		compensationsTotal.WithLabelValues(c.step, "ok").Inc()
	}
}

// outcomeLabel clasifica un error del alta para métricas.
func outcomeLabel(err error) string {
	switch {
	case err == nil:
		return "success"
	case errors.Is(err, domain.ErrValidation):
		return "validation"
	case errors.Is(err, domain.ErrDuplicateEmail), errors.Is(err, domain.ErrEmailAlreadyRegistered):
		return "duplicate_email"
	case errors.Is(err, domain.ErrProviderUnavailable):
		return "provider_unavailable"
	case errors.Is(err, domain.ErrInvalidGroupReference):
		return "invalid_group"
	default:
		return "store_error"
	}
}
