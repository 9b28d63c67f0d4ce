package http

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/backoffice-api/internal/application/dto"
	"github.com/jhoicas/backoffice-api/internal/application/staff"
	"github.com/jhoicas/backoffice-api/internal/domain"
)

// StaffHandler maneja el alta y la baja de miembros del staff.
type StaffHandler struct {
	provisioner   *staff.ProvisioningOrchestrator
	deprovisioner *staff.DeprovisioningOrchestrator
	production    bool // en producción no se expone el error crudo al cliente
}

// NewStaffHandler construye el handler de ciclo de vida de staff.
func NewStaffHandler(p *staff.ProvisioningOrchestrator, d *staff.DeprovisioningOrchestrator, production bool) *StaffHandler {
	return &StaffHandler{provisioner: p, deprovisioner: d, production: production}
}

// Provision godoc
// @Summary      Dar de alta un miembro del staff
// @Description  Crea credencial de identidad + perfil + empleado en una sola llamada (saga con compensación).
// @Tags         staff
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ProvisionStaffRequest  true  "datos del nuevo miembro"
// @Success      201   {object}  dto.SuccessResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      500   {object}  dto.ErrorResponse
// @Router       /api/staff/provision [post]
func (h *StaffHandler) Provision(c *fiber.Ctx) error {
	var in dto.ProvisionStaffRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "cuerpo inválido"})
	}

	data, err := h.provisioner.Provision(c.UserContext(), in)
	if err != nil {
		status, msg := h.classify(err)
		return c.Status(status).JSON(dto.ErrorResponse{Error: msg})
	}

	return c.Status(fiber.StatusCreated).JSON(dto.SuccessResponse{
		Success: true,
		Message: "Staff creado correctamente",
		Data:    data,
	})
}

// Deprovision godoc
// @Summary      Dar de baja un miembro del staff
// @Description  Deshabilita la credencial (best-effort) y desactiva el perfil. No borra filas.
// @Tags         staff
// @Accept       json
// @Produce      json
// @Param        body  body  dto.DeprovisionStaffRequest  true  "userId (id de identidad) y motivo"
// @Success      200   {object}  dto.SuccessResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      500   {object}  dto.ErrorResponse
// @Router       /api/staff/deprovision [post]
func (h *StaffHandler) Deprovision(c *fiber.Ctx) error {
	var in dto.DeprovisionStaffRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "cuerpo inválido"})
	}
	if in.UserID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "userId es requerido"})
	}

	if err := h.deprovisioner.Deprovision(c.UserContext(), in.UserID, in.Reason); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: "no existe un perfil para ese userId"})
		}
		if errors.Is(err, domain.ErrValidation) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: h.internal("no se pudo desactivar el perfil", err)})
	}

	return c.JSON(dto.SuccessResponse{Success: true, Message: "Staff dado de baja correctamente"})
}

// classify mapea el error del alta a status HTTP y mensaje amigable.
// El error crudo de persistencia solo se expone fuera de producción.
func (h *StaffHandler) classify(err error) (int, string) {
	switch {
	case errors.Is(err, domain.ErrValidation):
		return fiber.StatusBadRequest, err.Error()
	case errors.Is(err, domain.ErrDuplicateEmail), errors.Is(err, domain.ErrEmailAlreadyRegistered):
		return fiber.StatusBadRequest, "El email ya está registrado"
	case errors.Is(err, domain.ErrInvalidGroupReference):
		return fiber.StatusBadRequest, "El grupo indicado no existe"
	case errors.Is(err, domain.ErrProviderUnavailable):
		return fiber.StatusInternalServerError, h.internal("Servicio de identidad no disponible, intente más tarde", err)
	default:
		return fiber.StatusInternalServerError, h.internal("No se pudo crear el staff", err)
	}
}

// internal adjunta el detalle del error solo fuera de producción.
func (h *StaffHandler) internal(friendly string, err error) string {
	if h.production {
		return friendly
	}
	return fmt.Sprintf("%s: %v", friendly, err)
}
