package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/backoffice-api/internal/application/dto"
	"github.com/jhoicas/backoffice-api/internal/application/usecase"
)

// ProfileHandler consultas de perfiles (pantallas de listado y detalle).
type ProfileHandler struct {
	uc *usecase.ProfileUseCase
}

// NewProfileHandler construye el handler de perfiles.
func NewProfileHandler(uc *usecase.ProfileUseCase) *ProfileHandler {
	return &ProfileHandler{uc: uc}
}

// List godoc
// @Summary      Listar perfiles
// @Tags         staff
// @Produce      json
// @Param        limit   query  int  false  "máximo de filas (default 20)"
// @Param        offset  query  int  false  "desplazamiento"
// @Success      200  {object}  dto.SuccessResponse
// @Router       /api/staff/profiles [get]
func (h *ProfileHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "parámetros de paginación inválidos"})
	}
	profiles, err := h.uc.List(c.UserContext(), page)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "error interno"})
	}
	return c.JSON(dto.SuccessResponse{Success: true, Message: "ok", Data: profiles})
}

// GetByID godoc
// @Summary      Obtener un perfil
// @Tags         staff
// @Produce      json
// @Param        id   path  string  true  "profile id"
// @Success      200  {object}  dto.SuccessResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/staff/profiles/{id} [get]
func (h *ProfileHandler) GetByID(c *fiber.Ctx) error {
	profile, err := h.uc.GetByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "error interno"})
	}
	if profile == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: "perfil no encontrado"})
	}
	return c.JSON(dto.SuccessResponse{Success: true, Message: "ok", Data: profile})
}
