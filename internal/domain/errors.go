package domain

import "errors"

// Errores de dominio (sin dependencias externas).
//
// El flujo de provisioning los clasifica así:
//   - ErrValidation, ErrDuplicateEmail               -> terminales, antes de mutar nada
//   - ErrEmailAlreadyRegistered, ErrProviderUnavailable -> terminales, capa de identidad
//   - ErrInvalidGroupReference                       -> dispara compensación
//   - ErrEmployeeAlreadyExists                       -> se trata como éxito (creación idempotente)
//   - cualquier otro error de persistencia           -> dispara compensación (StoreError)
var (
	ErrNotFound               = errors.New("recurso no encontrado")
	ErrValidation             = errors.New("entrada inválida")
	ErrDuplicateEmail         = errors.New("el email ya está registrado")
	ErrEmailAlreadyRegistered = errors.New("el email ya está registrado en el servicio de identidad")
	ErrProviderUnavailable    = errors.New("servicio de identidad no disponible")
	ErrInvalidGroupReference  = errors.New("el grupo referenciado no existe")
	ErrEmployeeAlreadyExists  = errors.New("el empleado ya existe para este perfil")
	ErrUnauthorized           = errors.New("no autorizado")
	ErrForbidden              = errors.New("acceso denegado")
)
