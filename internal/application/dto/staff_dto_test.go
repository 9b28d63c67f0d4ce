package dto_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/backoffice-api/internal/application/dto"
	"github.com/jhoicas/backoffice-api/internal/domain"
)

func valid() dto.ProvisionStaffRequest {
	return dto.ProvisionStaffRequest{
		Email:    "ana@example.com",
		Password: "secreta123",
		FullName: "Ana Gómez",
		Role:     "operador",
		Position: "Cajera",
	}
}

func TestValidate_TablaDeRestricciones(t *testing.T) {
	cases := []struct {
		name    string
		mutate  func(*dto.ProvisionStaffRequest)
		wantErr string
	}{
		{"válido", func(r *dto.ProvisionStaffRequest) {}, ""},
		{"email vacío", func(r *dto.ProvisionStaffRequest) { r.Email = "" }, "email"},
		{"email sin arroba", func(r *dto.ProvisionStaffRequest) { r.Email = "ana.example.com" }, "email"},
		{"password corto", func(r *dto.ProvisionStaffRequest) { r.Password = "corta67" }, "password"},
		{"sin nombre", func(r *dto.ProvisionStaffRequest) { r.FullName = "   " }, "fullName"},
		{"sin cargo", func(r *dto.ProvisionStaffRequest) { r.Position = "" }, "position"},
		{"rol desconocido", func(r *dto.ProvisionStaffRequest) { r.Role = "gerente" }, "role"},
		{"status desconocido", func(r *dto.ProvisionStaffRequest) { r.Status = "suspended" }, "status"},
		{"fecha mal formada", func(r *dto.ProvisionStaffRequest) { r.DateOfBirth = "01/02/1990" }, "date_of_birth"},
		{"salario negativo", func(r *dto.ProvisionStaffRequest) { r.Salary = decimal.NewFromInt(-1) }, "salary"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in := valid()
			tc.mutate(&in)
			err := in.Validate()
			if tc.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, domain.ErrValidation)
			assert.Contains(t, err.Error(), tc.wantErr)
		})
	}
}

// Validate normaliza email y aplica el status por defecto.
func TestValidate_Normalizacion(t *testing.T) {
	in := valid()
	in.Email = "  Ana@Example.COM "
	in.Status = ""

	require.NoError(t, in.Validate())
	assert.Equal(t, "ana@example.com", in.Email)
	assert.Equal(t, "active", in.Status)
}

func TestParsedDateOfBirth(t *testing.T) {
	in := valid()
	assert.Nil(t, in.ParsedDateOfBirth(), "sin fecha devuelve nil")

	in.DateOfBirth = "1990-05-20"
	require.NoError(t, in.Validate())
	got := in.ParsedDateOfBirth()
	require.NotNil(t, got)
	assert.Equal(t, 1990, got.Year())
	assert.Equal(t, 20, got.Day())
}
