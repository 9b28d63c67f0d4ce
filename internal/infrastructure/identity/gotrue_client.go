package identity

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/jhoicas/backoffice-api/internal/application/staff"
	"github.com/jhoicas/backoffice-api/internal/domain"
	"github.com/jhoicas/backoffice-api/pkg/config"
)

// Verificar en tiempo de compilación que GoTrueClient implementa IdentityProvider.
var _ staff.IdentityProvider = (*GoTrueClient)(nil)

// GoTrueClient adaptador que implementa IdentityProvider contra la API admin de un
// servicio GoTrue (Supabase Auth). Usa net/http de la librería estándar; no
// requiere el SDK oficial.
//
// Endpoints consumidos (requieren la service_role key):
//
//	POST   {base}/admin/users       crear credencial
//	PUT    {base}/admin/users/{id}  deshabilitar (ban + metadata)
//	DELETE {base}/admin/users/{id}  borrar (solo compensación)
type GoTrueClient struct {
	baseURL    string
	serviceKey string
	httpClient *http.Client
}

// NewGoTrueClient construye el adaptador. Si la service key está vacía las
// llamadas devuelven error descriptivo en lugar de panic.
func NewGoTrueClient(cfg config.IdentityConfig) *GoTrueClient {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &GoTrueClient{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		serviceKey: cfg.ServiceKey,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// ── Estructuras del protocolo admin de GoTrue ─────────────────────────────────

type createUserRequest struct {
	Email        string         `json:"email"`
	Password     string         `json:"password"`
	EmailConfirm bool           `json:"email_confirm"`
	UserMetadata map[string]any `json:"user_metadata,omitempty"`
}

type disableUserRequest struct {
	// Un ban efectivamente permanente; GoTrue no tiene flag "disabled" nativo.
	BanDuration string         `json:"ban_duration"`
	AppMetadata map[string]any `json:"app_metadata"`
}

type userResponse struct {
	ID string `json:"id"`
}

type errorResponse struct {
	Msg     string `json:"msg"`
	Message string `json:"message"`
	Error   string `json:"error_description"`
}

func (e errorResponse) text() string {
	switch {
	case e.Msg != "":
		return e.Msg
	case e.Message != "":
		return e.Message
	}
	return e.Error
}

// ── Implementación del puerto ─────────────────────────────────────────────────

// CreateUser crea la credencial con el email ya confirmado y devuelve su id.
func (c *GoTrueClient) CreateUser(ctx context.Context, email, password string, metadata map[string]any) (string, error) {
	payload := createUserRequest{
		Email:        email,
		Password:     password,
		EmailConfirm: true,
		UserMetadata: metadata,
	}
	body, status, err := c.do(ctx, http.MethodPost, "/admin/users", payload)
	if err != nil {
		return "", err
	}
	if status == http.StatusConflict || status == http.StatusUnprocessableEntity {
		return "", domain.ErrEmailAlreadyRegistered
	}
	if status != http.StatusOK && status != http.StatusCreated {
		return "", c.statusError("crear credencial", status, body)
	}
	var user userResponse
	if err := json.Unmarshal(body, &user); err != nil || user.ID == "" {
		return "", fmt.Errorf("%w: respuesta sin id de usuario", domain.ErrProviderUnavailable)
	}
	return user.ID, nil
}

// DeleteUser borra la credencial. Solo se usa como compensación; el caller la
// trata como best-effort.
func (c *GoTrueClient) DeleteUser(ctx context.Context, identityID string) error {
	body, status, err := c.do(ctx, http.MethodDelete, "/admin/users/"+identityID, nil)
	if err != nil {
		return err
	}
	// 404: la credencial ya no existe, el objetivo de la compensación se cumplió.
	if status == http.StatusOK || status == http.StatusNoContent || status == http.StatusNotFound {
		return nil
	}
	return c.statusError("borrar credencial", status, body)
}

// DisableUser marca la credencial como inutilizable sin borrarla: ban permanente
// y metadata con fecha y motivo.
func (c *GoTrueClient) DisableUser(ctx context.Context, identityID, reason string) error {
	payload := disableUserRequest{
		BanDuration: "87600h", // ~10 años
		AppMetadata: map[string]any{
			"disabled_at":     time.Now().UTC().Format(time.RFC3339),
			"disabled_reason": reason,
		},
	}
	body, status, err := c.do(ctx, http.MethodPut, "/admin/users/"+identityID, payload)
	if err != nil {
		return err
	}
	if status != http.StatusOK {
		return c.statusError("deshabilitar credencial", status, body)
	}
	return nil
}

// do arma la request con los headers de autenticación y devuelve el body y el
// status. Los fallos de transporte se mapean a domain.ErrProviderUnavailable.
func (c *GoTrueClient) do(ctx context.Context, method, path string, payload any) ([]byte, int, error) {
	if c.serviceKey == "" {
		return nil, 0, fmt.Errorf("identity: IDENTITY_SERVICE_KEY no configurado")
	}

	var reqBody io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			return nil, 0, fmt.Errorf("identity: serializar request: %w", err)
		}
		reqBody = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return nil, 0, fmt.Errorf("identity: crear request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.serviceKey)
	req.Header.Set("apikey", c.serviceKey)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: %v", domain.ErrProviderUnavailable, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, 0, fmt.Errorf("%w: leer respuesta: %v", domain.ErrProviderUnavailable, err)
	}
	return body, resp.StatusCode, nil
}

// statusError mapea un status inesperado: 5xx es servicio caído, el resto se
// reporta con el mensaje del servicio.
func (c *GoTrueClient) statusError(op string, status int, body []byte) error {
	if status >= http.StatusInternalServerError {
		return fmt.Errorf("%w: %s devolvió %d", domain.ErrProviderUnavailable, op, status)
	}
	var er errorResponse
	_ = json.Unmarshal(body, &er)
	if msg := er.text(); msg != "" {
		return fmt.Errorf("identity: %s: %s (status %d)", op, msg, status)
	}
	return fmt.Errorf("identity: %s: status inesperado %d", op, status)
}
