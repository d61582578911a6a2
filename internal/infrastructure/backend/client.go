package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/jhoicas/belleza-catalog-api/internal/application/ports"
	"github.com/jhoicas/belleza-catalog-api/internal/domain"
	"github.com/jhoicas/belleza-catalog-api/internal/metrics"
)

// maxBodyBytes límite de lectura de una respuesta del backend.
const maxBodyBytes = 4 << 20

// Config parámetros del cliente del backend genérico.
type Config struct {
	BaseURL string
	// Timeout de red por petición; 0 = sin timeout (la cancelación la decide el llamador).
	Timeout time.Duration
}

// Client cliente REST del backend genérico. Usa net/http con el contexto del llamador para
// que la cancelación corte la petición en curso.
type Client struct {
	baseURL    string
	httpClient *http.Client
	creds      ports.CredentialProvider
	log        zerolog.Logger
}

// NewClient construye el cliente. creds puede ser nil: en ese caso no se envía Authorization.
func NewClient(cfg Config, creds ports.CredentialProvider, log zerolog.Logger) *Client {
	return &Client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		httpClient: &http.Client{Timeout: cfg.Timeout},
		creds:      creds,
		log:        log.With().Str("component", "backend").Logger(),
	}
}

// envelope sobre estándar del backend: {success, data}.
type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
}

func (c *Client) newRequest(ctx context.Context, method, path string, query url.Values, body any) (*http.Request, error) {
	target := c.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("serializar cuerpo: %w", err)
		}
		reader = bytes.NewReader(payload)
	}
	req, err := http.NewRequestWithContext(ctx, method, target, reader)
	if err != nil {
		return nil, fmt.Errorf("crear petición: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.creds != nil {
		if token, ok := c.creds.Token(ctx); ok {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}
	return req, nil
}

// do ejecuta la petición y devuelve código y cuerpo. Una cancelación del llamador se
// reporta como domain.ErrAborted.
func (c *Client) do(req *http.Request, route string) (int, []byte, error) {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		metrics.IncBackendRequest(req.Method, route, "network_error")
		if ctxErr := req.Context().Err(); ctxErr != nil {
			return 0, nil, fmt.Errorf("%w: %v", domain.ErrAborted, ctxErr)
		}
		return 0, nil, fmt.Errorf("llamada HTTP fallida: %w", err)
	}
	defer resp.Body.Close()

	metrics.IncBackendRequest(req.Method, route, strconv.Itoa(resp.StatusCode))
	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		if ctxErr := req.Context().Err(); ctxErr != nil {
			return 0, nil, fmt.Errorf("%w: %v", domain.ErrAborted, ctxErr)
		}
		return resp.StatusCode, nil, fmt.Errorf("leer respuesta: %w", err)
	}
	return resp.StatusCode, body, nil
}

// list consulta un endpoint de lectura. success=false o data ausente significan "sin
// resultado usable" (nil, nil); no-2xx, red o JSON malformado son *domain.UpstreamError.
func (c *Client) list(ctx context.Context, source, path string, query url.Values) ([]map[string]any, error) {
	req, err := c.newRequest(ctx, http.MethodGet, path, query, nil)
	if err != nil {
		return nil, &domain.UpstreamError{Source: source, Err: err}
	}
	status, body, err := c.do(req, path)
	if err != nil {
		if errors.Is(err, domain.ErrAborted) {
			return nil, err
		}
		return nil, &domain.UpstreamError{Source: source, Status: status, Err: err}
	}
	if status < 200 || status > 299 {
		return nil, &domain.UpstreamError{Source: source, Status: status, Err: errors.New(truncate(string(body), 256))}
	}

	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, &domain.UpstreamError{Source: source, Status: status, Err: fmt.Errorf("sobre malformado: %w", err)}
	}
	if !env.Success || len(env.Data) == 0 || string(env.Data) == "null" {
		c.log.Debug().Str("source", source).Bool("success", env.Success).Msg("respuesta sin datos usables")
		return nil, nil
	}

	var items []any
	if err := decodeJSON(env.Data, &items); err != nil {
		return nil, &domain.UpstreamError{Source: source, Status: status, Err: fmt.Errorf("data no es una lista: %w", err)}
	}
	recs := make([]map[string]any, 0, len(items))
	for _, it := range items {
		if rec, ok := it.(map[string]any); ok {
			recs = append(recs, rec)
		}
	}
	return recs, nil
}

// mutate ejecuta una escritura. Cualquier respuesta no-2xx (o success=false) es un
// *domain.MutationError con el cuerpo crudo como mensaje. Sin reintentos.
func (c *Client) mutate(ctx context.Context, method, path string, body any) (map[string]any, error) {
	req, err := c.newRequest(ctx, method, path, nil, body)
	if err != nil {
		return nil, err
	}
	route := routeOf(path)
	status, raw, err := c.do(req, route)
	if err != nil {
		return nil, err
	}
	if status < 200 || status > 299 {
		return nil, &domain.MutationError{Status: status, Body: string(raw)}
	}
	if len(bytes.TrimSpace(raw)) == 0 {
		return nil, nil
	}

	var doc map[string]any
	if err := decodeJSON(raw, &doc); err != nil {
		c.log.Warn().Err(err).Str("path", path).Msg("respuesta de escritura no es JSON")
		return nil, nil
	}
	if ok, present := doc["success"].(bool); present && !ok {
		return nil, &domain.MutationError{Status: status, Body: string(raw)}
	}
	if data, present := doc["data"]; present {
		rec, _ := data.(map[string]any)
		return rec, nil
	}
	return doc, nil
}

func decodeJSON(raw []byte, out any) error {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	return dec.Decode(out)
}

// routeOf reduce /catalog/services/<id> a /catalog/services para las etiquetas de métricas.
func routeOf(path string) string {
	parts := strings.Split(strings.Trim(path, "/"), "/")
	if len(parts) > 2 {
		parts = parts[:2]
	}
	return "/" + strings.Join(parts, "/")
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
