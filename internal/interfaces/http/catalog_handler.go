package http

import (
	"context"
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	appcatalog "github.com/jhoicas/belleza-catalog-api/internal/application/catalog"
	"github.com/jhoicas/belleza-catalog-api/internal/application/dto"
	"github.com/jhoicas/belleza-catalog-api/internal/domain"
	dcatalog "github.com/jhoicas/belleza-catalog-api/internal/domain/catalog"
	"github.com/jhoicas/belleza-catalog-api/internal/infrastructure/session"
)

// StatusClientClosedRequest el llamador canceló antes de obtener respuesta.
const StatusClientClosedRequest = 499

// CatalogHandler maneja las peticiones HTTP del catálogo.
type CatalogHandler struct {
	uc  *appcatalog.UseCase
	log zerolog.Logger
}

// NewCatalogHandler construye el handler.
func NewCatalogHandler(uc *appcatalog.UseCase, log zerolog.Logger) *CatalogHandler {
	return &CatalogHandler{uc: uc, log: log}
}

// ListServices godoc
// @Summary      Listar servicios del catálogo
// @Tags         catalog
// @Produce      json
// @Param        search           query  string  false  "Texto libre sobre nombre y descripción"
// @Param        showInactive     query  bool    false  "Incluir inactivos"
// @Param        includeProducts  query  bool    false  "Expandir productos del servicio"
// @Param        isAtHome         query  bool    false  "Catálogo a domicilio"
// @Success      200  {object}  dto.ServiceListResponse
// @Router       /api/catalog/services [get]
func (h *CatalogHandler) ListServices(c *fiber.Ctx) error {
	out, err := h.uc.FetchServices(c.UserContext(), parseFilters(c))
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(dto.ServiceListResponse{Success: true, Data: out})
}

// ListProducts godoc
// @Summary      Listar productos del catálogo
// @Tags         catalog
// @Produce      json
// @Param        search        query  string  false  "Texto libre sobre nombre y descripción"
// @Param        showInactive  query  bool    false  "Incluir inactivos"
// @Param        isAtHome      query  bool    false  "Catálogo a domicilio"
// @Param        category      query  string  false  "Categoría"
// @Success      200  {object}  dto.ProductListResponse
// @Router       /api/catalog/products [get]
func (h *CatalogHandler) ListProducts(c *fiber.Ctx) error {
	out, err := h.uc.FetchProducts(c.UserContext(), parseFilters(c))
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(dto.ProductListResponse{Success: true, Data: out})
}

// CreateService godoc
// @Summary      Crear servicio
// @Tags         catalog
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CatalogServiceInput  true  "Datos del servicio"
// @Success      201   {object}  dto.ServiceResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/catalog/services [post]
func (h *CatalogHandler) CreateService(c *fiber.Ctx) error {
	var in dto.CatalogServiceInput
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.CreateService(h.writeContext(c), in)
	if err != nil {
		return h.fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.ServiceResponse{Success: true, Data: out})
}

// UpdateService godoc
// @Summary      Actualizar servicio
// @Tags         catalog
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del servicio"
// @Param        body  body  dto.CatalogServiceInput  true  "Datos a actualizar"
// @Success      200   {object}  dto.ServiceResponse
// @Router       /api/catalog/services/{id} [put]
func (h *CatalogHandler) UpdateService(c *fiber.Ctx) error {
	var in dto.CatalogServiceInput
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.UpdateService(h.writeContext(c), c.Params("id"), in)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(dto.ServiceResponse{Success: true, Data: out})
}

// DeleteService godoc
// @Summary      Eliminar servicio
// @Tags         catalog
// @Security     Bearer
// @Param        id  path  string  true  "ID del servicio"
// @Success      204
// @Router       /api/catalog/services/{id} [delete]
func (h *CatalogHandler) DeleteService(c *fiber.Ctx) error {
	if err := h.uc.DeleteService(h.writeContext(c), c.Params("id")); err != nil {
		return h.fail(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// CreateProduct godoc
// @Summary      Crear producto
// @Tags         catalog
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CatalogProductInput  true  "Datos del producto"
// @Success      201   {object}  dto.ProductResponse
// @Router       /api/catalog/products [post]
func (h *CatalogHandler) CreateProduct(c *fiber.Ctx) error {
	var in dto.CatalogProductInput
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.CreateProduct(h.writeContext(c), in)
	if err != nil {
		return h.fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.ProductResponse{Success: true, Data: out})
}

// UpdateProduct godoc
// @Summary      Actualizar producto
// @Tags         catalog
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del producto"
// @Param        body  body  dto.CatalogProductInput  true  "Datos a actualizar"
// @Success      200   {object}  dto.ProductResponse
// @Router       /api/catalog/products/{id} [put]
func (h *CatalogHandler) UpdateProduct(c *fiber.Ctx) error {
	var in dto.CatalogProductInput
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.UpdateProduct(h.writeContext(c), c.Params("id"), in)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(dto.ProductResponse{Success: true, Data: out})
}

// DeleteProduct godoc
// @Summary      Eliminar producto
// @Tags         catalog
// @Security     Bearer
// @Param        id  path  string  true  "ID del producto"
// @Success      204
// @Router       /api/catalog/products/{id} [delete]
func (h *CatalogHandler) DeleteProduct(c *fiber.Ctx) error {
	if err := h.uc.DeleteProduct(h.writeContext(c), c.Params("id")); err != nil {
		return h.fail(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func parseFilters(c *fiber.Ctx) dcatalog.Filters {
	return dcatalog.Filters{
		IncludeProducts: c.QueryBool("includeProducts", false),
		Search:          c.Query("search"),
		ShowInactive:    c.QueryBool("showInactive", false),
		IsAtHome:        c.QueryBool("isAtHome", false),
		Category:        c.Query("category"),
	}
}

// writeContext contexto de la petición con el token de sesión para reenviarlo al backend.
func (h *CatalogHandler) writeContext(c *fiber.Ctx) context.Context {
	ctx := c.UserContext()
	if token := GetToken(c); token != "" {
		ctx = session.WithToken(ctx, token)
	}
	return ctx
}

func (h *CatalogHandler) fail(c *fiber.Ctx, err error) error {
	var mutErr *domain.MutationError
	switch {
	case errors.Is(err, domain.ErrAborted):
		return c.Status(StatusClientClosedRequest).JSON(dto.ErrorResponse{Code: "ABORTED", Message: "solicitud cancelada"})
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	case errors.As(err, &mutErr):
		status := mutErr.Status
		if status < 400 {
			status = fiber.StatusBadGateway
		}
		return c.Status(status).JSON(dto.ErrorResponse{Code: "UPSTREAM", Message: mutErr.Body})
	default:
		h.log.Error().Err(err).Str("path", c.Path()).Msg("error del catálogo")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}
