package catalog

import (
	"context"
	"fmt"
	"strings"

	"github.com/jhoicas/belleza-catalog-api/internal/application/dto"
	"github.com/jhoicas/belleza-catalog-api/internal/domain"
	dcatalog "github.com/jhoicas/belleza-catalog-api/internal/domain/catalog"
	"github.com/jhoicas/belleza-catalog-api/internal/domain/entity"
	"github.com/jhoicas/belleza-catalog-api/internal/domain/repository"
)

// UseCase fachada pública del catálogo. Las lecturas pasan por las cadenas de fallback y
// solo fallan por cancelación; las escrituras van directo al backend y fallan sin fallback.
type UseCase struct {
	services *Chain[entity.CatalogService]
	products *Chain[entity.CatalogProduct]
	writer   repository.CatalogWriter
}

// NewUseCase construye la fachada.
func NewUseCase(
	services *Chain[entity.CatalogService],
	products *Chain[entity.CatalogProduct],
	writer repository.CatalogWriter,
) *UseCase {
	return &UseCase{services: services, products: products, writer: writer}
}

// FetchServices resuelve el catálogo de servicios. Category no aplica a servicios.
func (uc *UseCase) FetchServices(ctx context.Context, f dcatalog.Filters) ([]entity.CatalogService, error) {
	if err := checkAborted(ctx); err != nil {
		return nil, err
	}
	f.Category = ""
	f.Search = strings.TrimSpace(f.Search)
	return uc.services.Resolve(ctx, f)
}

// FetchProducts resuelve el catálogo de productos.
func (uc *UseCase) FetchProducts(ctx context.Context, f dcatalog.Filters) ([]entity.CatalogProduct, error) {
	if err := checkAborted(ctx); err != nil {
		return nil, err
	}
	f.IncludeProducts = false
	f.Search = strings.TrimSpace(f.Search)
	f.Category = strings.TrimSpace(f.Category)
	return uc.products.Resolve(ctx, f)
}

// CreateService crea un servicio en el backend. Name es obligatorio.
func (uc *UseCase) CreateService(ctx context.Context, in dto.CatalogServiceInput) (*entity.CatalogService, error) {
	if err := checkAborted(ctx); err != nil {
		return nil, err
	}
	if in.Name == nil || strings.TrimSpace(*in.Name) == "" {
		return nil, fmt.Errorf("name es obligatorio: %w", domain.ErrInvalidInput)
	}
	if err := validateServiceInput(in); err != nil {
		return nil, err
	}
	rec, err := uc.writer.Create(ctx, repository.KindServices, in)
	if err != nil {
		return nil, err
	}
	return toService(rec), nil
}

// UpdateService actualiza un servicio existente.
func (uc *UseCase) UpdateService(ctx context.Context, id string, in dto.CatalogServiceInput) (*entity.CatalogService, error) {
	if err := checkAborted(ctx); err != nil {
		return nil, err
	}
	if strings.TrimSpace(id) == "" {
		return nil, fmt.Errorf("id es obligatorio: %w", domain.ErrInvalidInput)
	}
	if err := validateServiceInput(in); err != nil {
		return nil, err
	}
	rec, err := uc.writer.Update(ctx, repository.KindServices, id, in)
	if err != nil {
		return nil, err
	}
	return toService(rec), nil
}

// DeleteService elimina un servicio.
func (uc *UseCase) DeleteService(ctx context.Context, id string) error {
	if err := checkAborted(ctx); err != nil {
		return err
	}
	if strings.TrimSpace(id) == "" {
		return fmt.Errorf("id es obligatorio: %w", domain.ErrInvalidInput)
	}
	return uc.writer.Delete(ctx, repository.KindServices, id)
}

// CreateProduct crea un producto en el backend. Name es obligatorio.
func (uc *UseCase) CreateProduct(ctx context.Context, in dto.CatalogProductInput) (*entity.CatalogProduct, error) {
	if err := checkAborted(ctx); err != nil {
		return nil, err
	}
	if in.Name == nil || strings.TrimSpace(*in.Name) == "" {
		return nil, fmt.Errorf("name es obligatorio: %w", domain.ErrInvalidInput)
	}
	if err := validateProductInput(in); err != nil {
		return nil, err
	}
	rec, err := uc.writer.Create(ctx, repository.KindProducts, in)
	if err != nil {
		return nil, err
	}
	return toProduct(rec), nil
}

// UpdateProduct actualiza un producto existente.
func (uc *UseCase) UpdateProduct(ctx context.Context, id string, in dto.CatalogProductInput) (*entity.CatalogProduct, error) {
	if err := checkAborted(ctx); err != nil {
		return nil, err
	}
	if strings.TrimSpace(id) == "" {
		return nil, fmt.Errorf("id es obligatorio: %w", domain.ErrInvalidInput)
	}
	if err := validateProductInput(in); err != nil {
		return nil, err
	}
	rec, err := uc.writer.Update(ctx, repository.KindProducts, id, in)
	if err != nil {
		return nil, err
	}
	return toProduct(rec), nil
}

// DeleteProduct elimina un producto.
func (uc *UseCase) DeleteProduct(ctx context.Context, id string) error {
	if err := checkAborted(ctx); err != nil {
		return err
	}
	if strings.TrimSpace(id) == "" {
		return fmt.Errorf("id es obligatorio: %w", domain.ErrInvalidInput)
	}
	return uc.writer.Delete(ctx, repository.KindProducts, id)
}

func checkAborted(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrAborted, err)
	}
	return nil
}

func validateServiceInput(in dto.CatalogServiceInput) error {
	if in.Name != nil && strings.TrimSpace(*in.Name) == "" {
		return fmt.Errorf("name no puede estar vacío: %w", domain.ErrInvalidInput)
	}
	if in.Duration != nil && *in.Duration <= 0 {
		return fmt.Errorf("duration debe ser positiva: %w", domain.ErrInvalidInput)
	}
	if (in.CustomerPrice != nil && in.CustomerPrice.IsNegative()) || (in.VendorPayout != nil && in.VendorPayout.IsNegative()) {
		return fmt.Errorf("los precios no pueden ser negativos: %w", domain.ErrInvalidInput)
	}
	return nil
}

func validateProductInput(in dto.CatalogProductInput) error {
	if in.Name != nil && strings.TrimSpace(*in.Name) == "" {
		return fmt.Errorf("name no puede estar vacío: %w", domain.ErrInvalidInput)
	}
	if (in.CustomerPrice != nil && in.CustomerPrice.IsNegative()) || (in.VendorPayout != nil && in.VendorPayout.IsNegative()) {
		return fmt.Errorf("los precios no pueden ser negativos: %w", domain.ErrInvalidInput)
	}
	return nil
}

// toService normaliza la entidad devuelta por el backend; nil si no es recuperable.
func toService(rec dcatalog.Record) *entity.CatalogService {
	if rec == nil {
		return nil
	}
	svc, ok := dcatalog.NormalizeService(rec, dcatalog.ServiceFields, true)
	if !ok {
		return nil
	}
	return &svc
}

func toProduct(rec dcatalog.Record) *entity.CatalogProduct {
	if rec == nil {
		return nil
	}
	p, ok := dcatalog.NormalizeProduct(rec, dcatalog.ProductFields)
	if !ok {
		return nil
	}
	return &p
}
