package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/Sucursales-api/internal/application/dto"
	"github.com/jhoicas/Sucursales-api/internal/domain"
	"github.com/jhoicas/Sucursales-api/internal/domain/entity"
	"github.com/jhoicas/Sucursales-api/internal/domain/repository"
	"github.com/shopspring/decimal"
)

// ProductUseCase administración del catálogo de productos.
type ProductUseCase struct {
	productRepo repository.ProductRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(productRepo repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{productRepo: productRepo}
}

// Create registra un producto nuevo. El SKU es único en toda la cadena;
// duplicado devuelve domain.ErrDuplicate.
func (uc *ProductUseCase) Create(ctx context.Context, in dto.CreateProductRequest) (string, error) {
	if in.Name == "" || in.SKU == "" {
		return "", domain.ErrInvalidInput
	}
	if in.UnitPrice.LessThan(decimal.Zero) {
		return "", domain.ErrInvalidInput
	}
	now := time.Now()
	product := &entity.Product{
		ID:                uuid.New().String(),
		Name:              in.Name,
		SKU:               in.SKU,
		Category:          in.Category,
		Unit:              in.Unit,
		UnitPrice:         in.UnitPrice,
		DefaultSupplierID: in.DefaultSupplierID,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
	if err := uc.productRepo.Create(ctx, product); err != nil {
		return "", err
	}
	return product.ID, nil
}

// GetByID obtiene un producto; ErrNotFound si no existe.
func (uc *ProductUseCase) GetByID(ctx context.Context, id string) (*dto.ProductDTO, error) {
	if id == "" {
		return nil, domain.ErrInvalidInput
	}
	p, err := uc.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	d := toProductDTO(*p, nil)
	return &d, nil
}

// List catálogo completo con el nombre del proveedor habitual.
func (uc *ProductUseCase) List(ctx context.Context) ([]dto.ProductDTO, error) {
	rows, err := uc.productRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ProductDTO, 0, len(rows))
	for _, r := range rows {
		out = append(out, toProductDTO(r.Product, r.SupplierName))
	}
	return out, nil
}

// Update edita los atributos mutables; la identidad y el SKU no cambian.
func (uc *ProductUseCase) Update(ctx context.Context, id string, in dto.UpdateProductRequest) error {
	if id == "" || in.Name == "" {
		return domain.ErrInvalidInput
	}
	if in.UnitPrice.LessThan(decimal.Zero) {
		return domain.ErrInvalidInput
	}
	p, err := uc.productRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if p == nil {
		return domain.ErrNotFound
	}
	p.Name = in.Name
	p.Category = in.Category
	p.Unit = in.Unit
	p.UnitPrice = in.UnitPrice
	p.DefaultSupplierID = in.DefaultSupplierID
	p.UpdatedAt = time.Now()
	return uc.productRepo.Update(ctx, p)
}

func toProductDTO(p entity.Product, supplierName *string) dto.ProductDTO {
	return dto.ProductDTO{
		ProductID:         p.ID,
		Name:              p.Name,
		SKU:               p.SKU,
		Category:          p.Category,
		Unit:              p.Unit,
		UnitPrice:         p.UnitPrice,
		DefaultSupplierID: p.DefaultSupplierID,
		SupplierName:      supplierName,
	}
}
