package business

import (
	"fmt"
	"strings"
	"time"
)

// Product is a sellable item of a tenant's catalog.
type Product struct {
	ID        string
	TenantID  string
	Name      string
	SKU       string
	CreatedAt time.Time
}

// CatalogService manages products.
type CatalogService struct {
	products Repository[Product]
	clock    Clock
}

// NewCatalogService creates a CatalogService.
func NewCatalogService(products Repository[Product], clock Clock) *CatalogService {
	return &CatalogService{products: products, clock: clock}
}

// AddProduct validates and stores a product. The SKU doubles as its ID
// within the tenant.
func (s *CatalogService) AddProduct(tenantID, name, sku string) (Product, error) {
	if strings.TrimSpace(tenantID) == "" || strings.TrimSpace(sku) == "" {
		return Product{}, fmt.Errorf("tenant and SKU are required")
	}
	if strings.TrimSpace(name) == "" {
		return Product{}, fmt.Errorf("product %s needs a name", sku)
	}

	p := Product{
		ID:        tenantID + "/" + sku,
		TenantID:  tenantID,
		Name:      name,
		SKU:       sku,
		CreatedAt: s.clock.Now(),
	}
	s.products.Put(p.ID, p)
	return p, nil
}

// Product returns a product by ID.
func (s *CatalogService) Product(id string) (Product, error) {
	return s.products.Get(id)
}

// Products returns the products of a tenant.
func (s *CatalogService) Products(tenantID string) []Product {
	var out []Product
	for _, p := range s.products.List() {
		if p.TenantID == tenantID {
			out = append(out, p)
		}
	}
	return out
}
