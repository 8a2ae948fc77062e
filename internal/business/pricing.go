package business

import "fmt"

// PriceList maps product IDs to prices in cents.
type PriceList struct {
	ID     string
	Prices map[string]int64
}

// PriceLists looks up prices. Promotions and the store depend on this
// interface rather than on PriceListService.
type PriceLists interface {
	Price(listID, productID string) (int64, error)
}

// PriceListService maintains price lists for catalog products.
type PriceListService struct {
	catalog *CatalogService
	lists   Repository[PriceList]
}

// NewPriceListService creates a PriceListService.
func NewPriceListService(catalog *CatalogService, lists Repository[PriceList]) *PriceListService {
	return &PriceListService{catalog: catalog, lists: lists}
}

// SetPrice sets the price of an existing product, creating the list on
// first use.
func (s *PriceListService) SetPrice(listID, productID string, cents int64) error {
	if cents < 0 {
		return fmt.Errorf("price of %s must not be negative", productID)
	}
	if _, err := s.catalog.Product(productID); err != nil {
		return err
	}

	list, err := s.lists.Get(listID)
	if err != nil {
		list = PriceList{ID: listID, Prices: make(map[string]int64)}
	}
	list.Prices[productID] = cents
	s.lists.Put(listID, list)
	return nil
}

// Price implements PriceLists.
func (s *PriceListService) Price(listID, productID string) (int64, error) {
	list, err := s.lists.Get(listID)
	if err != nil {
		return 0, err
	}
	cents, ok := list.Prices[productID]
	if !ok {
		return 0, fmt.Errorf("no price for %s in %s: %w", productID, listID, ErrNotFound)
	}
	return cents, nil
}
