package business

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

// OrderLine is one product of an order.
type OrderLine struct {
	ProductID string
	Quantity  int
	UnitPrice int64
}

// Order is a completed sale.
type Order struct {
	ID        string
	Lines     []OrderLine
	Total     int64
	InvoiceID string
	PlacedAt  time.Time
}

// StoreService is the point of sale: it prices a basket, records the order
// and issues the invoice.
type StoreService struct {
	catalog   *CatalogService
	prices    *PromotionService
	orders    Repository[Order]
	documents *DocumentService
	notifier  Notifier
}

// NewStoreService creates a StoreService.
func NewStoreService(catalog *CatalogService, prices *PromotionService, orders Repository[Order], documents *DocumentService, notifier Notifier) *StoreService {
	return &StoreService{
		catalog:   catalog,
		prices:    prices,
		orders:    orders,
		documents: documents,
		notifier:  notifier,
	}
}

// Checkout sells the basket (product ID to quantity) at the prices of
// listID.
func (s *StoreService) Checkout(listID string, basket map[string]int) (Order, error) {
	if len(basket) == 0 {
		return Order{}, fmt.Errorf("basket is empty")
	}

	ids := make([]string, 0, len(basket))
	for id := range basket {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	order := Order{ID: fmt.Sprintf("order-%04d", s.orders.Len()+1)}
	var invoice []string
	for _, id := range ids {
		qty := basket[id]
		if qty <= 0 {
			return Order{}, fmt.Errorf("quantity of %s must be positive", id)
		}
		product, err := s.catalog.Product(id)
		if err != nil {
			return Order{}, err
		}
		price, err := s.prices.Price(listID, id)
		if err != nil {
			return Order{}, err
		}
		order.Lines = append(order.Lines, OrderLine{ProductID: id, Quantity: qty, UnitPrice: price})
		order.Total += price * int64(qty)
		invoice = append(invoice, fmt.Sprintf("%d x %s @ %d", qty, product.Name, price))
	}
	invoice = append(invoice, fmt.Sprintf("total %d", order.Total))

	doc := s.documents.Issue("invoice", strings.Join(invoice, "\n"))
	order.InvoiceID = doc.ID
	order.PlacedAt = doc.IssuedAt
	s.orders.Put(order.ID, order)

	s.notifier.Notify("orders", fmt.Sprintf("%s placed, total %d", order.ID, order.Total))
	return order, nil
}
