package business

import (
	"fmt"
	"time"
)

// Promotion takes a percentage off a product's price between Starts and Ends.
type Promotion struct {
	ID         string
	ProductID  string
	PercentOff int
	Starts     time.Time
	Ends       time.Time
}

// PromotionService applies running promotions on top of price lists.
type PromotionService struct {
	prices PriceLists
	promos Repository[Promotion]
	clock  Clock
}

// NewPromotionService creates a PromotionService.
func NewPromotionService(prices PriceLists, promos Repository[Promotion], clock Clock) *PromotionService {
	return &PromotionService{prices: prices, promos: promos, clock: clock}
}

// Add stores a promotion.
func (s *PromotionService) Add(p Promotion) error {
	if p.PercentOff <= 0 || p.PercentOff > 100 {
		return fmt.Errorf("promotion %s: percentage must be between 1 and 100", p.ID)
	}
	if !p.Ends.After(p.Starts) {
		return fmt.Errorf("promotion %s ends before it starts", p.ID)
	}
	s.promos.Put(p.ID, p)
	return nil
}

// Price returns the price of productID in listID after the best running
// promotion.
func (s *PromotionService) Price(listID, productID string) (int64, error) {
	cents, err := s.prices.Price(listID, productID)
	if err != nil {
		return 0, err
	}

	now := s.clock.Now()
	best := 0
	for _, p := range s.promos.List() {
		if p.ProductID != productID || now.Before(p.Starts) || !now.Before(p.Ends) {
			continue
		}
		if p.PercentOff > best {
			best = p.PercentOff
		}
	}
	return cents * int64(100-best) / 100, nil
}
