package services

import (
	"grocerhub/internal/domain"
	"grocerhub/internal/repos"
)

type OrderService struct {
	Orders *repos.OrderRepo
}

func NewOrderService(orders *repos.OrderRepo) *OrderService {
	return &OrderService{Orders: orders}
}

func (s *OrderService) ListOrders() []domain.Order {
	return s.Orders.LoadAll()
}

func (s *OrderService) GetOrder(id int) (domain.Order, error) {
	o, ok := s.Orders.FindByID(id)
	if !ok {
		return domain.Order{}, ErrNotFound
	}
	return o, nil
}

func (s *OrderService) OrdersByCustomer(phone string) []domain.Order {
	return s.Orders.FindByCustomer(phone)
}

func (s *OrderService) OrdersByStatus(status string) ([]domain.Order, error) {
	if !domain.ValidOrderStatus(status) {
		return nil, ErrInvalidStatus
	}
	return s.Orders.FindByStatus(status), nil
}

// UpdateStatus moves an order to a new status. An unknown status value is
// rejected and the stored order keeps its prior status. Completed is only
// ever assigned at checkout; the admin surface offers the other five.
func (s *OrderService) UpdateStatus(id int, status string) error {
	o, ok := s.Orders.FindByID(id)
	if !ok {
		return ErrNotFound
	}
	if !o.UpdateStatus(status) {
		return ErrInvalidStatus
	}
	_, err := s.Orders.Update(o)
	return err
}

// DeleteOrder removes the order entirely. Hard delete, no tombstone.
func (s *OrderService) DeleteOrder(id int) error {
	found, err := s.Orders.DeleteByID(id)
	if err != nil {
		return err
	}
	if !found {
		return ErrNotFound
	}
	return nil
}

type RevenueSummary struct {
	Orders  int     `json:"orders"`
	Total   float64 `json:"total"`
	Average float64 `json:"average"`
}

// Revenue sums derived order totals over Completed and Delivered orders
// only; Pending, Processing, Shipped and Cancelled orders never count.
func (s *OrderService) Revenue() RevenueSummary {
	var sum RevenueSummary
	for _, o := range s.Orders.LoadAll() {
		if !o.Completed() {
			continue
		}
		sum.Orders++
		sum.Total += o.CalculateTotal()
	}
	if sum.Orders > 0 {
		sum.Average = sum.Total / float64(sum.Orders)
	}
	return sum
}
