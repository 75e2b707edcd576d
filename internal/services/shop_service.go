package services

import (
	"fmt"
	"sync"

	"grocerhub/internal/domain"
	"grocerhub/internal/repos"
)

// ShopService holds one in-memory cart per session and runs checkout.
// Carts are never persisted; they are consumed into an Order.
type ShopService struct {
	Prods  *repos.ProductRepo
	Orders *repos.OrderRepo

	mu    sync.Mutex
	carts map[string]*domain.ShoppingCart
}

func NewShopService(prods *repos.ProductRepo, orders *repos.OrderRepo) *ShopService {
	return &ShopService{Prods: prods, Orders: orders, carts: make(map[string]*domain.ShoppingCart)}
}

func (s *ShopService) cart(sid string) *domain.ShoppingCart {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.carts[sid]
	if !ok {
		c = &domain.ShoppingCart{}
		s.carts[sid] = c
	}
	return c
}

// AddToCart verifies the product exists and that the accumulated cart
// quantity is covered by current stock before the line is touched. Stock can
// still change between add and checkout; checkout re-verifies.
func (s *ShopService) AddToCart(sid string, productID, qty int) error {
	if qty < 1 {
		return ErrInvalidPurchase
	}
	p, ok := s.Prods.FindByID(productID)
	if !ok {
		return ErrNotFound
	}
	if p.OutOfStock() {
		return fmt.Errorf("%w: %q is out of stock", ErrInsufficientStock, p.Name)
	}
	c := s.cart(sid)
	s.mu.Lock()
	defer s.mu.Unlock()
	have := 0
	for _, it := range c.Items {
		if it.ProductID == productID {
			have = it.Qty
		}
	}
	if have+qty > p.Quantity {
		return fmt.Errorf("%w: only %d of %q available", ErrInsufficientStock, p.Quantity, p.Name)
	}
	c.AddItem(p, qty)
	return nil
}

// ViewCart returns a copy of the session's cart.
func (s *ShopService) ViewCart(sid string) domain.ShoppingCart {
	c := s.cart(sid)
	s.mu.Lock()
	defer s.mu.Unlock()
	out := domain.ShoppingCart{Items: make([]domain.CartItem, len(c.Items))}
	copy(out.Items, c.Items)
	return out
}

func (s *ShopService) RemoveFromCart(sid string, productID int) {
	c := s.cart(sid)
	s.mu.Lock()
	defer s.mu.Unlock()
	c.RemoveItem(productID)
}

// Checkout turns the cart into a Completed order:
//
//  1. every line is checked against freshly loaded stock; any shortfall
//     aborts before a single product is mutated,
//  2. all decrements are applied and the product collection persisted,
//  3. the order is built with name/price snapshots and persisted,
//  4. the cart is cleared.
//
// The stock write lands before the order write on purpose: a failure in
// between loses a sale, never oversells.
func (s *ShopService) Checkout(sid string, user *domain.User) (*domain.Order, error) {
	c := s.cart(sid)
	s.mu.Lock()
	defer s.mu.Unlock()

	if c.Empty() {
		return nil, ErrEmptyCart
	}

	products := s.Prods.LoadAll()
	index := make(map[int]int, len(products))
	for i, p := range products {
		index[p.ID] = i
	}

	// verify everything first
	for _, line := range c.Items {
		i, ok := index[line.ProductID]
		if !ok {
			return nil, fmt.Errorf("%w: product %d", ErrNotFound, line.ProductID)
		}
		if line.Qty > products[i].Quantity {
			return nil, fmt.Errorf("%w: only %d of %q available", ErrInsufficientStock, products[i].Quantity, products[i].Name)
		}
	}

	for _, line := range c.Items {
		products[index[line.ProductID]].ReduceStock(line.Qty)
	}
	if err := s.Prods.SaveAll(products); err != nil {
		return nil, err
	}

	order := domain.NewOrder(s.Orders.NextID(), user.Name, user.Phone)
	order.Status = domain.StatusCompleted
	for _, line := range c.Items {
		p := products[index[line.ProductID]]
		order.AddItem(domain.OrderItem{
			ProductID:   p.ID,
			ProductName: p.Name,
			Quantity:    line.Qty,
			Price:       p.Price,
		})
	}
	if err := s.Orders.Add(*order); err != nil {
		return nil, err
	}

	c.Clear()
	return order, nil
}

// MyOrders lists the orders recorded against a customer phone.
func (s *ShopService) MyOrders(phone string) []domain.Order {
	return s.Orders.FindByCustomer(phone)
}
