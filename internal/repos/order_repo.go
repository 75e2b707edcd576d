package repos

import "grocerhub/internal/domain"

type OrderRepo struct{ store *Store }

func NewOrderRepo(s *Store) *OrderRepo { return &OrderRepo{store: s} }

func (r *OrderRepo) LoadAll() []domain.Order {
	return loadAll[domain.Order](r.store, ordersFile)
}

func (r *OrderRepo) SaveAll(orders []domain.Order) error {
	return saveAll(r.store, ordersFile, orders)
}

func (r *OrderRepo) FindByID(id int) (domain.Order, bool) {
	for _, o := range r.LoadAll() {
		if o.OrderID == id {
			return o, true
		}
	}
	return domain.Order{}, false
}

// FindByCustomer returns all orders recorded against a customer phone. An
// order whose phone no longer matches a registered user is still returned;
// orphaned references are a tolerated outcome, not an error.
func (r *OrderRepo) FindByCustomer(phone string) []domain.Order {
	var out []domain.Order
	for _, o := range r.LoadAll() {
		if o.CustomerPhone == phone {
			out = append(out, o)
		}
	}
	return out
}

func (r *OrderRepo) FindByStatus(status string) []domain.Order {
	var out []domain.Order
	for _, o := range r.LoadAll() {
		if o.Status == status {
			out = append(out, o)
		}
	}
	return out
}

func (r *OrderRepo) Add(o domain.Order) error {
	orders := r.LoadAll()
	orders = append(orders, o)
	return r.SaveAll(orders)
}

func (r *OrderRepo) Update(o domain.Order) (bool, error) {
	orders := r.LoadAll()
	for i := range orders {
		if orders[i].OrderID == o.OrderID {
			orders[i] = o
			return true, r.SaveAll(orders)
		}
	}
	return false, nil
}

// DeleteByID removes the order outright. There is no tombstone.
func (r *OrderRepo) DeleteByID(id int) (bool, error) {
	orders := r.LoadAll()
	kept := orders[:0]
	found := false
	for _, o := range orders {
		if o.OrderID == id {
			found = true
			continue
		}
		kept = append(kept, o)
	}
	if !found {
		return false, nil
	}
	return true, r.SaveAll(kept)
}

func (r *OrderRepo) NextID() int {
	return nextID(r.LoadAll(), func(o domain.Order) int { return o.OrderID })
}
