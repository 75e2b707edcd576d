package domain

import (
	"encoding/json"
	"time"
)

const (
	StatusPending    = "Pending"
	StatusProcessing = "Processing"
	StatusShipped    = "Shipped"
	StatusDelivered  = "Delivered"
	StatusCancelled  = "Cancelled"
	StatusCompleted  = "Completed"
)

// OrderDateLayout is the timestamp format stored in orders.json.
const OrderDateLayout = "2006-01-02 15:04:05"

var orderStatuses = []string{
	StatusPending, StatusProcessing, StatusShipped,
	StatusDelivered, StatusCancelled, StatusCompleted,
}

func ValidOrderStatus(s string) bool {
	for _, v := range orderStatuses {
		if s == v {
			return true
		}
	}
	return false
}

// OrderItem is a line within an order. ProductName and Price are snapshots
// taken at order time so historical orders stay stable if the catalog
// changes later.
type OrderItem struct {
	ProductID   int     `json:"product_id"`
	ProductName string  `json:"product_name"`
	Quantity    int     `json:"quantity"`
	Price       float64 `json:"price"`
}

func (i OrderItem) Subtotal() float64 { return float64(i.Quantity) * i.Price }

func (i OrderItem) MarshalJSON() ([]byte, error) {
	type alias OrderItem
	return json.Marshal(struct {
		alias
		Subtotal float64 `json:"subtotal"`
	}{alias(i), i.Subtotal()})
}

type Order struct {
	OrderID       int         `json:"order_id"`
	CustomerName  string      `json:"customer_name"`
	CustomerPhone string      `json:"customer_phone"`
	Items         []OrderItem `json:"items"`
	OrderDate     string      `json:"order_date"`
	Status        string      `json:"status"`
}

func NewOrder(id int, customerName, customerPhone string) *Order {
	return &Order{
		OrderID:       id,
		CustomerName:  customerName,
		CustomerPhone: customerPhone,
		OrderDate:     time.Now().Format(OrderDateLayout),
		Status:        StatusPending,
	}
}

func (o *Order) AddItem(item OrderItem) { o.Items = append(o.Items, item) }

// CalculateTotal sums the item subtotals. The total is always derived; the
// total_amount written to disk is display-only and never read back.
func (o *Order) CalculateTotal() float64 {
	total := 0.0
	for _, it := range o.Items {
		total += it.Subtotal()
	}
	return total
}

// UpdateStatus applies the new status if it is one of the known values.
// An unknown value is rejected and the prior status retained.
func (o *Order) UpdateStatus(status string) bool {
	if !ValidOrderStatus(status) {
		return false
	}
	o.Status = status
	return true
}

// Completed reports whether the order counts toward revenue. Delivered
// orders count the same as Completed ones.
func (o *Order) Completed() bool {
	return o.Status == StatusCompleted || o.Status == StatusDelivered
}

func (o Order) MarshalJSON() ([]byte, error) {
	type alias Order
	return json.Marshal(struct {
		alias
		TotalAmount float64 `json:"total_amount"`
	}{alias(o), o.CalculateTotal()})
}

func (o *Order) UnmarshalJSON(b []byte) error {
	type alias Order
	a := alias{Status: StatusPending}
	if err := json.Unmarshal(b, &a); err != nil {
		return err
	}
	*o = Order(a)
	if o.Status == "" {
		o.Status = StatusPending
	}
	return nil
}
