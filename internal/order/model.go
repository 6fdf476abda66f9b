package order

import (
	"time"

	"github.com/deep4nsh/order-plus-rn-new/internal/cart"
)

// Order lifecycle. A paid order moves forward one step at a time and
// never skips or regresses.
const (
	StatusPaid      = "PAID"
	StatusPreparing = "PREPARING"
	StatusOnTheWay  = "ON_THE_WAY"
	StatusDelivered = "DELIVERED"
)

// statusFlow is the forward path; index order matters.
var statusFlow = []string{StatusPaid, StatusPreparing, StatusOnTheWay, StatusDelivered}

// DemoDriverName is assigned to every order at placement. Real
// dispatch is out of scope here.
const DemoDriverName = "Rahul (Demo Driver)"

type Order struct {
	ID         string      `json:"id"`
	UserID     string      `json:"-"`
	UserEmail  string      `json:"user_email,omitempty"`
	UserName   string      `json:"user_name,omitempty"`
	Items      []cart.Line `json:"items"`
	TotalPrice int64       `json:"total_price"`
	Status     string      `json:"status"`
	PaymentID  string      `json:"payment_id,omitempty"`
	DriverName string      `json:"driver_name,omitempty"`

	DeliveryAddressID    string  `json:"delivery_address_id,omitempty"`
	DeliveryAddressLabel string  `json:"delivery_address_label,omitempty"`
	DeliveryAddressText  string  `json:"delivery_address"`
	DeliveryLat          float64 `json:"delivery_lat,omitempty"`
	DeliveryLng          float64 `json:"delivery_lng,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NextStatus returns the status after s, or "" when s is terminal or
// unknown.
func NextStatus(s string) string {
	for i, st := range statusFlow {
		if st == s && i+1 < len(statusFlow) {
			return statusFlow[i+1]
		}
	}
	return ""
}
