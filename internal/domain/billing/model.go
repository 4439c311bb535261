package billing

import "time"

// Item is a single charge on a bill.
type Item struct {
	Description string  `json:"description"`
	Amount      float64 `json:"amount"`
}

// Bill invoices a patient for a set of items. Total is derived: the store
// recomputes it from the items on every write that touches them, so a total
// supplied by the caller is never trusted.
type Bill struct {
	ID            string     `json:"id"`
	PatientID     string     `json:"patientId"`
	Date          string     `json:"date"` // ISO date, stamped on create
	Items         []Item     `json:"items"`
	Total         float64    `json:"total"`
	Status        string     `json:"status"`
	PaymentMethod string     `json:"paymentMethod,omitempty"`
	PaidAt        string     `json:"paidAt,omitempty"`
	CreatedAt     time.Time  `json:"createdAt"`
	UpdatedAt     *time.Time `json:"updatedAt,omitempty"`
}

func (b *Bill) Clone() *Bill {
	cp := *b
	if b.Items != nil {
		cp.Items = make([]Item, len(b.Items))
		copy(cp.Items, b.Items)
	}
	return &cp
}

// TotalOf sums the item amounts.
func TotalOf(items []Item) float64 {
	var sum float64
	for _, it := range items {
		sum += it.Amount
	}
	return sum
}

// Update carries a partial modification; nil fields are left untouched.
// When Items is present, Total is recomputed from it.
type Update struct {
	PatientID     *string `json:"patientId"`
	Items         *[]Item `json:"items"`
	Status        *string `json:"status"`
	PaymentMethod *string `json:"paymentMethod"`
}

func (b *Bill) apply(u Update) {
	if u.PatientID != nil {
		b.PatientID = *u.PatientID
	}
	if u.Items != nil {
		b.Items = make([]Item, len(*u.Items))
		copy(b.Items, *u.Items)
		b.Total = TotalOf(b.Items)
	}
	if u.Status != nil {
		b.Status = *u.Status
	}
	if u.PaymentMethod != nil {
		b.PaymentMethod = *u.PaymentMethod
	}
}
