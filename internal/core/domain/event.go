package domain

const (
	CartActionAdded   = "added"
	CartActionRemoved = "removed"
	CartActionCleared = "cleared"
)

// A CartEvent records one cart mutation for the activity stream.
type CartEvent struct {
	SessionID   string
	Action      string
	ProductID   int64
	ProductName string
	Category    string
	UnitPrice   float64
	Quantity    int
}

// A ContactMessage is one submission of the storefront contact form.
type ContactMessage struct {
	Name    string
	Email   string
	Subject string
	Message string
}
