package domain

// MaxQuantityPerLine caps how many units of one product a cart line may
// hold. The storefront has no wholesale tier above this.
const MaxQuantityPerLine = 100

// CartItem is one line of a user's cart: a (user, product) pair with a
// positive quantity. Lines live only until checkout consumes them.
type CartItem struct {
	userID    string
	productID string
	quantity  int64
}

// NewCartItem creates a validated cart line.
func NewCartItem(userID, productID string, quantity int64) (*CartItem, error) {
	if userID == "" || productID == "" {
		return nil, ErrMissingIdentifier
	}
	if err := validateQuantity(quantity); err != nil {
		return nil, err
	}

	return &CartItem{
		userID:    userID,
		productID: productID,
		quantity:  quantity,
	}, nil
}

// ReconstructCartItem reconstitutes a cart line from storage.
func ReconstructCartItem(userID, productID string, quantity int64) *CartItem {
	return &CartItem{
		userID:    userID,
		productID: productID,
		quantity:  quantity,
	}
}

// Getters
func (c *CartItem) UserID() string    { return c.userID }
func (c *CartItem) ProductID() string { return c.productID }
func (c *CartItem) Quantity() int64   { return c.quantity }

// AddQuantity increments the line for a repeat add of the same product.
func (c *CartItem) AddQuantity(quantity int64) error {
	if quantity <= 0 {
		return ErrInvalidQuantity
	}
	return c.SetQuantity(c.quantity + quantity)
}

// SetQuantity replaces the line quantity.
func (c *CartItem) SetQuantity(quantity int64) error {
	if err := validateQuantity(quantity); err != nil {
		return err
	}
	c.quantity = quantity
	return nil
}

func validateQuantity(quantity int64) error {
	if quantity <= 0 {
		return ErrInvalidQuantity
	}
	if quantity > MaxQuantityPerLine {
		return ErrQuantityLimitExceeded
	}
	return nil
}
