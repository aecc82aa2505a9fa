package validation

import "strconv"

// ValidatePIN accepts a UPI PIN of exactly 4 or 6 digits.
func ValidatePIN(pin string) error {
	if len(pin) != 4 && len(pin) != 6 {
		return &Error{Kind: PinFormat, Field: "pin", Message: "PIN must be 4 or 6 digits."}
	}
	for _, r := range pin {
		if r < '0' || r > '9' {
			return &Error{Kind: PinFormat, Field: "pin", Message: "PIN must contain digits only."}
		}
	}
	return nil
}

// ValidateQuantity checks 1 <= quantity <= stock.
func ValidateQuantity(quantity, stock int) error {
	switch {
	case quantity <= 0:
		return &Error{Kind: InvalidQuantity, Field: "quantity", Message: "Quantity must be greater than 0."}
	case quantity > stock:
		return &Error{Kind: InvalidQuantity, Field: "quantity",
			Message: "Quantity cannot exceed available stock of " + strconv.Itoa(stock) + " kg."}
	}
	return nil
}
