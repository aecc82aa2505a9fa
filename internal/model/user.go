package model

// User is the registered buyer. WalletBalance is the only field that changes
// after registration.
type User struct {
	Name              string  `json:"name"`
	ContactNumber     string  `json:"contact_number"`
	GSTID             string  `json:"gst_id"`
	BankAccountNumber string  `json:"bank_account_number"`
	IFSC              string  `json:"ifsc"`
	UPIID             string  `json:"upi_id"`
	RegisteredDate    string  `json:"registered_date"`
	WalletBalance     float64 `json:"wallet_balance"`
}
