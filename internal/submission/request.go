package submission

// EnergyEventRequest is an energy-production report to ingest.
type EnergyEventRequest struct {
	Wallet          string  `json:"wallet" validate:"required,eth_addr"`
	Units           float64 `json:"units" validate:"gt=0"`
	DeviceID        *string `json:"device_id,omitempty" validate:"omitempty,max=128"`
	DeviceTimestamp *string `json:"device_timestamp,omitempty" validate:"omitempty,max=64"`
}

// MintRequest credits Amount raw units to Wallet.
type MintRequest struct {
	Wallet string `json:"wallet" validate:"required,eth_addr"`
	Amount int64  `json:"amount" validate:"gte=0"`
}

// TransferRequest moves Amount raw units to Receiver. Transfers are always
// sent from the backend account; Sender is informational.
type TransferRequest struct {
	Sender   string  `json:"sender" validate:"omitempty,eth_addr"`
	Receiver string  `json:"receiver" validate:"required,eth_addr"`
	Amount   float64 `json:"amount" validate:"gte=0"`
}

// BurnRequest destroys Amount raw units held by Wallet.
type BurnRequest struct {
	Wallet string  `json:"wallet" validate:"required,eth_addr"`
	Amount float64 `json:"amount" validate:"gte=0"`
}
