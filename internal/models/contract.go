package models

// Contract mirrors a row of the contracts table.
type Contract struct {
	ContractID     int64  `json:"contractID"`
	ContractNumber string `json:"contractNumber"`
	CustomerID     int64  `json:"customerID"`
}
