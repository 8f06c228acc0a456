package models

// Customer mirrors a row of the customers table.
type Customer struct {
	CustomerID int64  `json:"customerID"`
	ShortName  string `json:"shortName"`
}
