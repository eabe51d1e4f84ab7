package domain

// ChartAccount is an entry of the chart of accounts.
type ChartAccount struct {
	ID   string `json:"id"`
	Code string `json:"code"`
	Name string `json:"name"`
}

// CashAccount is a chart account flagged as cash-in-hand.
type CashAccount struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// BankAccount is a bank account payments can be settled through.
type BankAccount struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	AccountNumber string `json:"accountNumber"`
}

// Customer is a receivable party.
type Customer struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Supplier is a payable party.
type Supplier struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// ReferenceData bundles the lists that feed account and party selectors.
type ReferenceData struct {
	ChartAccounts []ChartAccount `json:"chartAccounts"`
	CashAccounts  []CashAccount  `json:"cashAccounts"`
	Banks         []BankAccount  `json:"banks"`
	Customers     []Customer     `json:"customers"`
	Suppliers     []Supplier     `json:"suppliers"`
}

// AccountName resolves a chart or cash account id to its display name.
func (r *ReferenceData) AccountName(id string) string {
	if r == nil || id == "" {
		return ""
	}
	for _, a := range r.ChartAccounts {
		if a.ID == id {
			if a.Code != "" {
				return a.Code + " - " + a.Name
			}
			return a.Name
		}
	}
	for _, a := range r.CashAccounts {
		if a.ID == id {
			return a.Name
		}
	}
	return ""
}

// BankName resolves a bank id to "name (account number)".
func (r *ReferenceData) BankName(id string) string {
	if r == nil || id == "" {
		return ""
	}
	for _, b := range r.Banks {
		if b.ID == id {
			if b.AccountNumber != "" {
				return b.Name + " (" + b.AccountNumber + ")"
			}
			return b.Name
		}
	}
	return ""
}

// CustomerName resolves a customer id.
func (r *ReferenceData) CustomerName(id string) string {
	if r == nil || id == "" {
		return ""
	}
	for _, c := range r.Customers {
		if c.ID == id {
			return c.Name
		}
	}
	return ""
}

// SupplierName resolves a supplier id.
func (r *ReferenceData) SupplierName(id string) string {
	if r == nil || id == "" {
		return ""
	}
	for _, s := range r.Suppliers {
		if s.ID == id {
			return s.Name
		}
	}
	return ""
}

// PartyName resolves the counterparty of a party selection.
func (r *ReferenceData) PartyName(party PartyType, customer, supplier string) string {
	switch party {
	case PartyCustomer:
		return r.CustomerName(customer)
	case PartySupplier:
		return r.SupplierName(supplier)
	}
	return ""
}
