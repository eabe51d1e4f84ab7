package domain

// NotAvailable is rendered wherever a print field has no value.
const NotAvailable = "N/A"

// PrintLine is one rendered row of a printed voucher. Amount columns are display strings.
type PrintLine struct {
	Date      string `json:"date,omitempty"`
	Account   string `json:"account"`
	Party     string `json:"party,omitempty"`
	Narration string `json:"narration"`
	Debit     string `json:"debit,omitempty"`
	Credit    string `json:"credit,omitempty"`
	Amount    string `json:"amount,omitempty"`
}

// PrintView is the read-only rendering of a finalized voucher or batch.
type PrintView struct {
	Title         string      `json:"title"`
	VoucherNumber string      `json:"voucherNumber"`
	VoucherType   VoucherType `json:"voucherType"`
	Date          string      `json:"date"`
	Reference     string      `json:"reference"`
	Description   string      `json:"description"`
	Status        string      `json:"status"`

	PaymentMethod     string `json:"paymentMethod,omitempty"`
	SettlementAccount string `json:"settlementAccount,omitempty"`
	TransactionNumber string `json:"transactionNumber,omitempty"`
	ClearanceDate     string `json:"clearanceDate,omitempty"`

	PartyType string `json:"partyType,omitempty"`
	PartyName string `json:"partyName,omitempty"`

	Lines []PrintLine `json:"lines"`

	TotalDebit  string `json:"totalDebit,omitempty"`
	TotalCredit string `json:"totalCredit,omitempty"`
	Total       string `json:"total"`
}
