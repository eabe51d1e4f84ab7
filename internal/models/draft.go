package models

// Draft is the persisted row of a voucher draft. Form state is stored as a JSON document
// so row shapes can evolve without schema changes.
type Draft struct {
	DraftID     string `json:"draftID" db:"draft_id"`
	OwnerID     string `json:"ownerID" db:"owner_id"`
	VoucherType string `json:"voucherType" db:"voucher_type"`
	VoucherID   string `json:"voucherID" db:"voucher_id"`
	State       []byte `json:"state" db:"state"`
	AuditFields
}
