package mapping

import (
	"encoding/json"
	"fmt"

	"github.com/Syed-Hadii/ERP-Software-sub003/internal/core/domain"
	"github.com/Syed-Hadii/ERP-Software-sub003/internal/models"
)

// ToModelDraft serializes a draft into its persisted row.
func ToModelDraft(d domain.VoucherDraft) (models.Draft, error) {
	state, err := json.Marshal(d)
	if err != nil {
		return models.Draft{}, fmt.Errorf("encode draft state: %w", err)
	}
	return models.Draft{
		DraftID:     d.DraftID,
		OwnerID:     d.OwnerID,
		VoucherType: string(d.VoucherType),
		VoucherID:   d.VoucherID,
		State:       state,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}, nil
}

// ToDomainDraft restores a draft from its persisted row. Row columns win over the document.
func ToDomainDraft(m models.Draft) (domain.VoucherDraft, error) {
	var d domain.VoucherDraft
	if err := json.Unmarshal(m.State, &d); err != nil {
		return domain.VoucherDraft{}, fmt.Errorf("decode draft state: %w", err)
	}
	d.DraftID = m.DraftID
	d.OwnerID = m.OwnerID
	d.VoucherType = domain.VoucherType(m.VoucherType)
	d.VoucherID = m.VoucherID
	d.AuditFields = ToDomainAuditFields(m.AuditFields)
	if d.InputValues == nil {
		d.InputValues = map[string]string{}
	}
	return d, nil
}
