package services

import (
	"sort"

	"github.com/Syed-Hadii/ERP-Software-sub003/internal/core/domain"
)

// FieldSet is the set of form fields currently shown for a draft.
type FieldSet map[string]struct{}

// Has reports whether field is visible.
func (s FieldSet) Has(field string) bool {
	_, ok := s[field]
	return ok
}

// List returns the visible fields sorted.
func (s FieldSet) List() []string {
	out := make([]string, 0, len(s))
	for f := range s {
		out = append(out, f)
	}
	sort.Strings(out)
	return out
}

func (s FieldSet) add(fields ...string) {
	for _, f := range fields {
		s[f] = struct{}{}
	}
}

// VisibleFields derives which fields a draft's form shows from its current values.
// Row fields are keyed "field.index"; "removeRow.index" marks rows that may be removed.
func VisibleFields(d domain.VoucherDraft) FieldSet {
	s := FieldSet{}
	s.add("reference", "description")

	switch {
	case d.VoucherType == domain.JournalVoucher:
		s.add("date")
		canRemove := len(d.JournalEntries) > minJournalRows
		for i := range d.JournalEntries {
			s.add(FieldKey(domain.FieldAccountID, i), FieldKey(domain.FieldDebitAmount, i), FieldKey(domain.FieldCreditAmount, i))
			if canRemove {
				s.add(FieldKey("removeRow", i))
			}
		}
		return s

	case d.VoucherType == domain.BatchVoucher:
		addSettlementFields(s, d.PaymentMethod)
		for i, e := range d.BatchEntries {
			s.add(
				FieldKey(domain.FieldDate, i),
				FieldKey(domain.FieldParty, i),
				FieldKey(domain.FieldChartAccount, i),
				FieldKey(domain.FieldAmount, i),
				FieldKey(domain.FieldNarration, i),
			)
			switch e.Party {
			case domain.PartyCustomer:
				s.add(FieldKey(domain.FieldCustomer, i))
			case domain.PartySupplier:
				s.add(FieldKey(domain.FieldSupplier, i))
			}
			if i > 0 {
				s.add(FieldKey("removeRow", i))
			}
		}
		return s

	default:
		s.add("date", "party", "totalAmount")
		addSettlementFields(s, d.PaymentMethod)
		switch d.Party {
		case domain.PartyCustomer:
			s.add("customer")
		case domain.PartySupplier:
			s.add("supplier")
		}
		for i := range d.Entries {
			s.add(FieldKey(domain.FieldChartAccount, i), FieldKey(domain.FieldAmount, i), FieldKey(domain.FieldNarration, i))
			if i > 0 {
				s.add(FieldKey("removeRow", i))
			}
		}
		return s
	}
}

func addSettlementFields(s FieldSet, method domain.PaymentMethod) {
	s.add("paymentMethod")
	switch method {
	case domain.Cash:
		s.add("cashAccount")
	case domain.Bank:
		s.add("bankAccount", "transactionNumber", "clearanceDate")
	}
}
