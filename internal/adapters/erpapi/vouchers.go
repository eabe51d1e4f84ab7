package erpapi

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"

	"github.com/Syed-Hadii/ERP-Software-sub003/internal/core/domain"
	portsrepo "github.com/Syed-Hadii/ERP-Software-sub003/internal/core/ports/repositories"
	"github.com/Syed-Hadii/ERP-Software-sub003/internal/dto"
	"github.com/Syed-Hadii/ERP-Software-sub003/internal/utils/mapping"
)

var _ portsrepo.ERPBackendFacade = (*Client)(nil)

func (c *Client) AddTransactionEntry(ctx context.Context, payload dto.TransactionEntryPayload) (*domain.Voucher, error) {
	return c.voucher(ctx, http.MethodPost, "/transaction-entry/add", "/transaction-entry/add", payload)
}

func (c *Client) UpdateTransactionEntry(ctx context.Context, id string, payload dto.TransactionEntryPayload) (*domain.Voucher, error) {
	return c.voucher(ctx, http.MethodPut, "/transaction-entry/update/:id", "/transaction-entry/update/"+url.PathEscape(id), payload)
}

func (c *Client) UpdateTransactionStatus(ctx context.Context, id string, status domain.VoucherStatus) (*domain.Voucher, error) {
	return c.voucher(ctx, http.MethodPut, "/transaction-entry/update/:id", "/transaction-entry/update/"+url.PathEscape(id),
		dto.StatusPayload{Status: string(status)})
}

func (c *Client) DeleteTransactionEntry(ctx context.Context, id string) error {
	_, err := call[json.RawMessage](ctx, c, http.MethodDelete, "/transaction-entry/delete/:id",
		"/transaction-entry/delete/"+url.PathEscape(id), nil, nil)
	return err
}

func (c *Client) ListTransactionEntries(ctx context.Context, filter domain.VoucherFilter) (*domain.VoucherPage, error) {
	return c.list(ctx, "/transaction-entry/get", filter)
}

func (c *Client) AddJournalVoucher(ctx context.Context, payload dto.JournalVoucherPayload) (*domain.Voucher, error) {
	v, err := c.voucher(ctx, http.MethodPost, "/journalvoucher/add", "/journalvoucher/add", payload)
	if err != nil {
		return nil, err
	}
	if v.VoucherType == "" {
		v.VoucherType = domain.JournalVoucher
	}
	return v, nil
}

func (c *Client) AddBatchEntry(ctx context.Context, payload dto.BatchEntryPayload) (*domain.Voucher, error) {
	return c.batch(ctx, http.MethodPost, "/batch-entry", "/batch-entry", payload)
}

func (c *Client) UpdateBatchEntry(ctx context.Context, id string, payload dto.BatchEntryPayload) (*domain.Voucher, error) {
	return c.batch(ctx, http.MethodPut, "/batch-entry/:id", "/batch-entry/"+url.PathEscape(id), payload)
}

func (c *Client) DeleteBatchEntry(ctx context.Context, id string) error {
	_, err := call[json.RawMessage](ctx, c, http.MethodDelete, "/batch-entry/:id", "/batch-entry/"+url.PathEscape(id), nil, nil)
	return err
}

func (c *Client) ListBatchEntries(ctx context.Context, filter domain.VoucherFilter) (*domain.VoucherPage, error) {
	page, err := c.list(ctx, "/batch-entry", filter)
	if err != nil {
		return nil, err
	}
	for i := range page.Vouchers {
		page.Vouchers[i].IsBatch = true
		if page.Vouchers[i].VoucherType == "" {
			page.Vouchers[i].VoucherType = domain.BatchVoucher
		}
	}
	return page, nil
}

func (c *Client) voucher(ctx context.Context, method, endpoint, path string, body any) (*domain.Voucher, error) {
	record, err := call[dto.VoucherRecord](ctx, c, method, endpoint, path, nil, body)
	if err != nil {
		return nil, err
	}
	v := mapping.ToDomainVoucher(record)
	return &v, nil
}

func (c *Client) batch(ctx context.Context, method, endpoint, path string, body any) (*domain.Voucher, error) {
	v, err := c.voucher(ctx, method, endpoint, path, body)
	if err != nil {
		return nil, err
	}
	v.IsBatch = true
	if v.VoucherType == "" {
		v.VoucherType = domain.BatchVoucher
	}
	return v, nil
}

func (c *Client) list(ctx context.Context, endpoint string, filter domain.VoucherFilter) (*domain.VoucherPage, error) {
	record, err := call[dto.VoucherListRecord](ctx, c, http.MethodGet, endpoint, endpoint, filterQuery(filter), nil)
	if err != nil {
		return nil, err
	}
	page := &domain.VoucherPage{
		Vouchers:   mapping.ToDomainVouchers(record.Entries),
		Page:       record.Pagination.Page,
		Limit:      record.Pagination.Limit,
		Total:      record.Pagination.Total,
		TotalPages: record.Pagination.TotalPages,
	}
	if page.Page == 0 {
		page.Page = filter.Page
	}
	return page, nil
}

func filterQuery(f domain.VoucherFilter) url.Values {
	q := url.Values{}
	if f.Page > 0 {
		q.Set("page", strconv.Itoa(f.Page))
	}
	if f.Limit > 0 {
		q.Set("limit", strconv.Itoa(f.Limit))
	}
	if f.Search != "" {
		q.Set("search", f.Search)
	}
	if f.VoucherType != "" {
		q.Set("voucherType", string(f.VoucherType))
	}
	if f.Status != "" {
		q.Set("status", string(f.Status))
	}
	if f.IsBatch != nil {
		q.Set("isBatch", strconv.FormatBool(*f.IsBatch))
	}
	return q
}
