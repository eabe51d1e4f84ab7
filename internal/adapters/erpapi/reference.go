package erpapi

import (
	"context"
	"net/http"
	"net/url"

	"github.com/Syed-Hadii/ERP-Software-sub003/internal/core/domain"
	"github.com/Syed-Hadii/ERP-Software-sub003/internal/dto"
	"github.com/Syed-Hadii/ERP-Software-sub003/internal/utils/mapping"
)

func (c *Client) ListChartAccounts(ctx context.Context) ([]domain.ChartAccount, error) {
	records, err := call[[]dto.ChartAccountRecord](ctx, c, http.MethodGet, "/chartaccount/get", "/chartaccount/get", nil, nil)
	if err != nil {
		return nil, err
	}
	return mapping.ToDomainChartAccounts(records), nil
}

func (c *Client) ListCashAccounts(ctx context.Context) ([]domain.CashAccount, error) {
	records, err := call[[]dto.ChartAccountRecord](ctx, c, http.MethodGet, "/chartaccount/get-cash", "/chartaccount/get-cash", nil, nil)
	if err != nil {
		return nil, err
	}
	return mapping.ToDomainCashAccounts(records), nil
}

func (c *Client) ListBanks(ctx context.Context) ([]domain.BankAccount, error) {
	records, err := call[[]dto.BankRecord](ctx, c, http.MethodGet, "/bank/get", "/bank/get", url.Values{"all": {"true"}}, nil)
	if err != nil {
		return nil, err
	}
	return mapping.ToDomainBanks(records), nil
}

func (c *Client) ListCustomers(ctx context.Context) ([]domain.Customer, error) {
	records, err := call[[]dto.PartyRecord](ctx, c, http.MethodGet, "/customer/get", "/customer/get", nil, nil)
	if err != nil {
		return nil, err
	}
	return mapping.ToDomainCustomers(records), nil
}

func (c *Client) ListSuppliers(ctx context.Context) ([]domain.Supplier, error) {
	records, err := call[[]dto.PartyRecord](ctx, c, http.MethodGet, "/supplier/get", "/supplier/get", nil, nil)
	if err != nil {
		return nil, err
	}
	return mapping.ToDomainSuppliers(records), nil
}
