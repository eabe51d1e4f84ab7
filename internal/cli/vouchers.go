package cli

import (
	"fmt"

	"github.com/Syed-Hadii/ERP-Software-sub003/internal/core/domain"
	"github.com/Syed-Hadii/ERP-Software-sub003/internal/dto"
	"github.com/spf13/cobra"
)

var listParams dto.ListVouchersParams

var (
	flagNextToken string
	flagBatches   bool
)

func init() {
	rootCmd.AddCommand(vouchersCmd)
	vouchersCmd.AddCommand(vouchersListCmd)
	vouchersCmd.AddCommand(vouchersPostCmd)
	vouchersCmd.AddCommand(vouchersDeleteCmd)

	vouchersListCmd.Flags().IntVar(&listParams.Page, "page", 1, "Page number")
	vouchersListCmd.Flags().IntVar(&listParams.Limit, "limit", 10, "Vouchers per page")
	vouchersListCmd.Flags().StringVar(&listParams.Search, "search", "", "Search text")
	vouchersListCmd.Flags().StringVar(&listParams.VoucherType, "type", "", "Payment, Receipt, Journal or Batch")
	vouchersListCmd.Flags().StringVar(&listParams.Status, "status", "", "Draft, Posted or Void")
	vouchersListCmd.Flags().StringVar(&flagNextToken, "next-token", "", "Token printed by the previous page")
	vouchersListCmd.Flags().BoolVar(&flagBatches, "batches", false, "List batches instead of vouchers")
	vouchersListCmd.Flags().BoolVar(&flagJSON, "json", false, "Print the page as JSON")

	vouchersDeleteCmd.Flags().BoolVar(&flagBatches, "batch", false, "The id is a batch id")
}

var vouchersCmd = &cobra.Command{
	Use:   "vouchers",
	Short: "List and maintain saved vouchers",
}

var vouchersListCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved vouchers or batches",
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := newServices()
		if err != nil {
			return err
		}
		params := listParams
		if flagNextToken != "" {
			params.NextToken = &flagNextToken
		}

		list := svc.Vouchers.ListVouchers
		if flagBatches {
			list = svc.Vouchers.ListBatches
		}
		resp, err := list(cmd.Context(), params)
		if err != nil {
			return err
		}
		if flagJSON {
			return writeJSON(cmd.OutOrStdout(), resp)
		}
		return renderVoucherList(cmd.OutOrStdout(), resp)
	},
}

var vouchersPostCmd = &cobra.Command{
	Use:   "post ID",
	Short: "Move a Draft voucher to Posted",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := newServices()
		if err != nil {
			return err
		}
		v, err := svc.Vouchers.ChangeStatus(cmd.Context(), args[0], dto.ChangeStatusRequest{
			CurrentStatus: domain.StatusDraft,
			Status:        domain.StatusPosted,
		})
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s is now %s\n", orID(v), v.Status)
		return nil
	},
}

var vouchersDeleteCmd = &cobra.Command{
	Use:   "delete ID",
	Short: "Delete a saved voucher or batch",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := newServices()
		if err != nil {
			return err
		}
		if flagBatches {
			err = svc.Vouchers.DeleteBatch(cmd.Context(), args[0])
		} else {
			err = svc.Vouchers.DeleteVoucher(cmd.Context(), args[0])
		}
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "deleted %s\n", args[0])
		return nil
	},
}

func orID(v *domain.Voucher) string {
	if v.VoucherNumber != "" {
		return v.VoucherNumber
	}
	return v.ID
}
