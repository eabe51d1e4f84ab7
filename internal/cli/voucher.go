package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/Syed-Hadii/ERP-Software-sub003/internal/core/domain"
	"github.com/Syed-Hadii/ERP-Software-sub003/internal/core/services"
	"github.com/Syed-Hadii/ERP-Software-sub003/internal/dto"
	"github.com/spf13/cobra"
)

var (
	flagVoucherFile string
	flagXLSXOut     string
	flagJSON        bool
)

func init() {
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(submitCmd)

	validateCmd.Flags().StringVarP(&flagVoucherFile, "file", "f", "", "Voucher file (.json or .toml)")
	_ = validateCmd.MarkFlagRequired("file")

	submitCmd.Flags().StringVarP(&flagVoucherFile, "file", "f", "", "Voucher file (.json or .toml)")
	submitCmd.Flags().StringVar(&flagXLSXOut, "xlsx", "", "Also write the printed voucher to this spreadsheet")
	submitCmd.Flags().BoolVar(&flagJSON, "json", false, "Print the result as JSON")
	_ = submitCmd.MarkFlagRequired("file")
}

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check a voucher file without submitting it",
	RunE: func(cmd *cobra.Command, args []string) error {
		draft, err := readDraft(flagVoucherFile)
		if err != nil {
			return err
		}
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		f, err := formatter()
		if err != nil {
			return err
		}
		v := services.NewValidator(
			services.WithValidatorLocation(cfg.Location),
			services.WithValidatorFormatter(f),
		)
		if err := v.Validate(draft); err != nil {
			return reportInvalid(cmd.OutOrStdout(), err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s voucher is valid, total %s\n", draft.VoucherType, f.FormatDecimal(draft.TotalAmount))
		return nil
	},
}

var submitCmd = &cobra.Command{
	Use:   "submit",
	Short: "Validate and post a voucher file, then print it",
	Long: `Post a voucher to the ERP backend. Payment and Receipt files with a voucherID
update the saved voucher; Batch files with a voucherID update the saved batch.
Saved journal vouchers cannot be edited.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		draft, err := readDraft(flagVoucherFile)
		if err != nil {
			return err
		}
		svc, err := newServices()
		if err != nil {
			return err
		}

		result, err := svc.Drafts.SubmitVoucher(cmd.Context(), cliOwner, draft)
		if err != nil {
			return reportInvalid(cmd.OutOrStdout(), err)
		}

		if flagXLSXOut != "" {
			out, err := os.Create(flagXLSXOut)
			if err != nil {
				return fmt.Errorf("failed to create %s: %w", flagXLSXOut, err)
			}
			exportErr := svc.Print.ExportXLSX(cmd.Context(), result.VoucherNumber, out)
			if err := out.Close(); err != nil && exportErr == nil {
				exportErr = err
			}
			if exportErr != nil {
				return exportErr
			}
		}

		if flagJSON {
			return writeJSON(cmd.OutOrStdout(), result)
		}
		return renderPrintView(cmd.OutOrStdout(), result.Print)
	},
}

func readDraft(path string) (domain.VoucherDraft, error) {
	vf, err := LoadVoucherFile(path)
	if err != nil {
		return domain.VoucherDraft{}, err
	}
	f, err := formatter()
	if err != nil {
		return domain.VoucherDraft{}, err
	}
	return vf.Draft(f)
}

// reportInvalid lists validation failures one per line. Other errors pass through.
func reportInvalid(w io.Writer, err error) error {
	var verrs *services.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for _, fe := range verrs.Fields() {
		fmt.Fprintf(tw, "%s\t%s\n", fe.Key, fe.Message)
	}
	if flushErr := tw.Flush(); flushErr != nil {
		return flushErr
	}
	return fmt.Errorf("voucher is invalid: %s", verrs.First().Message)
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// renderPrintView writes the printed voucher as plain text columns.
func renderPrintView(w io.Writer, view domain.PrintView) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "%s\t%s\n", view.Title, view.VoucherNumber)
	fmt.Fprintf(tw, "Date\t%s\n", view.Date)
	fmt.Fprintf(tw, "Reference\t%s\n", view.Reference)
	fmt.Fprintf(tw, "Description\t%s\n", view.Description)
	fmt.Fprintf(tw, "Status\t%s\n", view.Status)
	if view.PaymentMethod != "" {
		fmt.Fprintf(tw, "Payment Method\t%s\n", view.PaymentMethod)
		fmt.Fprintf(tw, "Account\t%s\n", view.SettlementAccount)
	}
	if view.TransactionNumber != "" {
		fmt.Fprintf(tw, "Transaction Number\t%s\n", view.TransactionNumber)
		fmt.Fprintf(tw, "Clearance Date\t%s\n", view.ClearanceDate)
	}
	if view.PartyType != "" {
		fmt.Fprintf(tw, "Party\t%s (%s)\n", view.PartyName, view.PartyType)
	}
	fmt.Fprintln(tw)

	switch view.VoucherType {
	case domain.JournalVoucher:
		fmt.Fprintln(tw, "ACCOUNT\tDEBIT\tCREDIT")
		for _, l := range view.Lines {
			fmt.Fprintf(tw, "%s\t%s\t%s\n", l.Account, l.Debit, l.Credit)
		}
		fmt.Fprintf(tw, "Total\t%s\t%s\n", view.TotalDebit, view.TotalCredit)
	case domain.BatchVoucher:
		fmt.Fprintln(tw, "DATE\tACCOUNT\tPARTY\tNARRATION\tAMOUNT")
		for _, l := range view.Lines {
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", l.Date, l.Account, l.Party, l.Narration, l.Amount)
		}
		fmt.Fprintf(tw, "\t\t\tTotal\t%s\n", view.Total)
	default:
		fmt.Fprintln(tw, "ACCOUNT\tNARRATION\tAMOUNT")
		for _, l := range view.Lines {
			fmt.Fprintf(tw, "%s\t%s\t%s\n", l.Account, l.Narration, l.Amount)
		}
		fmt.Fprintf(tw, "\tTotal\t%s\n", view.Total)
	}
	return tw.Flush()
}

// renderVoucherList prints one page of a listing.
func renderVoucherList(w io.Writer, resp *dto.ListVouchersResponse) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNUMBER\tTYPE\tDATE\tSTATUS\tTOTAL")
	for _, v := range resp.Vouchers {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n", v.ID, v.VoucherNumber, v.VoucherType, v.Date, v.Status, v.TotalAmount.String())
	}
	fmt.Fprintf(tw, "\npage %d of %d, %d vouchers\n", resp.Page, resp.TotalPages, resp.Total)
	if resp.NextToken != nil {
		fmt.Fprintf(tw, "next: --next-token %s\n", *resp.NextToken)
	}
	return tw.Flush()
}
