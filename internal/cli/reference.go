package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(referenceCmd)
	referenceCmd.Flags().BoolVar(&flagJSON, "json", false, "Print the lists as JSON")
}

var referenceCmd = &cobra.Command{
	Use:   "reference",
	Short: "Show the account, bank and party ids vouchers can use",
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := newServices()
		if err != nil {
			return err
		}
		ref, err := svc.Reference.GetReferenceData(cmd.Context())
		if err != nil {
			return err
		}
		if flagJSON {
			return writeJSON(cmd.OutOrStdout(), ref)
		}

		tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "KIND\tID\tNAME")
		for _, a := range ref.ChartAccounts {
			fmt.Fprintf(tw, "account\t%s\t%s\n", a.ID, ref.AccountName(a.ID))
		}
		for _, a := range ref.CashAccounts {
			fmt.Fprintf(tw, "cash\t%s\t%s\n", a.ID, a.Name)
		}
		for _, b := range ref.Banks {
			fmt.Fprintf(tw, "bank\t%s\t%s\n", b.ID, ref.BankName(b.ID))
		}
		for _, c := range ref.Customers {
			fmt.Fprintf(tw, "customer\t%s\t%s\n", c.ID, c.Name)
		}
		for _, s := range ref.Suppliers {
			fmt.Fprintf(tw, "supplier\t%s\t%s\n", s.ID, s.Name)
		}
		return tw.Flush()
	},
}
