package main

import (
	"encoding/json"
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/stockroom/pkg/types"
)

type summaryView struct {
	TotalProducts       int    `json:"total_products"`
	TotalStockQuantity  int    `json:"total_stock_quantity"`
	TotalInventoryValue string `json:"total_inventory_value"`
}

func newSummaryCmd() *cobra.Command {
	var jsonMode bool

	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Print inventory totals",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, storage, err := loadStore(newLogger())
			if err != nil {
				return err
			}
			defer storage.Close()

			view := summaryView{
				TotalProducts:       store.TotalProducts(),
				TotalStockQuantity:  store.TotalStockQuantity(),
				TotalInventoryValue: types.FormatPrice(store.TotalInventoryValue()),
			}

			w := cmd.OutOrStdout()
			if jsonMode {
				output, err := json.MarshalIndent(view, "", "  ")
				if err != nil {
					return fmt.Errorf("marshal summary: %w", err)
				}
				fmt.Fprintln(w, string(output))
				return nil
			}

			fmt.Fprintf(w, "Total Products: %s\n", humanize.Comma(int64(view.TotalProducts)))
			fmt.Fprintf(w, "Total Stock Quantity: %s\n", humanize.Comma(int64(view.TotalStockQuantity)))
			fmt.Fprintf(w, "Total Inventory Value: $%s\n", view.TotalInventoryValue)
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonMode, "json", false, "output as JSON")
	return cmd
}
