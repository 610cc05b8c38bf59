package main

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/stockroom/internal/console"
	"github.com/mesh-intelligence/stockroom/pkg/types"
)

// productView is the JSON shape of one listed product.
type productView struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Quantity  int       `json:"quantity"`
	Price     string    `json:"price"`
	Total     string    `json:"total"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func newListCmd() *cobra.Command {
	var (
		sortBy   string
		desc     bool
		jsonMode bool
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List products",
		Long: `List prints every stored product, sorted by one field.

Sort fields: id, name, price, created_at, updated_at

Example:
  stockroom list --sort price --desc
  stockroom list --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			field, err := types.ParseSortField(sortBy)
			if err != nil {
				return err
			}

			store, storage, err := loadStore(newLogger())
			if err != nil {
				return err
			}
			defer storage.Close()

			products := store.SortBy(field, !desc)
			if !jsonMode {
				console.New(cmd.InOrStdin(), cmd.OutOrStdout()).ProductTable(products, "CURRENT INVENTORY")
				return nil
			}

			views := make([]productView, 0, len(products))
			for _, p := range products {
				views = append(views, productView{
					ID:        p.ID(),
					Name:      p.Name(),
					Quantity:  p.Quantity(),
					Price:     types.FormatPrice(p.Price()),
					Total:     types.FormatPrice(p.TotalPrice()),
					CreatedAt: p.CreatedAt(),
					UpdatedAt: p.UpdatedAt(),
				})
			}
			output, err := json.MarshalIndent(views, "", "  ")
			if err != nil {
				return fmt.Errorf("marshal products: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(output))
			return nil
		},
	}

	cmd.Flags().StringVar(&sortBy, "sort", types.SortByID.String(), "sort field")
	cmd.Flags().BoolVar(&desc, "desc", false, "sort descending")
	cmd.Flags().BoolVar(&jsonMode, "json", false, "output as JSON")
	return cmd
}
