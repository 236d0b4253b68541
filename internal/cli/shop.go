package cli

import (
	"github.com/spf13/cobra"
)

func newShopCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "shop",
		Short: "Product shop commands",
	}

	cmd.AddCommand(newShopAddCmd())
	cmd.AddCommand(newShopGetCmd())
	cmd.AddCommand(newShopPriceCmd())
	cmd.AddCommand(newShopOrderCmd())

	return cmd
}

func newShopAddCmd() *cobra.Command {
	var (
		id        string
		name      string
		price     float64
		available bool
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a product to the shop",
		RunE: func(cmd *cobra.Command, args []string) error {
			req := map[string]any{
				"id":        id,
				"name":      name,
				"price":     price,
				"available": available,
			}
			var result Product

			if err := client.Post("/api/v1/products", req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&id, "id", "", "Product id (required)")
	cmd.Flags().StringVar(&name, "name", "", "Product name")
	cmd.Flags().Float64Var(&price, "price", 0, "Product price")
	cmd.Flags().BoolVar(&available, "available", true, "Whether the product is purchasable")
	_ = cmd.MarkFlagRequired("id")

	return cmd
}

func newShopGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Show a product",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result Product

			if err := client.Get("/api/v1/products/"+args[0], &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newShopPriceCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "price <id>",
		Short: "Check a product's price",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result Price

			if err := client.Get("/api/v1/products/"+args[0]+"/price", &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newShopOrderCmd() *cobra.Command {
	var account string

	cmd := &cobra.Command{
		Use:   "order <product-id>",
		Short: "Order a product",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := map[string]string{
				"account_id": account,
				"product_id": args[0],
			}
			var result Order

			if err := client.Post("/api/v1/orders", req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&account, "account", "", "Buyer account login (required)")
	_ = cmd.MarkFlagRequired("account")

	return cmd
}
