package cli

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/five82/satchel/internal/app"
	"github.com/five82/satchel/internal/catalog"
	"github.com/five82/satchel/internal/command"
	"github.com/five82/satchel/internal/logging"
	"github.com/five82/satchel/internal/storefront"
)

func newListCmd() *cobra.Command {
	var (
		offset      int
		productType string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Print one page of products",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := app.LoadConfig(appOptions())
			if err != nil {
				return err
			}
			if productType != "" && catalog.ParseSourceType(productType) == catalog.SourceUnknown {
				return fmt.Errorf("unknown product type %q (want textbook, workbook or handout)", productType)
			}

			client, err := storefront.NewClient(cfg.APIBase, cfg.ProductsPath)
			if err != nil {
				return fmt.Errorf("init storefront client: %w", err)
			}
			logger := logging.New(cmd.ErrOrStderr(), cfg.LogLevel, "text")
			fetch := command.NewFetchProducts(client, nil, logger)

			resp := fetch.Execute(cmd.Context(), command.FetchProductsQuery{
				Offset:      offset,
				Limit:       cfg.PageLimit,
				ProductType: productType,
			})
			if resp == nil {
				return fmt.Errorf("list products: %w", fetch.LastError())
			}

			out := cmd.OutOrStdout()
			products := catalog.FromServerList(resp.Products)
			if len(products) == 0 {
				fmt.Fprintln(out, "No products found.")
				return nil
			}

			fmt.Fprintf(out, "%-6s  %-10s  %10s  %s\n", "ID", "TYPE", "PRICE", "TITLE")
			fmt.Fprintf(out, "%-6s  %-10s  %10s  %s\n", "--", "----", "-----", "-----")
			for _, p := range products {
				fmt.Fprintf(out, "%-6d  %-10s  %10s  %s\n", p.ID, p.SourceType.Label(), humanize.Comma(p.Price), p.Title)
			}

			if total := resp.Pagination.Total; total > len(products) {
				fmt.Fprintf(out, "\n(%d of %s shown, offset %d)\n", len(products), humanize.Comma(int64(total)), resp.Pagination.Offset)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&offset, "offset", 0, "Index of the first product")
	cmd.Flags().StringVar(&productType, "type", "", "Only list this type (textbook, workbook, handout)")
	return cmd
}
