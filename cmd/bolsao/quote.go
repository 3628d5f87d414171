package main

import (
	"fmt"
	"sort"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/inteligencia-matriz/gestor-bolsao/internal/brl"
	"github.com/inteligencia-matriz/gestor-bolsao/internal/cli"
	"github.com/inteligencia-matriz/gestor-bolsao/internal/common"
	"github.com/inteligencia-matriz/gestor-bolsao/internal/pricing"
	"github.com/inteligencia-matriz/gestor-bolsao/internal/rules"
)

func quoteCmd() *cobra.Command {
	var (
		track      string
		unit       string
		discount   int
		desired    string
		listTracks bool
	)

	cmd := &cobra.Command{
		Use:   "quote",
		Short: "Simulate tuition figures for a negotiation",
		Long: `Answer the negotiation questions without touching any record: the full price
of a track, the figures at a given discount, the lowest installment the unit
may grant, and the discount a desired installment would require. Works
entirely offline.`,
		RunE: func(_ *cobra.Command, _ []string) error {
			warnings := common.NewWarnings(nil)
			calc := pricing.NewCalculator(warnings)

			if listTracks {
				tracks := pricing.Tracks()
				sort.Strings(tracks)
				for _, tr := range tracks {
					q := calc.PriceQuote(tr)
					fmt.Printf("%-28s mensalidade %s, anuidade %s\n", tr,
						brl.FormatCurrency(q.MonthlyInstallment),
						brl.FormatCurrency(q.AnnualTotal))
				}
				return nil
			}

			if track == "" {
				return fmt.Errorf("--serie is required (see --list for options)")
			}
			unit = strings.ToUpper(strings.TrimSpace(unit))

			fraction := decimal.NewFromInt(int64(discount)).Div(decimal.NewFromInt(100))
			quote := calc.PriceQuote(track)
			discounted := pricing.ApplyDiscount(quote, fraction)

			lines := []string{
				fmt.Sprintf("Série:            %s", track),
				fmt.Sprintf("Mensalidade base: %s", brl.FormatCurrency(quote.MonthlyInstallment)),
				fmt.Sprintf("Bolsa aplicada:   %d%%", discount),
				fmt.Sprintf("Mensalidade:      %s", brl.FormatCurrency(discounted.MonthlyInstallment.Round(2))),
				fmt.Sprintf("1ª cota:          %s", brl.FormatCurrency(discounted.FirstInstallment.Round(2))),
				fmt.Sprintf("Anuidade à vista: %s", brl.FormatCurrency(pricing.AnnualCash(discounted.AnnualTotal).Round(2))),
			}

			if unit != "" {
				minInstall := calc.MinimumInstallment(unit, track)
				if u, ok := rules.UnitByName(unit); ok {
					lines = append(lines, fmt.Sprintf("Parcela mínima em %s (bolsa máx. %s%%): %s",
						u.Name,
						u.MaxDiscount.Mul(decimal.NewFromInt(100)).Round(2).String(),
						brl.FormatCurrency(minInstall.Round(2))))
				}
			}

			if desired != "" {
				target := brl.ParseCurrency(desired)
				required := calc.RequiredDiscount(track, target)
				lines = append(lines, fmt.Sprintf("Bolsa necessária para %s: %d%%",
					brl.FormatCurrency(target), rules.Percent(required)))
			}

			fmt.Println(cli.RenderBox("Simulação de Negociação", strings.Join(lines, "\n")))
			for _, w := range warnings.Items() {
				fmt.Println(cli.FormatWarning(w.Message))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&track, "serie", "", "tuition track, e.g. \"6º ao 8º Ano\"")
	cmd.Flags().StringVar(&unit, "unidade", "", "unit short name, enables the minimum-installment line")
	cmd.Flags().IntVar(&discount, "bolsa", 0, "discount percentage to apply")
	cmd.Flags().StringVar(&desired, "parcela-desejada", "", "desired monthly installment, free-typed")
	cmd.Flags().BoolVar(&listTracks, "list", false, "list all tracks and base prices")

	return cmd
}
