package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/inteligencia-matriz/gestor-bolsao/internal/activation"
	"github.com/inteligencia-matriz/gestor-bolsao/internal/cli"
)

func candidatesCmd() *cobra.Command {
	var unit string

	cmd := &cobra.Command{
		Use:   "candidates",
		Short: "List exam candidates from the activation sheet",
		Long: `List the candidates exported by the marketing CRM, so the front desk can
prefill a registration instead of retyping everything. The activation sheet
is read-only.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			a, err := newApp(ctx)
			if err != nil {
				return err
			}
			defer a.Close()

			candidates, err := activation.LoadCandidates(ctx, a.store)
			if err != nil {
				return err
			}
			candidates = activation.FilterByUnit(candidates,
				strings.ToUpper(strings.TrimSpace(unit)))

			if len(candidates) == 0 {
				fmt.Println(cli.FormatInfo("nenhum candidato encontrado"))
				return nil
			}

			fmt.Println(cli.FormatTitle("Candidatos para ativação"))
			header := fmt.Sprintf("%-28s %-20s %-24s %-16s %s",
				"CANDIDATO", "UNIDADE", "TURMA DE INTERESSE", "TELEFONE", "CONTATO")
			fmt.Println(cli.TableHeaderStyle.Render(header))
			for _, c := range candidates {
				fmt.Printf("%-28s %-20s %-24s %-16s %s\n",
					truncate(c.Name, 28), c.Unit, truncate(c.ClassOfInterest, 24),
					c.Phone, c.ContactStatus)
			}
			fmt.Println(cli.SubtleStyle.Render(fmt.Sprintf("%d candidato(s)", len(candidates))))
			return nil
		},
	}

	cmd.Flags().StringVar(&unit, "unidade", "", "filter by unit short name")
	return cmd
}
