package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/inteligencia-matriz/gestor-bolsao/internal/brl"
	"github.com/inteligencia-matriz/gestor-bolsao/internal/cli"
	"github.com/inteligencia-matriz/gestor-bolsao/internal/model"
	"github.com/inteligencia-matriz/gestor-bolsao/internal/workflow"
)

func followupCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "followup",
		Short: "Manage post-exam follow-up of registered candidates",
		Long:  `List registered results and record the negotiation outcome for each one.`,
	}

	cmd.AddCommand(followupListCmd())
	cmd.AddCommand(followupSaveCmd())

	return cmd
}

func followupListCmd() *cobra.Command {
	var unit string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List registered results",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			a, err := newApp(ctx)
			if err != nil {
				return err
			}
			defer a.Close()

			records := a.snap.Records()
			if unit != "" {
				records = a.snap.ByUnit(strings.ToUpper(strings.TrimSpace(unit)))
			}
			if len(records) == 0 {
				fmt.Println(cli.FormatInfo("nenhum resultado registrado"))
				return nil
			}

			fmt.Println(cli.FormatTitle("Acompanhamento do bolsão"))
			header := fmt.Sprintf("%-14s %-28s %-20s %-6s %-12s %s",
				"REGISTRO", "ALUNO", "UNIDADE", "BOLSA", "MENSALIDADE", "MATRICULOU?")
			fmt.Println(cli.TableHeaderStyle.Render(header))
			for _, rec := range records {
				fmt.Printf("%-14s %-28s %-20s %4d%%  %-12s %s\n",
					rec.ID, truncate(rec.Name, 28), rec.Unit, rec.DiscountPct,
					brl.FormatCurrency(rec.MonthlyInstallment), string(rec.Enrolled))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&unit, "unidade", "", "filter by unit short name")
	return cmd
}

func followupSaveCmd() *cobra.Command {
	var (
		recordID     string
		originSchool string
		guardian     string
		phone        string
		negotiated   string
		expected     string
		enrolled     string
		notes        string
	)

	cmd := &cobra.Command{
		Use:   "save",
		Short: "Record the negotiation outcome for one result",
		Long: `Amend an existing result row with the follow-up answers: school of origin,
financial guardian, negotiated values and whether the candidate enrolled.
All cells are written in a single batched update.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			a, err := newApp(ctx)
			if err != nil {
				return err
			}
			defer a.Close()

			in := workflow.FollowUpInput{
				RecordID:            recordID,
				OriginSchool:        originSchool,
				Guardian:            guardian,
				Phone:               phone,
				NegotiatedValue:     negotiated,
				ExpectedInstallment: expected,
				Notes:               notes,
				Enrolled:            model.EnrollStatus(enrolled),
			}
			if err := a.reg.SaveFollowUp(ctx, in); err != nil {
				return err
			}
			a.printWarnings()

			fmt.Println(cli.FormatSuccess("acompanhamento salvo na planilha"))
			return nil
		},
	}

	cmd.Flags().StringVar(&recordID, "id", "", "record id shown by 'followup list' (required)")
	cmd.Flags().StringVar(&originSchool, "escola", "", "school of origin (required)")
	cmd.Flags().StringVar(&guardian, "responsavel", "", "financial guardian")
	cmd.Flags().StringVar(&phone, "telefone", "", "contact phone")
	cmd.Flags().StringVar(&negotiated, "valor-negociado", "", "negotiated value, free-typed")
	cmd.Flags().StringVar(&expected, "expectativa", "", "expected monthly installment, free-typed")
	cmd.Flags().StringVar(&enrolled, "matriculou", "", `enrollment answer: "Sim" or "Não"`)
	cmd.Flags().StringVar(&notes, "obs", "", "free-form notes")
	_ = cmd.MarkFlagRequired("id")
	_ = cmd.MarkFlagRequired("escola")

	return cmd
}

func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n-1]) + "…"
}
