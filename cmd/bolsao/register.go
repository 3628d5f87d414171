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

func registerCmd() *cobra.Command {
	var (
		name         string
		unit         string
		class        string
		mathScore    int
		langScore    int
		phone        string
		originSchool string
		guardian     string
		notes        string
		examDate     string
	)

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Register an exam result and compute the scholarship offer",
		Long: `Register one candidate's exam result: resolves the discount from the unit's
breakpoint table, prices the tuition figures and writes the record to the
shared sheet. When the sheet is unreachable the record is kept in the local
queue and synced later.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			a, err := newApp(ctx)
			if err != nil {
				return err
			}
			defer a.Close()

			in := workflow.RegisterInput{
				Name:            name,
				Unit:            strings.ToUpper(strings.TrimSpace(unit)),
				ClassOfInterest: class,
				MathScore:       mathScore,
				LangScore:       langScore,
				Phone:           phone,
				OriginSchool:    originSchool,
				Guardian:        guardian,
				Notes:           notes,
			}
			if examDate != "" {
				date, err := brl.ParseDate(examDate)
				if err != nil {
					return fmt.Errorf("invalid --data value %q, expected dd/mm/yyyy", examDate)
				}
				in.ExamDate = date
			}

			outcome, rec, err := a.reg.Register(ctx, in)
			if err != nil {
				return err
			}
			a.printWarnings()

			printRecord(rec)
			switch outcome {
			case model.OutcomeSynced:
				fmt.Println(cli.FormatSuccess("resultado registrado na planilha"))
			case model.OutcomeQueued:
				fmt.Println(cli.FormatQueued(
					"planilha inacessível: resultado salvo localmente, pendente de sincronização"))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "nome", "", "candidate name (required)")
	cmd.Flags().StringVar(&unit, "unidade", "", "unit short name, e.g. TIJUCA (required)")
	cmd.Flags().StringVar(&class, "turma", "", "class of interest (required)")
	cmd.Flags().IntVar(&mathScore, "mat", 0, "math correct answers")
	cmd.Flags().IntVar(&langScore, "port", 0, "language correct answers")
	cmd.Flags().StringVar(&phone, "telefone", "", "contact phone")
	cmd.Flags().StringVar(&originSchool, "escola", "", "school of origin")
	cmd.Flags().StringVar(&guardian, "responsavel", "", "financial guardian")
	cmd.Flags().StringVar(&notes, "obs", "", "free-form notes")
	cmd.Flags().StringVar(&examDate, "data", "", "exam date as dd/mm/yyyy (default: today)")
	_ = cmd.MarkFlagRequired("nome")
	_ = cmd.MarkFlagRequired("unidade")
	_ = cmd.MarkFlagRequired("turma")

	return cmd
}

// printRecord shows the computed offer in a box.
func printRecord(rec *model.ResultRecord) {
	content := strings.Join([]string{
		fmt.Sprintf("Aluno:        %s", rec.Name),
		fmt.Sprintf("Unidade:      %s", rec.Unit),
		fmt.Sprintf("Bolsão:       %s", rec.Session),
		fmt.Sprintf("Turma:        %s", rec.ClassOfInterest),
		fmt.Sprintf("Acertos:      %d mat + %d port = %d", rec.MathScore, rec.LangScore, rec.TotalScore()),
		fmt.Sprintf("Bolsa:        %d%%", rec.DiscountPct),
		fmt.Sprintf("1ª cota:      %s", brl.FormatCurrency(rec.FirstInstallment)),
		fmt.Sprintf("Mensalidade:  %s", brl.FormatCurrency(rec.MonthlyInstallment)),
		fmt.Sprintf("Anuidade à vista: %s", brl.FormatCurrency(rec.AnnualCash)),
		fmt.Sprintf("Registro:     %s", rec.ID),
	}, "\n")
	fmt.Println(cli.RenderBox("Resultado do Bolsão", content))
}
