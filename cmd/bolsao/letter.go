package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/inteligencia-matriz/gestor-bolsao/internal/cli"
	"github.com/inteligencia-matriz/gestor-bolsao/internal/common"
	"github.com/inteligencia-matriz/gestor-bolsao/internal/config"
	"github.com/inteligencia-matriz/gestor-bolsao/internal/letter"
)

func letterCmd() *cobra.Command {
	var (
		student   string
		unit      string
		class     string
		mathScore int
		langScore int
		output    string
	)

	cmd := &cobra.Command{
		Use:   "letter",
		Short: "Generate the scholarship offer letter",
		Long: `Compute the offer figures for a candidate and render the letter from the
HTML template, including the unit's teaching-material price tables. Works
entirely offline.`,
		RunE: func(_ *cobra.Command, _ []string) error {
			if strings.TrimSpace(student) == "" {
				return fmt.Errorf("--nome is required")
			}

			warnings := common.NewWarnings(nil)
			ctx := letter.BuildContext(letter.Input{
				Student:         student,
				Unit:            strings.ToUpper(strings.TrimSpace(unit)),
				ClassOfInterest: class,
				MathScore:       mathScore,
				LangScore:       langScore,
			}, warnings)

			renderer := &letter.HTMLRenderer{TemplatePath: config.LetterTemplatePath()}
			html, err := renderer.Render(ctx)
			if err != nil {
				return err
			}

			if output == "" {
				output = fmt.Sprintf("Carta_Bolsa_%s.html",
					strings.ReplaceAll(strings.TrimSpace(student), " ", "_"))
			}
			if err := os.WriteFile(output, html, 0600); err != nil {
				return fmt.Errorf("failed to write letter: %w", err)
			}

			for _, w := range warnings.Items() {
				fmt.Println(cli.FormatWarning(w.Message))
			}
			fmt.Println(cli.FormatSuccess(fmt.Sprintf(
				"carta gerada: %s (bolsa de %s%%)", output, ctx["bolsa_pct"])))
			return nil
		},
	}

	cmd.Flags().StringVar(&student, "nome", "", "candidate name (required)")
	cmd.Flags().StringVar(&unit, "unidade", "", "unit short name (required)")
	cmd.Flags().StringVar(&class, "turma", "", "class of interest (required)")
	cmd.Flags().IntVar(&mathScore, "mat", 0, "math correct answers")
	cmd.Flags().IntVar(&langScore, "port", 0, "language correct answers")
	cmd.Flags().StringVar(&output, "out", "", "output file (default: Carta_Bolsa_<nome>.html)")
	_ = cmd.MarkFlagRequired("nome")
	_ = cmd.MarkFlagRequired("unidade")
	_ = cmd.MarkFlagRequired("turma")

	return cmd
}
