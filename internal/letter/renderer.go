package letter

import (
	"fmt"
	"os"
	"strings"
)

// HTMLRenderer renders the letter by substituting {{key}} placeholders in an
// HTML template file. The placeholder scheme is fixed by the existing
// templates, which predate this program.
type HTMLRenderer struct {
	TemplatePath string
}

// Render implements Renderer.
func (r *HTMLRenderer) Render(ctx map[string]string) ([]byte, error) {
	raw, err := os.ReadFile(r.TemplatePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read letter template: %w", err)
	}

	html := string(raw)
	for key, value := range ctx {
		html = strings.ReplaceAll(html, "{{"+key+"}}", value)
	}
	html = strings.ReplaceAll(html, "{{tabelas_material_didatico}}", materialHTML(ctx["unidade_curta"]))
	return []byte(html), nil
}

// materialHTML renders the material price tables as the template expects.
func materialHTML(unit string) string {
	var b strings.Builder
	for _, table := range MaterialTables(unit) {
		b.WriteString(`<table class="pag2"><tr><th colspan="3">`)
		b.WriteString(table.Title)
		b.WriteString("</th></tr>")
		for _, row := range table.Rows {
			fmt.Fprintf(&b, "<tr><td>%s</td><td>%s</td><td>%s</td></tr>",
				row.Course, row.CashPrice, row.Installments)
		}
		b.WriteString("</table><br>")
	}
	return b.String()
}
