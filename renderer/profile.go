package renderer

import (
	"bytes"
	"fmt"
	"strings"

	md "github.com/nao1215/markdown"

	"github.com/tlecomte/transparence"
)

// ProfileMarkdown renders one consolidated profile as a markdown report.
func ProfileMarkdown(p *transparence.Profile) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(p.Person.String())
	if len(p.Declarations) > 0 {
		d := p.Declarations[len(p.Declarations)-1].Declarant
		if line := strings.TrimSpace(strings.Join(nonEmpty(d.Office, d.Body), ", ")); line != "" {
			doc.PlainText(line)
		}
	}

	doc.H2("Totals")
	doc.Table(md.TableSet{
		Header: []string{"Aggregate", "Amount"},
		Rows: [][]string{
			{"Gross assets", eurf(p.Aggregates.GrossAssets)},
			{"Total debt", eurf(p.Aggregates.TotalDebt)},
			{"Net worth", eurf(p.Aggregates.NetWorth)},
			{"Annual income", eurf(p.Aggregates.AnnualIncome)},
		},
	})

	recordTables(doc, p.Records)

	if !p.Family.Empty() {
		doc.H2("Family")
		var lines []string
		if p.Family.Status != "" {
			lines = append(lines, "Status: "+p.Family.Status)
		}
		if spouse := strings.TrimSpace(strings.Join(nonEmpty(p.Family.Spouse.GivenName, p.Family.Spouse.FamilyName, p.Family.Spouse.Profession), ", ")); spouse != "" {
			lines = append(lines, "Spouse: "+spouse)
		}
		if n := len(p.Family.Children); n > 0 {
			lines = append(lines, fmt.Sprintf("Children: %d", n))
		}
		doc.BulletList(lines...)
	}

	if len(p.Declarations) > 0 {
		doc.H2("Declarations")
		rows := make([][]string, 0, len(p.Declarations))
		for _, ref := range p.Declarations {
			rows = append(rows, []string{string(ref.Category), ref.FilingDate.String(), ref.UID})
		}
		doc.Table(md.TableSet{Header: []string{"Category", "Filed", "Id"}, Rows: rows})
	}

	return doc.String()
}

func nonEmpty(parts ...string) []string {
	out := parts[:0]
	for _, p := range parts {
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}
