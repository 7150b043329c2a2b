package renderer

import (
	"bytes"
	"fmt"
	"strings"

	md "github.com/nao1215/markdown"

	"github.com/tlecomte/transparence"
)

// DeclarationMarkdown renders one parsed declaration as a markdown report.
// It shows the document as filed, before any consolidation.
func DeclarationMarkdown(d *transparence.Declaration) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(strings.TrimSpace(d.Declarant.GivenName + " " + d.Declarant.FamilyName))
	line := nonEmpty(string(d.Category), d.FilingDate.String(), d.Declarant.Office, d.Declarant.Body)
	doc.PlainText(strings.Join(line, ", "))

	recordTables(doc, d.Records)

	if d.Observations != "" {
		doc.H2("Observations")
		doc.PlainText(d.Observations)
	}

	return doc.String()
}

// recordTables appends one table per non-empty record kind, in display order.
func recordTables(doc *md.Markdown, rs transparence.RecordSet) {
	for _, kind := range kindOrder {
		records := rs[kind]
		if len(records) == 0 {
			continue
		}
		doc.H2(fmt.Sprintf("%s (%d)", kindTitles[kind], len(records)))
		rows := make([][]string, 0, len(records))
		for _, r := range records {
			label := r.Label()
			if label == "" {
				label = "(unlabelled)"
			}
			rows = append(rows, []string{label, eur(r.Value()), r.Note()})
		}
		doc.Table(md.TableSet{Header: []string{"Label", "Value", "Note"}, Rows: rows})
	}
}
