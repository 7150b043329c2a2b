package renderer

import (
	"bytes"
	"fmt"
	"sort"

	md "github.com/nao1215/markdown"

	"github.com/tlecomte/transparence"
)

// SummaryMarkdown renders a ranking of profiles by net worth.
func SummaryMarkdown(profiles []*transparence.Profile) string {
	ranked := make([]*transparence.Profile, len(profiles))
	copy(ranked, profiles)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Aggregates.NetWorth > ranked[j].Aggregates.NetWorth
	})

	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)
	doc.H1(fmt.Sprintf("Profiles (%d)", len(ranked)))

	rows := make([][]string, 0, len(ranked))
	for i, p := range ranked {
		rows = append(rows, []string{
			fmt.Sprintf("%d", i+1),
			p.Person.String(),
			fmt.Sprintf("%d", p.Records.Count()),
			eurf(p.Aggregates.GrossAssets),
			eurf(p.Aggregates.NetWorth),
			eurf(p.Aggregates.AnnualIncome),
		})
	}
	doc.Table(md.TableSet{
		Header: []string{"#", "Person", "Records", "Gross assets", "Net worth", "Annual income"},
		Rows:   rows,
	})
	return doc.String()
}
