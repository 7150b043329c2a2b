package transparence

// SelectLatest keeps, per document family, the single most recently filed
// declaration of one person: at most one patrimony document and one
// interests document survive. An amended filing supersedes the initial one
// it revises through its later filing date. Equal filing dates resolve to
// the later element of decls, matching source index order where amendments
// follow what they revise. Declarations of unknown category are dropped.
func SelectLatest(decls []*Declaration) []*Declaration {
	best := make(map[CategoryGroup]*Declaration)
	var order []CategoryGroup
	for _, d := range decls {
		group := d.Category.Group()
		if group == "" {
			continue
		}
		cur, ok := best[group]
		if !ok {
			best[group] = d
			order = append(order, group)
			continue
		}
		if !d.FilingDate.Before(cur.FilingDate) {
			best[group] = d
		}
	}
	selected := make([]*Declaration, 0, len(order))
	for _, group := range order {
		selected = append(selected, best[group])
	}
	return selected
}
