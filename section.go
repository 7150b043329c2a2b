package transparence

// resolveSection locates the subtree for a section concept, trying the
// configured tag-name variants in order. It returns nil when no variant
// occurs in the document.
func resolveSection(root *node, spec SectionSpec) *node {
	for _, tag := range spec.Tags {
		if n := root.find(tag); n != nil {
			return n
		}
	}
	return nil
}

// sectionEmpty reports whether a resolved section is explicitly empty. A
// section is empty when it carries a nil marker set to true, or when it has
// no child elements. Both cases yield zero records, same as a section whose
// concept never appears in the document.
func sectionEmpty(sec *node) bool {
	if sec == nil {
		return true
	}
	if sec.boolAt("neant") || sec.boolAt("none") {
		return true
	}
	return len(sec.children) == 0
}
