package model

import "sort"

// RenumberSections rewrites section order values to the contiguous sequence
// 0..n-1 matching their current relative positions.
func RenumberSections(d *FormDefinition) {
	if d == nil {
		return
	}
	indexes := make([]int, len(d.Sections))
	for i := range indexes {
		indexes[i] = i
	}
	sort.SliceStable(indexes, func(a, b int) bool {
		return d.Sections[indexes[a]].Order < d.Sections[indexes[b]].Order
	})
	for position, index := range indexes {
		d.Sections[index].Order = position
	}
}

// RenumberFields rewrites the order values of one sibling scope (a section,
// or the unassigned bucket when sectionID is empty) to 0..n-1.
func RenumberFields(d *FormDefinition, sectionID string) {
	if d == nil {
		return
	}
	var indexes []int
	for i, field := range d.Fields {
		if field.SectionID == sectionID {
			indexes = append(indexes, i)
		}
	}
	sort.SliceStable(indexes, func(a, b int) bool {
		return d.Fields[indexes[a]].Order < d.Fields[indexes[b]].Order
	})
	for position, index := range indexes {
		d.Fields[index].Order = position
	}
}

// RenumberAll repairs every scope in the definition. The definition loader
// runs it once at the boundary so documents persisted with loose order
// integers come back with the invariant restored.
func RenumberAll(d *FormDefinition) {
	if d == nil {
		return
	}
	RenumberSections(d)
	seen := map[string]struct{}{"": {}}
	RenumberFields(d, "")
	for _, section := range d.Sections {
		if _, done := seen[section.ID]; done {
			continue
		}
		seen[section.ID] = struct{}{}
		RenumberFields(d, section.ID)
	}
}
