package domain

type MissingRef struct {
	TrackID  string
	LessonID string
}

type MergeReport struct {
	Inserted    int
	Ignored     int
	MissingRefs []MissingRef
}

// Merge incorporates a normalized batch additively: items whose id already
// exists in the index are skipped and counted, never overwritten. The index
// is rebuilt once after all insertions, then every track's lesson references
// are cross-checked. Missing references are reported, never fatal.
//
// Callers must only pass batches that passed validation; behavior on
// invalid batches is undefined.
func Merge(idx *Index, batch []Item) MergeReport {
	report := MergeReport{MissingRefs: []MissingRef{}}

	for _, item := range batch {
		if idx.Has(item.ID) {
			report.Ignored++
			continue
		}
		idx.Items = append(idx.Items, item)
		report.Inserted++
	}

	idx.Rebuild()
	report.MissingRefs = idx.MissingLessonRefs()
	return report
}
