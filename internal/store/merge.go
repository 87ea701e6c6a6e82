package store

import (
	"github.com/FuriaPaladins/Hoyoverse-Data/internal/domain"
)

// MergeEntry is a normalized candidate and the collection key it is filed
// under. Source is the banner id it was built from.
type MergeEntry struct {
	Key    string
	Source string
	Record domain.BannerRecord
}

// KeyedRecord is a record after merging, with its collection key and the
// banner id of the candidate that produced the change.
type KeyedRecord struct {
	Key    string
	Source string
	Record domain.BannerRecord
}

// MergeResult summarizes one merge pass.
type MergeResult struct {
	Added      []KeyedRecord
	Merged     []KeyedRecord
	Duplicates int
}

// Changed reports whether the collection was modified.
func (r MergeResult) Changed() bool {
	return len(r.Added) > 0 || len(r.Merged) > 0
}

// Merge applies entries to coll in order under the given identity rule.
//
// Insert-if-absent (name+start): a candidate matching an existing record is a
// duplicate. Merge-on-window (type+start+end): a matching record absorbs the
// candidate's rate-ups and name; only when nothing new is absorbed is it a
// duplicate. Unmatched candidates are appended in both cases.
func Merge(coll domain.Collection, rule domain.IdentityRule, entries []MergeEntry) MergeResult {
	var res MergeResult
	for _, e := range entries {
		records := coll[e.Key]
		idx := -1
		for i := range records {
			if records[i].Matches(e.Record, rule) {
				idx = i
				break
			}
		}

		switch {
		case idx < 0:
			rec := withLists(e.Record)
			coll[e.Key] = append(records, rec)
			res.Added = append(res.Added, KeyedRecord{Key: e.Key, Source: e.Source, Record: rec})
		case rule == domain.IdentityWindow && records[idx].AbsorbWindow(e.Record):
			res.Merged = append(res.Merged, KeyedRecord{Key: e.Key, Source: e.Source, Record: records[idx]})
		default:
			res.Duplicates++
		}
	}
	return res
}

func withLists(rec domain.BannerRecord) domain.BannerRecord {
	if rec.Uprate5 == nil {
		rec.Uprate5 = []domain.ItemRef{}
	}
	if rec.Uprate4 == nil {
		rec.Uprate4 = []domain.ItemRef{}
	}
	return rec
}

// stripPlaceholders removes empty item objects left in history by older
// runs and normalizes null lists. It returns how many items were removed.
func stripPlaceholders(coll domain.Collection) int {
	removed := 0
	for key, records := range coll {
		for i := range records {
			var n int
			records[i].Uprate5, n = dropEmpty(records[i].Uprate5)
			removed += n
			records[i].Uprate4, n = dropEmpty(records[i].Uprate4)
			removed += n
		}
		coll[key] = records
	}
	return removed
}

func dropEmpty(items []domain.ItemRef) ([]domain.ItemRef, int) {
	kept := make([]domain.ItemRef, 0, len(items))
	for _, item := range items {
		if item == (domain.ItemRef{}) {
			continue
		}
		kept = append(kept, item)
	}
	return kept, len(items) - len(kept)
}
