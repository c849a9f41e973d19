package layout

import (
	"sort"
	"strconv"
)

// Bucket holds the entries sharing one exact time window.
type Bucket struct {
	// Key is "<start>-<end>".
	Key     string
	Start   int
	End     int
	Entries []DayEntry
}

// windowKey builds the grouping key for a window.
func windowKey(start, end int) string {
	return strconv.Itoa(start) + "-" + strconv.Itoa(end)
}

// GroupByWindow buckets entries by identical (start, end) window. Entries
// keep their input order inside a bucket; buckets are sorted by start
// offset, ties keeping first-seen order.
func GroupByWindow(entries []DayEntry) []Bucket {
	var buckets []Bucket
	index := make(map[string]int)

	for _, de := range entries {
		key := windowKey(de.Entry.StartMinute, de.Entry.EndMinute)
		i, ok := index[key]
		if !ok {
			i = len(buckets)
			index[key] = i
			buckets = append(buckets, Bucket{
				Key:   key,
				Start: de.Entry.StartMinute,
				End:   de.Entry.EndMinute,
			})
		}
		buckets[i].Entries = append(buckets[i].Entries, de)
	}

	sort.SliceStable(buckets, func(i, j int) bool {
		return buckets[i].Start < buckets[j].Start
	})
	return buckets
}
