package layout

import (
	"strconv"

	"github.com/ukaji3/schedgrid-go/pkg/schedgrid/models"
)

// Normalize converts a minute offset to a percentage of models.TotalSpan.
// Values outside [0, 100] are returned as is.
func Normalize(minute int) float64 {
	return float64(minute) / models.TotalSpan * 100
}

// BlockFor positions one bucket.
func BlockFor(b Bucket) models.Block {
	block := models.Block{
		Top:        Normalize(b.Start),
		Height:     Normalize(b.End - b.Start),
		Start:      b.Start,
		End:        b.End,
		StartLabel: strconv.Itoa(b.Start),
		EndLabel:   strconv.Itoa(b.End),
		StartClock: models.MinuteToClock(b.Start),
		EndClock:   models.MinuteToClock(b.End),
		Members:    make([]string, 0, len(b.Entries)),
		Rooms:      make([]string, 0, len(b.Entries)),
	}
	for _, de := range b.Entries {
		block.Members = append(block.Members, de.Record.Section)
		block.Rooms = append(block.Rooms, de.Entry.Room)
	}
	return block
}

// LayoutDay computes the chronologically ordered blocks of one weekday.
func LayoutDay(records []models.ClassRecord, day models.Day) models.DayLayout {
	buckets := GroupByWindow(EntriesForDay(records, day))
	dl := models.DayLayout{
		Day:    day,
		Blocks: make([]models.Block, 0, len(buckets)),
	}
	for _, b := range buckets {
		dl.Blocks = append(dl.Blocks, BlockFor(b))
	}
	return dl
}

// LayoutWeek lays out every weekday, Monday through Saturday. It returns
// nil without doing any work when there are no records.
func LayoutWeek(records []models.ClassRecord) []models.DayLayout {
	if len(records) == 0 {
		return nil
	}
	days := make([]models.DayLayout, 0, len(models.Weekdays))
	for _, d := range models.Weekdays {
		days = append(days, LayoutDay(records, d))
	}
	return days
}
