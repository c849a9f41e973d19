package models

// Block is one positioned unit in a day column. Concurrent classes sharing
// the exact same window are stacked in a single block.
type Block struct {
	// Top is the start offset as a percentage of TotalSpan. Not clamped.
	Top float64 `json:"top" yaml:"top"`
	// Height is the window length as a percentage of TotalSpan. Not clamped.
	Height float64 `json:"height" yaml:"height"`
	// Start is the start offset in minutes from the anchor.
	Start int `json:"start" yaml:"start"`
	// End is the end offset in minutes from the anchor.
	End int `json:"end" yaml:"end"`
	// StartLabel is the start offset as text, the label drawn above the block.
	StartLabel string `json:"start_label" yaml:"start_label"`
	// EndLabel is the end offset as text, the label drawn below the block.
	EndLabel string `json:"end_label" yaml:"end_label"`
	// StartClock is the start as "HH:MM".
	StartClock string `json:"start_clock" yaml:"start_clock"`
	// EndClock is the end as "HH:MM".
	EndClock string `json:"end_clock" yaml:"end_clock"`
	// Members are the sections in the block, in record order.
	Members []string `json:"members" yaml:"members"`
	// Rooms holds the room of each member, parallel to Members.
	Rooms []string `json:"rooms" yaml:"rooms"`
}

// DayLayout holds the chronologically ordered blocks of one weekday.
type DayLayout struct {
	// Day is the weekday symbol.
	Day Day `json:"day" yaml:"day"`
	// Blocks are sorted by start offset.
	Blocks []Block `json:"blocks" yaml:"blocks"`
}
