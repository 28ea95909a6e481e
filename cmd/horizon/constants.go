package main

// Output formats for release listings.
const (
	formatTimeline = "timeline"
	formatTable    = "table"
	formatCompact  = "compact"
)

// Valid listing formats.
var validFormats = []string{formatTimeline, formatTable, formatCompact}

// Display widths, in runes.
const (
	summaryWidth      = 100
	tableSummaryWidth = 60
	ruleWidth         = 60
)
