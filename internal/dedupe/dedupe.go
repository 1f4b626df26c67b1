package dedupe

// Package dedupe holds shared singleflight groups. Concurrent callers asking
// for the same key wait for a single in-flight query instead of each
// hitting the database.

import "golang.org/x/sync/singleflight"

// StatsGroup collapses concurrent run statistics aggregations.
var StatsGroup singleflight.Group

// HistoryGroup collapses concurrent history listings keyed by "history:<limit>".
var HistoryGroup singleflight.Group
