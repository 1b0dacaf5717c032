// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package reltime converts the relative-time display labels carried on posts
// and comments ("刚刚", "5分钟前", "2小时前", "3天前") into absolute instants
// anchored at a caller-supplied now. The conversion is a lossy heuristic used
// only for ordering: the labels are static display strings, so the derived
// instant shifts every time it is recomputed against a new now.
package reltime

import (
	"strconv"
	"strings"
	"time"
)

// JustNow is the label stamped on freshly created records.
const JustNow = "刚刚"

const (
	minuteSuffix = "分钟前"
	hourSuffix   = "小时前"
	daySuffix    = "天前"
)

// EffectiveTime maps a relative-time label to an instant anchored at now.
// "刚刚" maps to now; "N分钟前", "N小时前" and "N天前" subtract the matching
// duration. Any unrecognized label maps to now, so it orders as newest.
func EffectiveTime(label string, now time.Time) time.Time {
	if label == JustNow {
		return now
	}
	if n, ok := countBefore(label, minuteSuffix); ok {
		return now.Add(-time.Duration(n) * time.Minute)
	}
	if n, ok := countBefore(label, hourSuffix); ok {
		return now.Add(-time.Duration(n) * time.Hour)
	}
	if n, ok := countBefore(label, daySuffix); ok {
		return now.Add(-time.Duration(n) * 24 * time.Hour)
	}
	return now
}

// countBefore extracts the integer preceding suffix.
// "23分钟前" with suffix "分钟前" yields (23, true).
func countBefore(label, suffix string) (int, bool) {
	rest, found := strings.CutSuffix(label, suffix)
	if !found {
		return 0, false
	}
	n, err := strconv.Atoi(rest)
	if err != nil {
		return 0, false
	}
	return n, true
}
