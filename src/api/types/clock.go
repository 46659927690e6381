package types

import "time"

// NowMillis is the timestamp unit used across all tables (ms since epoch).
func NowMillis() int64 {
	return time.Now().UnixMilli()
}
