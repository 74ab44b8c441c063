package ratelimiter

import "time"

type Limiter interface {
	// Allow reports whether the client may proceed and, if not, how long it
	// should wait before retrying.
	Allow(ip string) (bool, time.Duration)
}

type Config struct {
	RequestsPerTimeFrame int
	TimeFrame            time.Duration
	Enabled              bool
}
