// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package ratelimit - pace resolver calls
//
// a lookup costs one token and a paged request costs one token per
// item asked for
package ratelimit

import (
	"time"

	"golang.org/x/time/rate"

	"github.com/catapult-tools/statementd/fault"
)

// Limiter - token bucket with an upper bound on page size
type Limiter struct {
	bucket  *rate.Limiter
	maximum int
}

// New - perSecond tokens are added up to burst
//
// burst is raised to maximum so that a full page can always be served
func New(perSecond float64, burst int, maximum int) *Limiter {
	if maximum < 1 {
		maximum = 1
	}
	if burst < maximum {
		burst = maximum
	}
	return &Limiter{
		bucket:  rate.NewLimiter(rate.Limit(perSecond), burst),
		maximum: maximum,
	}
}

// Maximum - largest page a single request may ask for
func (l *Limiter) Maximum() int {
	return l.maximum
}

// Wait - delay a single lookup
func (l *Limiter) Wait() error {
	return l.reserve(1)
}

// WaitPage - delay a request for count items
//
// a count outside 1..Maximum is charged as a single lookup and rejected
func (l *Limiter) WaitPage(count int) error {
	if count < 1 || count > l.maximum {
		if err := l.reserve(1); nil != err {
			return err
		}
		return fault.ErrInvalidCount
	}
	return l.reserve(count)
}

func (l *Limiter) reserve(n int) error {
	r := l.bucket.ReserveN(time.Now(), n)
	if !r.OK() {
		return fault.ErrRateLimiting
	}
	time.Sleep(r.Delay())
	return nil
}
