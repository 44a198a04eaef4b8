// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package clock provides an injectable wall-clock for testability.
//
// Code that stamps values with the current time (the event factory in
// lib/event is the main consumer) accepts a [Clock] instead of calling
// time.Now directly. Production code passes [Real]; tests pass [Fake]
// and move time explicitly with [FakeClock.Advance] or [FakeClock.Set].
//
//	factory := event.NewFactory(clock.Real())
//
//	// In tests:
//	fake := clock.Fake(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC))
//	factory := event.NewFactory(fake)
//	fake.Advance(time.Second)
//
// This package depends on no other packages in this module.
package clock
