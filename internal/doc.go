// Package internal holds the implementation of the ENTSO-E collector.
//
// # Architecture
//
// The collector is structured into several key packages:
//   - area: Bidding-zone registry with EIC codes, timezones and market metadata
//   - series: Timestamped value series and per-category series with statistics
//   - entsoe: Transparency platform client, XML parser and document queries
//   - coordinator: Cached refresh targets with staleness and Europe aggregation
//   - scheduler: Periodic background refresh of registered targets
//   - web: HTTP API exposing the collected series
//   - config: YAML configuration with environment expansion
//
// Key Features
//
//   - Polling:
//     Each target refreshes on its own horizon-derived interval and keeps
//     the last good series when the platform misbehaves.
//
//   - Aggregation:
//     Total-Europe targets sum every bidding zone, suppressing areas that
//     repeatedly miss and recovering them after a cooldown.
//
//   - Serving:
//     The HTTP API answers from the in-memory series only; no request
//     ever triggers a platform call.
//
// Example Usage
//
//	client, err := entsoe.NewClient(apiKey, entsoe.Options{})
//	prices := coordinator.NewPriceCoordinator(coordinator.Config{
//	    Querier: client,
//	    Area:    be,
//	})
//	err = prices.Refresh(ctx)
//
// For more information about specific packages, see their respective
// documentation.
package internal
