// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package dashboard turns a record set into the named charts of the solve
dashboard and keeps the current set available to the HTTP layer.

# Charts

Build produces, in order:

  - times: every single as a dot plus Ao5, Ao12, Ao50 and Ao100 lines, by
    solve number
  - averages-by-date: the same averages by date; lines break across gaps of
    more than 2 days
  - personal-bests: running best of the single and of each average
  - daily: solves per calendar day over the most recent RecentSolves records
  - weekly: solves per Sunday-started week over the same records

Averages use these windows:

	Ao5    5 solves, 1 trimmed each side
	Ao12  12 solves, 1 trimmed each side
	Ao50  50 solves, 3 trimmed each side
	Ao100 100 solves, 5 trimmed each side

# Snapshots

A Snapshot bundles the records with their charts and summary under a random
ID. Service.Reload loads once, builds a new snapshot and swaps it in
atomically; readers keep whatever snapshot they already hold. If the load
fails the previous snapshot stays current.

	svc := dashboard.NewService(loader, store, dashboard.DefaultSettings(), cfg.DataSource)
	if _, err := svc.Reload(ctx); err != nil {
		return err
	}
	snap := svc.Current()

When a Mirror is configured every published record set is also written to
it; mirror errors are logged and otherwise ignored.
*/
package dashboard
