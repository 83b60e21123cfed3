// Package history records one row per parse invocation and prunes them
// on a schedule.
//
// # Overview
//
// Neither the parser core nor pkg/telemetry/metrics remembers anything
// about a specific file across process restarts: metrics are
// process-lifetime counters, not a per-file audit trail. pkg/history
// fills that gap with a sqlite-backed store, so "javaparse history" can
// answer "what failed last night's indexing run".
//
// # Usage
//
//	store, err := history.NewStore(cfg.History)
//	if err != nil {
//	 log.Fatal(err)
//	}
//	defer store.Close()
//
//	start := time.Now()
//	result, _ := parser.Parse(path)
//	entry := history.Entry{
//	 ID: sessionID,
//	 Path: path,
//	 Success: result.IsSuccess(),
//	 DurationMS: time.Since(start).Milliseconds(),
//	}
//	if !result.IsSuccess() {
//	 entry.ErrorMessage = result.Errors().First().Message
//	}
//	store.Record(ctx, entry)
//
// # Retention
//
// A Pruner deletes entries older than HistoryConfig.RetentionDays on the
// cron schedule in HistoryConfig.PruneSchedule:
//
//	pruner := history.NewPruner(store, cfg.History)
//	pruner.Start(ctx)
//	defer pruner.Stop()
package history
