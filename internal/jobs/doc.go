// Package jobs implements the background job runner.
//
// It exposes the job-trigger HTTP endpoints, the handler functions that call
// exactly one backend endpoint per job and record the outcome in the
// job-status store, and the cron scheduler that fires the same handlers on a
// fixed interval. Every job is attempted once; failures are recorded, never
// retried.
package jobs
