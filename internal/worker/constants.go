package worker

// Log messages - lifecycle
const (
	LogMsgWorkerShuttingDown     = "Worker shutting down"
	LogMsgWorkerShutdownComplete = "Worker shutdown complete"
	LogMsgWorkerShutdownTimeout  = "Worker shutdown timeout"
)

// Log messages - claim sweeper
const (
	LogMsgClaimSweeperStarted = "Claim sweeper started"
	LogMsgClaimSweepFailed    = "Claim sweep failed"
	LogMsgStaleClaimFlagged   = "Stale purchase claim flagged for reconciliation"
)

// ClaimSweeperName identifies the sweeper in logs
const ClaimSweeperName = "claim_sweeper"
