package ingester

import "time"

const (
	defaultWorkerCount = 8

	fetchBatchLimit = 2000

	idleSleepDuration      = 2 * time.Second
	postBatchSleepDuration = 2 * time.Second

	txBatcherCapacity      = 1000
	txBatcherFlushInterval = 5 * time.Second
	txBatcherRPS           = 2

	inputFlushThreshold  = 10_000
	outputFlushThreshold = 10_000
)
