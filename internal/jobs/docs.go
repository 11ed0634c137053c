// Package jobs provides the background tasks of the ordering service.
//
// # Available Jobs
//
// 1. OutboxRelayJob - publishes pending outbox messages to Kafka on a cron
// schedule (github.com/robfig/cron/v3, seconds precision)
// 2. ConsumerJob - runs a Kafka consumer loop until stopped
//
// # Usage
//
//	relay, err := jobs.NewOutboxRelayJob(relayHandler, "*/2 * * * * *", 100, m, logger)
//	if err != nil {
//		return err
//	}
//	jobManager := jobs.NewJobManager(relay, jobs.NewConsumerJob(consumer.Run))
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Error Handling
//
// - The relay logs publish failures and retries the remaining messages on the next run
// - Failed job starts stop the jobs already running
package jobs
