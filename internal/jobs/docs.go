// Package jobs provides the scheduled background tasks of the parcel
// service, built on github.com/robfig/cron/v3.
//
// Two jobs run:
//
//  1. CourierAssignmentJob matches the oldest unassigned pending parcel
//     with the nearest available courier. Empty queues and empty courier
//     pools are normal outcomes, not errors.
//  2. WizardCleanupJob evicts abandoned parcel creation wizards once
//     their idle TTL passes.
//
// JobManager wires both behind a single Start/Stop pair:
//
//	manager := jobs.NewJobManager(assignHandler, sessions, logger)
//	if err := manager.StartAll(); err != nil {
//	    log.Fatal("failed to start jobs:", err)
//	}
//	defer manager.StopAll()
package jobs
