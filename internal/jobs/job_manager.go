package jobs

import (
	"fmt"
	"log/slog"

	"github.com/maxwellkiplagat/Deliveroo/internal/core/application/usecases/commands"
	"github.com/maxwellkiplagat/Deliveroo/internal/core/application/wizard"
)

// JobManager coordinates the scheduled jobs behind a single Start/Stop
// pair.
type JobManager struct {
	courierAssignmentJob *CourierAssignmentJob
	wizardCleanupJob     *WizardCleanupJob
}

// NewJobManager wires up all background jobs.
func NewJobManager(
	assignCourierHandler commands.AssignCourierCommandHandler,
	sessions *wizard.Sessions,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		courierAssignmentJob: NewCourierAssignmentJob(assignCourierHandler, logger),
		wizardCleanupJob:     NewWizardCleanupJob(sessions, logger),
	}
}

// StartAll starts every job, stopping already started ones if a later
// one fails.
func (jm *JobManager) StartAll() error {
	if err := jm.courierAssignmentJob.Start(); err != nil {
		return fmt.Errorf("failed to start courier assignment job: %w", err)
	}

	if err := jm.wizardCleanupJob.Start(); err != nil {
		jm.courierAssignmentJob.Stop()
		return fmt.Errorf("failed to start wizard cleanup job: %w", err)
	}

	return nil
}

// StopAll stops all jobs.
func (jm *JobManager) StopAll() {
	jm.wizardCleanupJob.Stop()
	jm.courierAssignmentJob.Stop()
}
