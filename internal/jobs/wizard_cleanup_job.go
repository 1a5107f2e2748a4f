package jobs

import (
	"context"
	"log/slog"

	"github.com/robfig/cron/v3"

	"github.com/maxwellkiplagat/Deliveroo/internal/core/application/wizard"
)

// cleanupSpec sweeps abandoned wizards once a minute.
const cleanupSpec = "0 * * * * *"

// WizardCleanupJob evicts parcel creation wizards that sat idle past
// their TTL, so abandoned sessions do not accumulate.
type WizardCleanupJob struct {
	sessions *wizard.Sessions
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewWizardCleanupJob creates the cleanup job.
func NewWizardCleanupJob(sessions *wizard.Sessions, logger *slog.Logger) *WizardCleanupJob {
	return &WizardCleanupJob{
		sessions: sessions,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "wizard_cleanup_job"),
	}
}

// Start schedules the sweep.
func (j *WizardCleanupJob) Start() error {
	_, err := j.cron.AddFunc(cleanupSpec, func() {
		if evicted := j.sessions.Cleanup(); evicted > 0 {
			j.logger.InfoContext(context.Background(), "Evicted expired wizards", "count", evicted)
		}
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Wizard cleanup job started")
	return nil
}

// Stop stops the job.
func (j *WizardCleanupJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Wizard cleanup job stopped")
}
