package jobs

import (
	"context"
	"errors"
	"log/slog"

	"github.com/robfig/cron/v3"

	"github.com/maxwellkiplagat/Deliveroo/internal/core/application/usecases/commands"
)

// assignmentSpec runs the matcher every five seconds; parcels wait at most
// one tick before a courier is considered.
const assignmentSpec = "*/5 * * * * *"

// CourierAssignmentJob periodically assigns the oldest unassigned pending
// parcel to the nearest available courier.
type CourierAssignmentJob struct {
	handler commands.AssignCourierCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewCourierAssignmentJob creates the assignment job.
func NewCourierAssignmentJob(handler commands.AssignCourierCommandHandler, logger *slog.Logger) *CourierAssignmentJob {
	return &CourierAssignmentJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "courier_assignment_job"),
	}
}

// Start schedules the job. An empty parcel queue or courier pool is a
// normal outcome and is not logged.
func (j *CourierAssignmentJob) Start() error {
	_, err := j.cron.AddFunc(assignmentSpec, func() {
		ctx := context.Background()

		if err := j.handler.Handle(ctx, commands.NewAssignCourierCommand()); err != nil {
			if errors.Is(err, commands.ErrNoParcelFound) || errors.Is(err, commands.ErrNoAvailableCouriersFound) {
				return
			}
			j.logger.ErrorContext(ctx, "Courier assignment job failed", "error", err)
		}
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Courier assignment job started")
	return nil
}

// Stop stops the job.
func (j *CourierAssignmentJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Courier assignment job stopped")
}
