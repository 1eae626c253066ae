package email

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/lifeledger/backend/internal/application/adapter"
	"github.com/lifeledger/backend/internal/domain/entity"
	domainerror "github.com/lifeledger/backend/internal/domain/error"
	"github.com/lifeledger/backend/internal/integration/email/templates"
)

// Worker drains the email queue in batches and delivers through the
// configured sender.
type Worker struct {
	queue    adapter.EmailQueueRepository
	sender   adapter.EmailSender
	renderer *templates.Renderer
	interval time.Duration
	batch    int
}

// WorkerConfig tunes the polling loop.
type WorkerConfig struct {
	PollInterval time.Duration
	BatchSize    int
}

// DefaultWorkerConfig returns the production defaults.
func DefaultWorkerConfig() WorkerConfig {
	return WorkerConfig{PollInterval: 5 * time.Second, BatchSize: 10}
}

// NewWorker assembles a queue worker.
func NewWorker(queue adapter.EmailQueueRepository, sender adapter.EmailSender, renderer *templates.Renderer, cfg WorkerConfig) *Worker {
	return &Worker{
		queue:    queue,
		sender:   sender,
		renderer: renderer,
		interval: cfg.PollInterval,
		batch:    cfg.BatchSize,
	}
}

// Start blocks, polling the queue until the context is cancelled. The
// first drain happens immediately rather than one interval in.
func (w *Worker) Start(ctx context.Context) {
	slog.Info("email worker started", "poll_interval", w.interval, "batch_size", w.batch)

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	w.drain(ctx)
	for {
		select {
		case <-ctx.Done():
			slog.Info("email worker stopping")
			return
		case <-ticker.C:
			w.drain(ctx)
		}
	}
}

func (w *Worker) drain(ctx context.Context) {
	jobs, err := w.queue.GetPendingJobs(ctx, w.batch)
	if err != nil {
		slog.Error("fetching pending email jobs", "error", err)
		return
	}
	if len(jobs) == 0 {
		return
	}

	slog.Debug("delivering email batch", "count", len(jobs))
	for _, job := range jobs {
		if ctx.Err() != nil {
			return
		}
		w.deliver(ctx, job)
	}
}

func (w *Worker) deliver(ctx context.Context, job *entity.EmailJob) {
	logger := slog.With("job_id", job.ID, "template", job.TemplateType, "recipient", job.RecipientEmail)

	job.MarkProcessing()
	if err := w.queue.Update(ctx, job); err != nil {
		logger.Error("marking job as processing", "error", err)
		return
	}

	html, text, err := w.render(job)
	if err != nil {
		logger.Error("rendering email template", "error", err)
		// a template that cannot render will never succeed on retry
		w.recordFailure(ctx, job, err, true)
		return
	}

	result, err := w.sender.Send(ctx, adapter.SendEmailInput{
		To:      job.RecipientEmail,
		Name:    job.RecipientName,
		Subject: job.Subject,
		HTML:    html,
		Text:    text,
	})
	if err != nil {
		logger.Error("sending email", "error", err)
		var emailErr *domainerror.EmailError
		permanent := errors.As(err, &emailErr) && emailErr.Code == domainerror.ErrCodePermanentEmailFailure
		w.recordFailure(ctx, job, err, permanent)
		return
	}

	job.MarkSent(result.ProviderID)
	if err := w.queue.Update(ctx, job); err != nil {
		logger.Error("marking job as sent", "error", err)
		return
	}
	logger.Info("email delivered", "provider_id", result.ProviderID)
}

func (w *Worker) render(job *entity.EmailJob) (html string, text string, err error) {
	var data interface{}
	switch job.TemplateType {
	case entity.TemplateWelcome:
		data = templates.WelcomeData{
			UserName: stringField(job.TemplateData, "name"),
		}
	case entity.TemplatePasswordReset:
		data = templates.PasswordResetData{
			UserName:  stringField(job.TemplateData, "name"),
			ResetURL:  stringField(job.TemplateData, "resetURL"),
			ExpiresAt: stringField(job.TemplateData, "expiresAt"),
		}
	default:
		return "", "", domainerror.NewEmailError(
			domainerror.ErrCodeEmailTemplateRender,
			"unknown template type",
			domainerror.ErrEmailTemplateRender,
		)
	}
	return w.renderer.Render(string(job.TemplateType), data)
}

func (w *Worker) recordFailure(ctx context.Context, job *entity.EmailJob, cause error, permanent bool) {
	job.MarkFailed(cause.Error(), permanent)

	if err := w.queue.Update(ctx, job); err != nil {
		slog.Error("updating job after failure", "job_id", job.ID, "error", err)
	}

	if job.Status == entity.EmailStatusFailed {
		slog.Warn("email job permanently failed",
			"job_id", job.ID,
			"attempts", job.Attempts,
			"last_error", job.LastError,
		)
		return
	}
	slog.Info("email job scheduled for retry",
		"job_id", job.ID,
		"attempts", job.Attempts,
		"max_attempts", job.MaxAttempts,
	)
}

func stringField(data map[string]interface{}, key string) string {
	v, _ := data[key].(string)
	return v
}
