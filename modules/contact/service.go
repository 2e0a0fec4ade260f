package contact

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrymomot/mailform/pkg/clientip"
	"github.com/dmitrymomot/mailform/pkg/logger"
	"github.com/dmitrymomot/mailform/pkg/mailer"
	"github.com/dmitrymomot/mailform/pkg/metrics"
	"github.com/dmitrymomot/mailform/pkg/ratelimiter"
)

// Service orchestrates the per-request pipeline: rate limit, bind, validate,
// sanitize, dispatch. Sender may be nil when the mail transport could not be
// constructed at startup; the service then answers every submission with a
// server_misconfigured error while the rest of the API keeps working.
type Service struct {
	limiter  ratelimiter.RateLimiter
	sender   mailer.Sender
	receiver string
	subject  string
	maxBody  int64
	log      *slog.Logger
}

// NewService wires the contact endpoint dependencies.
func NewService(limiter ratelimiter.RateLimiter, sender mailer.Sender, receiver string, cfg Config, log *slog.Logger) *Service {
	subject := "New contact form submission"
	if cfg.SubjectPrefix != "" {
		subject = cfg.SubjectPrefix + " " + subject
	}
	maxBody := cfg.MaxBodyBytes
	if maxBody <= 0 {
		maxBody = 6 << 10
	}
	return &Service{
		limiter:  limiter,
		sender:   sender,
		receiver: receiver,
		subject:  subject,
		maxBody:  maxBody,
		log:      log,
	}
}

// HandleHealth reports liveness. Always succeeds, no side effects.
func (s *Service) HandleHealth(w http.ResponseWriter, r *http.Request) {
	writeOK(w)
}

// HandleSubmit processes one contact-form submission. Each stage
// short-circuits to a fixed error response; internal detail only reaches
// the log.
func (s *Service) HandleSubmit(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	key := clientip.GetIP(r)
	if key == "" {
		key = "unknown"
	}

	result, err := s.limiter.Allow(ctx, key)
	if err != nil {
		// A broken limiter store must not take the endpoint down with it.
		s.log.ErrorContext(ctx, "rate limiter unavailable, letting request through",
			logger.Component("contact"), logger.Error(err), logger.ClientIP(key))
	} else if !result.Allowed() {
		if retryAfter := int(result.RetryAfter().Seconds()); retryAfter > 0 {
			w.Header().Set("Retry-After", strconv.Itoa(retryAfter))
		}
		metrics.ObserveSubmission(CodeRateLimited)
		writeError(w, http.StatusTooManyRequests, CodeRateLimited)
		return
	}

	var sub Submission
	r.Body = http.MaxBytesReader(w, r.Body, s.maxBody)
	if err := json.NewDecoder(r.Body).Decode(&sub); err != nil {
		// Oversized or malformed bodies get the same shape as an incomplete
		// form; nothing about the parser leaks out.
		metrics.ObserveSubmission(CodeMissingFields)
		writeError(w, http.StatusBadRequest, CodeMissingFields)
		return
	}

	if code := sub.Validate(); code != "" {
		if code == CodeSpam {
			s.log.InfoContext(ctx, "honeypot triggered",
				logger.Component("contact"), logger.Event("honeypot"), logger.ClientIP(key))
		}
		metrics.ObserveSubmission(code)
		writeError(w, http.StatusBadRequest, code)
		return
	}

	clean := sub.Sanitized()

	if s.sender == nil {
		metrics.ObserveSubmission(CodeServerMisconfig)
		writeError(w, http.StatusInternalServerError, CodeServerMisconfig)
		return
	}

	submissionID := uuid.New().String()
	body, err := renderBody(clean, submissionID, time.Now())
	if err != nil {
		s.log.ErrorContext(ctx, "failed to render email body",
			logger.Component("contact"), logger.Error(err), logger.SubmissionID(submissionID))
		metrics.ObserveSubmission(CodeFailedToSend)
		writeError(w, http.StatusInternalServerError, CodeFailedToSend)
		return
	}

	dispatchStart := time.Now()
	err = s.sender.Send(ctx, mailer.Message{
		To:       s.receiver,
		ReplyTo:  clean.Email,
		Subject:  s.subject,
		BodyHTML: body,
	})
	metrics.ObserveEmailSent(err == nil)
	if err != nil {
		s.log.ErrorContext(ctx, "failed to dispatch email",
			logger.Component("contact"), logger.Error(err),
			logger.SubmissionID(submissionID), logger.ClientIP(key))
		metrics.ObserveSubmission(CodeFailedToSend)
		writeError(w, http.StatusInternalServerError, CodeFailedToSend)
		return
	}

	s.log.InfoContext(ctx, "submission relayed",
		logger.Component("contact"), logger.Event("relayed"),
		logger.SubmissionID(submissionID), logger.ClientIP(key),
		logger.Duration(time.Since(dispatchStart)))
	metrics.ObserveSubmission("ok")
	writeOK(w)
}
