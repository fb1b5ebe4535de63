package notification

import (
	"context"
	"encoding/json"
	"fmt"
	"net/smtp"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/ironfit-labs/gym-platform/internal/logger"
)

const (
	mailQueueKey  = "emails"
	mailFailedKey = "emails:failed"
	maxTries      = 3
)

type mailJob struct {
	To      string    `json:"to"`
	Name    string    `json:"name"`
	Subject string    `json:"subject"`
	Body    string    `json:"body"`
	Tries   int       `json:"tries"`
	Created time.Time `json:"created"`
}

// Mailer pushes outgoing email through a redis list so a process restart
// never loses queued messages, then drains it over plain SMTP.
type Mailer struct {
	redis    *redis.Client
	from     string
	fromName string
	smtpHost string
	smtpPort string
	smtpUser string
	smtpPass string
}

func NewMailer(fromEmail, fromName, smtpHost, smtpPort, smtpUser, smtpPass, redisAddr string) *Mailer {
	return &Mailer{
		redis: redis.NewClient(&redis.Options{
			Addr: redisAddr,
		}),
		from:     fromEmail,
		fromName: fromName,
		smtpHost: smtpHost,
		smtpPort: smtpPort,
		smtpUser: smtpUser,
		smtpPass: smtpPass,
	}
}

func (m *Mailer) Send(ctx context.Context, to, name, subject, body string) error {
	job := mailJob{
		To:      to,
		Name:    name,
		Subject: subject,
		Body:    body,
		Created: time.Now(),
	}

	data, err := json.Marshal(job)
	if err != nil {
		return err
	}

	if err := m.redis.LPush(ctx, mailQueueKey, data).Err(); err != nil {
		return err
	}

	logger.Infof("email queued: %q to %s", subject, to)
	return nil
}

// Start drains the queue until ctx is cancelled. Run it in its own
// goroutine at process start.
func (m *Mailer) Start(ctx context.Context) {
	logger.Info("mail worker started")

	for {
		select {
		case <-ctx.Done():
			logger.Info("mail worker stopped")
			return
		default:
			m.processNext(ctx)
		}
	}
}

func (m *Mailer) processNext(ctx context.Context) {
	result, err := m.redis.BRPop(ctx, 2*time.Second, mailQueueKey).Result()
	if err != nil {
		return
	}

	var job mailJob
	if err := json.Unmarshal([]byte(result[1]), &job); err != nil {
		logger.Errorf("bad email payload: %v", err)
		return
	}

	job.Tries++
	if err := m.sendNow(job); err != nil {
		logger.Errorf("email to %s failed (attempt %d): %v", job.To, job.Tries, err)

		if job.Tries < maxTries {
			data, _ := json.Marshal(job)
			m.redis.LPush(context.Background(), mailQueueKey, data)
		} else {
			m.saveFailed(job, err)
		}
		return
	}

	logger.Infof("email sent to %s", job.To)
}

func (m *Mailer) sendNow(job mailJob) error {
	msg := fmt.Sprintf("From: %s <%s>\r\n", m.fromName, m.from)
	msg += fmt.Sprintf("To: %s\r\n", job.To)
	msg += fmt.Sprintf("Subject: %s\r\n", job.Subject)
	msg += "\r\n" + job.Body

	var auth smtp.Auth
	if m.smtpUser != "" && m.smtpPass != "" {
		auth = smtp.PlainAuth("", m.smtpUser, m.smtpPass, m.smtpHost)
	}

	addr := m.smtpHost + ":" + m.smtpPort
	return smtp.SendMail(addr, auth, m.from, []string{job.To}, []byte(msg))
}

func (m *Mailer) saveFailed(job mailJob, cause error) {
	failed := map[string]any{
		"job":   job,
		"error": cause.Error(),
		"time":  time.Now(),
	}
	data, _ := json.Marshal(failed)
	m.redis.LPush(context.Background(), mailFailedKey, data)
	logger.Errorf("email to %s moved to failed queue", job.To)
}

func (m *Mailer) Close() error {
	return m.redis.Close()
}

var _ Sender = (*Mailer)(nil)
