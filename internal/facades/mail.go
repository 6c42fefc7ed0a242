package facades

import (
	"context"
	"fmt"
	"html/template"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/sbilibin2017/gw-contacts/internal/config"
	"github.com/sbilibin2017/gw-contacts/internal/logger"
	"github.com/sbilibin2017/gw-contacts/internal/models"
	"github.com/sony/gobreaker/v2"
	"github.com/wneessen/go-mail"
)

// VerificationSubject is the subject line of confirmation emails.
const VerificationSubject = "Confirm your email"

var verificationTemplate = template.Must(template.New("verification").Parse(`<!DOCTYPE html>
<html>
<body>
<p>Hi {{.Username}},</p>
<p>Thanks for signing up. Please confirm your email address by following the link below.</p>
<p><a href="{{.Link}}">Confirm email</a></p>
</body>
</html>
`))

// ErrCircuitOpen is returned while the SMTP breaker rejects deliveries.
var ErrCircuitOpen = gobreaker.ErrOpenState

var mailBreakerState = prometheus.NewGaugeVec(
	prometheus.GaugeOpts{
		Name: "circuit_breaker_state",
		Help: "Current state of the circuit breaker (0=closed, 1=half-open, 2=open)",
	},
	[]string{"name"},
)

func init() {
	prometheus.MustRegister(mailBreakerState)
}

// stateToFloat maps gobreaker states to prometheus gauge values.
func stateToFloat(state gobreaker.State) float64 {
	switch state {
	case gobreaker.StateClosed:
		return 0
	case gobreaker.StateHalfOpen:
		return 1
	case gobreaker.StateOpen:
		return 2
	default:
		return -1
	}
}

// MailDialer delivers prepared messages over SMTP.
type MailDialer interface {
	DialAndSendWithContext(ctx context.Context, messages ...*mail.Msg) error
}

// CircuitBreakerConfig holds configuration for the circuit breaker.
type CircuitBreakerConfig struct {
	Name         string
	MaxRequests  uint32        // requests allowed while half-open
	Interval     time.Duration // closed-state counter reset period
	Timeout      time.Duration // open-state duration before half-open
	FailureRatio float64
	MinRequests  uint32
}

// DefaultCircuitBreakerConfig returns the breaker settings used for SMTP.
func DefaultCircuitBreakerConfig(name string) CircuitBreakerConfig {
	return CircuitBreakerConfig{
		Name:         name,
		MaxRequests:  1,
		Interval:     60 * time.Second,
		Timeout:      30 * time.Second,
		FailureRatio: 0.5,
		MinRequests:  5,
	}
}

// MailSMTPFacade renders verification emails and sends them through a
// circuit breaker so a dead SMTP server fails fast.
type MailSMTPFacade struct {
	dialer   MailDialer
	from     string
	fromName string
	breaker  *gobreaker.CircuitBreaker[struct{}]
}

// NewMailSMTPFacade creates a new facade over an SMTP dialer.
func NewMailSMTPFacade(dialer MailDialer, from, fromName string, cbCfg CircuitBreakerConfig) *MailSMTPFacade {
	settings := gobreaker.Settings{
		Name:        cbCfg.Name,
		MaxRequests: cbCfg.MaxRequests,
		Interval:    cbCfg.Interval,
		Timeout:     cbCfg.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			if counts.Requests < cbCfg.MinRequests {
				return false
			}
			failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
			return failureRatio >= cbCfg.FailureRatio
		},
		OnStateChange: func(name string, from gobreaker.State, to gobreaker.State) {
			logger.Log.Warnw("circuit breaker state change",
				"breaker", name,
				"from", from.String(),
				"to", to.String(),
			)
			mailBreakerState.WithLabelValues(name).Set(stateToFloat(to))
		},
	}

	mailBreakerState.WithLabelValues(cbCfg.Name).Set(0)

	return &MailSMTPFacade{
		dialer:   dialer,
		from:     from,
		fromName: fromName,
		breaker:  gobreaker.NewCircuitBreaker[struct{}](settings),
	}
}

// Send delivers a verification email.
func (f *MailSMTPFacade) Send(ctx context.Context, email models.VerificationEmail) error {
	msg, err := f.buildMessage(email)
	if err != nil {
		return err
	}

	_, err = f.breaker.Execute(func() (struct{}, error) {
		return struct{}{}, f.dialer.DialAndSendWithContext(ctx, msg)
	})
	if err != nil {
		logger.Log.Errorw("failed to send verification email", "email", email.Email, "error", err)
		return err
	}

	logger.Log.Infow("verification email sent", "email", email.Email)
	return nil
}

// State returns the current state of the circuit breaker.
func (f *MailSMTPFacade) State() gobreaker.State {
	return f.breaker.State()
}

func (f *MailSMTPFacade) buildMessage(email models.VerificationEmail) (*mail.Msg, error) {
	msg := mail.NewMsg()
	if err := msg.FromFormat(f.fromName, f.from); err != nil {
		return nil, fmt.Errorf("invalid sender %q: %w", f.from, err)
	}
	if err := msg.To(email.Email); err != nil {
		return nil, fmt.Errorf("invalid recipient %q: %w", email.Email, err)
	}
	msg.Subject(VerificationSubject)
	if err := msg.SetBodyHTMLTemplate(verificationTemplate, email); err != nil {
		return nil, fmt.Errorf("render verification email: %w", err)
	}
	return msg, nil
}

// NewSMTPClient builds an SMTP client from config.
func NewSMTPClient(cfg config.Mail) (*mail.Client, error) {
	opts := []mail.Option{
		mail.WithPort(cfg.Port),
		mail.WithTimeout(10 * time.Second),
	}
	if cfg.Username != "" {
		opts = append(opts,
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
			mail.WithUsername(cfg.Username),
			mail.WithPassword(cfg.Password),
		)
	}
	if cfg.SSL {
		opts = append(opts, mail.WithSSL())
	} else {
		opts = append(opts, mail.WithTLSPolicy(mail.TLSOpportunistic))
	}
	return mail.NewClient(cfg.Server, opts...)
}
