package client

import (
	"context"
	"errors"
	"fmt"
	"storefront-checkout/internal/config"
	"sync"
	"time"

	"gopkg.in/gomail.v2"
)

var ErrMailerClosed = errors.New("mailer closed")

type MailClient interface {
	Send(ctx context.Context, to, subject, text string) error
	Close() error
}

type smtpDialer interface {
	Dial() (gomail.SendCloser, error)
}

type idleConn struct {
	conn  gomail.SendCloser
	since time.Time
}

// smtpMailClient keeps up to poolSize SMTP sessions open and hands one out per send.
// A session that failed is closed instead of going back to the pool.
type smtpMailClient struct {
	dialer      smtpDialer
	from        string
	idleTimeout time.Duration

	slots chan struct{}
	idle  chan idleConn

	mu     sync.Mutex
	closed bool
}

func NewSMTPMailClient(smtpCfg *config.SMTP, from string) MailClient {
	dialer := gomail.NewDialer(smtpCfg.Host, smtpCfg.Port, smtpCfg.User, smtpCfg.Pass)
	return newSMTPMailClient(dialer, from, smtpCfg.PoolSize, smtpCfg.IdleTimeout)
}

func newSMTPMailClient(dialer smtpDialer, from string, poolSize int, idleTimeout time.Duration) *smtpMailClient {
	if poolSize < 1 {
		poolSize = 1
	}
	return &smtpMailClient{
		dialer:      dialer,
		from:        from,
		idleTimeout: idleTimeout,
		slots:       make(chan struct{}, poolSize),
		idle:        make(chan idleConn, poolSize),
	}
}

func (m *smtpMailClient) Send(ctx context.Context, to, subject, text string) error {
	conn, err := m.acquire(ctx)
	if err != nil {
		return err
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/plain", text)

	if err := gomail.Send(conn, msg); err != nil {
		m.release(conn, false)
		return fmt.Errorf("smtp send to %s: %w", to, err)
	}

	m.release(conn, true)
	return nil
}

func (m *smtpMailClient) acquire(ctx context.Context) (gomail.SendCloser, error) {
	if m.isClosed() {
		return nil, ErrMailerClosed
	}

	select {
	case m.slots <- struct{}{}:
	case <-ctx.Done():
		return nil, fmt.Errorf("wait for smtp connection: %w", ctx.Err())
	}

	if conn := m.takeIdle(); conn != nil {
		return conn, nil
	}

	conn, err := m.dialer.Dial()
	if err != nil {
		<-m.slots
		return nil, fmt.Errorf("smtp dial: %w", err)
	}
	return conn, nil
}

// takeIdle pops an idle session, dropping the ones idle for longer than idleTimeout.
func (m *smtpMailClient) takeIdle() gomail.SendCloser {
	for {
		select {
		case ic := <-m.idle:
			if m.idleTimeout > 0 && time.Since(ic.since) > m.idleTimeout {
				ic.conn.Close()
				continue
			}
			return ic.conn
		default:
			return nil
		}
	}
}

func (m *smtpMailClient) release(conn gomail.SendCloser, healthy bool) {
	defer func() { <-m.slots }()

	if !healthy {
		conn.Close()
		return
	}

	// Close drains idle under mu, so nothing is pooled once closed is set.
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		conn.Close()
		return
	}

	select {
	case m.idle <- idleConn{conn: conn, since: time.Now()}:
	default:
		conn.Close()
	}
}

func (m *smtpMailClient) isClosed() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.closed
}

// Close closes idle sessions. Sessions in use are closed when released.
func (m *smtpMailClient) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.closed = true

	var errs []error
	for {
		select {
		case ic := <-m.idle:
			if err := ic.conn.Close(); err != nil {
				errs = append(errs, err)
			}
		default:
			return errors.Join(errs...)
		}
	}
}
