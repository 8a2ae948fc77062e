package app

import (
	"bytes"
	"sync"
	"testing"

	"github.com/giantswarm/wirecheck/internal/config"
)

// Audit and Ledger depend on each other.
type Audit struct{ ledger *Ledger }

type Ledger struct{ audit *Audit }

func NewAudit(l *Ledger) *Audit { return &Audit{ledger: l} }

func NewLedger(a *Audit) *Ledger { return &Ledger{audit: a} }

// syncBuffer collects log output written from server goroutines.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func testConfig(t *testing.T) (*Config, *syncBuffer) {
	t.Helper()

	wc := config.GetDefaultConfig()
	wc.Server.Host = "127.0.0.1"
	wc.Server.Port = 0

	var logs syncBuffer
	return &Config{
		ConfigPath:      t.TempDir(),
		LogOutput:       &logs,
		WirecheckConfig: &wc,
	}, &logs
}
