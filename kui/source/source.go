// Package source supplies the abstract character source the KUI matcher
// reads from (spec §6 inbound interface), plus two concrete
// implementations: a real raw-terminal reader and an in-memory channel
// source used by tests.
package source

import (
	"context"
	"time"

	"github.com/forslund/cgdb-kui/key"
)

// CharSource is the Go-idiomatic rendering of spec §6's read/data_ready
// pair. Read returns (0, nil) if no data arrives within timeout, and a
// non-nil error on source failure. DataReady is a non-blocking-beyond-
// timeout predicate used by Manager to decide whether to commit to a
// blocking Read.
type CharSource interface {
	Read(ctx context.Context, timeout time.Duration) (key.Token, error)
	DataReady(ctx context.Context, timeout time.Duration) bool
}
