package automaxprocs

import (
	"fmt"
	"runtime"

	"github.com/cockroachdb/errors"
	"github.com/hubtoken/rwa-ledger/pkg/logger"
	"github.com/hubtoken/rwa-ledger/pkg/logger/slogx"
	"go.uber.org/automaxprocs/maxprocs"
)

// Init sets GOMAXPROCS to match the Linux container CPU quota (if any).
// It is a no-op on non-Linux systems and in environments without a quota.
func Init() error {
	log := logger.With(
		slogx.String("package", "automaxprocs"),
		slogx.Int("prev_maxprocs", runtime.GOMAXPROCS(0)),
	)

	_, err := maxprocs.Set(maxprocs.Logger(func(format string, v ...any) {
		log.Info(fmt.Sprintf(format, v...))
	}), maxprocs.Min(1))
	if err != nil {
		return errors.WithStack(err)
	}
	return nil
}
