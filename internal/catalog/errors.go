package catalog

import (
	"errors"
	"net/http"

	"github.com/acquisitions-lab/acquisitions/internal/core/storage"
)

var (
	// ErrNoUpdates is returned by UpdateProduct when the patch sets no field.
	ErrNoUpdates = errors.New("no updates supplied")

	// ErrNotReady matches every *NotReadyError via errors.Is.
	ErrNotReady = errors.New("catalog not ready")
)

const (
	hintBootstrapFailed = "Automatic catalog bootstrap failed. Check database connectivity and permissions, then retry."
	hintRunMigrations   = "Catalog table is missing. Run the database migrations or set SHOP_AUTO_BOOTSTRAP=true."
)

// NotReadyError reports that the catalog table is unusable, with an operator-facing hint.
type NotReadyError struct {
	Hint string
	Err  error
}

func (e *NotReadyError) Error() string {
	if e.Err == nil {
		return ErrNotReady.Error()
	}
	return ErrNotReady.Error() + ": " + e.Err.Error()
}

func (e *NotReadyError) Unwrap() error { return e.Err }

func (e *NotReadyError) Is(target error) bool { return target == ErrNotReady }

// StatusCode makes the error boundary answer 503.
func (e *NotReadyError) StatusCode() int { return http.StatusServiceUnavailable }

func notReady(autoBootstrap bool, err error) *NotReadyError {
	hint := hintRunMigrations
	if autoBootstrap {
		hint = hintBootstrapFailed
	}
	return &NotReadyError{Hint: hint, Err: err}
}

// classify turns a missing-table storage error into a *NotReadyError and passes
// everything else through untouched.
func classify(autoBootstrap bool, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, storage.ErrTableMissing) {
		return notReady(autoBootstrap, err)
	}
	return err
}
