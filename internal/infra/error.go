package infra

import (
	"storefront-sim/internal/pkg/errs"

	cr "github.com/cockroachdb/errors"
)

type RepositoryErrorKind string

type RepositoryError struct {
	Kind RepositoryErrorKind
	msg  string
	err  error // wrapped low-level error
}

func (e RepositoryError) Error() string {
	if e.err != nil {
		return string(e.Kind) + ": " + e.msg + ": " + e.err.Error()
	}
	return string(e.Kind) + ": " + e.msg
}

func (e RepositoryError) Unwrap() error {
	return e.err
}

// WrapRepoErr keeps err reachable through errors.Is so usecase sentinels survive.
func WrapRepoErr(msg string, err error, kind RepositoryErrorKind) error {
	if err != nil {
		err = errs.Wrap(err, msg)
	}
	return RepositoryError{Kind: kind, msg: msg, err: err}
}

func IsKind(err error, kind RepositoryErrorKind) bool {
	var e RepositoryError
	if cr.As(err, &e) {
		return e.Kind == kind
	}
	return false
}

// Infrastructure-specific error kinds
const (
	KindNotFound     RepositoryErrorKind = "NOT_FOUND"
	KindDuplicateKey RepositoryErrorKind = "DUPLICATE_KEY"
	KindInvalidInput RepositoryErrorKind = "INVALID_INPUT"
)
