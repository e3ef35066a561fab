package iauditrepo

import (
	"context"

	"github.com/feastline/storefront/internal/service/models/auditlog"
)

// IAuditRepository is an interface for the order audit log repository.
type IAuditRepository interface {
	Insert(ctx context.Context, entry auditlog.Entry) error
}
