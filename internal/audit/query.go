package audit

import (
	"context"
	"time"

	"github.com/BruksfildServices01/office-scheduler/internal/models"
)

// Filter narrows an audit log listing. Zero values are ignored; the tenant
// is always applied.
type Filter struct {
	TenantID uint
	Action   string
	Entity   string
	From     *time.Time
	// To is inclusive of the whole day.
	To    *time.Time
	Page  int
	Limit int
}

const (
	defaultLimit = 50
	maxLimit     = 200
)

func (f Filter) normalized() Filter {
	if f.Page <= 0 {
		f.Page = 1
	}
	if f.Limit <= 0 || f.Limit > maxLimit {
		f.Limit = defaultLimit
	}
	return f
}

// List returns one page of the tenant's audit trail, newest first, and the
// total number of matching rows.
func (l *Logger) List(ctx context.Context, f Filter) ([]models.AuditLog, int64, Filter, error) {
	f = f.normalized()

	q := l.db.WithContext(ctx).
		Model(&models.AuditLog{}).
		Where("tenant_id = ?", f.TenantID)

	if f.Action != "" {
		q = q.Where("action = ?", f.Action)
	}
	if f.Entity != "" {
		q = q.Where("entity = ?", f.Entity)
	}
	if f.From != nil {
		q = q.Where("created_at >= ?", *f.From)
	}
	if f.To != nil {
		q = q.Where("created_at < ?", f.To.Add(24*time.Hour))
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, f, err
	}

	var logs []models.AuditLog
	if err := q.
		Order("created_at DESC, id DESC").
		Limit(f.Limit).
		Offset((f.Page - 1) * f.Limit).
		Find(&logs).Error; err != nil {
		return nil, 0, f, err
	}

	return logs, total, f, nil
}
