package service

import (
	"context"

	"urbancare-clinic-api/internal/domain/entity"
	"urbancare-clinic-api/internal/domain/repository"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// AuditService records admin mutations as an audit trail. Failures are
// logged and swallowed so a broken trail never blocks the mutation itself.
type AuditService interface {
	Record(ctx context.Context, action string, entityName string, entityID string, metadata entity.JSON)
}

type auditService struct {
	db        *gorm.DB
	log       *logrus.Logger
	auditRepo repository.AuditLogRepository
}

func NewAuditService(db *gorm.DB, log *logrus.Logger, auditRepo repository.AuditLogRepository) AuditService {
	return &auditService{
		db:        db,
		log:       log,
		auditRepo: auditRepo,
	}
}

func (s *auditService) Record(ctx context.Context, action string, entityName string, entityID string, metadata entity.JSON) {
	if metadata == nil {
		metadata = entity.JSON{}
	}
	metadata["entity"] = entityName
	metadata["entity_id"] = entityID

	auditLog := &entity.AuditLog{
		Action:   action,
		Metadata: metadata,
	}

	if err := s.auditRepo.Create(s.db.WithContext(ctx), auditLog); err != nil {
		s.log.Warnf("Failed to create audit log for %s %s: %+v", action, entityID, err)
	}
}
