package event

import "github.com/jinzhu/gorm"

var (
	AuditPersistCreateFunc = auditPersistCreate
)

func auditPersistCreate(record *AuditRecord, db *gorm.DB) error {
	return db.Create(record).Error
}
