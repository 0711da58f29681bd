package event

import (
	"rolegate/common"
	"rolegate/session"

	"github.com/fundwit/go-commons/types"
	"github.com/jinzhu/gorm"
	"github.com/sony/sonyflake"
)

var auditIdWorker = sonyflake.NewSonyflake(sonyflake.Settings{})

func CreateAuditEvent(sourceType, sourceKey, sourceDesc string, category AuditCategory,
	updatedProperties []UpdatedProperty, identity *session.Identity, db *gorm.DB) error {

	record := AuditRecord{
		ID: common.NextId(auditIdWorker),
		AuditEvent: AuditEvent{
			SourceType: sourceType,
			SourceKey:  sourceKey,
			SourceDesc: sourceDesc,

			AuditCategory:     category,
			UpdatedProperties: updatedProperties,

			OperatorId:   identity.ID,
			OperatorName: identity.Name,
		},
		Timestamp: types.CurrentTimestamp(),
	}
	return AuditPersistCreateFunc(&record, db)
}
