package event

import (
	"context"
	"os"
	"rolegate/persistence"
	"strconv"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"
)

const defaultAuditRetainDays = 90

var auditPurgeLimiter = rate.NewLimiter(rate.Every(1*time.Hour), 1)

func AuditRetention() time.Duration {
	days, err := strconv.Atoi(os.Getenv("AUDIT_RETAIN_DAYS"))
	if err != nil || days <= 0 {
		days = defaultAuditRetainDays
	}
	return time.Duration(days) * 24 * time.Hour
}

// StartAuditPurgeRunner keeps the audit table bounded to the configured retention.
func StartAuditPurgeRunner() {
	go func() {
		for {
			if err := auditPurgeLimiter.Wait(context.Background()); err != nil {
				logrus.Errorf("audit purge runner stopped: %v", err)
				return
			}
			if err := purgeExpiredAuditRecords(AuditRetention()); err != nil {
				logrus.Errorf("audit purge failed: %v", err)
			}
		}
	}()
}

func purgeExpiredAuditRecords(retention time.Duration) error {
	db := persistence.ActiveDataSourceManager.GormDB()
	deadline := time.Now().Add(-retention)
	return db.Delete(AuditRecord{}, "timestamp < ?", deadline).Error
}
