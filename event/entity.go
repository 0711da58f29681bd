package event

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"

	"github.com/fundwit/go-commons/types"
)

const (
	AuditCategoryCreated         = "CREATED"
	AuditCategoryDeleted         = "DELETED"
	AuditCategoryPropertyUpdated = "PROPERTY_UPDATED"
)

const SourceTypeRole = "ROLE"

type AuditCategory string

type AuditEvent struct {
	SourceType string `json:"sourceType"`
	SourceKey  string `json:"sourceKey"`
	SourceDesc string `json:"sourceDesc"`

	OperatorId   types.ID `json:"operatorId"`
	OperatorName string   `json:"operatorName"`

	AuditCategory     AuditCategory     `json:"auditCategory"` // CREATED, DELETED, PROPERTY_UPDATED
	UpdatedProperties UpdatedProperties `json:"updatedProperties" sql:"type:TEXT"`
}

type AuditRecord struct {
	ID types.ID `json:"id" gorm:"primary_key"`

	AuditEvent

	Timestamp types.Timestamp `json:"timestamp" sql:"type:DATETIME(6)"`
}

func (r AuditRecord) TableName() string {
	return "audit_events"
}

type UpdatedProperty struct {
	PropertyName string `json:"propertyName"`

	OldValue string `json:"oldValue"`
	NewValue string `json:"newValue"`
}

type UpdatedProperties []UpdatedProperty

func (t UpdatedProperties) Value() (driver.Value, error) {
	jsonBytes, err := json.Marshal(&t)
	if err != nil {
		return nil, err
	}
	return string(jsonBytes), nil
}

func (c *UpdatedProperties) Scan(v interface{}) error {
	jsonString, ok := v.(string)
	if !ok {
		jsonByte, ok := v.([]byte)
		if !ok {
			return fmt.Errorf("type is neither string nor []byte: %T %v", v, v)
		}
		jsonString = string(jsonByte)
	}
	return json.Unmarshal([]byte(jsonString), c)
}
