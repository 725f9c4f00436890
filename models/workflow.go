package models

import (
	"time"

	"github.com/google/uuid"
)

// ExecutionStatus is the outcome reported by a workflow execution
type ExecutionStatus string

const (
	ExecutionStatusNotValid  ExecutionStatus = "NotValid"
	ExecutionStatusFailed    ExecutionStatus = "Failed"
	ExecutionStatusCompleted ExecutionStatus = "Completed"
	ExecutionStatusCancelled ExecutionStatus = "Cancelled"
)

// ExecutionStage is the record state a workflow is attached to
type ExecutionStage string

const (
	ExecutionStageSubmitted ExecutionStage = "Submitted"
	ExecutionStageApproved  ExecutionStage = "Approved"
	ExecutionStageRejected  ExecutionStage = "Rejected"
)

// Workflow is a configured workflow instance attached to a form
type Workflow struct {
	ID                   uuid.UUID         `json:"id" db:"id"`
	Name                 string            `json:"name" db:"name"`
	FormID               uuid.UUID         `json:"form_id" db:"form_id"`
	WorkflowTypeID       uuid.UUID         `json:"workflow_type_id" db:"workflow_type_id"`
	Active               bool              `json:"active" db:"active"`
	ExecutesOn           ExecutionStage    `json:"executes_on" db:"executes_on"`
	SortOrder            int               `json:"sort_order" db:"sort_order"`
	IncludeSensitiveData bool              `json:"include_sensitive_data" db:"include_sensitive_data"`
	Settings             map[string]string `json:"settings"`
}

// SettingDescriptor describes one configurable setting of a workflow type
type SettingDescriptor struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	View        string `json:"view"`
}

// WorkflowType describes an installed workflow implementation
type WorkflowType struct {
	ID          uuid.UUID           `json:"id"`
	Name        string              `json:"name"`
	Description string              `json:"description"`
	Icon        string              `json:"icon,omitempty"`
	Group       string              `json:"group,omitempty"`
	Settings    []SettingDescriptor `json:"settings"`
}

// RecordWorkflowAudit is the audit trail row proving a workflow ran for a record
type RecordWorkflowAudit struct {
	ID               int64           `json:"id" db:"id"`
	RecordUniqueID   uuid.UUID       `json:"record_unique_id" db:"record_unique_id"`
	WorkflowKey      uuid.UUID       `json:"workflow_key" db:"workflow_key"`
	WorkflowName     string          `json:"workflow_name" db:"workflow_name"`
	WorkflowTypeID   uuid.UUID       `json:"workflow_type_id" db:"workflow_type_id"`
	WorkflowTypeName string          `json:"workflow_type_name" db:"workflow_type_name"`
	ExecutedOn       time.Time       `json:"executed_on" db:"executed_on"`
	ExecutionStage   ExecutionStage  `json:"execution_stage" db:"execution_stage"`
	ExecutionStatus  ExecutionStatus `json:"execution_status" db:"execution_status"`
}
