package domain

import "time"

// Audit action types.
type AuditAction string

const (
	AuditCreate         AuditAction = "CREATE"
	AuditUpdate         AuditAction = "UPDATE"
	AuditDelete         AuditAction = "DELETE"
	AuditLogin          AuditAction = "LOGIN"
	AuditLogout         AuditAction = "LOGOUT"
	Audit2FAEnable      AuditAction = "2FA_ENABLE"
	Audit2FADisable     AuditAction = "2FA_DISABLE"
	AuditSettingsUpdate AuditAction = "SETTINGS_UPDATE"
	AuditApprove        AuditAction = "APPROVE"
	AuditReject         AuditAction = "REJECT"
)

// Audit target types.
type AuditTarget string

const (
	TargetEquipment AuditTarget = "EQUIPMENT"
	TargetLicense   AuditTarget = "LICENSE"
	TargetUser      AuditTarget = "USER"
	TargetSettings  AuditTarget = "SETTINGS"
	TargetProduct   AuditTarget = "PRODUCT"
	TargetTotals    AuditTarget = "TOTALS"
	TargetTicket    AuditTarget = "TICKET"
)

// AuditEntry is one row of the append-only audit log.
type AuditEntry struct {
	ID         int64       `json:"id"`
	Username   string      `json:"username"`
	ActionType AuditAction `json:"action_type"`
	TargetType AuditTarget `json:"target_type"`
	TargetID   *string     `json:"target_id"`
	Details    string      `json:"details"`
	Timestamp  time.Time   `json:"timestamp"`
}
