package store

import (
	"context"
	"errors"

	"github.com/mrrinformatica/inventario/internal/inventario/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")

	// ErrUnavailable wraps connection-level failures (closed handle, busy
	// database, unreachable file) so the transport can answer 503 instead
	// of a generic 500.
	ErrUnavailable = errors.New("store: unavailable")
)

// Store is the root data access interface. Concrete drivers (sqlite today)
// implement this. Sub-repositories keep concerns tidy and testable, and make
// it hard to accidentally open transactions within transactions.
type Store interface {
	Users() Users
	Equipment() Equipment
	Licenses() Licenses
	Tickets() Tickets
	Audit() Audit
	Settings() Settings

	ApplyMigrations() error

	// Tx starts a read/write transaction and returns a Tx-scoped Store.
	// The caller MUST call Commit() or Rollback() on the returned Tx.
	Tx(ctx context.Context) (Tx, error)

	// WithTx executes fn within a transaction: rollback on error, commit on
	// nil. This is the recommended way to handle multi-step writes.
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	// Close releases any underlying resources.
	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

// Tx is a transactional store. It embeds the same repos but adds Commit/Rollback.
type Tx interface {
	Store
	Commit() error
	Rollback() error
}

type Users interface {
	// GetUserByID returns a user by id, credential fields included.
	GetUserByID(ctx context.Context, id int64) (domain.User, error)

	// GetUserByUsername is used during password login.
	GetUserByUsername(ctx context.Context, username string) (domain.User, error)

	// ListUsers returns all users ordered by id.
	ListUsers(ctx context.Context) ([]domain.User, error)

	// CreateUser inserts a new user and returns the assigned row id.
	CreateUser(ctx context.Context, u domain.User) (int64, error)

	// UpdateUser mutates real name, email, role and avatar. Username stays
	// immutable.
	UpdateUser(ctx context.Context, u domain.User) error

	// UpdatePasswordHash sets the password_hash (bcrypt).
	UpdatePasswordHash(ctx context.Context, userID int64, newHash string) error

	// UpdateProfile sets the self-service profile fields only.
	UpdateProfile(ctx context.Context, userID int64, realName, avatarURL string) error

	// UpdateLastLogin stamps last_login with the current time.
	UpdateLastLogin(ctx context.Context, userID int64) error

	DeleteUser(ctx context.Context, userID int64) error

	// IsEmpty returns true if there are no users.
	IsEmpty(ctx context.Context) (bool, error)

	// UpdateMFASecret stores a pending TOTP secret without enabling it.
	UpdateMFASecret(ctx context.Context, userID int64, secret string) error

	// EnableMFA flips the enabled flag; the secret must already be stored.
	EnableMFA(ctx context.Context, userID int64) error

	// DisableMFA clears both the flag and the secret.
	DisableMFA(ctx context.Context, userID int64) error
}

type Equipment interface {
	GetEquipmentByID(ctx context.Context, id int64) (domain.Equipment, error)

	// ListEquipment returns all rows, newest first. When ownerName is
	// non-empty only rows assigned to or created by that user are returned.
	ListEquipment(ctx context.Context, ownerName string, ownerID int64) ([]domain.Equipment, error)

	CreateEquipment(ctx context.Context, e domain.Equipment) (int64, error)
	UpdateEquipment(ctx context.Context, e domain.Equipment) error
	DeleteEquipment(ctx context.Context, id int64) error

	// ListPendingEquipment returns rows awaiting approval, oldest first.
	ListPendingEquipment(ctx context.Context) ([]domain.Equipment, error)

	// SetApprovalStatus moves a row through the approval workflow. The
	// reason is stored on rejection and cleared on approval.
	SetApprovalStatus(ctx context.Context, id int64, status domain.ApprovalStatus, reason *string) error

	// AppendHistory records one field change for an equipment row.
	AppendHistory(ctx context.Context, h domain.EquipmentHistory) error

	// ListHistory returns the change log for a row, newest first.
	ListHistory(ctx context.Context, equipmentID int64) ([]domain.EquipmentHistory, error)
}

type Licenses interface {
	GetLicenseByID(ctx context.Context, id int64) (domain.License, error)

	// ListLicenses mirrors ListEquipment's owner filtering.
	ListLicenses(ctx context.Context, ownerName string, ownerID int64) ([]domain.License, error)

	CreateLicense(ctx context.Context, l domain.License) (int64, error)
	UpdateLicense(ctx context.Context, l domain.License) error
	DeleteLicense(ctx context.Context, id int64) error

	// ListPendingLicenses returns rows awaiting approval, oldest first.
	ListPendingLicenses(ctx context.Context) ([]domain.License, error)

	// SetApprovalStatus mirrors the equipment workflow.
	SetApprovalStatus(ctx context.Context, id int64, status domain.ApprovalStatus, reason *string) error

	// GetTotals returns purchased seat counts per product.
	GetTotals(ctx context.Context) (domain.LicenseTotals, error)

	// SetTotals replaces the full totals map.
	SetTotals(ctx context.Context, totals domain.LicenseTotals) error
}

type Tickets interface {
	GetTicketByID(ctx context.Context, id int64) (domain.Ticket, error)

	// ListTickets returns all tickets newest first; requesterID > 0 limits
	// the result to that requester's tickets.
	ListTickets(ctx context.Context, requesterID int64) ([]domain.Ticket, error)

	CreateTicket(ctx context.Context, t domain.Ticket) (int64, error)
	UpdateTicket(ctx context.Context, t domain.Ticket) error
	DeleteTicket(ctx context.Context, id int64) error
}

type Audit interface {
	// Append writes one audit entry. The timestamp is set by the store.
	Append(ctx context.Context, e domain.AuditEntry) error

	// List returns entries newest first, capped at limit (0 means all).
	List(ctx context.Context, limit int) ([]domain.AuditEntry, error)
}

type Settings interface {
	// Get returns the singleton settings row.
	Get(ctx context.Context) (domain.Settings, error)

	// Save replaces the singleton settings row.
	Save(ctx context.Context, s domain.Settings) error
}
