package sqlite

import (
	"context"
	"database/sql"

	"github.com/mrrinformatica/inventario/internal/inventario/domain"
)

type usersRepo struct {
	db dbtx
}

const userColumns = `id, username, real_name, email, role, password_hash,
	mfa_enabled, mfa_secret, last_login, avatar_url, sso_provider,
	created_at, updated_at`

func scanUser(row interface{ Scan(...any) error }) (domain.User, error) {
	var (
		u           domain.User
		mfaSecret   sql.NullString
		lastLogin   sql.NullTime
		avatarURL   sql.NullString
		ssoProvider sql.NullString
	)
	err := row.Scan(
		&u.ID, &u.Username, &u.RealName, &u.Email, &u.Role, &u.PasswordHash,
		&u.MFAEnabled, &mfaSecret, &lastLogin, &avatarURL, &ssoProvider,
		&u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		return domain.User{}, err
	}
	u.MFASecret = mapNullStringPtr(mfaSecret)
	u.LastLogin = mapNullTimePtr(lastLogin)
	u.AvatarURL = mapNullStringPtr(avatarURL)
	u.SSOProvider = mapNullStringPtr(ssoProvider)
	return u, nil
}

func (r *usersRepo) GetUserByID(ctx context.Context, id int64) (domain.User, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE id = ?`, id)
	u, err := scanUser(row)
	if err != nil {
		return domain.User{}, mapNotFound(err)
	}
	return u, nil
}

func (r *usersRepo) GetUserByUsername(ctx context.Context, username string) (domain.User, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE username = ?`, username)
	u, err := scanUser(row)
	if err != nil {
		return domain.User{}, mapNotFound(err)
	}
	return u, nil
}

func (r *usersRepo) ListUsers(ctx context.Context) ([]domain.User, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+userColumns+` FROM users ORDER BY id`)
	if err != nil {
		return nil, mapUnavailable(err)
	}
	defer rows.Close()

	var users []domain.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, mapUnavailable(err)
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

func (r *usersRepo) CreateUser(ctx context.Context, u domain.User) (int64, error) {
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO users (username, real_name, email, role, password_hash, avatar_url, sso_provider)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		u.Username, u.RealName, u.Email, string(u.Role), u.PasswordHash,
		mapOptionalString(u.AvatarURL), mapOptionalString(u.SSOProvider),
	)
	if err != nil {
		return 0, mapAlreadyExists(err)
	}
	return res.LastInsertId()
}

func (r *usersRepo) UpdateUser(ctx context.Context, u domain.User) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE users SET real_name = ?, email = ?, role = ?, avatar_url = ?,
		 updated_at = CURRENT_TIMESTAMP WHERE id = ?`,
		u.RealName, u.Email, string(u.Role), mapOptionalString(u.AvatarURL), u.ID,
	)
	return mapUnavailable(err)
}

func (r *usersRepo) UpdatePasswordHash(ctx context.Context, userID int64, newHash string) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE users SET password_hash = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?`,
		newHash, userID,
	)
	return mapUnavailable(err)
}

func (r *usersRepo) UpdateProfile(ctx context.Context, userID int64, realName, avatarURL string) error {
	var avatar sql.NullString
	if avatarURL != "" {
		avatar = sql.NullString{String: avatarURL, Valid: true}
	}
	_, err := r.db.ExecContext(ctx,
		`UPDATE users SET real_name = ?, avatar_url = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?`,
		realName, avatar, userID,
	)
	return mapUnavailable(err)
}

func (r *usersRepo) UpdateLastLogin(ctx context.Context, userID int64) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE users SET last_login = CURRENT_TIMESTAMP WHERE id = ?`, userID)
	return mapUnavailable(err)
}

func (r *usersRepo) DeleteUser(ctx context.Context, userID int64) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM users WHERE id = ?`, userID)
	return mapUnavailable(err)
}

func (r *usersRepo) IsEmpty(ctx context.Context) (bool, error) {
	var count int64
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM users`).Scan(&count); err != nil {
		return false, mapUnavailable(err)
	}
	return count == 0, nil
}

func (r *usersRepo) UpdateMFASecret(ctx context.Context, userID int64, secret string) error {
	var ns sql.NullString
	if secret != "" {
		ns = sql.NullString{String: secret, Valid: true}
	}
	_, err := r.db.ExecContext(ctx,
		`UPDATE users SET mfa_secret = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?`,
		ns, userID,
	)
	return mapUnavailable(err)
}

func (r *usersRepo) EnableMFA(ctx context.Context, userID int64) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE users SET mfa_enabled = 1, updated_at = CURRENT_TIMESTAMP WHERE id = ?`,
		userID,
	)
	return mapUnavailable(err)
}

func (r *usersRepo) DisableMFA(ctx context.Context, userID int64) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE users SET mfa_enabled = 0, mfa_secret = NULL, updated_at = CURRENT_TIMESTAMP
		 WHERE id = ?`,
		userID,
	)
	return mapUnavailable(err)
}
