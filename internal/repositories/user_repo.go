package repositories

import (
	"context"
	"database/sql"
	"time"

	"jobberBack/internal/models"
)

type UserRepository struct {
	DB *sql.DB
}

func (r *UserRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	now := time.Now()
	user.CreatedAt = now
	user.UpdatedAt = now
	if user.Role == "" {
		user.Role = "user"
	}

	query := `
		INSERT INTO users (name, phone, email, password, role, verified, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id
	`
	err := r.DB.QueryRowContext(ctx, query,
		user.Name, user.Phone, user.Email, user.Password, user.Role, user.Verified,
		user.CreatedAt, user.UpdatedAt,
	).Scan(&user.ID)
	if err != nil {
		return models.User{}, err
	}
	return user, nil
}

func (r *UserRepository) getUser(ctx context.Context, where string, arg interface{}) (models.User, error) {
	var user models.User
	var fcmToken sql.NullString

	query := `
		SELECT id, name, phone, email, password, role, verified, fcm_token, created_at, updated_at
		FROM users
		WHERE ` + where
	err := r.DB.QueryRowContext(ctx, query, arg).Scan(
		&user.ID, &user.Name, &user.Phone, &user.Email, &user.Password,
		&user.Role, &user.Verified, &fcmToken, &user.CreatedAt, &user.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return models.User{}, nil
		}
		return models.User{}, err
	}
	user.FCMToken = fcmToken.String
	return user, nil
}

func (r *UserRepository) GetUserByEmail(ctx context.Context, email string) (models.User, error) {
	return r.getUser(ctx, "email = $1", email)
}

func (r *UserRepository) GetUserByPhone(ctx context.Context, phone string) (models.User, error) {
	return r.getUser(ctx, "phone = $1", phone)
}

func (r *UserRepository) GetUserByID(ctx context.Context, id int) (models.User, error) {
	user, err := r.getUser(ctx, "id = $1", id)
	if err != nil {
		return models.User{}, err
	}
	if user.ID == 0 {
		return models.User{}, models.ErrUserNotFound
	}
	return user, nil
}

func (r *UserRepository) MarkUserVerified(ctx context.Context, id int) error {
	_, err := r.DB.ExecContext(ctx, `
		UPDATE users SET verified = TRUE, updated_at = $1 WHERE id = $2
	`, time.Now(), id)
	return err
}

func (r *UserRepository) SaveFCMToken(ctx context.Context, userID int, token string) error {
	_, err := r.DB.ExecContext(ctx, `
		UPDATE users SET fcm_token = $1, updated_at = $2 WHERE id = $3
	`, token, time.Now(), userID)
	return err
}

func (r *UserRepository) SaveSession(ctx context.Context, session models.Session) error {
	query := `
		INSERT INTO sessions (user_id, role, refresh_token, expires_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (user_id) DO UPDATE SET role = $2, refresh_token = $3, expires_at = $4
	`
	_, err := r.DB.ExecContext(ctx, query, session.UserID, session.Role, session.RefreshToken, session.ExpiresAt)
	return err
}

func (r *UserRepository) GetSessionByToken(ctx context.Context, refreshToken string) (models.Session, error) {
	var session models.Session

	query := `
		SELECT user_id, role, refresh_token, expires_at
		FROM sessions
		WHERE refresh_token = $1
	`
	err := r.DB.QueryRowContext(ctx, query, refreshToken).Scan(
		&session.UserID, &session.Role, &session.RefreshToken, &session.ExpiresAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return models.Session{}, nil
		}
		return models.Session{}, err
	}
	return session, nil
}
