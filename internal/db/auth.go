package db

import (
	"database/sql"
	"errors"

	"github.com/rs/zerolog/log"

	"github.com/minaret-dev/minaret/internal/model"
)

// CreateUser inserts a mosque administrator account and returns its ID.
func CreateUser(email, hashedPassword string, name *string) (int, error) {
	const q = `
	INSERT INTO users (email, hashed_password, name, created_at, updated_at)
	VALUES ($1, $2, $3, now(), now())
	RETURNING id;`
	var newID int
	if err := DB.QueryRow(q, email, hashedPassword, name).Scan(&newID); err != nil {
		log.Error().Err(err).Str("email", email).Msg("CreateUser failed")
		return 0, err
	}
	return newID, nil
}

// GetUserByEmail returns sql.ErrNoRows when no account matches, which the
// login handler maps to a 401 rather than a server error.
func GetUserByEmail(email string) (*model.User, error) {
	var u model.User
	const q = `
	SELECT id, email, hashed_password, name, created_at, updated_at
	  FROM users
	 WHERE email = $1;`
	if err := DB.Get(&u, q, email); err != nil {
		if !errors.Is(err, sql.ErrNoRows) {
			log.Error().Err(err).Str("email", email).Msg("GetUserByEmail failed")
		}
		return nil, err
	}
	return &u, nil
}

func GetUserByID(id int) (*model.User, error) {
	var u model.User
	const q = `
	SELECT id, email, hashed_password, name, created_at, updated_at
	  FROM users
	 WHERE id = $1;`
	if err := DB.Get(&u, q, id); err != nil {
		if !errors.Is(err, sql.ErrNoRows) {
			log.Error().Err(err).Int("user_id", id).Msg("GetUserByID failed")
		}
		return nil, err
	}
	return &u, nil
}

// UpdateUserProfile changes the account email and name and bumps updated_at.
func UpdateUserProfile(id int, email string, name *string) error {
	const q = `
	UPDATE users
	   SET email = $2, name = $3, updated_at = now()
	 WHERE id = $1;`
	res, err := DB.Exec(q, id, email, name)
	if err != nil {
		log.Error().Err(err).Int("user_id", id).Msg("UpdateUserProfile failed")
		return err
	}
	rows, err := res.RowsAffected()
	if err != nil {
		log.Error().Err(err).Int("user_id", id).Msg("UpdateUserProfile rows affected failed")
		return err
	}
	if rows == 0 {
		return errors.New("no such user")
	}
	return nil
}
