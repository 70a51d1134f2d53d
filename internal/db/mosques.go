package db

import (
	"database/sql"
	"errors"

	"github.com/minaret-dev/minaret/internal/model"
	"github.com/rs/zerolog/log"
)

func CreateMosque(name, address, city string, contact *string, approved bool, createdBy int) (model.Mosque, error) {
	var m model.Mosque
	const q = `
	INSERT INTO mosques (name, address, city, contact, approved, created_by, created_at, updated_at)
	VALUES ($1, $2, $3, $4, $5, $6, now(), now())
	RETURNING id, name, address, city, contact, approved, created_by, created_at, updated_at;`
	if err := DB.Get(&m, q, name, address, city, contact, approved, createdBy); err != nil {
		log.Error().Err(err).Msg("CreateMosque failed")
		return model.Mosque{}, err
	}
	return m, nil
}

func GetMosqueByID(mosqueID int) (model.Mosque, error) {
	var m model.Mosque
	err := DB.Get(&m, `
	SELECT id, name, address, city, contact, approved, created_by, created_at, updated_at
	  FROM mosques
	 WHERE id = $1;`, mosqueID)
	if err != nil {
		if !errors.Is(err, sql.ErrNoRows) {
			log.Error().Err(err).Int("mosque_id", mosqueID).Msg("GetMosqueByID failed")
		}
	}
	return m, err
}

// ListMosques returns one page of approved mosques plus the total count for
// pagination. city filters exactly (case-insensitive), search matches name
// or address substrings.
func ListMosques(city, search string, limit, offset int) ([]model.Mosque, int, error) {
	const q = `
	SELECT id, name, address, city, contact, approved, created_by, created_at, updated_at
	  FROM mosques
	 WHERE approved = true
	   AND ($1 = '' OR lower(city) = lower($1))
	   AND ($2 = '' OR name ILIKE '%' || $2 || '%' OR address ILIKE '%' || $2 || '%')
	 ORDER BY city, name
	 LIMIT $3 OFFSET $4;`
	var out []model.Mosque
	if err := DB.Select(&out, q, city, search, limit, offset); err != nil {
		log.Error().Err(err).Msg("ListMosques failed")
		return nil, 0, err
	}

	const countQ = `
	SELECT count(*)
	  FROM mosques
	 WHERE approved = true
	   AND ($1 = '' OR lower(city) = lower($1))
	   AND ($2 = '' OR name ILIKE '%' || $2 || '%' OR address ILIKE '%' || $2 || '%');`
	var total int
	if err := DB.Get(&total, countQ, city, search); err != nil {
		log.Error().Err(err).Msg("ListMosques count failed")
		return nil, 0, err
	}
	return out, total, nil
}

func ListMosquesByOwner(ownerID int) ([]model.Mosque, error) {
	var out []model.Mosque
	const q = `
	SELECT id, name, address, city, contact, approved, created_by, created_at, updated_at
	  FROM mosques
	 WHERE created_by = $1
	 ORDER BY id;`
	if err := DB.Select(&out, q, ownerID); err != nil {
		log.Error().Err(err).Msg("ListMosquesByOwner failed")
		return nil, err
	}
	return out, nil
}

func UpdateMosque(mosqueID int, name, address, city string, contact *string) error {
	_, err := DB.Exec(`
	UPDATE mosques
	   SET name = $2, address = $3, city = $4, contact = $5, updated_at = now()
	 WHERE id = $1;`, mosqueID, name, address, city, contact)
	if err != nil {
		log.Error().Err(err).Int("mosque_id", mosqueID).Msg("UpdateMosque failed")
	}
	return err
}

func DeleteMosque(mosqueID int) error {
	_, err := DB.Exec(`DELETE FROM mosques WHERE id = $1;`, mosqueID)
	if err != nil {
		log.Error().Err(err).Int("mosque_id", mosqueID).Msg("DeleteMosque failed")
	}
	return err
}
