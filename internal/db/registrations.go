package db

import (
	"errors"
	"fmt"

	"github.com/minaret-dev/minaret/internal/model"
	"github.com/rs/zerolog/log"
)

func CreateRegistration(reference, mosqueName, address, city string, contact *string, submitterEmail string) (model.RegistrationRequest, error) {
	var r model.RegistrationRequest
	const q = `
	INSERT INTO registration_requests
	  (reference, mosque_name, address, city, contact, submitter_email, status, created_at, updated_at)
	VALUES
	  ($1, $2, $3, $4, $5, $6, 'pending', now(), now())
	RETURNING id, reference, mosque_name, address, city, contact, submitter_email,
	          status, note, reviewed_by, mosque_id, created_at, updated_at;`
	if err := DB.Get(&r, q, reference, mosqueName, address, city, contact, submitterEmail); err != nil {
		log.Error().Err(err).Msg("CreateRegistration failed")
		return model.RegistrationRequest{}, err
	}
	return r, nil
}

func GetRegistrationByReference(reference string) (model.RegistrationRequest, error) {
	var r model.RegistrationRequest
	err := DB.Get(&r, `
	SELECT id, reference, mosque_name, address, city, contact, submitter_email,
	       status, note, reviewed_by, mosque_id, created_at, updated_at
	  FROM registration_requests
	 WHERE reference = $1;`, reference)
	return r, err
}

func GetRegistrationByID(id int) (model.RegistrationRequest, error) {
	var r model.RegistrationRequest
	err := DB.Get(&r, `
	SELECT id, reference, mosque_name, address, city, contact, submitter_email,
	       status, note, reviewed_by, mosque_id, created_at, updated_at
	  FROM registration_requests
	 WHERE id = $1;`, id)
	return r, err
}

func ListPendingRegistrations() ([]model.RegistrationRequest, error) {
	var out []model.RegistrationRequest
	const q = `
	SELECT id, reference, mosque_name, address, city, contact, submitter_email,
	       status, note, reviewed_by, mosque_id, created_at, updated_at
	  FROM registration_requests
	 WHERE status = 'pending'
	 ORDER BY id;`
	if err := DB.Select(&out, q); err != nil {
		log.Error().Err(err).Msg("ListPendingRegistrations failed")
		return nil, err
	}
	return out, nil
}

// ApproveRegistration creates the mosque row and marks the request approved
// in one transaction, so a crash can't leave an approved request without its
// mosque.
func ApproveRegistration(id, reviewerID int, note *string) (model.RegistrationRequest, error) {
	req, err := GetRegistrationByID(id)
	if err != nil {
		return model.RegistrationRequest{}, err
	}
	if req.Status != model.RegistrationPending {
		return model.RegistrationRequest{}, fmt.Errorf("registration %d already %s", id, req.Status)
	}

	tx, err := DB.Beginx()
	if err != nil {
		return model.RegistrationRequest{}, err
	}
	defer func() { _ = tx.Rollback() }()

	var mosqueID int
	err = tx.QueryRow(`
	INSERT INTO mosques (name, address, city, contact, approved, created_by, created_at, updated_at)
	VALUES ($1, $2, $3, $4, true, $5, now(), now())
	RETURNING id;`, req.MosqueName, req.Address, req.City, req.Contact, reviewerID).Scan(&mosqueID)
	if err != nil {
		log.Error().Err(err).Int("registration_id", id).Msg("ApproveRegistration mosque insert failed")
		return model.RegistrationRequest{}, err
	}

	var updated model.RegistrationRequest
	err = tx.QueryRowx(`
	UPDATE registration_requests
	   SET status = 'approved', note = $2, reviewed_by = $3, mosque_id = $4, updated_at = now()
	 WHERE id = $1
	RETURNING id, reference, mosque_name, address, city, contact, submitter_email,
	          status, note, reviewed_by, mosque_id, created_at, updated_at;`,
		id, note, reviewerID, mosqueID).StructScan(&updated)
	if err != nil {
		log.Error().Err(err).Int("registration_id", id).Msg("ApproveRegistration update failed")
		return model.RegistrationRequest{}, err
	}

	if err := tx.Commit(); err != nil {
		return model.RegistrationRequest{}, err
	}
	return updated, nil
}

func RejectRegistration(id, reviewerID int, note *string) (model.RegistrationRequest, error) {
	var updated model.RegistrationRequest
	err := DB.QueryRowx(`
	UPDATE registration_requests
	   SET status = 'rejected', note = $2, reviewed_by = $3, updated_at = now()
	 WHERE id = $1 AND status = 'pending'
	RETURNING id, reference, mosque_name, address, city, contact, submitter_email,
	          status, note, reviewed_by, mosque_id, created_at, updated_at;`,
		id, note, reviewerID).StructScan(&updated)
	if err != nil {
		log.Error().Err(err).Int("registration_id", id).Msg("RejectRegistration failed")
		return model.RegistrationRequest{}, errors.New("registration not found or already reviewed")
	}
	return updated, nil
}
