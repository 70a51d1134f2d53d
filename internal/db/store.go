// exposes a Store interface that is passed to API calls w/ param requirements
package db

import (
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/minaret-dev/minaret/internal/model"
)

type Store interface {
	// user functions
	CreateUser(email, hashedPassword string, name *string) (int, error)
	GetUserByEmail(email string) (*model.User, error)
	GetUserByID(id int) (*model.User, error)
	UpdateUserProfile(id int, email string, name *string) error

	// mosque functions
	CreateMosque(name, address, city string, contact *string, approved bool, createdBy int) (model.Mosque, error)
	GetMosqueByID(id int) (model.Mosque, error)
	ListMosques(city, search string, limit, offset int) ([]model.Mosque, int, error)
	ListMosquesByOwner(ownerID int) ([]model.Mosque, error)
	UpdateMosque(id int, name, address, city string, contact *string) error
	DeleteMosque(id int) error

	// prayer time functions
	UpsertPrayerTimes(mosqueID int, day time.Time, in PrayerTimesInput) (model.MosquePrayerTimes, error)
	GetPrayerTimes(mosqueID int, day time.Time) (model.MosquePrayerTimes, error)

	// registration workflow functions
	CreateRegistration(reference, mosqueName, address, city string, contact *string, submitterEmail string) (model.RegistrationRequest, error)
	GetRegistrationByReference(reference string) (model.RegistrationRequest, error)
	ListPendingRegistrations() ([]model.RegistrationRequest, error)
	ApproveRegistration(id, reviewerID int, note *string) (model.RegistrationRequest, error)
	RejectRegistration(id, reviewerID int, note *string) (model.RegistrationRequest, error)
}

type pgStore struct {
	db *sqlx.DB
}

// compile-time check that pgStore implements Store
// required so linter doesn't complain
var _ Store = (*pgStore)(nil)

func NewStore() Store {
	return &pgStore{db: DB}
}

func (s *pgStore) CreateUser(email, hashedPassword string, name *string) (int, error) {
	return CreateUser(email, hashedPassword, name)
}

func (s *pgStore) GetUserByEmail(email string) (*model.User, error) {
	return GetUserByEmail(email)
}

func (s *pgStore) GetUserByID(id int) (*model.User, error) {
	return GetUserByID(id)
}

func (s *pgStore) UpdateUserProfile(id int, email string, name *string) error {
	return UpdateUserProfile(id, email, name)
}

func (s *pgStore) CreateMosque(name, address, city string, contact *string, approved bool, createdBy int) (model.Mosque, error) {
	return CreateMosque(name, address, city, contact, approved, createdBy)
}

func (s *pgStore) GetMosqueByID(id int) (model.Mosque, error) {
	return GetMosqueByID(id)
}

func (s *pgStore) ListMosques(city, search string, limit, offset int) ([]model.Mosque, int, error) {
	return ListMosques(city, search, limit, offset)
}

func (s *pgStore) ListMosquesByOwner(ownerID int) ([]model.Mosque, error) {
	return ListMosquesByOwner(ownerID)
}

func (s *pgStore) UpdateMosque(id int, name, address, city string, contact *string) error {
	return UpdateMosque(id, name, address, city, contact)
}

func (s *pgStore) DeleteMosque(id int) error {
	return DeleteMosque(id)
}

func (s *pgStore) UpsertPrayerTimes(mosqueID int, day time.Time, in PrayerTimesInput) (model.MosquePrayerTimes, error) {
	return UpsertPrayerTimes(mosqueID, day, in)
}

func (s *pgStore) GetPrayerTimes(mosqueID int, day time.Time) (model.MosquePrayerTimes, error) {
	return GetPrayerTimes(mosqueID, day)
}

func (s *pgStore) CreateRegistration(reference, mosqueName, address, city string, contact *string, submitterEmail string) (model.RegistrationRequest, error) {
	return CreateRegistration(reference, mosqueName, address, city, contact, submitterEmail)
}

func (s *pgStore) GetRegistrationByReference(reference string) (model.RegistrationRequest, error) {
	return GetRegistrationByReference(reference)
}

func (s *pgStore) ListPendingRegistrations() ([]model.RegistrationRequest, error) {
	return ListPendingRegistrations()
}

func (s *pgStore) ApproveRegistration(id, reviewerID int, note *string) (model.RegistrationRequest, error) {
	return ApproveRegistration(id, reviewerID, note)
}

func (s *pgStore) RejectRegistration(id, reviewerID int, note *string) (model.RegistrationRequest, error) {
	return RejectRegistration(id, reviewerID, note)
}
