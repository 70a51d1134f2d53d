package endpoints

import (
	"database/sql"
	"errors"
	"time"

	"github.com/minaret-dev/minaret/internal/db"
	"github.com/minaret-dev/minaret/internal/model"
)

// stubStore is an in-memory db.Store for handler tests.
type stubStore struct {
	mosques       map[int]model.Mosque
	prayerTimes   map[int]map[string]model.MosquePrayerTimes
	registrations []model.RegistrationRequest
	nextID        int
}

var _ db.Store = (*stubStore)(nil)

func newStubStore() *stubStore {
	return &stubStore{
		mosques:     make(map[int]model.Mosque),
		prayerTimes: make(map[int]map[string]model.MosquePrayerTimes),
		nextID:      1,
	}
}

func (s *stubStore) addMosque(m model.Mosque) model.Mosque {
	if m.ID == 0 {
		m.ID = s.nextID
		s.nextID++
	}
	s.mosques[m.ID] = m
	return m
}

func (s *stubStore) CreateUser(string, string, *string) (int, error) { return 0, errors.New("unused") }
func (s *stubStore) GetUserByEmail(string) (*model.User, error)      { return nil, sql.ErrNoRows }
func (s *stubStore) GetUserByID(int) (*model.User, error)            { return nil, sql.ErrNoRows }
func (s *stubStore) UpdateUserProfile(int, string, *string) error    { return errors.New("unused") }

func (s *stubStore) CreateMosque(name, address, city string, contact *string, approved bool, createdBy int) (model.Mosque, error) {
	return s.addMosque(model.Mosque{
		Name: name, Address: address, City: city, Contact: contact,
		Approved: approved, CreatedBy: createdBy,
	}), nil
}

func (s *stubStore) GetMosqueByID(id int) (model.Mosque, error) {
	m, ok := s.mosques[id]
	if !ok {
		return model.Mosque{}, sql.ErrNoRows
	}
	return m, nil
}

func (s *stubStore) ListMosques(city, search string, limit, offset int) ([]model.Mosque, int, error) {
	var all []model.Mosque
	for id := 1; id < s.nextID; id++ {
		m, ok := s.mosques[id]
		if !ok || !m.Approved {
			continue
		}
		if city != "" && m.City != city {
			continue
		}
		all = append(all, m)
	}
	total := len(all)
	if offset > len(all) {
		offset = len(all)
	}
	end := offset + limit
	if end > len(all) {
		end = len(all)
	}
	return all[offset:end], total, nil
}

func (s *stubStore) ListMosquesByOwner(ownerID int) ([]model.Mosque, error) {
	var out []model.Mosque
	for _, m := range s.mosques {
		if m.CreatedBy == ownerID {
			out = append(out, m)
		}
	}
	return out, nil
}

func (s *stubStore) UpdateMosque(int, string, string, string, *string) error { return nil }
func (s *stubStore) DeleteMosque(id int) error {
	delete(s.mosques, id)
	return nil
}

func (s *stubStore) UpsertPrayerTimes(mosqueID int, day time.Time, in db.PrayerTimesInput) (model.MosquePrayerTimes, error) {
	if s.prayerTimes[mosqueID] == nil {
		s.prayerTimes[mosqueID] = make(map[string]model.MosquePrayerTimes)
	}
	row := model.MosquePrayerTimes{
		ID: s.nextID, MosqueID: mosqueID, Day: day,
		Fajr: in.Fajr, Dhuhr: in.Dhuhr, Asr: in.Asr,
		Maghrib: in.Maghrib, Isha: in.Isha, Jummah: in.Jummah,
	}
	s.nextID++
	s.prayerTimes[mosqueID][day.Format("2006-01-02")] = row
	return row, nil
}

func (s *stubStore) GetPrayerTimes(mosqueID int, day time.Time) (model.MosquePrayerTimes, error) {
	row, ok := s.prayerTimes[mosqueID][day.Format("2006-01-02")]
	if !ok {
		return model.MosquePrayerTimes{}, sql.ErrNoRows
	}
	return row, nil
}

func (s *stubStore) CreateRegistration(reference, mosqueName, address, city string, contact *string, submitterEmail string) (model.RegistrationRequest, error) {
	r := model.RegistrationRequest{
		ID: s.nextID, Reference: reference, MosqueName: mosqueName,
		Address: address, City: city, Contact: contact,
		SubmitterEmail: submitterEmail, Status: model.RegistrationPending,
	}
	s.nextID++
	s.registrations = append(s.registrations, r)
	return r, nil
}

func (s *stubStore) GetRegistrationByReference(reference string) (model.RegistrationRequest, error) {
	for _, r := range s.registrations {
		if r.Reference == reference {
			return r, nil
		}
	}
	return model.RegistrationRequest{}, sql.ErrNoRows
}

func (s *stubStore) ListPendingRegistrations() ([]model.RegistrationRequest, error) {
	var out []model.RegistrationRequest
	for _, r := range s.registrations {
		if r.Status == model.RegistrationPending {
			out = append(out, r)
		}
	}
	return out, nil
}

func (s *stubStore) ApproveRegistration(id, reviewerID int, note *string) (model.RegistrationRequest, error) {
	for i, r := range s.registrations {
		if r.ID == id && r.Status == model.RegistrationPending {
			mosque := s.addMosque(model.Mosque{
				Name: r.MosqueName, Address: r.Address, City: r.City,
				Contact: r.Contact, Approved: true, CreatedBy: reviewerID,
			})
			r.Status = model.RegistrationApproved
			r.Note = note
			r.ReviewedBy = &reviewerID
			r.MosqueID = &mosque.ID
			s.registrations[i] = r
			return r, nil
		}
	}
	return model.RegistrationRequest{}, errors.New("registration not found or already reviewed")
}

func (s *stubStore) RejectRegistration(id, reviewerID int, note *string) (model.RegistrationRequest, error) {
	for i, r := range s.registrations {
		if r.ID == id && r.Status == model.RegistrationPending {
			r.Status = model.RegistrationRejected
			r.Note = note
			r.ReviewedBy = &reviewerID
			s.registrations[i] = r
			return r, nil
		}
	}
	return model.RegistrationRequest{}, errors.New("registration not found or already reviewed")
}
