package services

import (
	"context"
	"testing"
	"time"

	"HealthHubTerminal/models"
	"HealthHubTerminal/store"
	"HealthHubTerminal/util"

	"github.com/stretchr/testify/suite"
)

var today = time.Date(2025, time.June, 15, 9, 0, 0, 0, time.UTC)

type ServicesSuite struct {
	suite.Suite
	ctx context.Context
	reg *store.Registry
}

func (s *ServicesSuite) SetupTest() {
	s.ctx = context.Background()
	s.reg = store.NewRegistry()
}

func TestServicesSuite(t *testing.T) {
	suite.Run(t, new(ServicesSuite))
}

func asha() models.Person {
	return models.Person{Name: "Asha", Age: 30, Gender: util.GENDER_MALE, Mobile: "9876543210"}
}

func (s *ServicesSuite) record(diagnosis string, date string) models.MedicalRecord {
	d, err := time.Parse(util.DATE_LAYOUT, date)
	s.Require().NoError(err)
	return models.NewMedicalRecord(diagnosis, "Rest", d)
}

func (s *ServicesSuite) TestCreateDoctor() {
	s.Run("stores a valid doctor", func() {
		_, err := CreateDoctor(s.ctx, s.reg, models.NewDoctor("D1", asha(), "Cardiology"))
		s.Require().NoError(err)

		doctor, err := FetchDoctorByCode(s.ctx, s.reg, "D1")
		s.Require().NoError(err)
		s.Equal("Cardiology", doctor.Specialization)
	})

	s.Run("keeps existing doctor on duplicate code", func() {
		other := asha()
		other.Name = "Someone Else"
		_, err := CreateDoctor(s.ctx, s.reg, models.NewDoctor("D1", other, "Neurology"))
		s.Require().ErrorIs(err, util.ErrAlreadyExists)

		doctor, err := FetchDoctorByCode(s.ctx, s.reg, "D1")
		s.Require().NoError(err)
		s.Equal("Asha", doctor.Name)
		s.Equal("Cardiology", doctor.Specialization)
	})

	s.Run("rejects invalid fields", func() {
		bad := asha()
		bad.Mobile = "12345"
		_, err := CreateDoctor(s.ctx, s.reg, models.NewDoctor("D2", bad, "ENT"))
		s.Require().ErrorIs(err, util.ErrInvalidEntity)

		_, err = CreateDoctor(s.ctx, s.reg, models.NewDoctor("D3", asha(), ""))
		s.Require().ErrorIs(err, util.ErrInvalidEntity)
		s.Len(FetchAllDoctors(s.ctx, s.reg), 1)
	})
}

func (s *ServicesSuite) TestCreatePatientKeepsExistingRecords() {
	_, err := CreatePatient(s.ctx, s.reg, models.NewPatient("P1", asha()))
	s.Require().NoError(err)
	_, err = AddMedicalRecord(s.ctx, s.reg, "P1", s.record("Flu", "2024-01-01"), today)
	s.Require().NoError(err)

	_, err = CreatePatient(s.ctx, s.reg, models.NewPatient("P1", asha()))
	s.Require().ErrorIs(err, util.ErrAlreadyExists)

	records, err := FetchMedicalRecords(s.ctx, s.reg, "P1")
	s.Require().NoError(err)
	s.Len(records, 1)
}

func (s *ServicesSuite) TestUpdate() {
	s.Run("updating a patient discards previous medical records", func() {
		_, err := CreatePatient(s.ctx, s.reg, models.NewPatient("P1", asha()))
		s.Require().NoError(err)
		_, err = AddMedicalRecord(s.ctx, s.reg, "P1", s.record("Flu", "2024-01-01"), today)
		s.Require().NoError(err)

		updated := asha()
		updated.Age = 31
		msg, err := UpdatePatient(s.ctx, s.reg, models.NewPatient("P1", updated))
		s.Require().NoError(err)
		s.Equal(util.UPDATED_SUCCESSFULLY, msg)

		patient, err := FetchPatientByCode(s.ctx, s.reg, "P1")
		s.Require().NoError(err)
		s.Equal(31, patient.Age)
		s.Empty(patient.Records)
	})

	s.Run("updating an unknown code reports not found", func() {
		_, err := UpdatePatient(s.ctx, s.reg, models.NewPatient("P404", asha()))
		s.Require().ErrorIs(err, util.ErrNotFound)

		_, err = UpdateDoctor(s.ctx, s.reg, models.NewDoctor("D404", asha(), "ENT"))
		s.Require().ErrorIs(err, util.ErrNotFound)
	})

	s.Run("updating a doctor replaces every field", func() {
		_, err := CreateDoctor(s.ctx, s.reg, models.NewDoctor("D1", asha(), "ENT"))
		s.Require().NoError(err)

		replacement := models.Person{Name: "Meera", Age: 45, Gender: util.GENDER_FEMALE, Mobile: "1234567890"}
		_, err = UpdateDoctor(s.ctx, s.reg, models.NewDoctor("D1", replacement, "Oncology"))
		s.Require().NoError(err)

		doctor, err := FetchDoctorByCode(s.ctx, s.reg, "D1")
		s.Require().NoError(err)
		s.Equal(replacement, doctor.Person)
		s.Equal("Oncology", doctor.Specialization)
	})
}

func (s *ServicesSuite) TestDelete() {
	_, err := CreateDoctor(s.ctx, s.reg, models.NewDoctor("D1", asha(), "ENT"))
	s.Require().NoError(err)
	_, err = CreatePatient(s.ctx, s.reg, models.NewPatient("P1", asha()))
	s.Require().NoError(err)

	_, err = DeleteDoctor(s.ctx, s.reg, "D1")
	s.Require().NoError(err)
	_, err = FetchDoctorByCode(s.ctx, s.reg, "D1")
	s.Require().ErrorIs(err, util.ErrNotFound)

	_, err = DeletePatient(s.ctx, s.reg, "P1")
	s.Require().NoError(err)
	_, err = FetchMedicalRecords(s.ctx, s.reg, "P1")
	s.Require().ErrorIs(err, util.ErrNotFound)
	_, err = SearchPatientByMobile(s.ctx, s.reg, "9876543210")
	s.Require().ErrorIs(err, util.ErrNotFound)

	_, err = DeletePatient(s.ctx, s.reg, "P1")
	s.Require().ErrorIs(err, util.ErrNotFound)
	_, err = DeleteDoctor(s.ctx, s.reg, "D1")
	s.Require().ErrorIs(err, util.ErrNotFound)
}

func (s *ServicesSuite) TestAddMedicalRecord() {
	_, err := CreatePatient(s.ctx, s.reg, models.NewPatient("P1", asha()))
	s.Require().NoError(err)

	s.Run("unknown patient", func() {
		_, err := AddMedicalRecord(s.ctx, s.reg, "P9", s.record("Flu", "2024-01-01"), today)
		s.Require().ErrorIs(err, util.ErrNotFound)
	})

	s.Run("future date is refused", func() {
		_, err := AddMedicalRecord(s.ctx, s.reg, "P1", s.record("Flu", "2025-06-16"), today)
		s.Require().ErrorIs(err, util.ErrInvalidEntity)
	})

	s.Run("today is accepted and records keep their order", func() {
		_, err := AddMedicalRecord(s.ctx, s.reg, "P1", s.record("Flu", "2024-01-01"), today)
		s.Require().NoError(err)
		_, err = AddMedicalRecord(s.ctx, s.reg, "P1", s.record("Cold", "2025-06-15"), today)
		s.Require().NoError(err)

		records, err := FetchMedicalRecords(s.ctx, s.reg, "P1")
		s.Require().NoError(err)
		s.Require().Len(records, 2)
		s.Equal("Flu", records[0].Diagnosis)
		s.Equal("Cold", records[1].Diagnosis)
	})

	s.Run("empty diagnosis is refused", func() {
		_, err := AddMedicalRecord(s.ctx, s.reg, "P1", s.record("", "2024-01-01"), today)
		s.Require().ErrorIs(err, util.ErrInvalidEntity)
	})
}

func (s *ServicesSuite) TestSearchPatientByMobile() {
	_, err := CreatePatient(s.ctx, s.reg, models.NewPatient("P1", asha()))
	s.Require().NoError(err)
	_, err = CreatePatient(s.ctx, s.reg, models.NewPatient("P2", asha()))
	s.Require().NoError(err)

	patient, err := SearchPatientByMobile(s.ctx, s.reg, "9876543210")
	s.Require().NoError(err)
	s.Equal("P1", patient.Code)

	_, err = SearchPatientByMobile(s.ctx, s.reg, "0000000000")
	s.Require().ErrorIs(err, util.ErrNotFound)
}
