package services

import (
	"HealthHubTerminal/logger"
	"HealthHubTerminal/models"
	"HealthHubTerminal/store"
	"HealthHubTerminal/util"
	"context"
	"fmt"

	"github.com/samber/lo"
	"github.com/sirupsen/logrus"
)

/*
* Validate the patient fields
* Insert only when the code is free
* An existing patient and its records are kept as they are
 */
func CreatePatient(ctx context.Context, reg *store.Registry, patient *models.Patient) (string, error) {
	log := logger.FromContext(ctx).WithField("code", patient.Code)
	if err := util.ValidateStruct(patient); err != nil {
		log.Println("Error from ValidateStruct: ", err)
		return "", fmt.Errorf("%w: %v", util.ErrInvalidEntity, err)
	}
	if !reg.Patients.InsertIfAbsent(patient.Code, patient) {
		log.Warn("patient already exists, keeping the existing one")
		return "", fmt.Errorf("patient %s: %w", patient.Code, util.ErrAlreadyExists)
	}
	log.WithField("id", patient.ID.Hex()).Info("patient created")
	return "created successfully", nil
}

/*
* Validate the new patient fields
* Swap the whole patient stored under the code
* Records of the previous patient are not carried over
 */
func UpdatePatient(ctx context.Context, reg *store.Registry, patient *models.Patient) (string, error) {
	log := logger.FromContext(ctx).WithField("code", patient.Code)
	if err := util.ValidateStruct(patient); err != nil {
		log.Println("Error from ValidateStruct: ", err)
		return "", fmt.Errorf("%w: %v", util.ErrInvalidEntity, err)
	}
	previous, err := reg.Patients.FindByCode(patient.Code)
	if err != nil {
		log.Println("Error from FindByCode: ", err)
		return "", err
	}
	if err := reg.Patients.Replace(patient.Code, patient); err != nil {
		log.Println("Error from Replace: ", err)
		return "", err
	}
	log = log.WithFields(logrus.Fields{"previous_id": previous.ID.Hex(), "id": patient.ID.Hex()})
	if len(previous.Records) > 0 {
		discarded := lo.Map(previous.Records, func(r models.MedicalRecord, _ int) string { return r.ID.Hex() })
		log.WithField("discarded_records", discarded).Warnf("patient replaced, %d medical records discarded", len(discarded))
	} else {
		log.Info("patient replaced")
	}
	return util.UPDATED_SUCCESSFULLY, nil
}

func FetchPatientByCode(ctx context.Context, reg *store.Registry, patientId string) (*models.Patient, error) {
	patient, err := reg.Patients.FindByCode(patientId)
	if err != nil {
		logger.FromContext(ctx).Println("Error from FindByCode: ", err)
		return nil, err
	}
	return patient, nil
}

func FetchAllPatients(ctx context.Context, reg *store.Registry) []*models.Patient {
	patients := reg.Patients.List()
	logger.FromContext(ctx).Debugf("fetched %d patients", len(patients))
	return patients
}

func DeletePatient(ctx context.Context, reg *store.Registry, patientId string) (string, error) {
	log := logger.FromContext(ctx).WithField("code", patientId)
	patient, err := reg.Patients.FindByCode(patientId)
	if err != nil {
		log.Println("Error from FindByCode: ", err)
		return "", err
	}
	if err := reg.Patients.Delete(patientId); err != nil {
		log.Println("Error from Delete: ", err)
		return "", err
	}
	log.WithField("id", patient.ID.Hex()).Infof("patient deleted with %d medical records", len(patient.Records))
	return util.DELETED_SUCCESSFULLY, nil
}
