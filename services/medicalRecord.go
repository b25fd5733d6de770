package services

import (
	"HealthHubTerminal/logger"
	"HealthHubTerminal/models"
	"HealthHubTerminal/store"
	"HealthHubTerminal/util"
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
)

/*
* Patient must exist
* Validate the record, a record dated after today is refused
* Append to the patient records
 */
func AddMedicalRecord(ctx context.Context, reg *store.Registry, patientId string, record models.MedicalRecord, now time.Time) (string, error) {
	log := logger.FromContext(ctx).WithField("code", patientId)
	patient, err := reg.Patients.FindByCode(patientId)
	if err != nil {
		log.Println("Error from FindByCode: ", err)
		return "", err
	}
	if err := util.ValidateStruct(record); err != nil {
		log.Println("Error from ValidateStruct: ", err)
		return "", fmt.Errorf("%w: %v", util.ErrInvalidEntity, err)
	}
	y, m, d := now.Date()
	if record.Date.After(time.Date(y, m, d, 0, 0, 0, 0, now.Location())) {
		log.Println("Error from AddMedicalRecord: date is in the future ", record.Date.Format(util.DATE_LAYOUT))
		return "", fmt.Errorf("%w: %s", util.ErrInvalidEntity, util.FUTURE_DATE_NOT_ALLOWED)
	}
	patient.AddRecord(record)
	log.WithFields(logrus.Fields{"patient_id": patient.ID.Hex(), "record_id": record.ID.Hex()}).
		Infof("medical record added, patient now has %d", len(patient.Records))
	return util.MEDICAL_RECORD_ADDED, nil
}

func FetchMedicalRecords(ctx context.Context, reg *store.Registry, patientId string) ([]models.MedicalRecord, error) {
	patient, err := FetchPatientByCode(ctx, reg, patientId)
	if err != nil {
		return nil, err
	}
	return patient.Records, nil
}
