package services

import (
	"HealthHubTerminal/logger"
	"HealthHubTerminal/models"
	"HealthHubTerminal/store"
	"HealthHubTerminal/util"
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
)

/*
* Validate the doctor fields
* Insert only when the code is free
* An existing doctor under the same code is kept as it is
 */
func CreateDoctor(ctx context.Context, reg *store.Registry, doctor *models.Doctor) (string, error) {
	log := logger.FromContext(ctx).WithField("code", doctor.Code)
	if err := util.ValidateStruct(doctor); err != nil {
		log.Println("Error from ValidateStruct: ", err)
		return "", fmt.Errorf("%w: %v", util.ErrInvalidEntity, err)
	}
	if !reg.Doctors.InsertIfAbsent(doctor.Code, doctor) {
		log.Warn("doctor already exists, keeping the existing one")
		return "", fmt.Errorf("doctor %s: %w", doctor.Code, util.ErrAlreadyExists)
	}
	log.WithField("id", doctor.ID.Hex()).Info("doctor created")
	return "created successfully", nil
}

/*
* Validate the new doctor fields
* Swap the whole doctor stored under the code
 */
func UpdateDoctor(ctx context.Context, reg *store.Registry, doctor *models.Doctor) (string, error) {
	log := logger.FromContext(ctx).WithField("code", doctor.Code)
	if err := util.ValidateStruct(doctor); err != nil {
		log.Println("Error from ValidateStruct: ", err)
		return "", fmt.Errorf("%w: %v", util.ErrInvalidEntity, err)
	}
	previous, err := reg.Doctors.FindByCode(doctor.Code)
	if err != nil {
		log.Println("Error from FindByCode: ", err)
		return "", err
	}
	if err := reg.Doctors.Replace(doctor.Code, doctor); err != nil {
		log.Println("Error from Replace: ", err)
		return "", err
	}
	log.WithFields(logrus.Fields{"previous_id": previous.ID.Hex(), "id": doctor.ID.Hex()}).Info("doctor replaced")
	return util.UPDATED_SUCCESSFULLY, nil
}

func FetchDoctorByCode(ctx context.Context, reg *store.Registry, doctorId string) (*models.Doctor, error) {
	doctor, err := reg.Doctors.FindByCode(doctorId)
	if err != nil {
		logger.FromContext(ctx).Println("Error from FindByCode: ", err)
		return nil, err
	}
	return doctor, nil
}

func FetchAllDoctors(ctx context.Context, reg *store.Registry) []*models.Doctor {
	doctors := reg.Doctors.List()
	logger.FromContext(ctx).Debugf("fetched %d doctors", len(doctors))
	return doctors
}

func DeleteDoctor(ctx context.Context, reg *store.Registry, doctorId string) (string, error) {
	log := logger.FromContext(ctx).WithField("code", doctorId)
	doctor, err := reg.Doctors.FindByCode(doctorId)
	if err != nil {
		log.Println("Error from FindByCode: ", err)
		return "", err
	}
	if err := reg.Doctors.Delete(doctorId); err != nil {
		log.Println("Error from Delete: ", err)
		return "", err
	}
	log.WithField("id", doctor.ID.Hex()).Info("doctor deleted")
	return util.DELETED_SUCCESSFULLY, nil
}
