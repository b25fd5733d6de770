package services

import (
	"HealthHubTerminal/logger"
	"HealthHubTerminal/models"
	"HealthHubTerminal/store"
	"context"
)

// SearchPatientByMobile returns the earliest registered patient with the given mobile.
func SearchPatientByMobile(ctx context.Context, reg *store.Registry, mobile string) (*models.Patient, error) {
	patient, err := reg.Patients.FindFirst(func(p *models.Patient) bool {
		return p.Mobile == mobile
	})
	if err != nil {
		logger.FromContext(ctx).Println("Error from FindFirst: ", err)
		return nil, err
	}
	return patient, nil
}
