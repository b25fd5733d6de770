package controllers

import (
	"HealthHubTerminal/services"
	"HealthHubTerminal/util"
	"context"
)

func SearchByMobile(ctx context.Context, app *App) error {
	mobile, err := app.Prompt.Mobile("Enter mobile : ")
	if err != nil {
		return err
	}
	patient, err := services.SearchPatientByMobile(ctx, app.Registry, mobile)
	if err != nil {
		app.Prompt.Println(util.PATIENT_NOT_FOUND)
		return nil
	}
	patient.Display(app.Prompt.Out())
	patient.DisplayRecords(app.Prompt.Out())
	return nil
}
