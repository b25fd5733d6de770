package controllers

import (
	"HealthHubTerminal/models"
	"HealthHubTerminal/services"
	"HealthHubTerminal/util"
	"context"
)

/*
* Patient must exist before anything else is asked
* Collect diagnosis, treatment and date, then append
 */
func AddMedicalRecord(ctx context.Context, app *App) error {
	code, err := app.Prompt.String("Enter patient id : ")
	if err != nil {
		return err
	}
	if _, err := services.FetchPatientByCode(ctx, app.Registry, code); err != nil {
		app.Prompt.Println(util.PATIENT_NOT_FOUND)
		return nil
	}
	diagnosis, err := app.Prompt.String("Enter diagnosis : ")
	if err != nil {
		return err
	}
	treatment, err := app.Prompt.String("Enter treatment : ")
	if err != nil {
		return err
	}
	date, err := app.Prompt.Date("Enter date (YYYY-MM-DD) : ")
	if err != nil {
		return err
	}
	msg, err := services.AddMedicalRecord(ctx, app.Registry, code, models.NewMedicalRecord(diagnosis, treatment, date), app.Now())
	if err != nil {
		app.Prompt.Println(err)
		return nil
	}
	app.Prompt.Println(msg)
	return nil
}

func FetchMedicalRecords(ctx context.Context, app *App) error {
	code, err := app.Prompt.String("Enter patient id : ")
	if err != nil {
		return err
	}
	records, err := services.FetchMedicalRecords(ctx, app.Registry, code)
	if err != nil {
		app.Prompt.Println(util.PATIENT_NOT_FOUND)
		return nil
	}
	for _, r := range records {
		r.Display(app.Prompt.Out())
	}
	return nil
}
