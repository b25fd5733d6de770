package controllers

import (
	"HealthHubTerminal/logger"
	"HealthHubTerminal/models"
	"HealthHubTerminal/services"
	"HealthHubTerminal/util"
	"context"
	"errors"
)

/*
* Ask for the code, then every patient field
* A taken code keeps the existing patient and its records, nothing is printed
 */
func CreatePatient(ctx context.Context, app *App) error {
	code, err := app.Prompt.String("Enter patient id : ")
	if err != nil {
		return err
	}
	person, err := readPerson(app)
	if err != nil {
		return err
	}
	_, err = services.CreatePatient(ctx, app.Registry, models.NewPatient(code, person))
	if err != nil && !errors.Is(err, util.ErrAlreadyExists) {
		app.Prompt.Println(err)
	}
	return nil
}

func FetchAllPatients(ctx context.Context, app *App) error {
	for _, p := range services.FetchAllPatients(ctx, app.Registry) {
		p.Display(app.Prompt.Out())
	}
	return nil
}

/*
* Ask for the code, unknown codes are reported
* Rebuild the patient from fresh answers under the same code
* The rebuilt patient starts with no medical records
 */
func UpdatePatient(ctx context.Context, app *App) error {
	code, err := app.Prompt.String("Enter id : ")
	if err != nil {
		return err
	}
	if _, err := services.FetchPatientByCode(ctx, app.Registry, code); err != nil {
		app.Prompt.Println(util.RECORD_NOT_FOUND)
		return nil
	}
	person, err := readPerson(app)
	if err != nil {
		return err
	}
	msg, err := services.UpdatePatient(ctx, app.Registry, models.NewPatient(code, person))
	if err != nil {
		logger.FromContext(ctx).Println("Error from UpdatePatient: ", err)
		app.Prompt.Println(err)
		return nil
	}
	app.Prompt.Println(msg)
	return nil
}

func DeletePatient(ctx context.Context, app *App) error {
	code, err := app.Prompt.String("Enter id : ")
	if err != nil {
		return err
	}
	msg, err := services.DeletePatient(ctx, app.Registry, code)
	if err != nil {
		app.Prompt.Println(util.RECORD_NOT_FOUND)
		return nil
	}
	app.Prompt.Println(msg)
	return nil
}
