package controllers

import (
	"HealthHubTerminal/logger"
	"HealthHubTerminal/models"
	"HealthHubTerminal/services"
	"HealthHubTerminal/util"
	"context"
	"errors"
)

func readDoctor(app *App, code string) (*models.Doctor, error) {
	person, err := readPerson(app)
	if err != nil {
		return nil, err
	}
	specialization, err := app.Prompt.String("Enter specialization : ")
	if err != nil {
		return nil, err
	}
	return models.NewDoctor(code, person, specialization), nil
}

/*
* Ask for the code, then every doctor field
* A taken code keeps the existing doctor and nothing is printed
 */
func CreateDoctor(ctx context.Context, app *App) error {
	code, err := app.Prompt.String("Enter doctor id : ")
	if err != nil {
		return err
	}
	doctor, err := readDoctor(app, code)
	if err != nil {
		return err
	}
	_, err = services.CreateDoctor(ctx, app.Registry, doctor)
	if err != nil && !errors.Is(err, util.ErrAlreadyExists) {
		app.Prompt.Println(err)
	}
	return nil
}

func FetchAllDoctors(ctx context.Context, app *App) error {
	for _, d := range services.FetchAllDoctors(ctx, app.Registry) {
		d.Display(app.Prompt.Out())
	}
	return nil
}

/*
* Ask for the code, unknown codes are reported
* Rebuild the doctor from fresh answers under the same code
 */
func UpdateDoctor(ctx context.Context, app *App) error {
	code, err := app.Prompt.String("Enter id : ")
	if err != nil {
		return err
	}
	if _, err := services.FetchDoctorByCode(ctx, app.Registry, code); err != nil {
		app.Prompt.Println(util.RECORD_NOT_FOUND)
		return nil
	}
	doctor, err := readDoctor(app, code)
	if err != nil {
		return err
	}
	msg, err := services.UpdateDoctor(ctx, app.Registry, doctor)
	if err != nil {
		logger.FromContext(ctx).Println("Error from UpdateDoctor: ", err)
		app.Prompt.Println(err)
		return nil
	}
	app.Prompt.Println(msg)
	return nil
}

func DeleteDoctor(ctx context.Context, app *App) error {
	code, err := app.Prompt.String("Enter id : ")
	if err != nil {
		return err
	}
	msg, err := services.DeleteDoctor(ctx, app.Registry, code)
	if err != nil {
		app.Prompt.Println(util.RECORD_NOT_FOUND)
		return nil
	}
	app.Prompt.Println(msg)
	return nil
}
