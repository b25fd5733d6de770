package controllers

import "HealthHubTerminal/models"

func readPerson(app *App) (models.Person, error) {
	var person models.Person
	var err error
	if person.Name, err = app.Prompt.String("Enter name : "); err != nil {
		return person, err
	}
	if person.Age, err = app.Prompt.Age("Enter age : "); err != nil {
		return person, err
	}
	if person.Gender, err = app.Prompt.Gender("Enter gender (M/F): "); err != nil {
		return person, err
	}
	if person.Mobile, err = app.Prompt.Mobile("Enter mobile number : "); err != nil {
		return person, err
	}
	return person, nil
}
