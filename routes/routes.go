package routes

import (
	"HealthHubTerminal/controllers"
)

// Routes builds the main menu and every sub-menu it reaches.
func Routes() controllers.Menu {
	add := controllers.Menu{
		Title:    "ADD MENU",
		Options:  []string{"Add Doctor", "Add Patient", "Add Medical Record"},
		Handlers: []controllers.Handler{controllers.CreateDoctor, controllers.CreatePatient, controllers.AddMedicalRecord},
	}
	view := controllers.Menu{
		Title:    "VIEW MENU",
		Options:  []string{"View Doctor", "View Patient", "View Medical Record"},
		Handlers: []controllers.Handler{controllers.FetchAllDoctors, controllers.FetchAllPatients, controllers.FetchMedicalRecords},
	}
	update := controllers.Menu{
		Title:    "UPDATE MENU",
		Options:  []string{"Update Doctor", "Update Patient"},
		Handlers: []controllers.Handler{controllers.UpdateDoctor, controllers.UpdatePatient},
	}
	remove := controllers.Menu{
		Title:    "DELETE MENU",
		Options:  []string{"Delete Doctor", "Delete Patient"},
		Handlers: []controllers.Handler{controllers.DeleteDoctor, controllers.DeletePatient},
	}

	//main
	return controllers.Menu{
		Title:   "HOSPITAL MANAGEMENT SYSTEM",
		Options: []string{"Add", "View", "Update", "Delete", "Search", "Exit"},
		Handlers: []controllers.Handler{
			add.Show,
			view.Show,
			update.Show,
			remove.Show,
			controllers.SearchByMobile,
			controllers.Exit,
		},
	}
}
