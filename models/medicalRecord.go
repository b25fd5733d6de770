package models

import (
	"HealthHubTerminal/util"
	"fmt"
	"io"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type MedicalRecord struct {
	ID        primitive.ObjectID `json:"id" bson:"id"`
	Diagnosis string             `json:"diagnosis" bson:"diagnosis" validate:"required"`
	Treatment string             `json:"treatment" bson:"treatment" validate:"required"`
	Date      time.Time          `json:"date" bson:"date" validate:"required"`
}

func NewMedicalRecord(diagnosis string, treatment string, date time.Time) MedicalRecord {
	return MedicalRecord{
		ID:        primitive.NewObjectID(),
		Diagnosis: diagnosis,
		Treatment: treatment,
		Date:      date,
	}
}

func (r MedicalRecord) Display(w io.Writer) {
	fmt.Fprintf(w, "\nDiagnosis : %s\n", r.Diagnosis)
	fmt.Fprintf(w, "Treatment : %s\n", r.Treatment)
	fmt.Fprintf(w, "Date      : %s\n", r.Date.Format(util.DATE_LAYOUT))
}
