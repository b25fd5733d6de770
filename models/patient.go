package models

import (
	"HealthHubTerminal/util"
	"fmt"
	"io"
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Patient owns its medical records. Records are only ever appended.
type Patient struct {
	ID      primitive.ObjectID `json:"id" bson:"id"`
	Code    string             `json:"code" bson:"code" validate:"required"`
	Person  `bson:",inline"`
	Records []MedicalRecord `json:"records" bson:"records" validate:"dive"`
}

func NewPatient(code string, person Person) *Patient {
	return &Patient{
		ID:      primitive.NewObjectID(),
		Code:    code,
		Person:  person,
		Records: []MedicalRecord{},
	}
}

func (p *Patient) AddRecord(record MedicalRecord) {
	p.Records = append(p.Records, record)
}

func (p *Patient) Display(w io.Writer) {
	fmt.Fprintln(w, strings.Repeat("-", util.SEPARATOR_WIDTH))
	fmt.Fprintf(w, "Patient ID : %s\n", p.Code)
	p.DisplayBasic(w)
}

func (p *Patient) DisplayRecords(w io.Writer) {
	for _, r := range p.Records {
		r.Display(w)
	}
}
