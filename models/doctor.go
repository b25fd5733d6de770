package models

import (
	"HealthHubTerminal/util"
	"fmt"
	"io"
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Doctor struct {
	ID             primitive.ObjectID `json:"id" bson:"id"`
	Code           string             `json:"code" bson:"code" validate:"required"`
	Person         `bson:",inline"`
	Specialization string `json:"specialization" bson:"specialization" validate:"required"`
}

func NewDoctor(code string, person Person, specialization string) *Doctor {
	return &Doctor{
		ID:             primitive.NewObjectID(),
		Code:           code,
		Person:         person,
		Specialization: specialization,
	}
}

func (d *Doctor) Display(w io.Writer) {
	fmt.Fprintln(w, strings.Repeat("-", util.SEPARATOR_WIDTH))
	fmt.Fprintf(w, "Doctor ID : %s\n", d.Code)
	d.DisplayBasic(w)
	fmt.Fprintf(w, "Specialization : %s\n", d.Specialization)
}
