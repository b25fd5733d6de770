package models

import (
	"fmt"
	"io"
)

// Person holds the fields shared by doctors and patients.
type Person struct {
	Name   string `json:"name" bson:"name" validate:"required"`
	Age    int    `json:"age" bson:"age" validate:"min=1,max=120"`
	Gender string `json:"gender" bson:"gender" validate:"oneof=Male Female"`
	Mobile string `json:"phoneNo" bson:"phoneNo" validate:"mobile"`
}

func (p Person) DisplayBasic(w io.Writer) {
	fmt.Fprintf(w, "Name   : %s\n", p.Name)
	fmt.Fprintf(w, "Age    : %d\n", p.Age)
	fmt.Fprintf(w, "Gender : %s\n", p.Gender)
	fmt.Fprintf(w, "Mobile : %s\n", p.Mobile)
}
