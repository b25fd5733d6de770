package util

import "errors"

// Operator facing messages.
const (
	INPUT_CANNOT_BE_EMPTY   string = "Input cannot be empty"
	ENTER_VALID_AGE         string = "Enter valid age"
	AGE_OUT_OF_RANGE        string = "Age must be between 1 and 120"
	ENTER_M_OR_F            string = "Enter M or F"
	INVALID_MOBILE          string = "Mobile must be exactly 10 digits"
	INVALID_DATE_FORMAT     string = "Invalid date format"
	FUTURE_DATE_NOT_ALLOWED string = "Future date not allowed"
	ENTER_VALID_NUMBER      string = "Enter valid number"
	ENTER_NUMBER_BETWEEN    string = "Enter number between 1 and %d"

	PATIENT_NOT_FOUND    string = "Patient not found"
	RECORD_NOT_FOUND     string = "Record not found"
	MEDICAL_RECORD_ADDED string = "Medical record added"
	UPDATED_SUCCESSFULLY string = "Updated successfully"
	DELETED_SUCCESSFULLY string = "Deleted successfully"
	PROGRAM_TERMINATED   string = "Program terminated"
	DATE_LAYOUT          string = "2006-01-02"
	SEPARATOR_WIDTH      int    = 40
	MIN_AGE              int    = 1
	MAX_AGE              int    = 120
	GENDER_MALE          string = "Male"
	GENDER_FEMALE        string = "Female"
	DOCTOR_COLLECTION    string = "DOCTOR"
	PATIENT_COLLECTION   string = "PATIENT"
)

var (
	ErrNotFound      = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")
	ErrInvalidEntity = errors.New("invalid entity")
)
