package service

import (
	"math"
	"strconv"
	"strings"

	"github.com/elsur/driving-school-api/internal/models"
)

// Column positions within the sheet's A:AK range. Binding is positional:
// the header row is skipped, never interpreted, and column 0 holds the
// form submission timestamp which this tool does not read. The layout
// must match the enrollment form's question order.
const (
	colEmail = iota + 1
	colLastName
	colFirstName
	colMiddleName
	colDOB
	colBirthCity
	colBirthState
	colBirthCounty
	colBirthCountry
	colAddressStreet
	colAddressApt
	colAddressCounty
	colAddressCity
	colAddressState
	colAddressZipCode
	colPhoneNumber
	colDrivingPermitNumber
	colDrivingPermitState
	colDrivingPermitIssueDate
	colDrivingPermitExpireDate
	colAge
	colGender
	colEyeColor
	colHairColor
	colRace
	colEthnicity
	colWeight
	colHeight
	colFatherLastName
	colMotherLastName
	colPrimaryContactName
	colPrimaryContactPhone
	colPrimaryContactAddress
	colSecondaryContactName
	colSecondaryContactPhone
	colSecondaryContactAddress
)

// mapRows converts raw sheet rows into student records. Row 0 is the
// header and is always discarded. Rows with at most one cell are treated
// as blank and dropped; everything else maps, with missing trailing cells
// reading as "". The result is never nil.
func mapRows(rows [][]string) []models.Student {
	if len(rows) <= 1 {
		return []models.Student{}
	}
	students := make([]models.Student, 0, len(rows)-1)

	for _, row := range rows[1:] {
		if len(row) <= 1 {
			continue
		}
		students = append(students, models.Student{
			Email:                   cell(row, colEmail),
			LastName:                cell(row, colLastName),
			FirstName:               cell(row, colFirstName),
			MiddleName:              cell(row, colMiddleName),
			DOB:                     cell(row, colDOB),
			BirthCity:               cell(row, colBirthCity),
			BirthState:              cell(row, colBirthState),
			BirthCounty:             cell(row, colBirthCounty),
			BirthCountry:            cell(row, colBirthCountry),
			AddressStreet:           cell(row, colAddressStreet),
			AddressApt:              cell(row, colAddressApt),
			AddressCounty:           cell(row, colAddressCounty),
			AddressCity:             cell(row, colAddressCity),
			AddressState:            cell(row, colAddressState),
			AddressZipCode:          cell(row, colAddressZipCode),
			PhoneNumber:             cell(row, colPhoneNumber),
			DrivingPermitNumber:     cell(row, colDrivingPermitNumber),
			DrivingPermitState:      cell(row, colDrivingPermitState),
			DrivingPermitIssueDate:  cell(row, colDrivingPermitIssueDate),
			DrivingPermitExpireDate: cell(row, colDrivingPermitExpireDate),
			Age:                     parseNum(cell(row, colAge)),
			Gender:                  cell(row, colGender),
			EyeColor:                cell(row, colEyeColor),
			HairColor:               cell(row, colHairColor),
			Race:                    cell(row, colRace),
			Ethnicity:               cell(row, colEthnicity),
			Weight:                  parseNum(cell(row, colWeight)),
			Height:                  cell(row, colHeight),
			FatherLastName:          cell(row, colFatherLastName),
			MotherLastName:          cell(row, colMotherLastName),
			PrimaryContactName:      cell(row, colPrimaryContactName),
			PrimaryContactPhone:     cell(row, colPrimaryContactPhone),
			PrimaryContactAddress:   cell(row, colPrimaryContactAddress),
			SecondaryContactName:    cell(row, colSecondaryContactName),
			SecondaryContactPhone:   cell(row, colSecondaryContactPhone),
			SecondaryContactAddress: cell(row, colSecondaryContactAddress),
		})
	}

	return students
}

// cell reads one column, trimming whitespace. Short rows read as "".
func cell(row []string, index int) string {
	if index < 0 || index >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[index])
}

// parseNum coerces a cell to a number. Blank or non-numeric cells map to
// nil rather than an error: a stray entry in the sheet must not break the
// whole roster. ParseFloat also admits the spellings "NaN" and "Inf";
// those are stray entries too, and a non-finite value would make the
// record unserializable.
func parseNum(raw string) *float64 {
	if raw == "" {
		return nil
	}
	n, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(n) || math.IsInf(n, 0) {
		return nil
	}
	return &n
}
