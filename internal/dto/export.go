package dto

import "github.com/elsur/driving-school-api/internal/models"

// ExportStudentRequest is the inbound payload for PDF generation. It is
// the same 36-attribute shape the roster endpoint serves, declared with
// pointers so that an attribute missing from the JSON body is told apart
// from one sent as an empty string: every text attribute must be present
// (empty is fine), the two numeric attributes may be null.
type ExportStudentRequest struct {
	Email                   *string  `json:"email" validate:"required"`
	LastName                *string  `json:"lastName" validate:"required"`
	FirstName               *string  `json:"firstName" validate:"required"`
	MiddleName              *string  `json:"middleName" validate:"required"`
	DOB                     *string  `json:"dob" validate:"required"`
	BirthCity               *string  `json:"birthCity" validate:"required"`
	BirthState              *string  `json:"birthState" validate:"required"`
	BirthCounty             *string  `json:"birthCounty" validate:"required"`
	BirthCountry            *string  `json:"birthCountry" validate:"required"`
	AddressStreet           *string  `json:"addressStreet" validate:"required"`
	AddressApt              *string  `json:"addressApt" validate:"required"`
	AddressCounty           *string  `json:"addressCounty" validate:"required"`
	AddressCity             *string  `json:"addressCity" validate:"required"`
	AddressState            *string  `json:"addressState" validate:"required"`
	AddressZipCode          *string  `json:"addressZipCode" validate:"required"`
	PhoneNumber             *string  `json:"phoneNumber" validate:"required"`
	DrivingPermitNumber     *string  `json:"drivingPermitNumber" validate:"required"`
	DrivingPermitState      *string  `json:"drivingPermitState" validate:"required"`
	DrivingPermitIssueDate  *string  `json:"drivingPermitIssueDate" validate:"required"`
	DrivingPermitExpireDate *string  `json:"drivingPermitExpireDate" validate:"required"`
	Age                     *float64 `json:"age" validate:"omitempty,gte=0"`
	Gender                  *string  `json:"gender" validate:"required"`
	EyeColor                *string  `json:"eyeColor" validate:"required"`
	HairColor               *string  `json:"hairColor" validate:"required"`
	Race                    *string  `json:"race" validate:"required"`
	Ethnicity               *string  `json:"ethnicity" validate:"required"`
	Weight                  *float64 `json:"weight" validate:"omitempty,gte=0"`
	Height                  *string  `json:"height" validate:"required"`
	FatherLastName          *string  `json:"fatherLastName" validate:"required"`
	MotherLastName          *string  `json:"motherLastName" validate:"required"`
	PrimaryContactName      *string  `json:"primaryContactName" validate:"required"`
	PrimaryContactPhone     *string  `json:"primaryContactPhone" validate:"required"`
	PrimaryContactAddress   *string  `json:"primaryContactAddress" validate:"required"`
	SecondaryContactName    *string  `json:"secondaryContactName" validate:"required"`
	SecondaryContactPhone   *string  `json:"secondaryContactPhone" validate:"required"`
	SecondaryContactAddress *string  `json:"secondaryContactAddress" validate:"required"`
}

// ToStudent converts a validated payload into the record shape.
func (r ExportStudentRequest) ToStudent() models.Student {
	return models.Student{
		Email:                   deref(r.Email),
		LastName:                deref(r.LastName),
		FirstName:               deref(r.FirstName),
		MiddleName:              deref(r.MiddleName),
		DOB:                     deref(r.DOB),
		BirthCity:               deref(r.BirthCity),
		BirthState:              deref(r.BirthState),
		BirthCounty:             deref(r.BirthCounty),
		BirthCountry:            deref(r.BirthCountry),
		AddressStreet:           deref(r.AddressStreet),
		AddressApt:              deref(r.AddressApt),
		AddressCounty:           deref(r.AddressCounty),
		AddressCity:             deref(r.AddressCity),
		AddressState:            deref(r.AddressState),
		AddressZipCode:          deref(r.AddressZipCode),
		PhoneNumber:             deref(r.PhoneNumber),
		DrivingPermitNumber:     deref(r.DrivingPermitNumber),
		DrivingPermitState:      deref(r.DrivingPermitState),
		DrivingPermitIssueDate:  deref(r.DrivingPermitIssueDate),
		DrivingPermitExpireDate: deref(r.DrivingPermitExpireDate),
		Age:                     r.Age,
		Gender:                  deref(r.Gender),
		EyeColor:                deref(r.EyeColor),
		HairColor:               deref(r.HairColor),
		Race:                    deref(r.Race),
		Ethnicity:               deref(r.Ethnicity),
		Weight:                  r.Weight,
		Height:                  deref(r.Height),
		FatherLastName:          deref(r.FatherLastName),
		MotherLastName:          deref(r.MotherLastName),
		PrimaryContactName:      deref(r.PrimaryContactName),
		PrimaryContactPhone:     deref(r.PrimaryContactPhone),
		PrimaryContactAddress:   deref(r.PrimaryContactAddress),
		SecondaryContactName:    deref(r.SecondaryContactName),
		SecondaryContactPhone:   deref(r.SecondaryContactPhone),
		SecondaryContactAddress: deref(r.SecondaryContactAddress),
	}
}

func deref(ptr *string) string {
	if ptr == nil {
		return ""
	}
	return *ptr
}
