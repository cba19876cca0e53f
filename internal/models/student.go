package models

import "strings"

// Student is one enrollment record as kept in the backing spreadsheet.
// Every text attribute may be empty; Age and Weight are nil when the
// source cell is blank or not numeric.
type Student struct {
	Email                   string   `json:"email"`
	LastName                string   `json:"lastName"`
	FirstName               string   `json:"firstName"`
	MiddleName              string   `json:"middleName"`
	DOB                     string   `json:"dob"`
	BirthCity               string   `json:"birthCity"`
	BirthState              string   `json:"birthState"`
	BirthCounty             string   `json:"birthCounty"`
	BirthCountry            string   `json:"birthCountry"`
	AddressStreet           string   `json:"addressStreet"`
	AddressApt              string   `json:"addressApt"`
	AddressCounty           string   `json:"addressCounty"`
	AddressCity             string   `json:"addressCity"`
	AddressState            string   `json:"addressState"`
	AddressZipCode          string   `json:"addressZipCode"`
	PhoneNumber             string   `json:"phoneNumber"`
	DrivingPermitNumber     string   `json:"drivingPermitNumber"`
	DrivingPermitState      string   `json:"drivingPermitState"`
	DrivingPermitIssueDate  string   `json:"drivingPermitIssueDate"`
	DrivingPermitExpireDate string   `json:"drivingPermitExpireDate"`
	Age                     *float64 `json:"age"`
	Gender                  string   `json:"gender"`
	EyeColor                string   `json:"eyeColor"`
	HairColor               string   `json:"hairColor"`
	Race                    string   `json:"race"`
	Ethnicity               string   `json:"ethnicity"`
	Weight                  *float64 `json:"weight"`
	Height                  string   `json:"height"`
	FatherLastName          string   `json:"fatherLastName"`
	MotherLastName          string   `json:"motherLastName"`
	PrimaryContactName      string   `json:"primaryContactName"`
	PrimaryContactPhone     string   `json:"primaryContactPhone"`
	PrimaryContactAddress   string   `json:"primaryContactAddress"`
	SecondaryContactName    string   `json:"secondaryContactName"`
	SecondaryContactPhone   string   `json:"secondaryContactPhone"`
	SecondaryContactAddress string   `json:"secondaryContactAddress"`
}

// FullName joins the present name parts with single spaces. Empty when
// all three parts are empty.
func (s Student) FullName() string {
	return joinNonEmpty(s.FirstName, s.MiddleName, s.LastName)
}

// AddressLine joins street and apartment, skipping whichever is empty.
func (s Student) AddressLine() string {
	return joinNonEmpty(s.AddressStreet, s.AddressApt)
}

func joinNonEmpty(parts ...string) string {
	kept := parts[:0:0]
	for _, p := range parts {
		if p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, " ")
}
