package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/elsur/driving-school-api/internal/dto"
	"github.com/elsur/driving-school-api/internal/models"
	appErrors "github.com/elsur/driving-school-api/pkg/errors"
	"github.com/elsur/driving-school-api/pkg/pdfform"
)

type templateFiller interface {
	Fill(fields []pdfform.Field) ([]byte, error)
}

// ExportResult is a filled enrollment form ready for download.
type ExportResult struct {
	Content  []byte
	Filename string
}

// ExportService validates an inbound record and produces the filled
// enrollment PDF.
type ExportService struct {
	filler    templateFiller
	validator *validator.Validate
	logger    *zap.Logger
}

// NewExportService constructs the export service.
func NewExportService(filler templateFiller, validate *validator.Validate, logger *zap.Logger) *ExportService {
	if validate == nil {
		validate = NewValidator()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ExportService{filler: filler, validator: validate, logger: logger}
}

// Generate validates the payload, fills the template and names the file
// after the student. Validation failures report every offending field;
// fill failures collapse into one generic message with the cause logged.
func (s *ExportService) Generate(ctx context.Context, req dto.ExportStudentRequest) (*ExportResult, error) {
	if err := s.validator.Struct(req); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) {
			return nil, appErrors.WithDetails(appErrors.ErrValidation, validationDetails(fieldErrs))
		}
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, appErrors.ErrValidation.Message)
	}

	record := req.ToStudent()

	content, err := s.filler.Fill(formFields(record))
	if err != nil {
		s.logger.Error("enrollment form fill failed", zap.Error(err))
		return nil, appErrors.Wrap(err, appErrors.ErrPDFGeneration.Code, appErrors.ErrPDFGeneration.Status, appErrors.ErrPDFGeneration.Message)
	}

	name := record.FullName()
	if name == "" {
		name = "student"
	}

	return &ExportResult{Content: content, Filename: name + ".pdf"}, nil
}

// formFields binds record attributes to the template's named text
// fields. The template repeats a few values across pages (City_2 and
// friends), so some attributes appear more than once.
func formFields(record models.Student) []pdfform.Field {
	name := record.FullName()
	address := record.AddressLine()

	return []pdfform.Field{
		{Name: "Full Legal Name", Value: name},
		{Name: "DOB", Value: record.DOB},
		{Name: "Date of Birth", Value: record.DOB},
		{Name: "Driving Permit Number or ID", Value: record.DrivingPermitNumber},
		{Name: "Phone Number 1", Value: record.PhoneNumber},
		{Name: "Address", Value: address},
		{Name: "City", Value: record.AddressCity},
		{Name: "State", Value: record.AddressState},
		{Name: "ZIP Code", Value: record.AddressZipCode},
		{Name: "City_2", Value: record.AddressCity},
		{Name: "State_2", Value: record.AddressState},
		{Name: "ZIP Code_2", Value: record.AddressZipCode},
		{Name: "Printed Name of Student", Value: name},
		{Name: "Printed Name of Student_2", Value: name},
		{Name: "LAST NAME", Value: record.LastName},
		{Name: "FIRST NAME", Value: record.FirstName},
		{Name: "MIDDLE NAME", Value: record.MiddleName},
		{Name: "Age", Value: numString(record.Age)},
		{Name: "Weight", Value: numString(record.Weight)},
		{Name: "EMAIL", Value: record.Email},
		{Name: "Eyes", Value: record.EyeColor},
		{Name: "Hair", Value: record.HairColor},
		{Name: "Height", Value: record.Height},
		{Name: "Place of Birth CITY", Value: record.BirthCity},
		{Name: "Place of Birth COUNTRY", Value: record.BirthCountry},
		{Name: "Fathers Last Name", Value: record.FatherLastName},
		{Name: "Mothers Last Name", Value: record.MotherLastName},
	}
}

// numString renders a nullable number the way it reads on the form:
// nothing when unset, no trailing zeros otherwise.
func numString(n *float64) string {
	if n == nil {
		return ""
	}
	return strconv.FormatFloat(*n, 'f', -1, 64)
}

func validationDetails(fieldErrs validator.ValidationErrors) map[string][]string {
	details := make(map[string][]string, len(fieldErrs))
	for _, fe := range fieldErrs {
		var msg string
		switch fe.Tag() {
		case "required":
			msg = "is required"
		case "gte":
			msg = fmt.Sprintf("must be greater than or equal to %s", fe.Param())
		default:
			msg = fmt.Sprintf("failed %s validation", fe.Tag())
		}
		details[fe.Field()] = append(details[fe.Field()], msg)
	}
	return details
}
