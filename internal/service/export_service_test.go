package service

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/elsur/driving-school-api/internal/dto"
	appErrors "github.com/elsur/driving-school-api/pkg/errors"
	"github.com/elsur/driving-school-api/pkg/pdfform"
)

type mockFiller struct {
	lastFields []pdfform.Field
	out        []byte
	err        error
	calls      int
}

func (m *mockFiller) Fill(fields []pdfform.Field) ([]byte, error) {
	m.calls++
	m.lastFields = fields
	if m.err != nil {
		return nil, m.err
	}
	if m.out != nil {
		return m.out, nil
	}
	return []byte("%PDF-fake"), nil
}

func strPtr(s string) *string   { return &s }
func numPtr(n float64) *float64 { return &n }

func fullExportRequest() dto.ExportStudentRequest {
	return dto.ExportStudentRequest{
		Email:                   strPtr("maria@test.com"),
		LastName:                strPtr("Garcia"),
		FirstName:               strPtr("Maria"),
		MiddleName:              strPtr("L"),
		DOB:                     strPtr("01/15/1995"),
		BirthCity:               strPtr("Miami"),
		BirthState:              strPtr("FL"),
		BirthCounty:             strPtr("Miami-Dade"),
		BirthCountry:            strPtr("USA"),
		AddressStreet:           strPtr("123 Main St"),
		AddressApt:              strPtr("2A"),
		AddressCounty:           strPtr("Miami-Dade"),
		AddressCity:             strPtr("Miami"),
		AddressState:            strPtr("FL"),
		AddressZipCode:          strPtr("33101"),
		PhoneNumber:             strPtr("3051234567"),
		DrivingPermitNumber:     strPtr("D1234567"),
		DrivingPermitState:      strPtr("FL"),
		DrivingPermitIssueDate:  strPtr("01/01/2020"),
		DrivingPermitExpireDate: strPtr("01/01/2026"),
		Age:                     numPtr(29),
		Gender:                  strPtr("Female"),
		EyeColor:                strPtr("Brown"),
		HairColor:               strPtr("Black"),
		Race:                    strPtr("Hispanic"),
		Ethnicity:               strPtr("Hispanic"),
		Weight:                  numPtr(130),
		Height:                  strPtr(`5'4"`),
		FatherLastName:          strPtr("Garcia"),
		MotherLastName:          strPtr("Lopez"),
		PrimaryContactName:      strPtr("Juan Garcia"),
		PrimaryContactPhone:     strPtr("3059876543"),
		PrimaryContactAddress:   strPtr("123 Main St Miami FL"),
		SecondaryContactName:    strPtr(""),
		SecondaryContactPhone:   strPtr(""),
		SecondaryContactAddress: strPtr(""),
	}
}

func fieldValue(t *testing.T, fields []pdfform.Field, name string) string {
	t.Helper()
	for _, fld := range fields {
		if fld.Name == name {
			return fld.Value
		}
	}
	t.Fatalf("field %q not bound", name)
	return ""
}

func TestExportServiceGenerate(t *testing.T) {
	filler := &mockFiller{}
	svc := NewExportService(filler, NewValidator(), zap.NewNop())

	result, err := svc.Generate(context.Background(), fullExportRequest())
	require.NoError(t, err)

	assert.Equal(t, "Maria L Garcia.pdf", result.Filename)
	assert.Equal(t, []byte("%PDF-fake"), result.Content)

	assert.Equal(t, "Maria L Garcia", fieldValue(t, filler.lastFields, "Full Legal Name"))
	assert.Equal(t, "123 Main St 2A", fieldValue(t, filler.lastFields, "Address"))
	assert.Equal(t, "29", fieldValue(t, filler.lastFields, "Age"))
	assert.Equal(t, "130", fieldValue(t, filler.lastFields, "Weight"))
	assert.Equal(t, "maria@test.com", fieldValue(t, filler.lastFields, "EMAIL"))
}

func TestExportServiceFilenameFallback(t *testing.T) {
	filler := &mockFiller{}
	svc := NewExportService(filler, NewValidator(), zap.NewNop())

	req := fullExportRequest()
	req.FirstName = strPtr("")
	req.MiddleName = strPtr("")
	req.LastName = strPtr("")

	result, err := svc.Generate(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, "student.pdf", result.Filename)
}

func TestExportServiceNameSkipsEmptyParts(t *testing.T) {
	filler := &mockFiller{}
	svc := NewExportService(filler, NewValidator(), zap.NewNop())

	req := fullExportRequest()
	req.MiddleName = strPtr("")

	result, err := svc.Generate(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, "Maria Garcia.pdf", result.Filename)
}

func TestExportServiceAddressWithoutApt(t *testing.T) {
	filler := &mockFiller{}
	svc := NewExportService(filler, NewValidator(), zap.NewNop())

	req := fullExportRequest()
	req.AddressApt = strPtr("")

	_, err := svc.Generate(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, "123 Main St", fieldValue(t, filler.lastFields, "Address"))
}

func TestExportServiceNilNumbersRenderEmpty(t *testing.T) {
	filler := &mockFiller{}
	svc := NewExportService(filler, NewValidator(), zap.NewNop())

	req := fullExportRequest()
	req.Age = nil
	req.Weight = nil

	_, err := svc.Generate(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, "", fieldValue(t, filler.lastFields, "Age"))
	assert.Equal(t, "", fieldValue(t, filler.lastFields, "Weight"))
}

func TestExportServiceMissingFields(t *testing.T) {
	filler := &mockFiller{}
	svc := NewExportService(filler, NewValidator(), zap.NewNop())

	req := fullExportRequest()
	req.Email = nil
	req.PhoneNumber = nil

	_, err := svc.Generate(context.Background(), req)
	require.Error(t, err)

	appErr := appErrors.FromError(err)
	assert.Equal(t, http.StatusBadRequest, appErr.Status)
	assert.Equal(t, "Invalid request body", appErr.Message)
	assert.Contains(t, appErr.Details, "email")
	assert.Contains(t, appErr.Details, "phoneNumber")
	assert.Zero(t, filler.calls)
}

func TestExportServiceNegativeAgeRejected(t *testing.T) {
	svc := NewExportService(&mockFiller{}, NewValidator(), zap.NewNop())

	req := fullExportRequest()
	req.Age = numPtr(-1)

	_, err := svc.Generate(context.Background(), req)
	require.Error(t, err)
	assert.Contains(t, appErrors.FromError(err).Details, "age")
}

func TestExportServiceEmptyStringsSatisfyShape(t *testing.T) {
	filler := &mockFiller{}
	svc := NewExportService(filler, NewValidator(), zap.NewNop())

	req := fullExportRequest()
	req.Email = strPtr("")
	req.Gender = strPtr("")

	_, err := svc.Generate(context.Background(), req)
	require.NoError(t, err)
}

func TestExportServiceFillFailure(t *testing.T) {
	filler := &mockFiller{err: errors.New("template corrupt")}
	svc := NewExportService(filler, NewValidator(), zap.NewNop())

	_, err := svc.Generate(context.Background(), fullExportRequest())
	require.Error(t, err)

	appErr := appErrors.FromError(err)
	assert.Equal(t, http.StatusInternalServerError, appErr.Status)
	assert.Equal(t, "Failed to generate PDF", appErr.Message)
}

func TestFormFieldsDeterministic(t *testing.T) {
	record := fullExportRequest().ToStudent()
	assert.Equal(t, formFields(record), formFields(record))
	assert.Len(t, formFields(record), 27)
}
