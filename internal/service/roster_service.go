package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/elsur/driving-school-api/internal/models"
	"github.com/elsur/driving-school-api/pkg/config"
	appErrors "github.com/elsur/driving-school-api/pkg/errors"
	"github.com/elsur/driving-school-api/pkg/export"
)

type rowSource interface {
	Rows(ctx context.Context) ([][]string, error)
}

type csvRenderer interface {
	Render(data export.Dataset) ([]byte, error)
}

type pdfRenderer interface {
	Render(data export.Dataset, title string) ([]byte, error)
}

// RosterFile is a rendered tabular snapshot of the roster.
type RosterFile struct {
	Content     []byte
	Filename    string
	ContentType string
}

// RosterService fetches the roster from the spreadsheet backend and maps
// it into student records. Records are read fresh on every call; only
// the caller's UI holds them between requests.
type RosterService struct {
	source rowSource
	cfg    config.GoogleConfig
	csv    csvRenderer
	pdf    pdfRenderer
	logger *zap.Logger
}

// NewRosterService constructs the roster service.
func NewRosterService(source rowSource, cfg config.GoogleConfig, logger *zap.Logger) *RosterService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &RosterService{
		source: source,
		cfg:    cfg,
		csv:    export.NewCSVExporter(),
		pdf:    export.NewPDFExporter(),
		logger: logger,
	}
}

// Students fetches and maps the full roster. Failure taxonomy: missing
// sheet ID and missing credential are configuration errors the caller can
// act on; anything from the backend collapses into one generic message
// with the cause logged here.
func (s *RosterService) Students(ctx context.Context) ([]models.Student, error) {
	if s.cfg.SheetsID == "" {
		return nil, appErrors.ErrSheetNotConfigured
	}
	if s.cfg.RefreshToken == "" {
		return nil, appErrors.ErrNotAuthorized
	}

	rows, err := s.source.Rows(ctx)
	if err != nil {
		s.logger.Error("spreadsheet fetch failed", zap.Error(err))
		return nil, appErrors.Wrap(err, appErrors.ErrSheetFetch.Code, appErrors.ErrSheetFetch.Status, appErrors.ErrSheetFetch.Message)
	}

	return mapRows(rows), nil
}

// rosterColumns drive the tabular snapshot. A subset of the record: the
// columns an instructor checks on paper.
var rosterColumns = []struct {
	header string
	value  func(models.Student) string
}{
	{"Name", func(st models.Student) string { return st.FullName() }},
	{"Email", func(st models.Student) string { return st.Email }},
	{"Phone", func(st models.Student) string { return st.PhoneNumber }},
	{"DOB", func(st models.Student) string { return st.DOB }},
	{"Permit #", func(st models.Student) string { return st.DrivingPermitNumber }},
	{"Permit Expires", func(st models.Student) string { return st.DrivingPermitExpireDate }},
	{"City", func(st models.Student) string { return st.AddressCity }},
	{"Emergency Contact", func(st models.Student) string { return st.PrimaryContactName }},
	{"Emergency Phone", func(st models.Student) string { return st.PrimaryContactPhone }},
}

// ExportRoster renders the current roster as a downloadable csv or pdf
// table. Fetch failures surface exactly as in Students.
func (s *RosterService) ExportRoster(ctx context.Context, format string) (*RosterFile, error) {
	if format == "" {
		format = "csv"
	}
	format = strings.ToLower(format)
	if format != "csv" && format != "pdf" {
		return nil, appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("unsupported format %q", format))
	}

	students, err := s.Students(ctx)
	if err != nil {
		return nil, err
	}

	dataset := export.Dataset{Headers: make([]string, 0, len(rosterColumns))}
	for _, col := range rosterColumns {
		dataset.Headers = append(dataset.Headers, col.header)
	}
	for _, st := range students {
		row := make([]string, 0, len(rosterColumns))
		for _, col := range rosterColumns {
			row = append(row, col.value(st))
		}
		dataset.Rows = append(dataset.Rows, row)
	}

	stamp := time.Now().UTC().Format("20060102")
	file := &RosterFile{Filename: fmt.Sprintf("roster_%s.%s", stamp, format)}

	switch format {
	case "pdf":
		file.ContentType = "application/pdf"
		file.Content, err = s.pdf.Render(dataset, "Student Roster")
	default:
		file.ContentType = "text/csv"
		file.Content, err = s.csv.Render(dataset)
	}
	if err != nil {
		s.logger.Error("roster export failed", zap.String("format", format), zap.Error(err))
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "Failed to export roster")
	}

	return file, nil
}
