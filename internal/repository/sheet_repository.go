package repository

import (
	"context"
	"fmt"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"

	"github.com/elsur/driving-school-api/pkg/config"
)

// SheetScope is the only Google API scope this tool ever requests.
const SheetScope = "https://www.googleapis.com/auth/spreadsheets.readonly"

// SheetRepository reads the roster range from the backing spreadsheet.
// It is a thin call-through: one values.get per fetch, no retries.
type SheetRepository struct {
	cfg config.GoogleConfig
}

// NewSheetRepository constructs a SheetRepository.
func NewSheetRepository(cfg config.GoogleConfig) *SheetRepository {
	return &SheetRepository{cfg: cfg}
}

// OAuthConfig builds the OAuth client shared by the fetch path and the
// consent flow.
func OAuthConfig(cfg config.GoogleConfig) *oauth2.Config {
	return &oauth2.Config{
		ClientID:     cfg.ClientID,
		ClientSecret: cfg.ClientSecret,
		RedirectURL:  cfg.RedirectURI,
		Scopes:       []string{SheetScope},
		Endpoint:     google.Endpoint,
	}
}

// Rows fetches the configured range and returns it as cell strings.
// Access tokens are minted from the stored refresh token per request.
func (r *SheetRepository) Rows(ctx context.Context) ([][]string, error) {
	client := OAuthConfig(r.cfg).Client(ctx, &oauth2.Token{RefreshToken: r.cfg.RefreshToken})

	svc, err := sheets.NewService(ctx, option.WithHTTPClient(client))
	if err != nil {
		return nil, fmt.Errorf("init sheets client: %w", err)
	}

	resp, err := svc.Spreadsheets.Values.Get(r.cfg.SheetsID, r.cfg.ReadRange).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("get values %s!%s: %w", r.cfg.SheetsID, r.cfg.ReadRange, err)
	}

	rows := make([][]string, 0, len(resp.Values))
	for _, raw := range resp.Values {
		row := make([]string, 0, len(raw))
		for _, val := range raw {
			row = append(row, cellString(val))
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// cellString renders one API cell value. The default value render option
// returns formatted strings, but the API type is interface{}.
func cellString(val interface{}) string {
	switch v := val.(type) {
	case nil:
		return ""
	case string:
		return v
	default:
		return fmt.Sprint(v)
	}
}
