package notify

import (
	"context"
	"fmt"
	"strings"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/endpoints"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"

	"github.com/akinloluwami/formdrop/internal/config"
)

// SheetsToken is the OAuth state stored with a Google Sheets integration.
type SheetsToken struct {
	AccessToken  string
	RefreshToken string
	Expiry       *time.Time
}

// Sheets appends rows to Google spreadsheets on behalf of form owners.
type Sheets struct {
	oauth    *oauth2.Config
	endpoint string
}

// NewSheets creates a Sheets client. endpoint overrides the API base URL
// and is empty in production.
func NewSheets(cfg config.GoogleConfig, endpoint string) *Sheets {
	return &Sheets{
		oauth: &oauth2.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			Endpoint:     endpoints.Google,
			Scopes:       []string{sheets.SpreadsheetsScope},
		},
		endpoint: endpoint,
	}
}

// SheetColumn is one named cell of a record.
type SheetColumn struct {
	Name  string
	Value any
}

// AppendRecord appends cols as one row of sheetName (the first sheet when
// empty), aligned to the header in the sheet's first row. Names missing from
// the header are added to its right; an empty sheet gets a header first.
// The access token is refreshed when it has expired and a refresh token is
// available.
func (s *Sheets) AppendRecord(ctx context.Context, tok SheetsToken, spreadsheetID, sheetName string, cols []SheetColumn) error {
	svc, err := s.service(ctx, tok)
	if err != nil {
		return err
	}

	headerRange := a1(sheetName, "1:1")
	resp, err := svc.Spreadsheets.Values.Get(spreadsheetID, headerRange).Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("sheets: read header: %w", err)
	}

	var header []string
	if len(resp.Values) > 0 {
		for _, v := range resp.Values[0] {
			header = append(header, strings.TrimSpace(fmt.Sprint(v)))
		}
	}

	newHeader, row := AlignRow(header, cols)
	if len(newHeader) != len(header) {
		values := make([]any, len(newHeader))
		for i, name := range newHeader {
			values[i] = name
		}
		_, err = svc.Spreadsheets.Values.Update(spreadsheetID, headerRange, &sheets.ValueRange{
			Values: [][]any{values},
		}).ValueInputOption("RAW").Context(ctx).Do()
		if err != nil {
			return fmt.Errorf("sheets: write header: %w", err)
		}
	}

	_, err = svc.Spreadsheets.Values.Append(spreadsheetID, a1(sheetName, "A1"), &sheets.ValueRange{
		Values: [][]any{row},
	}).ValueInputOption("USER_ENTERED").InsertDataOption("INSERT_ROWS").Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("sheets: append: %w", err)
	}
	return nil
}

// AlignRow places each column's value under its name in header. Names not in
// header are appended to it in cols order; cells with no value are empty.
func AlignRow(header []string, cols []SheetColumn) ([]string, []any) {
	out := append([]string(nil), header...)
	index := make(map[string]int, len(out)+len(cols))
	for i, name := range out {
		if _, dup := index[name]; !dup {
			index[name] = i
		}
	}
	for _, c := range cols {
		if _, ok := index[c.Name]; !ok {
			index[c.Name] = len(out)
			out = append(out, c.Name)
		}
	}

	row := make([]any, len(out))
	for i := range row {
		row[i] = ""
	}
	for _, c := range cols {
		row[index[c.Name]] = c.Value
	}
	return out, row
}

func (s *Sheets) service(ctx context.Context, tok SheetsToken) (*sheets.Service, error) {
	t := &oauth2.Token{
		AccessToken:  tok.AccessToken,
		RefreshToken: tok.RefreshToken,
		TokenType:    "Bearer",
	}
	if tok.Expiry != nil {
		t.Expiry = *tok.Expiry
	}

	opts := []option.ClientOption{option.WithHTTPClient(s.oauth.Client(ctx, t))}
	if s.endpoint != "" {
		opts = append(opts, option.WithEndpoint(s.endpoint))
	}

	svc, err := sheets.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("sheets: new service: %w", err)
	}
	return svc, nil
}

func a1(sheetName, cells string) string {
	if sheetName == "" {
		return cells
	}
	return "'" + strings.ReplaceAll(sheetName, "'", "''") + "'!" + cells
}
