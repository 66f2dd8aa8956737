package sheets

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/oauth2/google"
	oauthjwt "golang.org/x/oauth2/jwt"
	"google.golang.org/api/option"
	sheetsapi "google.golang.org/api/sheets/v4"
)

// Client wraps the Sheets API with service-account auth. All repositories in
// this package share one client.
type Client struct {
	svc *sheetsapi.Service
}

func NewClient(ctx context.Context, serviceAccountEmail, privateKey string, timeout time.Duration) (*Client, error) {
	conf := &oauthjwt.Config{
		Email:      serviceAccountEmail,
		PrivateKey: []byte(privateKey),
		Scopes:     []string{sheetsapi.SpreadsheetsScope},
		TokenURL:   google.JWTTokenURL,
	}

	httpClient := conf.Client(ctx)
	httpClient.Timeout = timeout

	svc, err := sheetsapi.NewService(ctx, option.WithHTTPClient(httpClient))
	if err != nil {
		return nil, fmt.Errorf("failed to create sheets service: %w", err)
	}

	return &Client{svc: svc}, nil
}

func (c *Client) readRange(ctx context.Context, spreadsheetID, readRange string) ([][]interface{}, error) {
	resp, err := c.svc.Spreadsheets.Values.Get(spreadsheetID, readRange).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to read range %s: %w", readRange, err)
	}
	return resp.Values, nil
}

func (c *Client) appendRow(ctx context.Context, spreadsheetID, rangeName string, row []interface{}) error {
	body := &sheetsapi.ValueRange{Values: [][]interface{}{row}}
	_, err := c.svc.Spreadsheets.Values.Append(spreadsheetID, rangeName, body).
		ValueInputOption("RAW").
		InsertDataOption("INSERT_ROWS").
		Context(ctx).
		Do()
	if err != nil {
		return fmt.Errorf("failed to append row to %s: %w", rangeName, err)
	}
	return nil
}

func (c *Client) updateRange(ctx context.Context, spreadsheetID, rangeName string, row []interface{}) error {
	body := &sheetsapi.ValueRange{Values: [][]interface{}{row}}
	_, err := c.svc.Spreadsheets.Values.Update(spreadsheetID, rangeName, body).
		ValueInputOption("RAW").
		Context(ctx).
		Do()
	if err != nil {
		return fmt.Errorf("failed to update range %s: %w", rangeName, err)
	}
	return nil
}

func cell(row []interface{}, i int) string {
	if i >= len(row) {
		return ""
	}
	s, ok := row[i].(string)
	if !ok {
		return fmt.Sprintf("%v", row[i])
	}
	return s
}
