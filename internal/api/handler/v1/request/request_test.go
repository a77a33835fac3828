package request

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoreRequest_Validate(t *testing.T) {
	tests := []struct {
		name    string
		req     StoreRequest
		wantErr bool
	}{
		{"valid", StoreRequest{Name: "Main St"}, false},
		{"empty", StoreRequest{Name: ""}, true},
		{"blank", StoreRequest{Name: "   "}, true},
		{"no-break spaces only", StoreRequest{Name: "\u00a0\u00a0"}, true},
		{"ideographic space only", StoreRequest{Name: "\u3000"}, true},
		{"inner no-break space", StoreRequest{Name: "Main\u00a0St"}, false},
		{"NUL byte", StoreRequest{Name: "a\x00b"}, true},
		{"max length", StoreRequest{Name: strings.Repeat("a", 255)}, false},
		{"multibyte at max length", StoreRequest{Name: strings.Repeat("é", 255)}, false},
		{"too long", StoreRequest{Name: strings.Repeat("a", 256)}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestEmployeeRequest_Validate(t *testing.T) {
	assert.NoError(t, (&EmployeeRequest{Name: "Ana"}).Validate())

	err := (&EmployeeRequest{}).Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "name")
}

func decodeInventory(t *testing.T, body string) InventoryRequest {
	t.Helper()

	var req InventoryRequest
	require.NoError(t, json.Unmarshal([]byte(body), &req))
	return req
}

func TestInventoryRequest_Validate(t *testing.T) {
	tests := []struct {
		name      string
		body      string
		wantField string
	}{
		{
			name: "valid",
			body: `{"store_id":1,"employee_id":2,"date":"2024-05-01","flavor":"mint","is_season_flavor":true,"quantity":3}`,
		},
		{
			name: "false and zero are present values",
			body: `{"store_id":1,"employee_id":2,"date":"2024-05-01","flavor":"mint","is_season_flavor":false,"quantity":0}`,
		},
		{
			name: "negative quantity",
			body: `{"store_id":1,"employee_id":2,"date":"2024-05-01","flavor":"mint","is_season_flavor":false,"quantity":-4}`,
		},
		{
			name:      "missing store_id",
			body:      `{"employee_id":2,"date":"2024-05-01","flavor":"mint","is_season_flavor":true,"quantity":3}`,
			wantField: "store_id",
		},
		{
			name:      "zero employee_id",
			body:      `{"store_id":1,"employee_id":0,"date":"2024-05-01","flavor":"mint","is_season_flavor":true,"quantity":3}`,
			wantField: "employee_id",
		},
		{
			name:      "bad date",
			body:      `{"store_id":1,"employee_id":2,"date":"01/05/2024","flavor":"mint","is_season_flavor":true,"quantity":3}`,
			wantField: "date",
		},
		{
			name:      "missing flavor",
			body:      `{"store_id":1,"employee_id":2,"date":"2024-05-01","is_season_flavor":true,"quantity":3}`,
			wantField: "flavor",
		},
		{
			name:      "NUL in flavor",
			body:      `{"store_id":1,"employee_id":2,"date":"2024-05-01","flavor":"mi\u0000nt","is_season_flavor":true,"quantity":3}`,
			wantField: "flavor",
		},
		{
			name:      "null is_season_flavor",
			body:      `{"store_id":1,"employee_id":2,"date":"2024-05-01","flavor":"mint","is_season_flavor":null,"quantity":3}`,
			wantField: "is_season_flavor",
		},
		{
			name:      "missing quantity",
			body:      `{"store_id":1,"employee_id":2,"date":"2024-05-01","flavor":"mint","is_season_flavor":true}`,
			wantField: "quantity",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := decodeInventory(t, tt.body)
			err := req.Validate()
			if tt.wantField == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantField)
		})
	}
}

func TestInventoryRequest_ParsedDate(t *testing.T) {
	req := decodeInventory(t, `{"date":"2024-02-29"}`)

	date := req.ParsedDate()
	assert.Equal(t, 2024, date.Year())
	assert.Equal(t, "February", date.Month().String())
	assert.Equal(t, 29, date.Day())
}
