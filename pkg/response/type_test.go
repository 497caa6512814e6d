package response_test

import (
	"encoding/json"
	"testing"
	"time"

	"collab-dashboard/pkg/response"
)

func TestDateTimeJSON(t *testing.T) {
	tests := []struct {
		name string
		in   time.Time
		want string
	}{
		{"utc", time.Date(2024, 5, 1, 15, 30, 0, 0, time.UTC), `"2024-05-01 15:30:00"`},
		{"offset zone is rendered in utc", time.Date(2024, 5, 1, 16, 30, 0, 0, time.FixedZone("CET", 3600)), `"2024-05-01 15:30:00"`},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			b, err := json.Marshal(response.DateTime(tc.in))
			if err != nil {
				t.Fatalf("unexpected error marshaling DateTime: %v", err)
			}
			if string(b) != tc.want {
				t.Fatalf("expected %s, got %s", tc.want, b)
			}
		})
	}
}
