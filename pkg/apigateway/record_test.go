package apigateway_test

import (
	"encoding/json"
	"errors"
	"testing"

	"collab-dashboard/pkg/apigateway"
)

func TestDecodeCollection(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want int
	}{
		{"bare", `[{"id":1},{"id":2}]`, 2},
		{"envelope", `{"data":[{"id":1}]}`, 1},
		{"envelope without array", `{"data":{"id":1}}`, 0},
		{"scalar", `42`, 0},
		{"empty body", ``, 0},
		{"null", `null`, 0},
		{"non-object elements dropped", `[{"id":1}, 3, "x"]`, 1},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := apigateway.DecodeCollection(json.RawMessage(tc.raw))
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(got) != tc.want {
				t.Errorf("expected %d records, got %d", tc.want, len(got))
			}
		})
	}

	t.Run("malformed", func(t *testing.T) {
		_, err := apigateway.DecodeCollection(json.RawMessage(`{"data":[`))
		if !errors.Is(err, apigateway.ErrMalformedBody) {
			t.Errorf("expected ErrMalformedBody, got %v", err)
		}
	})
}

func TestRawRecordAccessors(t *testing.T) {
	rec, err := apigateway.DecodeRecord(json.RawMessage(
		`{"id":null,"idListeDiffusion":"17","n":3.0,"big":9007199254740993,"s":"x","b":false,"arr":[1]}`,
	))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if id, ok := rec.Int64("id", "idListeDiffusion"); !ok || id != 17 {
		t.Errorf("null must fall through to the next key: got %d, %v", id, ok)
	}
	if n, ok := rec.Int64("n"); !ok || n != 3 {
		t.Errorf("expected 3, got %d", n)
	}
	if n, _ := rec.Int64("big"); n != 9007199254740993 {
		t.Errorf("expected exact large id, got %d", n)
	}
	if _, ok := rec.Lookup("id"); ok {
		t.Errorf("null value must count as absent")
	}
	if b, ok := rec.Bool("b"); !ok || b {
		t.Errorf("expected present false, got %v, %v", b, ok)
	}
	if _, ok := rec.String("n"); ok {
		t.Errorf("number must not read as string")
	}
	if s, ok := rec.Slice("arr"); !ok || len(s) != 1 {
		t.Errorf("expected slice of 1, got %v", s)
	}
}
