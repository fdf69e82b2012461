package gateway

import (
	"encoding/json"
	"testing"
)

func decodeNames(t *testing.T, raw json.RawMessage) []string {
	t.Helper()
	var records []struct {
		Name string `json:"name"`
	}
	if err := json.Unmarshal(raw, &records); err != nil {
		t.Fatalf("decode extracted collection: %v", err)
	}
	names := make([]string, len(records))
	for i, r := range records {
		names[i] = r.Name
	}
	return names
}

func TestExtractCollection_Shapes(t *testing.T) {
	cases := []struct {
		name string
		body string
		want string
	}{
		{
			"nested under data",
			`{"success":true,"data":{"medicines":[{"name":"nested"}]}}`,
			"nested",
		},
		{
			"top-level key",
			`{"success":true,"medicines":[{"name":"flat"}]}`,
			"flat",
		},
		{
			"data as array",
			`{"success":true,"data":[{"name":"dataarr"}]}`,
			"dataarr",
		},
		{
			"bare array",
			`[{"name":"bare"}]`,
			"bare",
		},
		{
			"nested wins over top-level",
			`{"data":{"medicines":[{"name":"nested"}]},"medicines":[{"name":"flat"}]}`,
			"nested",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			raw, err := extractCollection([]byte(tc.body), "medicines")
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			names := decodeNames(t, raw)
			if len(names) != 1 || names[0] != tc.want {
				t.Fatalf("extracted %v, want [%s]", names, tc.want)
			}
		})
	}
}

func TestExtractCollection_UnrecognizedFailsLoudly(t *testing.T) {
	bodies := []string{
		`{"success":true,"stuff":[{"name":"x"}]}`,
		`{"success":true,"data":{"orders":[]}}`,
		`"just a string"`,
		`42`,
	}
	for _, body := range bodies {
		if _, err := extractCollection([]byte(body), "medicines"); err == nil {
			t.Errorf("body %s: expected error, got none", body)
		}
	}
}

func TestExtractCollection_RejectedEnvelope(t *testing.T) {
	_, err := extractCollection([]byte(`{"success":false,"error":"database down"}`), "medicines")
	if err == nil || err.Error() != "database down" {
		t.Fatalf("err = %v, want backend message", err)
	}
}

func TestExtractRecord(t *testing.T) {
	raw, err := extractRecord([]byte(`{"success":true,"data":{"name":"rec"}}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var rec struct {
		Name string `json:"name"`
	}
	if err := json.Unmarshal(raw, &rec); err != nil || rec.Name != "rec" {
		t.Fatalf("decoded %+v (err %v), want name rec", rec, err)
	}

	raw, err = extractRecord([]byte(`{"name":"bareobj"}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := json.Unmarshal(raw, &rec); err != nil || rec.Name != "bareobj" {
		t.Fatalf("decoded %+v (err %v), want name bareobj", rec, err)
	}

	if _, err := extractRecord([]byte(`{"success":false,"message":"no"}`)); err == nil {
		t.Fatal("expected rejection error")
	}
}
