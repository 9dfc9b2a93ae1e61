package models

import (
	"encoding/json"
	"testing"
)

func TestIDUnmarshalJSON(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  ID
	}{
		{"string", `"abc-123"`, "abc-123"},
		{"integer", `1718900000000`, "1718900000000"},
		{"float_kept_verbatim", `17189.5`, "17189.5"},
		{"null", `null`, ""},
		{"empty_string", `""`, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var id ID
			if err := json.Unmarshal([]byte(tt.input), &id); err != nil {
				t.Fatalf("unmarshal %s: %v", tt.input, err)
			}
			if id != tt.want {
				t.Errorf("expected %q, got %q", tt.want, id)
			}
		})
	}

	t.Run("object_rejected", func(t *testing.T) {
		var id ID
		if err := json.Unmarshal([]byte(`{"x":1}`), &id); err == nil {
			t.Error("expected error for object identifier")
		}
	})
}

func TestIDRoundTripInRecord(t *testing.T) {
	raw := `{"id": 42, "labour_id": "w1", "date": "2026-01-01", "status": "Present"}`

	var entry Attendance
	if err := json.Unmarshal([]byte(raw), &entry); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if entry.ID != "42" {
		t.Errorf("expected numeric id normalized to \"42\", got %q", entry.ID)
	}
	if entry.LabourID != "w1" {
		t.Errorf("expected labour_id w1, got %q", entry.LabourID)
	}
}
