package maintcert

import (
	"testing"
)

func TestParseChecklistData(t *testing.T) {
	tests := []struct {
		name       string
		raw        string
		checklist  string
		equipos    string
		evidencias string
	}{
		{"empty payload", "", "[]", "[]", "[]"},
		{"malformed payload", "{not json", "[]", "[]", "[]"},
		{"array instead of object", "[1,2]", "[]", "[]", "[]"},
		{"null fields", `{"checklist":null}`, "[]", "[]", "[]"},
		{
			"full payload",
			`{"checklist":[{"item":"Limpieza de camaras","ok":true}],"equipos":[{"modelo":"DVR"}],"evidencias":["foto1.jpg"]}`,
			`[{"item":"Limpieza de camaras","ok":true}]`,
			`[{"modelo":"DVR"}]`,
			`["foto1.jpg"]`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseChecklistData([]byte(tt.raw))
			if string(got.Checklist) != tt.checklist {
				t.Errorf("Checklist = %s, want %s", got.Checklist, tt.checklist)
			}
			if string(got.Equipos) != tt.equipos {
				t.Errorf("Equipos = %s, want %s", got.Equipos, tt.equipos)
			}
			if string(got.Evidencias) != tt.evidencias {
				t.Errorf("Evidencias = %s, want %s", got.Evidencias, tt.evidencias)
			}
		})
	}
}
