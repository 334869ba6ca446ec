package maintcert

import (
	"encoding/json"
)

var emptyList = json.RawMessage("[]")

// ChecklistData is the structured payload stored with a certificate.
// Items are kept as raw json so the payload round-trips without the core knowing its shape.
type ChecklistData struct {
	Checklist  json.RawMessage `json:"checklist"`
	Equipos    json.RawMessage `json:"equipos"`
	Evidencias json.RawMessage `json:"evidencias"`
}

// ParseChecklistData never fails: an empty or malformed payload yields empty lists.
func ParseChecklistData(raw []byte) ChecklistData {
	var data ChecklistData
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &data); err != nil {
			data = ChecklistData{}
		}
	}

	data.Checklist = orEmpty(data.Checklist)
	data.Equipos = orEmpty(data.Equipos)
	data.Evidencias = orEmpty(data.Evidencias)

	return data
}

func orEmpty(v json.RawMessage) json.RawMessage {
	if len(v) == 0 || string(v) == "null" {
		return emptyList
	}
	return v
}
