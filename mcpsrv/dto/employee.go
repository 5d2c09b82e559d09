package dto

// Employee is the wire shape returned by MCP tools. Date and phone are
// already formatted for display; Photo is the resolved image reference.
type Employee struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Job           string `json:"job"`
	AdmissionDate string `json:"admission_date"`
	Phone         string `json:"phone"`
	RawPhone      string `json:"raw_phone"`
	Photo         string `json:"photo"`
}
