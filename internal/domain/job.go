package domain

import "encoding/json"

// JobRecord is the canonical output entity for one job posting. Fields are
// filled from the search card first, then from the detail page under the
// engine's fill-if-absent policy. A record without a title is never emitted.
type JobRecord struct {
	ID                 string `json:"id,omitempty"`
	Title              string `json:"title"`
	Company            string `json:"company,omitempty"`
	CompanyURL         string `json:"company_url,omitempty"`
	CompanyLogoURL     string `json:"company_logo_url,omitempty"`
	Location           string `json:"location,omitempty"`
	WorkType           string `json:"work_type,omitempty"`
	WorkArrangement    string `json:"work_arrangement,omitempty"`
	Salary             string `json:"salary,omitempty"`
	Summary            string `json:"summary,omitempty"`
	Description        string `json:"description,omitempty"`
	CompanyDescription string `json:"company_description,omitempty"`
	Requirements       string `json:"requirements,omitempty"`
	Benefits           string `json:"benefits,omitempty"`
	SeniorityLevel     string `json:"seniority_level,omitempty"`
	ApplicationMethod  string `json:"application_method,omitempty"`
	// PostedAt is ISO-8601 with second precision when the source text could
	// be parsed, otherwise the trimmed source text verbatim.
	PostedAt string `json:"posted_at,omitempty"`
	ApplyURL string `json:"apply_url,omitempty"`
	JobURL   string `json:"job_url,omitempty"`
	Source   string `json:"source,omitempty"`
}

// ToMap renders the record under its stable snake_case key names.
func (j JobRecord) ToMap() map[string]any {
	b, _ := json.Marshal(j)
	var m map[string]any
	_ = json.Unmarshal(b, &m)
	return m
}

// FromMap is the inverse of ToMap. Unknown keys are ignored.
func FromMap(m map[string]any) (JobRecord, error) {
	b, err := json.Marshal(m)
	if err != nil {
		return JobRecord{}, err
	}
	var j JobRecord
	if err := json.Unmarshal(b, &j); err != nil {
		return JobRecord{}, err
	}
	return j, nil
}
