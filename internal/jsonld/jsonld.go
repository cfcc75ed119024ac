// Package jsonld decodes schema.org JobPosting blocks embedded in job detail
// pages. Real-world payloads are loose: @type can be a string or a list, the
// posting can sit at the top level, inside an array, or under @graph, and
// several fields switch between scalar and object shapes. Everything here
// tolerates that.
package jsonld

import (
	"bytes"
	"encoding/json"
	"strings"
)

type JobPosting struct {
	Type               Types           `json:"@type"`
	Title              string          `json:"title"`
	Description        string          `json:"description"` // HTML fragment
	DatePosted         string          `json:"datePosted"`
	ValidThrough       string          `json:"validThrough"`
	EmploymentType     StringList      `json:"employmentType"`
	HiringOrganization *Organization   `json:"hiringOrganization"`
	JobLocation        Places          `json:"jobLocation"`
	BaseSalary         *MonetaryAmount `json:"baseSalary"`
	Identifier         *Identifier     `json:"identifier"`
	DirectApply        bool            `json:"directApply"`
	URL                string          `json:"url"`
}

func (p *JobPosting) IsJobPosting() bool {
	for _, t := range p.Type {
		if strings.EqualFold(t, "JobPosting") {
			return true
		}
	}
	return false
}

type Organization struct {
	Name   string `json:"name"`
	SameAs string `json:"sameAs"`
	URL    string `json:"url"`
	Logo   Logo   `json:"logo"`
}

// Logo is either a bare URL string or an ImageObject.
type Logo struct {
	URL string
}

func (l *Logo) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || string(b) == "null" {
		return nil
	}
	if b[0] == '"' {
		return json.Unmarshal(b, &l.URL)
	}
	var obj struct {
		URL string `json:"url"`
	}
	if err := json.Unmarshal(b, &obj); err != nil {
		return err
	}
	l.URL = obj.URL
	return nil
}

type Place struct {
	Type    Types          `json:"@type"`
	Name    string         `json:"name"`
	Address *PostalAddress `json:"address"`
}

type PostalAddress struct {
	Locality   string `json:"addressLocality"`
	Region     string `json:"addressRegion"`
	PostalCode string `json:"postalCode"`
	Country    string `json:"addressCountry"`
}

type MonetaryAmount struct {
	Currency string             `json:"currency"`
	Value    *QuantitativeValue `json:"value"`
}

type QuantitativeValue struct {
	Value    *float64 `json:"value"`
	MinValue *float64 `json:"minValue"`
	MaxValue *float64 `json:"maxValue"`
	UnitText string   `json:"unitText"`
}

type Identifier struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// Types accepts "JobPosting" and ["JobPosting", ...] alike.
type Types []string

func (t *Types) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || string(b) == "null" {
		return nil
	}
	if b[0] == '[' {
		var list []string
		if err := json.Unmarshal(b, &list); err != nil {
			return err
		}
		*t = list
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	*t = Types{s}
	return nil
}

// StringList accepts a scalar string or a list of strings.
type StringList []string

func (s *StringList) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || string(b) == "null" {
		return nil
	}
	if b[0] == '[' {
		var list []string
		if err := json.Unmarshal(b, &list); err != nil {
			return err
		}
		*s = list
		return nil
	}
	var one string
	if err := json.Unmarshal(b, &one); err != nil {
		return err
	}
	*s = StringList{one}
	return nil
}

// Places accepts a single Place object or a list of them.
type Places []Place

func (p *Places) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || string(b) == "null" {
		return nil
	}
	if b[0] == '[' {
		var list []Place
		if err := json.Unmarshal(b, &list); err != nil {
			return err
		}
		*p = list
		return nil
	}
	var one Place
	if err := json.Unmarshal(b, &one); err != nil {
		return err
	}
	*p = Places{one}
	return nil
}

// DecodePostings extracts every JobPosting from one script payload. It looks
// at the top-level value, array elements, and @graph members. A payload with
// no posting returns an empty slice. Malformed JSON returns nil as well: a
// broken script tag is a parse absence, not an error.
func DecodePostings(payload []byte) []JobPosting {
	var out []JobPosting

	var collect func(raw json.RawMessage)
	collect = func(raw json.RawMessage) {
		raw = bytes.TrimSpace(raw)
		if len(raw) == 0 {
			return
		}
		switch raw[0] {
		case '[':
			var items []json.RawMessage
			if err := json.Unmarshal(raw, &items); err != nil {
				return
			}
			for _, it := range items {
				collect(it)
			}
		case '{':
			var posting JobPosting
			if err := json.Unmarshal(raw, &posting); err == nil && posting.IsJobPosting() {
				out = append(out, posting)
				return
			}
			var graph struct {
				Graph []json.RawMessage `json:"@graph"`
			}
			if err := json.Unmarshal(raw, &graph); err == nil {
				for _, it := range graph.Graph {
					collect(it)
				}
			}
		}
	}

	collect(payload)
	return out
}
