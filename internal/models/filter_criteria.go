package models

// FilterCriteria holds the search term and status selection for a list view.
// Values are immutable: every update returns a new FilterCriteria.
type FilterCriteria struct {
	SearchTerm   string `json:"search_term"`
	StatusFilter string `json:"status_filter"`
}

// NewFilterCriteria returns criteria that match every record
func NewFilterCriteria() FilterCriteria {
	return FilterCriteria{StatusFilter: StatusFilterAll}
}

// WithSearchTerm returns a copy with the search term replaced
func (c FilterCriteria) WithSearchTerm(term string) FilterCriteria {
	c.SearchTerm = term
	return c
}

// WithStatus returns a copy with the status filter replaced
func (c FilterCriteria) WithStatus(status string) FilterCriteria {
	c.StatusFilter = status
	return c
}

// Reset returns the initial criteria
func (c FilterCriteria) Reset() FilterCriteria {
	return NewFilterCriteria()
}

// Normalize maps an unset status filter to "all".
// Request parsing uses it so an omitted status query parameter behaves like "all".
func (c FilterCriteria) Normalize() FilterCriteria {
	if c.StatusFilter == "" {
		c.StatusFilter = StatusFilterAll
	}
	return c
}

// IsEmpty reports whether the criteria would keep every record
func (c FilterCriteria) IsEmpty() bool {
	return c.SearchTerm == "" && c.StatusFilter == StatusFilterAll
}
