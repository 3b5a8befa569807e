package models

// CustomerPage is one window of a filtered customer list.
// Total counts the whole collection and Matched the records passing the filter.
type CustomerPage struct {
	Items    []Customer
	Total    int
	Matched  int
	Offset   int
	Limit    int
	Criteria FilterCriteria
}

// VehiclePage is one window of a filtered vehicle list
type VehiclePage struct {
	Items    []Vehicle
	Total    int
	Matched  int
	Offset   int
	Limit    int
	Criteria FilterCriteria
}
