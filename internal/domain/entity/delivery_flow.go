package entity

// FlowState is a state of the delivery check flow.
type FlowState string

const (
	FlowStateIdle                   FlowState = "idle"
	FlowStateSearching              FlowState = "searching"
	FlowStatePlaceSelected          FlowState = "place_selected"
	FlowStateUsingCurrentLocation   FlowState = "using_current_location"
	FlowStateCheckingServiceability FlowState = "checking_serviceability"
	FlowStateResolved               FlowState = "resolved"
	FlowStateRejected               FlowState = "rejected"
)

// FlowSnapshot is a read-only view of a delivery check flow.
type FlowSnapshot struct {
	State      FlowState        `json:"state"`
	Open       bool             `json:"open"`
	Query      string           `json:"query"`
	Candidates []PlaceCandidate `json:"candidates"`
	Message    string           `json:"message,omitempty"`
}

// CheckOutcome is the result of one serviceability attempt.
type CheckOutcome struct {
	State    FlowState       `json:"state"`
	Message  string          `json:"message,omitempty"`
	Location *StoredLocation `json:"location,omitempty"`
}

// Resolved reports whether the attempt confirmed a location.
func (o CheckOutcome) Resolved() bool {
	return o.State == FlowStateResolved
}
