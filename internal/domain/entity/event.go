package entity

// Topic names an event channel. The names are relied upon by UI surfaces.
type Topic string

const (
	TopicCartUpdated           Topic = "cartUpdated"
	TopicWishlistUpdated       Topic = "wishlistUpdated"
	TopicHeaderCartLoading     Topic = "headerCartLoading"
	TopicHeaderWishlistLoading Topic = "headerWishlistLoading"
	TopicLocationUpdated       Topic = "locationUpdated"
	TopicHomeLayoutInvalidate  Topic = "homeLayoutInvalidate"
	TopicDeliveryFlowChanged   Topic = "deliveryFlowChanged"
)

// String returns the wire name of the topic.
func (t Topic) String() string {
	return string(t)
}

// Event is one notification on the bus, scoped to the client it concerns.
type Event struct {
	Topic    Topic  `json:"topic"`
	ClientID string `json:"clientId"`
	Payload  any    `json:"payload,omitempty"`
}

// CartUpdatedPayload optionally carries the new cart count.
type CartUpdatedPayload struct {
	CartCount *int `json:"cartCount,omitempty"`
}

// LoadingPayload toggles a loading affordance.
type LoadingPayload struct {
	Loading bool `json:"loading"`
}

// LocationUpdatedPayload announces a newly confirmed delivery location.
type LocationUpdatedPayload struct {
	Lat   float64 `json:"lat"`
	Long  float64 `json:"long"`
	Label string  `json:"label"`
}

// DeliveryFlowChangedPayload announces a delivery check flow transition.
type DeliveryFlowChangedPayload struct {
	State FlowState `json:"state"`
}
