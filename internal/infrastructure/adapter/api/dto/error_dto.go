package dto

// ErrorResponse represents a standardized error response for the API
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	// CurrentVersion is set on version conflicts so the client can re-read
	CurrentVersion uint64 `json:"currentVersion,omitempty"`
	// MinimumBid is set on rejected bids, formatted as a 2-decimal amount
	MinimumBid string `json:"minimumBid,omitempty"`
}
