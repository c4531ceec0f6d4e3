package models

type NotificationKind string

const (
	NotificationBuildComplete       NotificationKind = "build_complete"
	NotificationReservationComplete NotificationKind = "reservation_complete"
	NotificationSaleComplete        NotificationKind = "sale_complete"
	NotificationStepComplete        NotificationKind = "step_complete"
)

// NotificationRequest is the outbound payload produced by the dispatcher for
// a completed workflow step. BikeSummary and CustomerSummary are always
// non-empty rendered strings; missing relations are represented by
// placeholder text, never by empty fields.
type NotificationRequest struct {
	Kind            NotificationKind `json:"kind"`
	TransactionID   string           `json:"transaction_id"`
	TransactionNum  int              `json:"transaction_num"`
	StepName        string           `json:"step_name"`
	Message         string           `json:"message"`
	BikeSummary     string           `json:"bike_summary"`
	CustomerSummary string           `json:"customer_summary"`
}
