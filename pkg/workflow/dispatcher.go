package workflow

import (
	"fmt"
	"strings"

	"github.com/Rice-Bikes/ricebikesbackend/pkg/models"
)

// Placeholder text for missing transaction relations. Rendered output must
// never contain empty bike or customer fields.
const (
	UnknownBike        = "Unknown bike"
	NoCustomerAssigned = "No customer assigned"
	UnknownCustomer    = "Unknown customer"
)

// checkoutStepName is the dedicated final step of the sales pipeline; its
// completion means the sale itself is done.
const checkoutStepName = "checkout"

type rule struct {
	kind    models.NotificationKind
	matches func(name string) bool
	message func(step *models.WorkflowStep, num int, bike, customer string) string
}

// Dispatcher decides whether a completed step produces an outbound
// notification. It is a pure decision table: rules are evaluated in order on
// the lowercased step name and the first match wins. Steps on the denylist
// produce nothing; everything else falls through to a generic notification
// so every completion stays observable downstream.
type Dispatcher struct {
	rules    []rule
	denylist map[string]struct{}
}

func NewDispatcher() *Dispatcher {
	return &Dispatcher{
		rules: []rule{
			{
				kind:    models.NotificationBuildComplete,
				matches: func(name string) bool { return strings.Contains(name, "build") },
				message: func(step *models.WorkflowStep, num int, bike, customer string) string {
					return fmt.Sprintf("Build complete for transaction #%d: %s for %s", num, bike, customer)
				},
			},
			{
				kind:    models.NotificationReservationComplete,
				matches: func(name string) bool { return strings.Contains(name, "reserve") || strings.Contains(name, "reservation") },
				message: func(step *models.WorkflowStep, num int, bike, customer string) string {
					return fmt.Sprintf("Reservation complete for transaction #%d: %s reserved for %s", num, bike, customer)
				},
			},
			{
				kind:    models.NotificationSaleComplete,
				matches: func(name string) bool { return name == checkoutStepName },
				message: func(step *models.WorkflowStep, num int, bike, customer string) string {
					return fmt.Sprintf("Sale complete for transaction #%d: %s sold to %s", num, bike, customer)
				},
			},
		},
		denylist: map[string]struct{}{
			"creation": {},
		},
	}
}

// Decide maps a completed step and its transaction context to at most one
// notification request. It never errors; a false second return means no
// notification should be sent.
func (d *Dispatcher) Decide(step *models.WorkflowStep, tctx *models.TransactionContext) (models.NotificationRequest, bool) {
	name := strings.ToLower(strings.TrimSpace(step.StepName))

	var (
		num      int
		bike     = UnknownBike
		customer = NoCustomerAssigned
	)

	if tctx != nil {
		num = tctx.TransactionNum
		bike = describeBike(tctx.Bike)
		customer = describeCustomer(tctx.Customer)
	}

	for _, r := range d.rules {
		if r.matches(name) {
			return models.NotificationRequest{
				Kind:            r.kind,
				TransactionID:   step.TransactionID,
				TransactionNum:  num,
				StepName:        step.StepName,
				Message:         r.message(step, num, bike, customer),
				BikeSummary:     bike,
				CustomerSummary: customer,
			}, true
		}
	}

	if _, denied := d.denylist[name]; denied {
		return models.NotificationRequest{}, false
	}

	return models.NotificationRequest{
		Kind:            models.NotificationStepComplete,
		TransactionID:   step.TransactionID,
		TransactionNum:  num,
		StepName:        step.StepName,
		Message:         fmt.Sprintf("Step %q complete for transaction #%d: %s for %s", step.StepName, num, bike, customer),
		BikeSummary:     bike,
		CustomerSummary: customer,
	}, true
}

func describeBike(bike *models.BikeSummary) string {
	if bike == nil {
		return UnknownBike
	}

	description := strings.TrimSpace(bike.Make + " " + bike.Model)
	if description == "" {
		return UnknownBike
	}

	if bike.Condition != "" {
		return fmt.Sprintf("%s (%s)", description, bike.Condition)
	}

	return description
}

func describeCustomer(customer *models.CustomerSummary) string {
	if customer == nil {
		return NoCustomerAssigned
	}

	name := strings.TrimSpace(customer.FirstName + " " + customer.LastName)
	if name == "" {
		return UnknownCustomer
	}

	return name
}
