package auth

import "github.com/dztransit/logistics-api/internal/model"

// Action is what the request wants to do with a resource.
type Action string

const (
	ActionRead   Action = "read"
	ActionWrite  Action = "write"
	ActionDelete Action = "delete"

	// ActionUpdateStatus guards status-only transitions, the one write
	// a driver is allowed to make on a shipment.
	ActionUpdateStatus Action = "update_status"
)

// Resource names one API aggregate.
type Resource string

const (
	ResourceUsers        Resource = "users"
	ResourceClients      Resource = "clients"
	ResourceDrivers      Resource = "drivers"
	ResourceVehicles     Resource = "vehicles"
	ResourceDestinations Resource = "destinations"
	ResourceServiceTypes Resource = "service_types"
	ResourcePricingRules Resource = "pricing_rules"
	ResourceShipments    Resource = "shipments"
	ResourceTours        Resource = "tours"
	ResourceInvoices     Resource = "invoices"
	ResourceIncidents    Resource = "incidents"
	ResourceClaims       Resource = "claims"
)

// agentWritable is the set of aggregates a transport agent manages.
var agentWritable = map[Resource]bool{
	ResourceClients:   true,
	ResourceShipments: true,
	ResourceTours:     true,
	ResourceInvoices:  true,
	ResourceIncidents: true,
	ResourceClaims:    true,
}

// Allow is the single policy decision point, evaluated once per request
// at the API boundary. Admin has full access; manager everything except
// user management; agent reads everything and writes operational
// aggregates; driver reads shipments and tours and may update shipment
// status.
func Allow(role model.Role, action Action, resource Resource) bool {
	switch role {
	case model.RoleAdmin:
		return true
	case model.RoleManager:
		if resource == ResourceUsers {
			return action == ActionRead
		}
		return true
	case model.RoleAgent:
		if action == ActionRead {
			return resource != ResourceUsers
		}
		return agentWritable[resource]
	case model.RoleDriver:
		switch resource {
		case ResourceShipments:
			return action == ActionRead || action == ActionUpdateStatus
		case ResourceTours:
			return action == ActionRead
		}
		return false
	}
	return false
}
