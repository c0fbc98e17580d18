package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dztransit/logistics-api/internal/model"
)

func TestAllow(t *testing.T) {
	cases := []struct {
		name     string
		role     model.Role
		action   Action
		resource Resource
		want     bool
	}{
		{"admin manages users", model.RoleAdmin, ActionWrite, ResourceUsers, true},
		{"admin deletes invoices", model.RoleAdmin, ActionDelete, ResourceInvoices, true},
		{"manager reads users", model.RoleManager, ActionRead, ResourceUsers, true},
		{"manager cannot create users", model.RoleManager, ActionWrite, ResourceUsers, false},
		{"manager manages vehicles", model.RoleManager, ActionWrite, ResourceVehicles, true},
		{"agent reads pricing rules", model.RoleAgent, ActionRead, ResourcePricingRules, true},
		{"agent cannot edit pricing rules", model.RoleAgent, ActionWrite, ResourcePricingRules, false},
		{"agent cannot read users", model.RoleAgent, ActionRead, ResourceUsers, false},
		{"agent manages shipments", model.RoleAgent, ActionWrite, ResourceShipments, true},
		{"agent updates shipment status", model.RoleAgent, ActionUpdateStatus, ResourceShipments, true},
		{"agent manages claims", model.RoleAgent, ActionWrite, ResourceClaims, true},
		{"driver reads shipments", model.RoleDriver, ActionRead, ResourceShipments, true},
		{"driver updates shipment status", model.RoleDriver, ActionUpdateStatus, ResourceShipments, true},
		{"driver cannot create shipments", model.RoleDriver, ActionWrite, ResourceShipments, false},
		{"driver cannot delete shipments", model.RoleDriver, ActionDelete, ResourceShipments, false},
		{"driver reads tours", model.RoleDriver, ActionRead, ResourceTours, true},
		{"driver cannot create tours", model.RoleDriver, ActionWrite, ResourceTours, false},
		{"driver cannot see invoices", model.RoleDriver, ActionRead, ResourceInvoices, false},
		{"unknown role denied", model.Role("GUEST"), ActionRead, ResourceShipments, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Allow(tc.role, tc.action, tc.resource))
		})
	}
}
