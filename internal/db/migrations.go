package db

import (
	"fmt"

	"gorm.io/gorm"
)

var migrationStatements = []string{
	`CREATE EXTENSION IF NOT EXISTS "uuid-ossp";`,
	`CREATE EXTENSION IF NOT EXISTS "pgcrypto";`,
	`DO $$
	BEGIN
		IF NOT EXISTS (SELECT 1 FROM pg_type WHERE typname = 'user_role') THEN
			CREATE TYPE user_role AS ENUM ('ADMIN', 'MANAGER', 'AGENT', 'DRIVER');
		END IF;
		IF NOT EXISTS (SELECT 1 FROM pg_type WHERE typname = 'vehicle_status') THEN
			CREATE TYPE vehicle_status AS ENUM ('AVAILABLE', 'IN_USE', 'MAINTENANCE');
		END IF;
		IF NOT EXISTS (SELECT 1 FROM pg_type WHERE typname = 'shipment_status') THEN
			CREATE TYPE shipment_status AS ENUM ('PENDING', 'IN_TRANSIT', 'SORTING_CENTER', 'OUT_FOR_DELIVERY', 'DELIVERED', 'DELIVERY_FAILED');
		END IF;
		IF NOT EXISTS (SELECT 1 FROM pg_type WHERE typname = 'invoice_status') THEN
			CREATE TYPE invoice_status AS ENUM ('UNPAID', 'PARTIAL', 'PAID');
		END IF;
		IF NOT EXISTS (SELECT 1 FROM pg_type WHERE typname = 'incident_status') THEN
			CREATE TYPE incident_status AS ENUM ('OPEN', 'RESOLVED');
		END IF;
		IF NOT EXISTS (SELECT 1 FROM pg_type WHERE typname = 'claim_type') THEN
			CREATE TYPE claim_type AS ENUM ('DAMAGED_PACKAGE', 'LOST_PACKAGE', 'LATE_DELIVERY', 'WRONG_DELIVERY', 'BILLING_ISSUE', 'SERVICE_QUALITY');
		END IF;
		IF NOT EXISTS (SELECT 1 FROM pg_type WHERE typname = 'claim_status') THEN
			CREATE TYPE claim_status AS ENUM ('PENDING', 'IN_PROGRESS', 'RESOLVED', 'CANCELLED');
		END IF;
	END
	$$;`,
	`CREATE TABLE IF NOT EXISTS users (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		username VARCHAR(150) NOT NULL,
		email VARCHAR(255) NOT NULL DEFAULT '',
		first_name VARCHAR(150) NOT NULL DEFAULT '',
		last_name VARCHAR(150) NOT NULL DEFAULT '',
		password_hash VARCHAR(255) NOT NULL,
		role user_role NOT NULL DEFAULT 'AGENT',
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`,
	`CREATE UNIQUE INDEX IF NOT EXISTS uq_users_username ON users (username);`,
	`CREATE TABLE IF NOT EXISTS clients (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		name VARCHAR(255) NOT NULL,
		address TEXT NOT NULL DEFAULT '',
		contact_info VARCHAR(255) NOT NULL DEFAULT '',
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`,
	`CREATE TABLE IF NOT EXISTS drivers (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		name VARCHAR(255) NOT NULL,
		license_number VARCHAR(50) NOT NULL,
		phone VARCHAR(20) NOT NULL DEFAULT '',
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`,
	`CREATE UNIQUE INDEX IF NOT EXISTS uq_drivers_license_number ON drivers (license_number);`,
	`CREATE TABLE IF NOT EXISTS vehicles (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		license_plate VARCHAR(20) NOT NULL,
		vehicle_type VARCHAR(50) NOT NULL,
		capacity NUMERIC(10,2) NOT NULL,
		status vehicle_status NOT NULL DEFAULT 'AVAILABLE',
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`,
	`CREATE UNIQUE INDEX IF NOT EXISTS uq_vehicles_license_plate ON vehicles (license_plate);`,
	`CREATE TABLE IF NOT EXISTS destinations (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		name VARCHAR(255) NOT NULL,
		zone VARCHAR(50)
	);`,
	`CREATE TABLE IF NOT EXISTS service_types (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		name VARCHAR(100) NOT NULL
	);`,
	`CREATE TABLE IF NOT EXISTS pricing_rules (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		destination_id UUID NOT NULL REFERENCES destinations(id) ON DELETE CASCADE,
		service_type_id UUID NOT NULL REFERENCES service_types(id) ON DELETE CASCADE,
		base_tariff NUMERIC(10,2) NOT NULL,
		weight_rate NUMERIC(10,2) NOT NULL,
		volume_rate NUMERIC(10,2) NOT NULL
	);`,
	`CREATE UNIQUE INDEX IF NOT EXISTS uq_pricing_rules_pair ON pricing_rules (destination_id, service_type_id);`,
	`CREATE TABLE IF NOT EXISTS shipments (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		tracking_number VARCHAR(50) NOT NULL,
		client_id UUID NOT NULL REFERENCES clients(id) ON DELETE CASCADE,
		destination_id UUID NOT NULL REFERENCES destinations(id),
		service_type_id UUID NOT NULL REFERENCES service_types(id),
		weight NUMERIC(10,2) NOT NULL,
		volume NUMERIC(10,2) NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		is_international BOOLEAN NOT NULL DEFAULT FALSE,
		requires_customs_clearance BOOLEAN NOT NULL DEFAULT FALSE,
		customs_value NUMERIC(12,2) NOT NULL DEFAULT 0,
		calculated_cost NUMERIC(10,2),
		status shipment_status NOT NULL DEFAULT 'PENDING',
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`,
	`CREATE UNIQUE INDEX IF NOT EXISTS uq_shipments_tracking_number ON shipments (tracking_number);`,
	`CREATE INDEX IF NOT EXISTS idx_shipments_client_id ON shipments (client_id);`,
	`CREATE INDEX IF NOT EXISTS idx_shipments_status ON shipments (status);`,
	`CREATE TABLE IF NOT EXISTS shipment_status_history (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		shipment_id UUID NOT NULL REFERENCES shipments(id) ON DELETE CASCADE,
		status shipment_status NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`,
	`CREATE INDEX IF NOT EXISTS idx_shipment_status_history_shipment_id ON shipment_status_history (shipment_id, created_at);`,
	`CREATE TABLE IF NOT EXISTS tours (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		driver_id UUID NOT NULL REFERENCES drivers(id),
		vehicle_id UUID NOT NULL REFERENCES vehicles(id),
		date DATE NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`,
	`CREATE INDEX IF NOT EXISTS idx_tours_vehicle_date ON tours (vehicle_id, date);`,
	`CREATE TABLE IF NOT EXISTS tour_shipments (
		tour_id UUID NOT NULL REFERENCES tours(id) ON DELETE CASCADE,
		shipment_id UUID NOT NULL REFERENCES shipments(id),
		PRIMARY KEY (tour_id, shipment_id)
	);`,
	`CREATE TABLE IF NOT EXISTS invoices (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		client_id UUID NOT NULL REFERENCES clients(id) ON DELETE CASCADE,
		date DATE NOT NULL DEFAULT CURRENT_DATE,
		amount_ht NUMERIC(12,2) NOT NULL DEFAULT 0,
		tva NUMERIC(12,2) NOT NULL DEFAULT 0,
		amount_ttc NUMERIC(12,2) NOT NULL DEFAULT 0,
		paid_amount NUMERIC(12,2) NOT NULL DEFAULT 0,
		status invoice_status NOT NULL DEFAULT 'UNPAID',
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`,
	`CREATE INDEX IF NOT EXISTS idx_invoices_client_id ON invoices (client_id);`,
	`CREATE INDEX IF NOT EXISTS idx_invoices_status ON invoices (status);`,
	`CREATE TABLE IF NOT EXISTS invoice_shipments (
		invoice_id UUID NOT NULL REFERENCES invoices(id) ON DELETE CASCADE,
		shipment_id UUID NOT NULL REFERENCES shipments(id),
		PRIMARY KEY (invoice_id, shipment_id)
	);`,
	`CREATE TABLE IF NOT EXISTS incidents (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		shipment_id UUID NOT NULL REFERENCES shipments(id) ON DELETE CASCADE,
		description TEXT NOT NULL,
		status incident_status NOT NULL DEFAULT 'OPEN',
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`,
	`CREATE INDEX IF NOT EXISTS idx_incidents_shipment_id ON incidents (shipment_id);`,
	`CREATE TABLE IF NOT EXISTS claims (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		client_id UUID REFERENCES clients(id) ON DELETE SET NULL,
		shipment_id UUID REFERENCES shipments(id) ON DELETE SET NULL,
		claim_type claim_type NOT NULL,
		description TEXT NOT NULL,
		contact_email VARCHAR(255) NOT NULL DEFAULT '',
		status claim_status NOT NULL DEFAULT 'PENDING',
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`,
	`CREATE INDEX IF NOT EXISTS idx_claims_status ON claims (status);`,
}

func runMigrations(db *gorm.DB) error {
	for i, stmt := range migrationStatements {
		if err := db.Exec(stmt).Error; err != nil {
			return fmt.Errorf("migration %d failed: %w", i+1, err)
		}
	}
	return nil
}
