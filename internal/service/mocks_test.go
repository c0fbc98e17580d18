package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/dztransit/logistics-api/internal/model"
	"github.com/dztransit/logistics-api/internal/repository"
)

// In-memory repository fakes shared by the service tests. They mimic
// the gorm-backed implementations closely enough for the service layer:
// missing rows surface as gorm.ErrRecordNotFound and reads return
// copies so the stored state cannot be mutated through the result.

type fakeUserRepo struct {
	users map[uuid.UUID]model.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[uuid.UUID]model.User)}
}

func (r *fakeUserRepo) Create(_ context.Context, user *model.User) error {
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	r.users[user.ID] = *user
	return nil
}

func (r *fakeUserRepo) GetByID(_ context.Context, id uuid.UUID) (*model.User, error) {
	user, ok := r.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &user, nil
}

func (r *fakeUserRepo) GetByUsername(_ context.Context, username string) (*model.User, error) {
	for _, user := range r.users {
		if user.Username == username {
			return &user, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeUserRepo) List(_ context.Context) ([]model.User, error) {
	out := make([]model.User, 0, len(r.users))
	for _, u := range r.users {
		out = append(out, u)
	}
	return out, nil
}

func (r *fakeUserRepo) Update(_ context.Context, user *model.User) error {
	r.users[user.ID] = *user
	return nil
}

func (r *fakeUserRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.users, id)
	return nil
}

type fakeClientRepo struct {
	clients map[uuid.UUID]model.Client
}

func newFakeClientRepo() *fakeClientRepo {
	return &fakeClientRepo{clients: make(map[uuid.UUID]model.Client)}
}

func (r *fakeClientRepo) Create(_ context.Context, client *model.Client) error {
	if client.ID == uuid.Nil {
		client.ID = uuid.New()
	}
	r.clients[client.ID] = *client
	return nil
}

func (r *fakeClientRepo) GetByID(_ context.Context, id uuid.UUID) (*model.Client, error) {
	client, ok := r.clients[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &client, nil
}

func (r *fakeClientRepo) List(_ context.Context) ([]model.Client, error) {
	out := make([]model.Client, 0, len(r.clients))
	for _, c := range r.clients {
		out = append(out, c)
	}
	return out, nil
}

func (r *fakeClientRepo) Update(_ context.Context, client *model.Client) error {
	r.clients[client.ID] = *client
	return nil
}

func (r *fakeClientRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.clients, id)
	return nil
}

type fakeDriverRepo struct {
	drivers map[uuid.UUID]model.Driver
}

func newFakeDriverRepo() *fakeDriverRepo {
	return &fakeDriverRepo{drivers: make(map[uuid.UUID]model.Driver)}
}

func (r *fakeDriverRepo) Create(_ context.Context, driver *model.Driver) error {
	if driver.ID == uuid.Nil {
		driver.ID = uuid.New()
	}
	r.drivers[driver.ID] = *driver
	return nil
}

func (r *fakeDriverRepo) GetByID(_ context.Context, id uuid.UUID) (*model.Driver, error) {
	driver, ok := r.drivers[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &driver, nil
}

func (r *fakeDriverRepo) List(_ context.Context) ([]model.Driver, error) {
	out := make([]model.Driver, 0, len(r.drivers))
	for _, d := range r.drivers {
		out = append(out, d)
	}
	return out, nil
}

func (r *fakeDriverRepo) Update(_ context.Context, driver *model.Driver) error {
	r.drivers[driver.ID] = *driver
	return nil
}

func (r *fakeDriverRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.drivers, id)
	return nil
}

type fakeVehicleRepo struct {
	vehicles map[uuid.UUID]model.Vehicle
}

func newFakeVehicleRepo() *fakeVehicleRepo {
	return &fakeVehicleRepo{vehicles: make(map[uuid.UUID]model.Vehicle)}
}

func (r *fakeVehicleRepo) Create(_ context.Context, vehicle *model.Vehicle) error {
	if vehicle.ID == uuid.Nil {
		vehicle.ID = uuid.New()
	}
	r.vehicles[vehicle.ID] = *vehicle
	return nil
}

func (r *fakeVehicleRepo) GetByID(_ context.Context, id uuid.UUID) (*model.Vehicle, error) {
	vehicle, ok := r.vehicles[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &vehicle, nil
}

func (r *fakeVehicleRepo) List(_ context.Context) ([]model.Vehicle, error) {
	out := make([]model.Vehicle, 0, len(r.vehicles))
	for _, v := range r.vehicles {
		out = append(out, v)
	}
	return out, nil
}

func (r *fakeVehicleRepo) Update(_ context.Context, vehicle *model.Vehicle) error {
	r.vehicles[vehicle.ID] = *vehicle
	return nil
}

func (r *fakeVehicleRepo) UpdateStatus(_ context.Context, id uuid.UUID, status model.VehicleStatus) error {
	vehicle, ok := r.vehicles[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	vehicle.Status = status
	r.vehicles[id] = vehicle
	return nil
}

func (r *fakeVehicleRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.vehicles, id)
	return nil
}

type fakeShipmentRepo struct {
	shipments map[uuid.UUID]model.Shipment
	history   []model.ShipmentStatusHistory

	// createErrs is consumed one error per Create call, simulating
	// transient insert failures such as unique violations.
	createErrs []error
}

func newFakeShipmentRepo() *fakeShipmentRepo {
	return &fakeShipmentRepo{shipments: make(map[uuid.UUID]model.Shipment)}
}

func (r *fakeShipmentRepo) Create(_ context.Context, shipment *model.Shipment) error {
	if len(r.createErrs) > 0 {
		err := r.createErrs[0]
		r.createErrs = r.createErrs[1:]
		if err != nil {
			return err
		}
	}
	for _, existing := range r.shipments {
		if existing.TrackingNumber == shipment.TrackingNumber {
			return gorm.ErrDuplicatedKey
		}
	}
	if shipment.ID == uuid.Nil {
		shipment.ID = uuid.New()
	}
	shipment.CreatedAt = time.Now().UTC()
	r.shipments[shipment.ID] = *shipment
	return nil
}

func (r *fakeShipmentRepo) GetByID(_ context.Context, id uuid.UUID) (*model.Shipment, error) {
	shipment, ok := r.shipments[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	shipment.StatusHistory = r.historyFor(id)
	return &shipment, nil
}

func (r *fakeShipmentRepo) GetByTrackingNumber(_ context.Context, trackingNumber string) (*model.Shipment, error) {
	for _, shipment := range r.shipments {
		if shipment.TrackingNumber == trackingNumber {
			shipment.StatusHistory = r.historyFor(shipment.ID)
			return &shipment, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeShipmentRepo) GetMany(_ context.Context, ids []uuid.UUID) ([]model.Shipment, error) {
	out := make([]model.Shipment, 0, len(ids))
	for _, id := range ids {
		if shipment, ok := r.shipments[id]; ok {
			out = append(out, shipment)
		}
	}
	return out, nil
}

func (r *fakeShipmentRepo) List(_ context.Context) ([]model.Shipment, error) {
	out := make([]model.Shipment, 0, len(r.shipments))
	for _, s := range r.shipments {
		out = append(out, s)
	}
	return out, nil
}

func (r *fakeShipmentRepo) Update(_ context.Context, shipment *model.Shipment) error {
	if _, ok := r.shipments[shipment.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	stored := *shipment
	stored.StatusHistory = nil
	r.shipments[shipment.ID] = stored
	return nil
}

func (r *fakeShipmentRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.shipments, id)
	return nil
}

func (r *fakeShipmentRepo) AppendStatusHistory(_ context.Context, shipmentID uuid.UUID, status model.ShipmentStatus) error {
	r.history = append(r.history, model.ShipmentStatusHistory{
		ID:         uuid.New(),
		ShipmentID: shipmentID,
		Status:     status,
		CreatedAt:  time.Now().UTC(),
	})
	return nil
}

func (r *fakeShipmentRepo) Journal(_ context.Context, from, to time.Time) ([]model.JournalRow, error) {
	var rows []model.JournalRow
	for _, shipment := range r.shipments {
		if shipment.CreatedAt.Before(from) || !shipment.CreatedAt.Before(to) {
			continue
		}
		rows = append(rows, model.JournalRow{
			TrackingNumber: shipment.TrackingNumber,
			Status:         shipment.Status,
			Weight:         shipment.Weight,
			Volume:         shipment.Volume,
			CalculatedCost: shipment.CalculatedCost,
			CreatedAt:      shipment.CreatedAt,
		})
	}
	return rows, nil
}

func (r *fakeShipmentRepo) historyFor(shipmentID uuid.UUID) []model.ShipmentStatusHistory {
	var out []model.ShipmentStatusHistory
	for _, entry := range r.history {
		if entry.ShipmentID == shipmentID {
			out = append(out, entry)
		}
	}
	return out
}

type fakeRateRepo struct {
	destinations map[uuid.UUID]model.Destination
	serviceTypes map[uuid.UUID]model.ServiceType
	rules        map[uuid.UUID]model.PricingRule
}

func newFakeRateRepo() *fakeRateRepo {
	return &fakeRateRepo{
		destinations: make(map[uuid.UUID]model.Destination),
		serviceTypes: make(map[uuid.UUID]model.ServiceType),
		rules:        make(map[uuid.UUID]model.PricingRule),
	}
}

func (r *fakeRateRepo) CreateDestination(_ context.Context, destination *model.Destination) error {
	if destination.ID == uuid.Nil {
		destination.ID = uuid.New()
	}
	r.destinations[destination.ID] = *destination
	return nil
}

func (r *fakeRateRepo) GetDestination(_ context.Context, id uuid.UUID) (*model.Destination, error) {
	destination, ok := r.destinations[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &destination, nil
}

func (r *fakeRateRepo) ListDestinations(_ context.Context) ([]model.Destination, error) {
	out := make([]model.Destination, 0, len(r.destinations))
	for _, d := range r.destinations {
		out = append(out, d)
	}
	return out, nil
}

func (r *fakeRateRepo) UpdateDestination(_ context.Context, destination *model.Destination) error {
	r.destinations[destination.ID] = *destination
	return nil
}

func (r *fakeRateRepo) DeleteDestination(_ context.Context, id uuid.UUID) error {
	delete(r.destinations, id)
	return nil
}

func (r *fakeRateRepo) CreateServiceType(_ context.Context, serviceType *model.ServiceType) error {
	if serviceType.ID == uuid.Nil {
		serviceType.ID = uuid.New()
	}
	r.serviceTypes[serviceType.ID] = *serviceType
	return nil
}

func (r *fakeRateRepo) GetServiceType(_ context.Context, id uuid.UUID) (*model.ServiceType, error) {
	serviceType, ok := r.serviceTypes[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &serviceType, nil
}

func (r *fakeRateRepo) ListServiceTypes(_ context.Context) ([]model.ServiceType, error) {
	out := make([]model.ServiceType, 0, len(r.serviceTypes))
	for _, st := range r.serviceTypes {
		out = append(out, st)
	}
	return out, nil
}

func (r *fakeRateRepo) UpdateServiceType(_ context.Context, serviceType *model.ServiceType) error {
	r.serviceTypes[serviceType.ID] = *serviceType
	return nil
}

func (r *fakeRateRepo) DeleteServiceType(_ context.Context, id uuid.UUID) error {
	delete(r.serviceTypes, id)
	return nil
}

func (r *fakeRateRepo) CreateRule(_ context.Context, rule *model.PricingRule) error {
	if rule.ID == uuid.Nil {
		rule.ID = uuid.New()
	}
	r.rules[rule.ID] = *rule
	return nil
}

func (r *fakeRateRepo) GetRule(_ context.Context, id uuid.UUID) (*model.PricingRule, error) {
	rule, ok := r.rules[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &rule, nil
}

func (r *fakeRateRepo) FindRule(_ context.Context, destinationID, serviceTypeID uuid.UUID) (*model.PricingRule, error) {
	for _, rule := range r.rules {
		if rule.DestinationID == destinationID && rule.ServiceTypeID == serviceTypeID {
			return &rule, nil
		}
	}
	return nil, nil
}

func (r *fakeRateRepo) RuleExistsForPair(_ context.Context, destinationID, serviceTypeID, excludeID uuid.UUID) (bool, error) {
	for _, rule := range r.rules {
		if rule.ID == excludeID {
			continue
		}
		if rule.DestinationID == destinationID && rule.ServiceTypeID == serviceTypeID {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeRateRepo) ListRules(_ context.Context) ([]model.PricingRule, error) {
	out := make([]model.PricingRule, 0, len(r.rules))
	for _, rule := range r.rules {
		out = append(out, rule)
	}
	return out, nil
}

func (r *fakeRateRepo) UpdateRule(_ context.Context, rule *model.PricingRule) error {
	r.rules[rule.ID] = *rule
	return nil
}

func (r *fakeRateRepo) DeleteRule(_ context.Context, id uuid.UUID) error {
	delete(r.rules, id)
	return nil
}

type fakeTourRepo struct {
	tours map[uuid.UUID]model.Tour
	links map[uuid.UUID][]uuid.UUID
}

func newFakeTourRepo() *fakeTourRepo {
	return &fakeTourRepo{
		tours: make(map[uuid.UUID]model.Tour),
		links: make(map[uuid.UUID][]uuid.UUID),
	}
}

func (r *fakeTourRepo) Create(_ context.Context, tour *model.Tour, shipmentIDs []uuid.UUID) error {
	if tour.ID == uuid.Nil {
		tour.ID = uuid.New()
	}
	r.tours[tour.ID] = *tour
	r.links[tour.ID] = append([]uuid.UUID(nil), shipmentIDs...)
	return nil
}

func (r *fakeTourRepo) GetByID(_ context.Context, id uuid.UUID) (*model.Tour, error) {
	tour, ok := r.tours[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &tour, nil
}

func (r *fakeTourRepo) List(_ context.Context) ([]model.Tour, error) {
	out := make([]model.Tour, 0, len(r.tours))
	for _, t := range r.tours {
		out = append(out, t)
	}
	return out, nil
}

func (r *fakeTourRepo) Update(_ context.Context, tour *model.Tour, shipmentIDs []uuid.UUID) error {
	if _, ok := r.tours[tour.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	r.tours[tour.ID] = *tour
	r.links[tour.ID] = append([]uuid.UUID(nil), shipmentIDs...)
	return nil
}

func (r *fakeTourRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.tours, id)
	delete(r.links, id)
	return nil
}

func (r *fakeTourRepo) VehicleHasTourOn(_ context.Context, vehicleID uuid.UUID, date time.Time) (bool, error) {
	day := date.Format("2006-01-02")
	for _, tour := range r.tours {
		if tour.VehicleID == vehicleID && tour.Date.Format("2006-01-02") == day {
			return true, nil
		}
	}
	return false, nil
}

type fakeInvoiceRepo struct {
	invoices  map[uuid.UUID]model.Invoice
	links     map[uuid.UUID][]uuid.UUID
	shipments *fakeShipmentRepo
}

func newFakeInvoiceRepo(shipments *fakeShipmentRepo) *fakeInvoiceRepo {
	return &fakeInvoiceRepo{
		invoices:  make(map[uuid.UUID]model.Invoice),
		links:     make(map[uuid.UUID][]uuid.UUID),
		shipments: shipments,
	}
}

func (r *fakeInvoiceRepo) Create(_ context.Context, invoice *model.Invoice, shipmentIDs []uuid.UUID) error {
	if invoice.ID == uuid.Nil {
		invoice.ID = uuid.New()
	}
	r.invoices[invoice.ID] = *invoice
	r.links[invoice.ID] = append([]uuid.UUID(nil), shipmentIDs...)
	return nil
}

func (r *fakeInvoiceRepo) GetByID(_ context.Context, id uuid.UUID) (*model.Invoice, error) {
	invoice, ok := r.invoices[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	for _, shipmentID := range r.links[id] {
		if shipment, ok := r.shipments.shipments[shipmentID]; ok {
			invoice.Shipments = append(invoice.Shipments, shipment)
		}
	}
	return &invoice, nil
}

func (r *fakeInvoiceRepo) List(_ context.Context) ([]model.Invoice, error) {
	out := make([]model.Invoice, 0, len(r.invoices))
	for _, inv := range r.invoices {
		out = append(out, inv)
	}
	return out, nil
}

func (r *fakeInvoiceRepo) Update(_ context.Context, invoice *model.Invoice) error {
	if _, ok := r.invoices[invoice.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	stored := *invoice
	stored.Shipments = nil
	stored.Client = nil
	r.invoices[invoice.ID] = stored
	return nil
}

func (r *fakeInvoiceRepo) ReplaceShipments(_ context.Context, invoiceID uuid.UUID, shipmentIDs []uuid.UUID) error {
	if _, ok := r.invoices[invoiceID]; !ok {
		return gorm.ErrRecordNotFound
	}
	r.links[invoiceID] = append([]uuid.UUID(nil), shipmentIDs...)
	return nil
}

func (r *fakeInvoiceRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.invoices, id)
	delete(r.links, id)
	return nil
}

type stubDocumentGenerator struct{}

func (stubDocumentGenerator) Invoice(model.InvoiceDocument) ([]byte, error)   { return []byte("%PDF"), nil }
func (stubDocumentGenerator) DeliverySlip(model.DeliverySlip) ([]byte, error) { return []byte("%PDF"), nil }
func (stubDocumentGenerator) Journal(model.ShipmentJournal) ([]byte, error)   { return []byte("xlsx"), nil }

var (
	_ repository.UserRepository     = (*fakeUserRepo)(nil)
	_ repository.ClientRepository   = (*fakeClientRepo)(nil)
	_ repository.DriverRepository   = (*fakeDriverRepo)(nil)
	_ repository.VehicleRepository  = (*fakeVehicleRepo)(nil)
	_ repository.ShipmentRepository = (*fakeShipmentRepo)(nil)
	_ repository.RateRepository     = (*fakeRateRepo)(nil)
	_ repository.TourRepository     = (*fakeTourRepo)(nil)
	_ repository.InvoiceRepository  = (*fakeInvoiceRepo)(nil)
)
