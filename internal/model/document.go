package model

// InvoiceDocument bundles everything the PDF renderer needs for one
// invoice. All fields are read-only inputs to rendering.
type InvoiceDocument struct {
	Invoice   Invoice
	Client    Client
	Shipments []Shipment
}

// DeliverySlip is the printable slip for a single shipment.
type DeliverySlip struct {
	Shipment    Shipment
	Client      Client
	Destination Destination
	ServiceType ServiceType
}
