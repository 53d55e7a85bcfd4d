package client

import "github.com/echoshil/rentalanbuildercamp/models"

// TrackingStep adalah satu langkah di linimasa pesanan.
type TrackingStep struct {
	Label string `json:"label"`
	Done  bool   `json:"done"`
}

// Timeline menurunkan linimasa dari status pembayaran + pengiriman
// pesanan sungguhan.
func Timeline(order *models.Order) []TrackingStep {
	paid := order.StatusPembayaran == models.PaymentLunas
	shipped := order.StatusPengiriman == models.ShipmentDikirim ||
		order.StatusPengiriman == models.ShipmentDiterima
	received := order.StatusPengiriman == models.ShipmentDiterima

	return []TrackingStep{
		{Label: "Pesanan dibuat", Done: true},
		{Label: "Pembayaran diverifikasi", Done: paid},
		{Label: "Pesanan dikirim", Done: shipped},
		{Label: "Pesanan diterima", Done: received},
	}
}

// TrackOrder mengambil pesanan dari backend dan membangun linimasanya.
func TrackOrder(api *Client, orderID uint) (*models.Order, []TrackingStep, error) {
	order, err := api.GetOrder(orderID)
	if err != nil {
		return nil, nil, err
	}
	return order, Timeline(order), nil
}
