package finance

import (
	"github.com/mouzayen1/SalesApexAi2.5/internal/model"
	"github.com/mouzayen1/SalesApexAi2.5/internal/refdata"
)

// Itemization is the amount-financed breakdown for one lender's structure of
// a deal.
type Itemization struct {
	AmountFinanced  float64
	Tax             float64
	TaxRate         float64
	DocFee          float64
	RegistrationFee float64
	DeliveryFee     float64
	GapPrice        float64
	VSCPrice        float64
	AcquisitionFee  float64
	TradeEquity     float64
	TotalDown       float64
	Gross           float64
}

// Itemize computes the itemized amount financed for a deal under one
// lender's fee and product schedule.
//
// Tax applies to the vehicle retail price only; fees and add-on products are
// not taxed in this model. The doc fee is the state schedule amount limited
// by the state doc-fee cap. AmountFinanced is not clamped and may be
// negative when the total down exceeds the gross; downstream consumers must
// handle that.
func Itemize(in model.DealInput, lender model.LenderID) Itemization {
	taxRate := refdata.TaxRate(in.State)
	tax := RoundCents(in.VehicleRetailPrice * taxRate)

	fees := refdata.Fees(in.State)
	docFee := fees.Doc
	if cap := refdata.DocFeeCap(in.State); docFee > cap {
		docFee = cap
	}

	pricing := refdata.ProductPricing(lender)
	gapPrice := 0.0
	if in.GapInsuranceSelected {
		gapPrice = pricing.Gap
	}
	vscPrice := 0.0
	if in.VSCSelected {
		vscPrice = pricing.VSC(in.VSCTier)
	}

	acquisitionFee := refdata.AcquisitionFee(lender)

	gross := in.VehicleRetailPrice + tax + docFee + fees.Registration + fees.Delivery +
		gapPrice + vscPrice + acquisitionFee

	tradeEquity := in.TradeEquity()
	totalDown := in.DownPayment + tradeEquity

	return Itemization{
		AmountFinanced:  RoundCents(gross - totalDown),
		Tax:             tax,
		TaxRate:         taxRate,
		DocFee:          docFee,
		RegistrationFee: fees.Registration,
		DeliveryFee:     fees.Delivery,
		GapPrice:        gapPrice,
		VSCPrice:        vscPrice,
		AcquisitionFee:  acquisitionFee,
		TradeEquity:     tradeEquity,
		TotalDown:       totalDown,
		Gross:           gross,
	}
}
