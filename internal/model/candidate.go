package model

// DealCandidate is one lender's fully structured offer for a DealInput.
// Candidates are created fresh per evaluation, never mutated afterwards, and
// share no state with each other. Ineligibility is expressed as data:
// Approved is false exactly when RejectionReasons is non-empty.
type DealCandidate struct {
	ID          string   `json:"id"`
	LenderID    LenderID `json:"lenderId"`
	LenderName  string   `json:"lenderName"`
	ProgramName string   `json:"programName"`

	TermMonths int     `json:"term"`
	APR        float64 `json:"apr"`        // decimal, e.g. 0.1250
	APRPercent float64 `json:"aprPercent"` // e.g. 12.50

	AmountFinanced float64 `json:"amountFinanced"`
	MonthlyPayment float64 `json:"monthlyPayment"`
	BookValue      float64 `json:"bookValue"`
	LTV            float64 `json:"ltv"`    // percent
	LTVCap         float64 `json:"ltvCap"` // percent

	AdvanceGross      float64 `json:"advanceGross"`
	AdvanceNet        float64 `json:"advanceNet"`
	AdvanceMultiplier float64 `json:"advanceMultiplier"`

	NetCheckToDealer   float64 `json:"netCheckToDealer"`
	DealerFrontGross   float64 `json:"dealerFrontGross"`
	DealerBackendGross float64 `json:"dealerBackendGross"`
	DealerReserve      float64 `json:"dealerReserve"`
	TotalDealerProfit  float64 `json:"totalDealerProfit"`

	PTIPercent float64 `json:"ptiPercent"`
	PTIValid   bool    `json:"ptiValid"`
	PTICap     float64 `json:"ptiCap"`
	DTIPercent float64 `json:"dtiPercent"`
	DTIValid   bool    `json:"dtiValid"`

	Approved            bool     `json:"approved"`
	ApprovalProbability float64  `json:"approvalProbability"`
	RejectionReasons    []string `json:"rejectionReasons"`

	Tax             float64 `json:"tax"`
	TaxRate         float64 `json:"taxRate"`
	DocFee          float64 `json:"docFee"`
	RegistrationFee float64 `json:"registrationFee"`
	DeliveryFee     float64 `json:"deliveryFee"`
	GapPrice        float64 `json:"gapPrice"`
	VSCPrice        float64 `json:"vscPrice"`
	OriginationFee  float64 `json:"originationFee"`
	AcquisitionFee  float64 `json:"acquisitionFee"`
	Holdback        float64 `json:"holdback"`

	VehicleRiskMultiplier float64 `json:"vehicleRiskMultiplier"`
	RiskScore             *int    `json:"riskScore,omitempty"` // UAC only
}

// TriageMode is the recommendation policy outcome.
type TriageMode string

const (
	TriageModeProfit   TriageMode = "profit"
	TriageModeSurvival TriageMode = "survival"
)

// TriageDecision names the single recommended deal among the candidates.
type TriageDecision struct {
	Mode       TriageMode `json:"mode"`
	BestDealID *string    `json:"bestDealId"`
	Reason     string     `json:"reason"`
	Badge      string     `json:"badge"`
}

// RehashResult aggregates one orchestration call: every lender's candidate in
// evaluation order, the selected best deal (nil when nothing qualifies), and
// the shared figures computed once up front.
type RehashResult struct {
	Deals       []DealCandidate `json:"deals"`
	BestDeal    *DealCandidate  `json:"bestDeal"`
	Triage      TriageDecision  `json:"triage"`
	BookValue   float64         `json:"bookValue"`
	TotalDown   float64         `json:"totalDown"`
	TradeEquity float64         `json:"tradeEquity"`
}
