package models

// MarketVariables describes linear demand P = a - bQ and supply P = c + dQ
type MarketVariables struct {
	DemandIntercept float64 `json:"demand_intercept"` // a
	DemandSlope     float64 `json:"demand_slope"`     // b
	SupplyIntercept float64 `json:"supply_intercept"` // c
	SupplySlope     float64 `json:"supply_slope"`     // d
}

// MarketResults represents the market equilibrium and welfare measures
type MarketResults struct {
	Quantity         float64 `json:"quantity"`
	Price            float64 `json:"price"`
	ConsumerSurplus  float64 `json:"consumer_surplus"`
	ProducerSurplus  float64 `json:"producer_surplus"`
	TotalSurplus     float64 `json:"total_surplus"`
	DemandElasticity float64 `json:"demand_elasticity"`
	SupplyElasticity float64 `json:"supply_elasticity"`
}

// ElasticityVariables holds two observed price/quantity pairs
type ElasticityVariables struct {
	Price1    float64 `json:"price1"`
	Quantity1 float64 `json:"quantity1"`
	Price2    float64 `json:"price2"`
	Quantity2 float64 `json:"quantity2"`
}

// ElasticityClass labels demand responsiveness
type ElasticityClass string

const (
	Elastic   ElasticityClass = "elastica"
	Inelastic ElasticityClass = "inelastica"
	Unitary   ElasticityClass = "unitaria"
)

// ElasticityResults represents an arc elasticity and its reading
type ElasticityResults struct {
	Elasticity     float64         `json:"elasticity"`
	Class          ElasticityClass `json:"class"`
	Interpretation string          `json:"interpretation"`
	RevenueEffect  string          `json:"revenue_effect"`
}

// TaxIncidence represents the effect of a per-unit tax levied on sellers
type TaxIncidence struct {
	Tax            float64 `json:"tax"`
	Quantity       float64 `json:"quantity"`
	BuyerPrice     float64 `json:"buyer_price"`
	SellerPrice    float64 `json:"seller_price"`
	TaxRevenue     float64 `json:"tax_revenue"`
	DeadweightLoss float64 `json:"deadweight_loss"`
	BuyerShare     float64 `json:"buyer_share"` // fraction of the tax paid by buyers
}

// PriceControlKind distinguishes ceilings from floors
type PriceControlKind string

const (
	PriceCeiling PriceControlKind = "ceiling"
	PriceFloor   PriceControlKind = "floor"
)

// PriceControl represents market quantities under a regulated price
type PriceControl struct {
	Kind             PriceControlKind `json:"kind"`
	ControlPrice     float64          `json:"control_price"`
	Binding          bool             `json:"binding"`
	QuantityDemanded float64          `json:"quantity_demanded"`
	QuantitySupplied float64          `json:"quantity_supplied"`
	Shortage         float64          `json:"shortage"`
	Surplus          float64          `json:"surplus"`
}
