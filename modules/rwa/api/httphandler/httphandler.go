package httphandler

import (
	"github.com/gagliardetto/solana-go"
	"github.com/hubtoken/rwa-ledger/common"
	"github.com/hubtoken/rwa-ledger/modules/rwa/entity"
	"github.com/hubtoken/rwa-ledger/modules/rwa/usecase"
	"github.com/shopspring/decimal"
)

type HttpHandler struct {
	usecase *usecase.Usecase
	network common.Network
}

func New(network common.Network, usecase *usecase.Usecase) *HttpHandler {
	return &HttpHandler{
		usecase: usecase,
		network: network,
	}
}

func resolveAddress(s string) (solana.PublicKey, bool) {
	if s == "" {
		return solana.PublicKey{}, false
	}
	key, err := solana.PublicKeyFromBase58(s)
	if err != nil {
		return solana.PublicKey{}, false
	}
	return key, true
}

type propertyDetailsResult struct {
	PropertyAddress    string  `json:"propertyAddress"`
	PropertyType       string  `json:"propertyType"`
	TotalValueUsd      uint64  `json:"totalValueUsd"`
	RentalYieldBps     uint16  `json:"rentalYieldBps"`
	RentalYieldPercent float64 `json:"rentalYieldPercent"`
	MetadataURI        string  `json:"metadataUri"`
}

type propertyResult struct {
	Address            string                `json:"address"`
	Authority          string                `json:"authority"`
	Mint               string                `json:"mint"`
	Name               string                `json:"name"`
	Symbol             string                `json:"symbol"`
	TotalSupply        uint64                `json:"totalSupply"`
	CirculatingSupply  uint64                `json:"circulatingSupply"`
	RemainingSupply    uint64                `json:"remainingSupply"`
	CirculationPercent float64               `json:"circulationPercent"`
	IsActive           bool                  `json:"isActive"`
	Details            propertyDetailsResult `json:"details"`
	CreatedAt          int64                 `json:"createdAt"`
	UpdatedAt          int64                 `json:"updatedAt"`
}

func mapPropertyToResult(property entity.Property) propertyResult {
	circulationPercent := decimal.Zero
	if property.TotalSupply > 0 {
		circulationPercent = decimal.NewFromUint64(property.CirculatingSupply).
			Div(decimal.NewFromUint64(property.TotalSupply)).
			Mul(decimal.NewFromInt(100))
	}
	rentalYieldPercent := decimal.NewFromInt(int64(property.Details.RentalYieldBps)).Div(decimal.NewFromInt(100))
	return propertyResult{
		Address:            property.Address.String(),
		Authority:          property.Authority.String(),
		Mint:               property.Mint.String(),
		Name:               property.Name,
		Symbol:             property.Symbol,
		TotalSupply:        property.TotalSupply,
		CirculatingSupply:  property.CirculatingSupply,
		RemainingSupply:    property.RemainingSupply(),
		CirculationPercent: circulationPercent.InexactFloat64(),
		IsActive:           property.IsActive,
		Details: propertyDetailsResult{
			PropertyAddress:    property.Details.PropertyAddress,
			PropertyType:       property.Details.PropertyType,
			TotalValueUsd:      property.Details.TotalValueUsd,
			RentalYieldBps:     property.Details.RentalYieldBps,
			RentalYieldPercent: rentalYieldPercent.InexactFloat64(),
			MetadataURI:        property.Details.MetadataURI,
		},
		CreatedAt: property.CreatedAt.Unix(),
		UpdatedAt: property.UpdatedAt.Unix(),
	}
}
