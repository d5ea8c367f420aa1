package httphandler

import (
	"github.com/cockroachdb/errors"
	"github.com/gofiber/fiber/v2"
	"github.com/hubtoken/rwa-ledger/common"
	"github.com/hubtoken/rwa-ledger/common/errs"
	"github.com/hubtoken/rwa-ledger/modules/rwa/entity"
	"github.com/hubtoken/rwa-ledger/modules/rwa/usecase"
)

type createPropertyDetailsRequest struct {
	PropertyAddress string `json:"propertyAddress"`
	PropertyType    string `json:"propertyType"`
	TotalValueUsd   uint64 `json:"totalValueUsd"`
	RentalYieldBps  uint16 `json:"rentalYieldBps"`
	MetadataURI     string `json:"metadataUri"`
}

type createPropertyRequest struct {
	Authority   string                       `json:"authority"`
	Mint        string                       `json:"mint"`
	Name        string                       `json:"name"`
	Symbol      string                       `json:"symbol"`
	TotalSupply uint64                       `json:"totalSupply"`
	Details     createPropertyDetailsRequest `json:"details"`
}

func (r createPropertyRequest) Validate() error {
	var errList []error
	if _, ok := resolveAddress(r.Authority); !ok {
		errList = append(errList, errors.Errorf("'authority' is not a valid address: %q", r.Authority))
	}
	if _, ok := resolveAddress(r.Mint); !ok {
		errList = append(errList, errors.Errorf("'mint' is not a valid address: %q", r.Mint))
	}
	return errs.WithPublicMessage(errors.Join(errList...), "validation error")
}

type createPropertyResponse = common.HttpResponse[propertyResult]

func (h *HttpHandler) CreateProperty(ctx *fiber.Ctx) (err error) {
	var req createPropertyRequest
	if err := ctx.BodyParser(&req); err != nil {
		return errs.WithPublicMessage(err, "invalid request body")
	}
	if err := req.Validate(); err != nil {
		return errors.WithStack(err)
	}

	authority, _ := resolveAddress(req.Authority)
	mint, _ := resolveAddress(req.Mint)
	property, err := h.usecase.CreateProperty(ctx.UserContext(), usecase.CreatePropertyParams{
		Authority:   authority,
		Mint:        mint,
		Name:        req.Name,
		Symbol:      req.Symbol,
		TotalSupply: req.TotalSupply,
		Details: entity.PropertyDetails{
			PropertyAddress: req.Details.PropertyAddress,
			PropertyType:    req.Details.PropertyType,
			TotalValueUsd:   req.Details.TotalValueUsd,
			RentalYieldBps:  req.Details.RentalYieldBps,
			MetadataURI:     req.Details.MetadataURI,
		},
	})
	if err != nil {
		if errors.Is(err, errs.Duplicate) {
			return errs.NewPublicError("property already exists for this mint")
		}
		if errors.Is(err, errs.InvalidArgument) {
			return errs.WithPublicMessage(err, "invalid property")
		}
		return errors.Wrap(err, "error during CreateProperty")
	}

	result := mapPropertyToResult(property)
	resp := createPropertyResponse{Result: &result}
	return errors.WithStack(ctx.Status(fiber.StatusCreated).JSON(resp))
}
