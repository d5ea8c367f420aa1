package httphandler

import (
	"github.com/cockroachdb/errors"
	"github.com/gofiber/fiber/v2"
	"github.com/hubtoken/rwa-ledger/common"
	"github.com/hubtoken/rwa-ledger/common/errs"
	"github.com/hubtoken/rwa-ledger/modules/rwa/entity"
)

type updateDetailsRequest struct {
	Address string                       `params:"address"`
	Caller  string                       `json:"caller"`
	Details createPropertyDetailsRequest `json:"details"`
}

func (r updateDetailsRequest) Validate() error {
	var errList []error
	if _, ok := resolveAddress(r.Address); !ok {
		errList = append(errList, errors.New("invalid property address"))
	}
	if _, ok := resolveAddress(r.Caller); !ok {
		errList = append(errList, errors.Errorf("'caller' is not a valid address: %q", r.Caller))
	}
	return errs.WithPublicMessage(errors.Join(errList...), "validation error")
}

type updateDetailsResponse = common.HttpResponse[propertyResult]

func (h *HttpHandler) UpdateDetails(ctx *fiber.Ctx) (err error) {
	var req updateDetailsRequest
	if err := ctx.ParamsParser(&req); err != nil {
		return errors.WithStack(err)
	}
	if err := ctx.BodyParser(&req); err != nil {
		return errs.WithPublicMessage(err, "invalid request body")
	}
	if err := req.Validate(); err != nil {
		return errors.WithStack(err)
	}

	address, _ := resolveAddress(req.Address)
	caller, _ := resolveAddress(req.Caller)
	property, err := h.usecase.UpdateDetails(ctx.UserContext(), address, caller, entity.PropertyDetails{
		PropertyAddress: req.Details.PropertyAddress,
		PropertyType:    req.Details.PropertyType,
		TotalValueUsd:   req.Details.TotalValueUsd,
		RentalYieldBps:  req.Details.RentalYieldBps,
		MetadataURI:     req.Details.MetadataURI,
	})
	if err != nil {
		switch {
		case errors.Is(err, errs.NotFound):
			return errs.NewPublicError("property not found")
		case errors.Is(err, errs.Unauthorized):
			return errs.NewPublicError("caller is not the property authority")
		case errors.Is(err, errs.InvalidArgument):
			return errs.WithPublicMessage(err, "invalid property details")
		}
		return errors.Wrap(err, "error during UpdateDetails")
	}

	result := mapPropertyToResult(property)
	resp := updateDetailsResponse{Result: &result}
	return errors.WithStack(ctx.JSON(resp))
}
