package httphandler

import (
	"fmt"

	"github.com/cockroachdb/errors"
	"github.com/gofiber/fiber/v2"
	"github.com/hubtoken/rwa-ledger/common"
	"github.com/hubtoken/rwa-ledger/common/errs"
	"github.com/hubtoken/rwa-ledger/modules/rwa/compliance"
)

type mintRequest struct {
	Address     string `params:"address"`
	Caller      string `json:"caller"`
	Destination string `json:"destination"`
	Amount      uint64 `json:"amount"`
}

func (r mintRequest) Validate() error {
	var errList []error
	if _, ok := resolveAddress(r.Address); !ok {
		errList = append(errList, errors.New("invalid property address"))
	}
	if _, ok := resolveAddress(r.Caller); !ok {
		errList = append(errList, errors.Errorf("'caller' is not a valid address: %q", r.Caller))
	}
	if _, ok := resolveAddress(r.Destination); !ok {
		errList = append(errList, errors.Errorf("'destination' is not a valid address: %q", r.Destination))
	}
	return errs.WithPublicMessage(errors.Join(errList...), "validation error")
}

type mintResponse = common.HttpResponse[propertyResult]

func (h *HttpHandler) Mint(ctx *fiber.Ctx) (err error) {
	var req mintRequest
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
	destination, _ := resolveAddress(req.Destination)
	property, err := h.usecase.Mint(ctx.UserContext(), address, caller, destination, req.Amount)
	if err != nil {
		switch {
		case errors.Is(err, errs.NotFound):
			return errs.NewPublicError("property not found")
		case errors.Is(err, errs.Unauthorized):
			return errs.NewPublicError("caller is not the property authority")
		case errors.Is(err, errs.PropertyNotActive):
			return errs.NewPublicError("property is not active")
		case errors.Is(err, errs.SupplyExceeded):
			return errs.WithPublicMessage(err, "supply cap exceeded")
		case errors.Is(err, errs.ComplianceRequired):
			return errs.NewPublicError(fmt.Sprintf("destination is not compliant: %s", compliance.ReasonOf(err)))
		case errors.Is(err, errs.InvalidArgument):
			return errs.WithPublicMessage(err, "invalid request")
		}
		return errors.Wrap(err, "error during Mint")
	}

	result := mapPropertyToResult(property)
	resp := mintResponse{Result: &result}
	return errors.WithStack(ctx.JSON(resp))
}
