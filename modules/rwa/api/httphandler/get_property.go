package httphandler

import (
	"github.com/cockroachdb/errors"
	"github.com/gofiber/fiber/v2"
	"github.com/hubtoken/rwa-ledger/common"
	"github.com/hubtoken/rwa-ledger/common/errs"
)

type getPropertyRequest struct {
	Address string `params:"address"`
}

func (r getPropertyRequest) Validate() error {
	if _, ok := resolveAddress(r.Address); !ok {
		return errs.NewPublicError("invalid property address")
	}
	return nil
}

type getPropertyResponse = common.HttpResponse[propertyResult]

func (h *HttpHandler) GetProperty(ctx *fiber.Ctx) (err error) {
	var req getPropertyRequest
	if err := ctx.ParamsParser(&req); err != nil {
		return errors.WithStack(err)
	}
	if err := req.Validate(); err != nil {
		return errors.WithStack(err)
	}

	address, _ := resolveAddress(req.Address)
	property, err := h.usecase.GetProperty(ctx.UserContext(), address)
	if err != nil {
		if errors.Is(err, errs.NotFound) {
			return errs.NewPublicError("property not found")
		}
		return errors.Wrap(err, "error during GetProperty")
	}

	result := mapPropertyToResult(property)
	resp := getPropertyResponse{Result: &result}
	return errors.WithStack(ctx.JSON(resp))
}
