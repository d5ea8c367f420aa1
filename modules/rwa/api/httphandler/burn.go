package httphandler

import (
	"github.com/cockroachdb/errors"
	"github.com/gofiber/fiber/v2"
	"github.com/hubtoken/rwa-ledger/common"
	"github.com/hubtoken/rwa-ledger/common/errs"
)

type burnRequest struct {
	Address string `params:"address"`
	Holder  string `json:"holder"`
	Amount  uint64 `json:"amount"`
}

func (r burnRequest) Validate() error {
	var errList []error
	if _, ok := resolveAddress(r.Address); !ok {
		errList = append(errList, errors.New("invalid property address"))
	}
	if _, ok := resolveAddress(r.Holder); !ok {
		errList = append(errList, errors.Errorf("'holder' is not a valid address: %q", r.Holder))
	}
	return errs.WithPublicMessage(errors.Join(errList...), "validation error")
}

type burnResponse = common.HttpResponse[propertyResult]

func (h *HttpHandler) Burn(ctx *fiber.Ctx) (err error) {
	var req burnRequest
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
	holder, _ := resolveAddress(req.Holder)
	property, err := h.usecase.Burn(ctx.UserContext(), address, holder, req.Amount)
	if err != nil {
		switch {
		case errors.Is(err, errs.NotFound):
			return errs.NewPublicError("property not found")
		case errors.Is(err, errs.InsufficientSupply):
			return errs.WithPublicMessage(err, "burn exceeds circulating supply")
		case errors.Is(err, errs.InsufficientBalance):
			return errs.NewPublicError("holder balance cannot cover burn amount")
		case errors.Is(err, errs.InvalidArgument):
			return errs.WithPublicMessage(err, "invalid request")
		}
		return errors.Wrap(err, "error during Burn")
	}

	result := mapPropertyToResult(property)
	resp := burnResponse{Result: &result}
	return errors.WithStack(ctx.JSON(resp))
}
