package httphandler

import (
	"github.com/cockroachdb/errors"
	"github.com/gofiber/fiber/v2"
	"github.com/hubtoken/rwa-ledger/common"
	"github.com/hubtoken/rwa-ledger/common/errs"
)

type getBalanceRequest struct {
	Address string `params:"address"`
	Holder  string `params:"holder"`
}

func (r getBalanceRequest) Validate() error {
	var errList []error
	if _, ok := resolveAddress(r.Address); !ok {
		errList = append(errList, errors.New("invalid property address"))
	}
	if _, ok := resolveAddress(r.Holder); !ok {
		errList = append(errList, errors.Errorf("'holder' is not a valid address: %q", r.Holder))
	}
	return errs.WithPublicMessage(errors.Join(errList...), "validation error")
}

type balanceResult struct {
	Property string `json:"property"`
	Holder   string `json:"holder"`
	Balance  uint64 `json:"balance"`
}

type getBalanceResponse = common.HttpResponse[balanceResult]

func (h *HttpHandler) GetBalance(ctx *fiber.Ctx) (err error) {
	var req getBalanceRequest
	if err := ctx.ParamsParser(&req); err != nil {
		return errors.WithStack(err)
	}
	if err := req.Validate(); err != nil {
		return errors.WithStack(err)
	}

	address, _ := resolveAddress(req.Address)
	holder, _ := resolveAddress(req.Holder)
	balance, err := h.usecase.GetBalance(ctx.UserContext(), address, holder)
	if err != nil {
		if errors.Is(err, errs.NotFound) {
			return errs.NewPublicError("property not found")
		}
		return errors.Wrap(err, "error during GetBalance")
	}

	resp := getBalanceResponse{
		Result: &balanceResult{
			Property: address.String(),
			Holder:   holder.String(),
			Balance:  balance,
		},
	}
	return errors.WithStack(ctx.JSON(resp))
}
