package httphandler

import (
	"github.com/cockroachdb/errors"
	"github.com/gofiber/fiber/v2"
	"github.com/hubtoken/rwa-ledger/common"
	"github.com/hubtoken/rwa-ledger/common/errs"
	"github.com/hubtoken/rwa-ledger/modules/rwa/entity"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

type getHoldersRequest struct {
	paginationRequest
	Address string `params:"address"`
}

func (r getHoldersRequest) Validate() error {
	if _, ok := resolveAddress(r.Address); !ok {
		return errs.NewPublicError("invalid property address")
	}
	return errors.WithStack(r.paginationRequest.Validate())
}

type holdingResult struct {
	Holder  string  `json:"holder"`
	Amount  uint64  `json:"amount"`
	Percent float64 `json:"percent"`
}

type getHoldersResult struct {
	Property propertyResult  `json:"property"`
	List     []holdingResult `json:"list"`
}

type getHoldersResponse = common.HttpResponse[getHoldersResult]

func (h *HttpHandler) GetHolders(ctx *fiber.Ctx) (err error) {
	var req getHoldersRequest
	if err := ctx.ParamsParser(&req); err != nil {
		return errors.WithStack(err)
	}
	if err := ctx.QueryParser(&req); err != nil {
		return errors.WithStack(err)
	}
	if err := req.Validate(); err != nil {
		return errors.WithStack(err)
	}
	if err := req.paginationRequest.ParseDefault(); err != nil {
		return errors.WithStack(err)
	}

	address, _ := resolveAddress(req.Address)
	property, holdings, err := h.usecase.GetHolders(ctx.UserContext(), address, req.Limit, req.Offset)
	if err != nil {
		if errors.Is(err, errs.NotFound) {
			return errs.NewPublicError("property not found")
		}
		return errors.Wrap(err, "error during GetHolders")
	}

	circulating := decimal.NewFromUint64(property.CirculatingSupply)
	resp := getHoldersResponse{
		Result: &getHoldersResult{
			Property: mapPropertyToResult(property),
			List: lo.Map(holdings, func(holding entity.Holding, _ int) holdingResult {
				percent := decimal.Zero
				if property.CirculatingSupply > 0 {
					percent = decimal.NewFromUint64(holding.Amount).Div(circulating).Mul(decimal.NewFromInt(100))
				}
				return holdingResult{
					Holder:  holding.Holder.String(),
					Amount:  holding.Amount,
					Percent: percent.InexactFloat64(),
				}
			}),
		},
	}
	return errors.WithStack(ctx.JSON(resp))
}
