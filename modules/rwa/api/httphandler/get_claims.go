package httphandler

import (
	"github.com/cockroachdb/errors"
	"github.com/gofiber/fiber/v2"
	"github.com/hubtoken/rwa-ledger/common"
	"github.com/hubtoken/rwa-ledger/common/errs"
	"github.com/hubtoken/rwa-ledger/modules/rwa/entity"
	"github.com/samber/lo"
)

type getClaimsRequest struct {
	Address string `params:"address"`
	Epoch   uint64 `params:"epoch"`
}

func (r getClaimsRequest) Validate() error {
	if _, ok := resolveAddress(r.Address); !ok {
		return errs.NewPublicError("invalid property address")
	}
	return nil
}

type getClaimsResult struct {
	List []claimRecordResult `json:"list"`
}

type getClaimsResponse = common.HttpResponse[getClaimsResult]

func (h *HttpHandler) GetClaims(ctx *fiber.Ctx) (err error) {
	var req getClaimsRequest
	if err := ctx.ParamsParser(&req); err != nil {
		return errors.WithStack(err)
	}
	if err := req.Validate(); err != nil {
		return errors.WithStack(err)
	}

	address, _ := resolveAddress(req.Address)
	records, err := h.usecase.GetClaimRecords(ctx.UserContext(), address, req.Epoch)
	if err != nil {
		if errors.Is(err, errs.NotFound) {
			return errs.NewPublicError("revenue epoch not found")
		}
		return errors.Wrap(err, "error during GetClaimRecords")
	}

	resp := getClaimsResponse{
		Result: &getClaimsResult{
			List: lo.Map(records, func(record entity.ClaimRecord, _ int) claimRecordResult {
				return mapClaimRecordToResult(record)
			}),
		},
	}
	return errors.WithStack(ctx.JSON(resp))
}
