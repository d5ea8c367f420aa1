package httphandler

import (
	"github.com/cockroachdb/errors"
	"github.com/gofiber/fiber/v2"
	"github.com/hubtoken/rwa-ledger/common"
	"github.com/hubtoken/rwa-ledger/common/errs"
	"github.com/hubtoken/rwa-ledger/modules/rwa/entity"
)

type claimRevenueRequest struct {
	Address string `params:"address"`
	Epoch   uint64 `params:"epoch"`
	Holder  string `json:"holder"`
}

func (r claimRevenueRequest) Validate() error {
	var errList []error
	if _, ok := resolveAddress(r.Address); !ok {
		errList = append(errList, errors.New("invalid property address"))
	}
	if _, ok := resolveAddress(r.Holder); !ok {
		errList = append(errList, errors.Errorf("'holder' is not a valid address: %q", r.Holder))
	}
	return errs.WithPublicMessage(errors.Join(errList...), "validation error")
}

type claimRecordResult struct {
	Epoch         string `json:"epoch"`
	Holder        string `json:"holder"`
	AmountClaimed uint64 `json:"amountClaimed"`
	ClaimedAt     int64  `json:"claimedAt"`
}

func mapClaimRecordToResult(record entity.ClaimRecord) claimRecordResult {
	return claimRecordResult{
		Epoch:         record.Epoch.String(),
		Holder:        record.Holder.String(),
		AmountClaimed: record.AmountClaimed,
		ClaimedAt:     record.ClaimedAt.Unix(),
	}
}

type claimRevenueResponse = common.HttpResponse[claimRecordResult]

func (h *HttpHandler) ClaimRevenue(ctx *fiber.Ctx) (err error) {
	var req claimRevenueRequest
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
	record, err := h.usecase.ClaimRevenue(ctx.UserContext(), address, req.Epoch, holder)
	if err != nil {
		switch {
		case errors.Is(err, errs.NotFound):
			return errs.NewPublicError("revenue epoch not found")
		case errors.Is(err, errs.Duplicate):
			return errs.NewPublicError("revenue already claimed for this epoch")
		case errors.Is(err, errs.InsufficientBalance):
			return errs.NewPublicError("holder has no balance for this property")
		case errors.Is(err, errs.ClaimTooSmall):
			return errs.NewPublicError("claimable amount rounds down to zero")
		case errors.Is(err, errs.InsufficientVaultBalance):
			return errs.NewPublicError("epoch vault cannot cover the claim")
		case errors.Is(err, errs.OverflowUint64):
			return errs.NewPublicError("claim amount overflows")
		}
		return errors.Wrap(err, "error during ClaimRevenue")
	}

	result := mapClaimRecordToResult(record)
	resp := claimRevenueResponse{Result: &result}
	return errors.WithStack(ctx.Status(fiber.StatusCreated).JSON(resp))
}
