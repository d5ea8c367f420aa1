package httphandler

import (
	"github.com/cockroachdb/errors"
	"github.com/gofiber/fiber/v2"
	"github.com/hubtoken/rwa-ledger/common"
	"github.com/hubtoken/rwa-ledger/common/errs"
	"github.com/hubtoken/rwa-ledger/modules/rwa/entity"
)

type depositRevenueRequest struct {
	Address     string `params:"address"`
	Caller      string `json:"caller"`
	EpochNumber uint64 `json:"epochNumber"`
	Amount      uint64 `json:"amount"`
}

func (r depositRevenueRequest) Validate() error {
	var errList []error
	if _, ok := resolveAddress(r.Address); !ok {
		errList = append(errList, errors.New("invalid property address"))
	}
	if _, ok := resolveAddress(r.Caller); !ok {
		errList = append(errList, errors.Errorf("'caller' is not a valid address: %q", r.Caller))
	}
	return errs.WithPublicMessage(errors.Join(errList...), "validation error")
}

type revenueEpochResult struct {
	Address        string `json:"address"`
	Property       string `json:"property"`
	EpochNumber    uint64 `json:"epochNumber"`
	TotalRevenue   uint64 `json:"totalRevenue"`
	EligibleSupply uint64 `json:"eligibleSupply"`
	VaultAddress   string `json:"vaultAddress"`
	DepositedBy    string `json:"depositedBy"`
	DepositedAt    int64  `json:"depositedAt"`
	IsFinalized    bool   `json:"isFinalized"`
}

func mapRevenueEpochToResult(epoch entity.RevenueEpoch) revenueEpochResult {
	return revenueEpochResult{
		Address:        epoch.Address.String(),
		Property:       epoch.Property.String(),
		EpochNumber:    epoch.EpochNumber,
		TotalRevenue:   epoch.TotalRevenue,
		EligibleSupply: epoch.EligibleSupply,
		VaultAddress:   epoch.VaultAddress.String(),
		DepositedBy:    epoch.DepositedBy.String(),
		DepositedAt:    epoch.DepositedAt.Unix(),
		IsFinalized:    epoch.IsFinalized,
	}
}

type depositRevenueResponse = common.HttpResponse[revenueEpochResult]

func (h *HttpHandler) DepositRevenue(ctx *fiber.Ctx) (err error) {
	var req depositRevenueRequest
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
	epoch, err := h.usecase.DepositRevenue(ctx.UserContext(), address, caller, req.EpochNumber, req.Amount)
	if err != nil {
		switch {
		case errors.Is(err, errs.NotFound):
			return errs.NewPublicError("property not found")
		case errors.Is(err, errs.Unauthorized):
			return errs.NewPublicError("caller is not the property authority")
		case errors.Is(err, errs.PropertyNotActive):
			return errs.NewPublicError("property is not active")
		case errors.Is(err, errs.NoHolders):
			return errs.NewPublicError("no tokens in circulation, nothing to distribute")
		case errors.Is(err, errs.Duplicate):
			return errs.NewPublicError("revenue epoch already exists")
		case errors.Is(err, errs.InsufficientBalance):
			return errs.NewPublicError("caller funding balance cannot cover deposit amount")
		case errors.Is(err, errs.InvalidArgument):
			return errs.WithPublicMessage(err, "invalid request")
		}
		return errors.Wrap(err, "error during DepositRevenue")
	}

	result := mapRevenueEpochToResult(epoch)
	resp := depositRevenueResponse{Result: &result}
	return errors.WithStack(ctx.Status(fiber.StatusCreated).JSON(resp))
}
