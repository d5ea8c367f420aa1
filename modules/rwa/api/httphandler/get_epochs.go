package httphandler

import (
	"github.com/cockroachdb/errors"
	"github.com/gofiber/fiber/v2"
	"github.com/hubtoken/rwa-ledger/common"
	"github.com/hubtoken/rwa-ledger/common/errs"
	"github.com/hubtoken/rwa-ledger/modules/rwa/entity"
	"github.com/samber/lo"
	"golang.org/x/sync/errgroup"
)

type getEpochsRequest struct {
	Address string `params:"address"`
}

func (r getEpochsRequest) Validate() error {
	if _, ok := resolveAddress(r.Address); !ok {
		return errs.NewPublicError("invalid property address")
	}
	return nil
}

type getEpochsResult struct {
	Property propertyResult       `json:"property"`
	List     []revenueEpochResult `json:"list"`
}

type getEpochsResponse = common.HttpResponse[getEpochsResult]

func (h *HttpHandler) GetEpochs(ctx *fiber.Ctx) (err error) {
	var req getEpochsRequest
	if err := ctx.ParamsParser(&req); err != nil {
		return errors.WithStack(err)
	}
	if err := req.Validate(); err != nil {
		return errors.WithStack(err)
	}

	address, _ := resolveAddress(req.Address)

	var (
		property entity.Property
		epochs   []entity.RevenueEpoch
	)
	eg, egctx := errgroup.WithContext(ctx.UserContext())
	eg.Go(func() error {
		var err error
		property, err = h.usecase.GetProperty(egctx, address)
		return errors.Wrap(err, "error during GetProperty")
	})
	eg.Go(func() error {
		var err error
		epochs, err = h.usecase.GetRevenueEpochs(egctx, address)
		return errors.Wrap(err, "error during GetRevenueEpochs")
	})
	if err := eg.Wait(); err != nil {
		if errors.Is(err, errs.NotFound) {
			return errs.NewPublicError("property not found")
		}
		return errors.WithStack(err)
	}

	resp := getEpochsResponse{
		Result: &getEpochsResult{
			Property: mapPropertyToResult(property),
			List: lo.Map(epochs, func(epoch entity.RevenueEpoch, _ int) revenueEpochResult {
				return mapRevenueEpochToResult(epoch)
			}),
		},
	}
	return errors.WithStack(ctx.JSON(resp))
}
