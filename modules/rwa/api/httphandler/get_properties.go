package httphandler

import (
	"github.com/cockroachdb/errors"
	"github.com/gofiber/fiber/v2"
	"github.com/hubtoken/rwa-ledger/common"
	"github.com/hubtoken/rwa-ledger/modules/rwa/entity"
	"github.com/samber/lo"
)

type getPropertiesRequest struct {
	paginationRequest
}

type getPropertiesResult struct {
	List []propertyResult `json:"list"`
}

type getPropertiesResponse = common.HttpResponse[getPropertiesResult]

func (h *HttpHandler) GetProperties(ctx *fiber.Ctx) (err error) {
	var req getPropertiesRequest
	if err := ctx.QueryParser(&req); err != nil {
		return errors.WithStack(err)
	}
	if err := req.paginationRequest.Validate(); err != nil {
		return errors.WithStack(err)
	}
	if err := req.paginationRequest.ParseDefault(); err != nil {
		return errors.WithStack(err)
	}

	properties, err := h.usecase.GetProperties(ctx.UserContext(), req.Limit, req.Offset)
	if err != nil {
		return errors.Wrap(err, "error during GetProperties")
	}

	resp := getPropertiesResponse{
		Result: &getPropertiesResult{
			List: lo.Map(properties, func(property entity.Property, _ int) propertyResult {
				return mapPropertyToResult(property)
			}),
		},
	}
	return errors.WithStack(ctx.JSON(resp))
}
