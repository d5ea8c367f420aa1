package httphandler

import (
	"github.com/cockroachdb/errors"
	"github.com/gofiber/fiber/v2"
	"github.com/hubtoken/rwa-ledger/common"
	"github.com/hubtoken/rwa-ledger/common/errs"
)

type initTransferHookRequest struct {
	Address string `params:"address"`
	Caller  string `json:"caller"`
}

func (r initTransferHookRequest) Validate() error {
	var errList []error
	if _, ok := resolveAddress(r.Address); !ok {
		errList = append(errList, errors.New("invalid property address"))
	}
	if _, ok := resolveAddress(r.Caller); !ok {
		errList = append(errList, errors.Errorf("'caller' is not a valid address: %q", r.Caller))
	}
	return errs.WithPublicMessage(errors.Join(errList...), "validation error")
}

type transferHookConfigResult struct {
	Property  string `json:"property"`
	Mint      string `json:"mint"`
	Authority string `json:"authority"`
	CreatedAt int64  `json:"createdAt"`
}

type initTransferHookResponse = common.HttpResponse[transferHookConfigResult]

func (h *HttpHandler) InitializeTransferHook(ctx *fiber.Ctx) (err error) {
	var req initTransferHookRequest
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
	config, err := h.usecase.InitializeTransferHookConfig(ctx.UserContext(), address, caller)
	if err != nil {
		switch {
		case errors.Is(err, errs.NotFound):
			return errs.NewPublicError("property not found")
		case errors.Is(err, errs.Unauthorized):
			return errs.NewPublicError("caller is not the property authority")
		case errors.Is(err, errs.Duplicate):
			return errs.NewPublicError("transfer hook config already initialized")
		}
		return errors.Wrap(err, "error during InitializeTransferHook")
	}

	resp := initTransferHookResponse{
		Result: &transferHookConfigResult{
			Property:  config.Property.String(),
			Mint:      config.Mint.String(),
			Authority: config.Authority.String(),
			CreatedAt: config.CreatedAt.Unix(),
		},
	}
	return errors.WithStack(ctx.Status(fiber.StatusCreated).JSON(resp))
}
