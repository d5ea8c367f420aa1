package httphandler

import (
	"fmt"

	"github.com/cockroachdb/errors"
	"github.com/gofiber/fiber/v2"
	"github.com/hubtoken/rwa-ledger/common"
	"github.com/hubtoken/rwa-ledger/common/errs"
	"github.com/hubtoken/rwa-ledger/modules/rwa/compliance"
)

type transferRequest struct {
	Address     string `params:"address"`
	Source      string `json:"source"`
	Destination string `json:"destination"`
	Amount      uint64 `json:"amount"`
}

func (r transferRequest) Validate() error {
	var errList []error
	if _, ok := resolveAddress(r.Address); !ok {
		errList = append(errList, errors.New("invalid property address"))
	}
	if _, ok := resolveAddress(r.Source); !ok {
		errList = append(errList, errors.Errorf("'source' is not a valid address: %q", r.Source))
	}
	if _, ok := resolveAddress(r.Destination); !ok {
		errList = append(errList, errors.Errorf("'destination' is not a valid address: %q", r.Destination))
	}
	return errs.WithPublicMessage(errors.Join(errList...), "validation error")
}

type transferResult struct {
	Transferred bool `json:"transferred"`
}

type transferResponse = common.HttpResponse[transferResult]

func (h *HttpHandler) Transfer(ctx *fiber.Ctx) (err error) {
	var req transferRequest
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
	source, _ := resolveAddress(req.Source)
	destination, _ := resolveAddress(req.Destination)
	if err := h.usecase.Transfer(ctx.UserContext(), address, source, destination, req.Amount); err != nil {
		switch {
		case errors.Is(err, errs.NotFound):
			return errs.NewPublicError("property not found")
		case errors.Is(err, errs.ComplianceRequired):
			return errs.NewPublicError(fmt.Sprintf("transfer aborted: %s", compliance.ReasonOf(err)))
		case errors.Is(err, errs.InsufficientBalance):
			return errs.NewPublicError("source balance cannot cover transfer amount")
		case errors.Is(err, errs.InvalidArgument):
			return errs.WithPublicMessage(err, "invalid request")
		}
		return errors.Wrap(err, "error during Transfer")
	}

	resp := transferResponse{Result: &transferResult{Transferred: true}}
	return errors.WithStack(ctx.JSON(resp))
}
