package httphandler

import (
	"encoding/base64"

	"github.com/cockroachdb/errors"
	"github.com/gofiber/fiber/v2"
	"github.com/hubtoken/rwa-ledger/common"
	"github.com/hubtoken/rwa-ledger/common/errs"
	"github.com/hubtoken/rwa-ledger/modules/rwa/attestation"
)

type syncCredentialRequest struct {
	Address string `json:"address"`
	Owner   string `json:"owner"`
	Data    string `json:"data"`
}

func (r syncCredentialRequest) Validate() error {
	var errList []error
	if _, ok := resolveAddress(r.Address); !ok {
		errList = append(errList, errors.Errorf("'address' is not a valid address: %q", r.Address))
	}
	if _, ok := resolveAddress(r.Owner); !ok {
		errList = append(errList, errors.Errorf("'owner' is not a valid address: %q", r.Owner))
	}
	if r.Data == "" {
		errList = append(errList, errors.New("'data' must not be empty"))
	}
	return errs.WithPublicMessage(errors.Join(errList...), "validation error")
}

type syncCredentialResult struct {
	Synced bool `json:"synced"`
}

type syncCredentialResponse = common.HttpResponse[syncCredentialResult]

func (h *HttpHandler) SyncCredential(ctx *fiber.Ctx) (err error) {
	var req syncCredentialRequest
	if err := ctx.BodyParser(&req); err != nil {
		return errs.WithPublicMessage(err, "invalid request body")
	}
	if err := req.Validate(); err != nil {
		return errors.WithStack(err)
	}

	data, err := base64.StdEncoding.DecodeString(req.Data)
	if err != nil {
		return errs.WithPublicMessage(err, "'data' is not valid base64")
	}

	address, _ := resolveAddress(req.Address)
	owner, _ := resolveAddress(req.Owner)
	if err := h.usecase.SyncCredentialAccount(ctx.UserContext(), attestation.Account{
		Address: address,
		Owner:   owner,
		Data:    data,
	}); err != nil {
		return errors.Wrap(err, "error during SyncCredentialAccount")
	}

	resp := syncCredentialResponse{Result: &syncCredentialResult{Synced: true}}
	return errors.WithStack(ctx.JSON(resp))
}
