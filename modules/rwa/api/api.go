package api

import (
	"github.com/hubtoken/rwa-ledger/common"
	"github.com/hubtoken/rwa-ledger/modules/rwa/api/httphandler"
	"github.com/hubtoken/rwa-ledger/modules/rwa/usecase"
)

func NewHTTPHandler(network common.Network, usecase *usecase.Usecase) *httphandler.HttpHandler {
	return httphandler.New(network, usecase)
}
