package httphandler

import (
	"github.com/gofiber/fiber/v2"
)

func (h *HttpHandler) Mount(router fiber.Router) error {
	r := router.Group("/v1/rwa")

	r.Post("/properties", h.CreateProperty)
	r.Get("/properties", h.GetProperties)
	r.Get("/properties/:address", h.GetProperty)
	r.Put("/properties/:address/details", h.UpdateDetails)
	r.Post("/properties/:address/toggle-active", h.ToggleActive)
	r.Post("/properties/:address/transfer-hook", h.InitializeTransferHook)
	r.Post("/properties/:address/mint", h.Mint)
	r.Post("/properties/:address/burn", h.Burn)
	r.Post("/properties/:address/transfer", h.Transfer)
	r.Get("/properties/:address/holders", h.GetHolders)
	r.Get("/properties/:address/balances/:holder", h.GetBalance)
	r.Post("/properties/:address/epochs", h.DepositRevenue)
	r.Get("/properties/:address/epochs", h.GetEpochs)
	r.Post("/properties/:address/epochs/:epoch/claims", h.ClaimRevenue)
	r.Get("/properties/:address/epochs/:epoch/claims", h.GetClaims)
	r.Put("/credentials", h.SyncCredential)
	return nil
}
