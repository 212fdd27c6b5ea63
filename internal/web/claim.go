package web

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tontap/ton_tap_bot/internal/handlers"
	"github.com/tontap/ton_tap_bot/internal/models"
	"github.com/tontap/ton_tap_bot/internal/security"
	apperrors "github.com/tontap/ton_tap_bot/pkg/errors"
	"github.com/tontap/ton_tap_bot/pkg/logger"
)

type claimRequest struct {
	Token  string  `json:"token"`
	UserID int64   `json:"user_id"`
	Amount float64 `json:"amount"`
	Taps   int64   `json:"taps"`
}

// validateClaim checks the payload shape before any token work. The user
// identity is never taken from the body; UserID is only cross-checked
// against the token claims when present.
func validateClaim(req *claimRequest) *apperrors.AppError {
	if req.Token == "" {
		return apperrors.New(apperrors.ErrCodeUnauthorized, "missing game token")
	}
	if req.Amount < 0 || req.Taps < 0 {
		return apperrors.New(apperrors.ErrCodeInvalidRequest, "negative amount or taps")
	}
	if req.Amount == 0 && req.Taps == 0 {
		return apperrors.New(apperrors.ErrCodeInvalidRequest, "nothing to claim")
	}
	return nil
}

func (s *Server) handleClaimReward(c *fiber.Ctx) error {
	var req claimRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "Invalid data",
		})
	}
	if req.Token == "" {
		req.Token = c.Query("token")
	}

	entry := &models.TrafficLog{
		IP:       c.IP(),
		Endpoint: "/api/claim-reward",
		Taps:     req.Taps,
	}
	defer func() {
		if err := s.handlers.TxRepo.LogTraffic(entry); err != nil {
			logger.Error("Failed to write traffic log", "error", err)
		}
	}()

	if appErr := validateClaim(&req); appErr != nil {
		status := fiber.StatusBadRequest
		if appErr.Code == apperrors.ErrCodeUnauthorized {
			status = fiber.StatusUnauthorized
		}
		return c.Status(status).JSON(fiber.Map{
			"success": false,
			"error":   appErr.Message,
		})
	}

	claims, err := security.ValidateGameToken(req.Token, s.cfg.JWTSecret)
	if err != nil {
		logger.Warn("Rejected claim with bad token", "ip", c.IP(), "error", err)
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"success": false,
			"error":   "Invalid or expired game token",
		})
	}

	if req.UserID != 0 && req.UserID != claims.TelegramID {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"success": false,
			"error":   "Token does not match user",
		})
	}

	user, err := s.handlers.UserRepo.GetByTelegramID(claims.TelegramID)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"success": false,
			"error":   "Unknown user",
		})
	}
	entry.UserID = user.ID

	amount := req.Amount
	if amount == 0 {
		amount = handlers.ScoreToTON(req.Taps, s.cfg.TapsPerTON)
	}

	if err := s.handlers.CreditGameReward(user, amount, req.Taps); err != nil {
		logger.Error("Failed to credit web claim", "user_id", claims.TelegramID, "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"error":   "Failed to claim reward",
		})
	}

	entry.Accepted = true

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Reward claimed successfully",
		"amount":  amount,
	})
}
