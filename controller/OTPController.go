package controller

import (
	"errors"

	"planboard/dto"
	"planboard/model"
	"planboard/service"
	"planboard/util"

	"github.com/gofiber/fiber/v2"
)

type OTPController struct {
	otpSvc *service.OTPService
}

func NewOTPController(otpSvc *service.OTPService) *OTPController {
	return &OTPController{otpSvc: otpSvc}
}

func (oc *OTPController) issue(c *fiber.Ctx, email, purpose string) error {
	res, err := oc.otpSvc.Issue(c.Context(), email, model.OTPPurpose(purpose))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUserNotFound):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "email not found"})
		case errors.Is(err, service.ErrAlreadyVerified):
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": err.Error()})
		case errors.Is(err, service.ErrOTPThrottled):
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "too many OTP requests, please try again later"})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		}
	}

	return c.Status(fiber.StatusOK).JSON(res)
}

// RequestOTP godoc
// @Summary      Request a one-time code
// @Description  Issues a 6-digit code with a 10-char reference for the given purpose. A pending code for the same purpose is replaced; the code expires after 2 minutes.
// @Tags         otp
// @Accept       json
// @Produce      json
// @Param        payload body dto.RequestOTPRequest true "OTP request payload"
// @Success      200  {object}  dto.RequestOTPResponse
// @Failure      400  {object}  map[string]string
// @Failure      403  {object}  map[string]string "Throttled"
// @Failure      404  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /auth/otp/request [post]
func (oc *OTPController) RequestOTP(c *fiber.Ctx) error {
	var req dto.RequestOTPRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request payload"})
	}

	if err := util.ValidateStruct(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	return oc.issue(c, req.Email, req.Purpose)
}

// ResendOTP godoc
// @Summary      Resend the one-time code
// @Description  Replaces the pending code for (email, purpose) with a fresh one and restarts the 2-minute window.
// @Tags         otp
// @Accept       json
// @Produce      json
// @Param        payload body dto.ResendOTPRequest true "Resend payload"
// @Success      200  {object}  dto.RequestOTPResponse
// @Failure      400  {object}  map[string]string
// @Failure      403  {object}  map[string]string "Throttled"
// @Failure      404  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /auth/otp/resend [post]
func (oc *OTPController) ResendOTP(c *fiber.Ctx) error {
	var req dto.ResendOTPRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request payload"})
	}

	if err := util.ValidateStruct(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	return oc.issue(c, req.Email, req.Purpose)
}

// VerifyOTP godoc
// @Summary      Verify a one-time code
// @Description  Checks reference + code for the given purpose. On success the code is consumed; for the verify purpose the account is marked verified.
// @Tags         otp
// @Accept       json
// @Produce      json
// @Param        payload body dto.VerifyOTPRequest true "Verify payload"
// @Success      200  {object}  map[string]string
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /auth/otp/verify [put]
func (oc *OTPController) VerifyOTP(c *fiber.Ctx) error {
	var req dto.VerifyOTPRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request payload"})
	}

	if err := util.ValidateStruct(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	if err := oc.otpSvc.Verify(req.Email, model.OTPPurpose(req.Purpose), req.Reference, req.Code); err != nil {
		switch {
		case errors.Is(err, service.ErrOTPNotFound):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
		case errors.Is(err, service.ErrOTPUsed),
			errors.Is(err, service.ErrOTPExpired),
			errors.Is(err, service.ErrOTPMismatch):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		case errors.Is(err, service.ErrUserNotFound):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		}
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "otp verified"})
}
