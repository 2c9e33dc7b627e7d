package service

import (
	"context"
	"log"
	"time"

	"planboard/dto"
	"planboard/model"
	"planboard/repository"
	"planboard/util"
)

// OTPTTL is the fixed validity window of an issued code.
const OTPTTL = 2 * time.Minute

// OTPSender is the minimal mailing interface OTPService needs; satisfied
// by *EmailService.
type OTPSender interface {
	SendOTP(toEmail string, code, reference string, purpose model.OTPPurpose) error
}

type OTPService struct {
	otpRepo  repository.OTPRepository
	userRepo repository.UserRepository
	throttle repository.OTPThrottleRepository
	sender   OTPSender
}

func NewOTPService(
	otpRepo repository.OTPRepository,
	userRepo repository.UserRepository,
	throttle repository.OTPThrottleRepository,
	sender OTPSender,
) *OTPService {
	return &OTPService{
		otpRepo:  otpRepo,
		userRepo: userRepo,
		throttle: throttle,
		sender:   sender,
	}
}

// Issue creates (or replaces) the pending code for (email, purpose) and
// mails it. The DB row is written before the mail goes out so a lost mail
// can be answered by /otp/resend without a second code.
func (s *OTPService) Issue(ctx context.Context, email string, purpose model.OTPPurpose) (*dto.RequestOTPResponse, error) {
	user, err := s.userRepo.GetByEmail(email)
	if err != nil {
		return nil, ErrUserNotFound
	}

	if purpose == model.OTPPurposeVerify && user.IsEmailVerified {
		return nil, ErrAlreadyVerified
	}

	allowed, err := s.throttle.Reserve(ctx, email, purpose)
	if err != nil {
		// Throttle store being down should not lock everyone out
		log.Printf("OTP throttle check failed for %s: %v", email, err)
	} else if !allowed {
		return nil, ErrOTPThrottled
	}

	code := util.GenerateRandomDigits(6)
	ref := util.GenerateReference(10)

	otp := &model.OTPCode{
		Email:     email,
		Purpose:   purpose,
		Code:      code,
		Reference: ref,
		Used:      false,
		ExpiresAt: time.Now().Add(OTPTTL),
	}
	if err := s.otpRepo.Upsert(otp); err != nil {
		return nil, err
	}

	// Send in the background so the API responds fast
	go func() {
		if err := s.sender.SendOTP(email, code, ref, purpose); err != nil {
			log.Printf("Failed to send OTP to %s: %v", email, err)
			return
		}
		log.Printf("OTP sent successfully to %s", email)
	}()

	return &dto.RequestOTPResponse{
		Message:   "OTP has been sent to your email",
		Reference: ref,
		ExpiresIn: int(OTPTTL.Seconds()),
	}, nil
}

// Verify checks reference + code against the stored row. On success the
// row is marked used; for the verify purpose the user's verified flag is
// flipped as well.
func (s *OTPService) Verify(email string, purpose model.OTPPurpose, reference, code string) error {
	otp, err := s.otpRepo.GetByEmailAndPurpose(email, purpose)
	if err != nil {
		return ErrOTPNotFound
	}

	if otp.Reference != reference {
		return ErrOTPNotFound
	}
	if otp.Used {
		return ErrOTPUsed
	}
	if otp.IsExpired() {
		return ErrOTPExpired
	}
	if otp.Code != code {
		return ErrOTPMismatch
	}

	if err := s.otpRepo.MarkUsed(otp.ID); err != nil {
		return err
	}

	if purpose == model.OTPPurposeVerify {
		user, err := s.userRepo.GetByEmail(email)
		if err != nil {
			return ErrUserNotFound
		}
		if err := s.userRepo.UpdateFields(user.ID, map[string]interface{}{"is_email_verified": true}); err != nil {
			return err
		}
		log.Printf("Email verified for %s (user_id=%s)", email, user.ID.String())
	}

	return nil
}
