package service

import (
	"context"
	"crypto/rand"
	"crypto/subtle"
	"errors"
	"fmt"
	"math/big"
	"time"

	"urbancare-clinic-api/config"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

var (
	// ErrCodeExpired is returned when no active code exists for the phone
	// number, either because none was requested or its TTL elapsed.
	ErrCodeExpired = errors.New("verification code expired or not requested")

	// ErrCodeMismatch is returned when the submitted code does not match;
	// the challenge stays active until its TTL or attempt cap is reached.
	ErrCodeMismatch = errors.New("verification code does not match")

	// ErrTooManyAttempts is returned when the attempt cap is hit; the code
	// is revoked and a new one must be requested.
	ErrTooManyAttempts = errors.New("too many verification attempts")

	// ErrTooManyCodeRequests is returned when the hourly issuance limit
	// for a phone number is exceeded.
	ErrTooManyCodeRequests = errors.New("too many verification code requests")
)

const (
	otpCodeKeyPrefix     = "otp:code:"
	otpAttemptsKeyPrefix = "otp:attempts:"
	otpIssuedKeyPrefix   = "otp:issued:"
	otpVerifiedKeyPrefix = "otp:verified:"

	otpIssueWindow = time.Hour
)

// SMSSender delivers a verification code to a phone number. The real
// delivery channel is out of scope; the default implementation logs.
type SMSSender interface {
	SendCode(ctx context.Context, phone string, code string) error
}

// OTPService is the server-side booking gate: codes are issued and compared
// here, time-boxed and rate-limited, never handed back to the caller.
//
// State per phone number lives in Redis:
//   - otp:code:<phone>      active challenge code, expires with CodeTTL
//   - otp:attempts:<phone>  failed attempts against the active code
//   - otp:issued:<phone>    codes issued in the current hourly window
//   - otp:verified:<phone>  set on success, read by booking submission
type OTPService interface {
	RequestCode(ctx context.Context, phone string) error
	VerifyCode(ctx context.Context, phone string, code string) error
	IsVerified(ctx context.Context, phone string) (bool, error)
}

type otpService struct {
	redisClient *redis.Client
	log         *logrus.Logger
	sender      SMSSender
	cfg         config.OTPConfig
}

func NewOTPService(redisClient *redis.Client, log *logrus.Logger, sender SMSSender, cfg config.OTPConfig) OTPService {
	return &otpService{
		redisClient: redisClient,
		log:         log,
		sender:      sender,
		cfg:         cfg,
	}
}

// RequestCode issues a fresh 6-digit code for the phone number, replacing
// any previous one, and hands it to the SMS sender.
func (s *otpService) RequestCode(ctx context.Context, phone string) error {
	issuedKey := otpIssuedKeyPrefix + phone

	issued, err := s.redisClient.Incr(ctx, issuedKey).Result()
	if err != nil {
		return fmt.Errorf("failed to track code issuance: %w", err)
	}
	if issued == 1 {
		if err := s.redisClient.Expire(ctx, issuedKey, otpIssueWindow).Err(); err != nil {
			return fmt.Errorf("failed to set issuance window: %w", err)
		}
	}
	if issued > int64(s.cfg.MaxCodesPerHour) {
		return ErrTooManyCodeRequests
	}

	code, err := generateCode()
	if err != nil {
		return fmt.Errorf("failed to generate code: %w", err)
	}

	pipe := s.redisClient.TxPipeline()
	pipe.Set(ctx, otpCodeKeyPrefix+phone, code, s.cfg.CodeTTL)
	pipe.Del(ctx, otpAttemptsKeyPrefix+phone)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to store code: %w", err)
	}

	if err := s.sender.SendCode(ctx, phone, code); err != nil {
		s.log.Errorf("Failed to deliver verification code to %s: %+v", phone, err)
		return err
	}

	s.log.Infof("Verification code issued for phone %s", phone)
	return nil
}

// VerifyCode compares the submitted code against the active challenge.
// On match the phone is marked verified for VerifiedTTL.
func (s *otpService) VerifyCode(ctx context.Context, phone string, code string) error {
	codeKey := otpCodeKeyPrefix + phone

	stored, err := s.redisClient.Get(ctx, codeKey).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return ErrCodeExpired
		}
		return fmt.Errorf("failed to load code: %w", err)
	}

	attemptsKey := otpAttemptsKeyPrefix + phone
	attempts, err := s.redisClient.Incr(ctx, attemptsKey).Result()
	if err != nil {
		return fmt.Errorf("failed to count attempt: %w", err)
	}
	if attempts == 1 {
		if err := s.redisClient.Expire(ctx, attemptsKey, s.cfg.CodeTTL).Err(); err != nil {
			return fmt.Errorf("failed to expire attempt counter: %w", err)
		}
	}
	if attempts > int64(s.cfg.MaxAttempts) {
		// Revoke the challenge; the caller must request a new code.
		if err := s.redisClient.Del(ctx, codeKey, attemptsKey).Err(); err != nil {
			s.log.Warnf("Failed to revoke exhausted code for %s: %+v", phone, err)
		}
		return ErrTooManyAttempts
	}

	if subtle.ConstantTimeCompare([]byte(stored), []byte(code)) != 1 {
		return ErrCodeMismatch
	}

	pipe := s.redisClient.TxPipeline()
	pipe.Del(ctx, codeKey, attemptsKey)
	pipe.Set(ctx, otpVerifiedKeyPrefix+phone, "1", s.cfg.VerifiedTTL)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to mark phone verified: %w", err)
	}

	s.log.Infof("Phone %s verified", phone)
	return nil
}

// IsVerified reports whether the phone passed verification recently
func (s *otpService) IsVerified(ctx context.Context, phone string) (bool, error) {
	exists, err := s.redisClient.Exists(ctx, otpVerifiedKeyPrefix+phone).Result()
	if err != nil {
		return false, fmt.Errorf("failed to check verification: %w", err)
	}
	return exists > 0, nil
}

// generateCode draws a uniform 6-digit code from crypto/rand
func generateCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1000000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}
