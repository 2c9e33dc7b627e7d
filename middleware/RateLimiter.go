package middleware

import (
	"strconv"
	"sync"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
)

const (
	maxRequestsPerSecond = 10
	banDuration          = 10 * time.Minute
)

// BannedIP tracks banned IPs and their expiration
type BannedIP struct {
	BannedUntil time.Time
}

// IPBanStorage implements the fiber limiter Storage interface with a ban
// list on top: an IP that keeps hammering past the limit is shut out for
// banDuration.
type IPBanStorage struct {
	mu       sync.RWMutex
	requests map[string][]time.Time
	bans     map[string]*BannedIP
}

func NewIPBanStorage() *IPBanStorage {
	storage := &IPBanStorage{
		requests: make(map[string][]time.Time),
		bans:     make(map[string]*BannedIP),
	}
	go storage.cleanup()
	return storage
}

// Get retrieves the request count for an IP as []byte (Fiber Storage interface)
func (s *IPBanStorage) Get(key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if ban, exists := s.bans[key]; exists {
		if time.Now().Before(ban.BannedUntil) {
			return []byte("999999"), nil
		}
	}

	if timestamps, exists := s.requests[key]; exists {
		now := time.Now()
		count := 0
		for _, ts := range timestamps {
			if now.Sub(ts) <= time.Second {
				count++
			}
		}
		return []byte(strconv.Itoa(count)), nil
	}

	return []byte("0"), nil
}

// Set records a request for an IP (Fiber Storage interface)
func (s *IPBanStorage) Set(key string, _ []byte, _ time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if ban, exists := s.bans[key]; exists {
		if time.Now().Before(ban.BannedUntil) {
			return nil
		}
	}

	now := time.Now()
	s.requests[key] = append(s.requests[key], now)

	count := 0
	for _, ts := range s.requests[key] {
		if now.Sub(ts) <= time.Second {
			count++
		}
	}

	if count > maxRequestsPerSecond {
		s.bans[key] = &BannedIP{BannedUntil: now.Add(banDuration)}
	}

	return nil
}

func (s *IPBanStorage) Delete(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.requests, key)
	delete(s.bans, key)
	return nil
}

func (s *IPBanStorage) Reset() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.requests = make(map[string][]time.Time)
	s.bans = make(map[string]*BannedIP)
	return nil
}

func (s *IPBanStorage) Close() error {
	return nil
}

// cleanup removes stale timestamps and expired bans periodically
func (s *IPBanStorage) cleanup() {
	ticker := time.NewTicker(5 * time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		s.mu.Lock()
		now := time.Now()

		for ip, timestamps := range s.requests {
			fresh := timestamps[:0]
			for _, ts := range timestamps {
				if now.Sub(ts) <= time.Second {
					fresh = append(fresh, ts)
				}
			}
			if len(fresh) == 0 {
				delete(s.requests, ip)
			} else {
				s.requests[ip] = fresh
			}
		}

		for ip, ban := range s.bans {
			if now.After(ban.BannedUntil) {
				delete(s.bans, ip)
			}
		}

		s.mu.Unlock()
	}
}

// IsBanned checks if an IP is currently banned
func (s *IPBanStorage) IsBanned(ip string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if ban, exists := s.bans[ip]; exists {
		return time.Now().Before(ban.BannedUntil)
	}
	return false
}

var banStorage *IPBanStorage

// InitRateLimiter builds the fiber limiter backed by IPBanStorage:
// maxRequestsPerSecond per IP, then a banDuration ban.
func InitRateLimiter() fiber.Handler {
	if banStorage == nil {
		banStorage = NewIPBanStorage()
	}

	return limiter.New(limiter.Config{
		Max:        maxRequestsPerSecond,
		Expiration: time.Second,
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			if banStorage.IsBanned(c.IP()) {
				return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
					"error":   "ip banned",
					"message": "your IP has been temporarily banned for exceeding rate limits",
				})
			}
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"error":   "rate limit exceeded",
				"message": "too many requests per second, please slow down",
			})
		},
		Storage: banStorage,
	})
}
