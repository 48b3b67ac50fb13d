package verify

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/battlehub/battlehub/internal/config"
	"github.com/battlehub/battlehub/internal/domain"
	"github.com/battlehub/battlehub/pkg/clients"
)

const (
	maxRetries    = 3
	retryInterval = time.Second * 1
)

var processingRequests sync.Map

// Response is what the proof verification system returns for a deposit receipt.
type Response struct {
	ID         string          `json:"id"`
	Verdict    string          `json:"verdict"`
	AmountSeen decimal.Decimal `json:"amount_seen,omitempty"`
}

type TransactionRepo interface {
	FindUnverifiedDeposits(ctx context.Context, limit uint32) ([]domain.TransactionRequest, error)
	SetNote(ctx context.Context, id uuid.UUID, note string) error
}

type Service struct {
	url             string
	transactionRepo TransactionRepo
	client          clients.HTTPClientI
	limit           uint32
	workerPool      WorkerPoolI
	updateInterval  time.Duration
}

func New(cfg *config.Config, transactionRepo TransactionRepo, client clients.HTTPClientI) *Service {
	return &Service{
		url:             cfg.VerifyAddress,
		transactionRepo: transactionRepo,
		client:          client,
		limit:           1000,
		workerPool:      NewWorkerPool(10),
		updateInterval:  time.Second * 5,
	}
}

func (s *Service) Start(ctx context.Context) {
	zap.L().Info("Verify service started")
	go s.run(ctx)
}

func (s *Service) run(ctx context.Context) {
	ticker := time.NewTicker(s.updateInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			zap.L().Info("Context canceled, stopping service")
			return
		case <-ticker.C:
			s.processRequests(ctx)
		}
	}
}

func (s *Service) processRequests(ctx context.Context) {
	requests, err := s.transactionRepo.FindUnverifiedDeposits(ctx, atomic.LoadUint32(&s.limit))
	if err != nil {
		zap.L().Error("Failed to fetch deposits for verification", zap.Error(err))
		return
	}

	var g errgroup.Group
	for _, request := range requests {
		request := request

		if _, loaded := processingRequests.LoadOrStore(request.ID, struct{}{}); loaded {
			continue
		}

		g.Go(func() error {
			err := s.workerPool.AddTask(ctx, func() error {
				defer processingRequests.Delete(request.ID)
				return s.handleRequest(ctx, request)
			})
			if err != nil {
				processingRequests.Delete(request.ID)
				return err
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		zap.L().Error("Error verifying deposits", zap.Error(err))
	}
}

func (s *Service) handleRequest(ctx context.Context, request domain.TransactionRequest) error {
	url := s.url + "/api/verify"
	body, err := json.Marshal(map[string]string{
		"id":     request.ID.String(),
		"proof":  request.Proof,
		"amount": request.Amount.String(),
	})
	if err != nil {
		return fmt.Errorf("failed to marshal verify request: %w", err)
	}

	var statusCode int
	var respBody []byte
	var respHeaders http.Header

	for attempt := 1; attempt <= maxRetries; attempt++ {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
			statusCode, respBody, respHeaders, err = s.client.Post(url, nil, body)
			if err != nil {
				if attempt < maxRetries {
					time.Sleep(retryInterval * time.Duration(attempt))
					continue
				}
				return fmt.Errorf("failed to verify request %s after %d retries: %w", request.ID, maxRetries, err)
			}

			switch statusCode {
			case http.StatusTooManyRequests:
				return s.handleRateLimit(request, respHeaders, attempt)
			case http.StatusNoContent:
				zap.L().Warn("Proof not yet analyzed, retrying", zap.String("requestID", request.ID.String()), zap.Int("attempt", attempt))
				if attempt < maxRetries {
					time.Sleep(retryInterval * time.Duration(attempt))
					continue
				}
				return fmt.Errorf("proof for request %s not analyzed after %d retries", request.ID, maxRetries)

			case http.StatusOK:
				return s.processVerdict(ctx, request, respBody)

			default:
				zap.L().Error("Unexpected status code", zap.Int("status", statusCode), zap.String("requestID", request.ID.String()))
				return errors.New("unexpected status code")
			}
		}
	}
	return nil
}

// processVerdict stores the verifier's verdict as an advisory note. It never
// changes the request status; an admin still makes the final call.
func (s *Service) processVerdict(ctx context.Context, request domain.TransactionRequest, respBody []byte) error {
	var response Response
	if err := json.Unmarshal(respBody, &response); err != nil {
		return fmt.Errorf("failed to parse response body: %w", err)
	}

	if response.ID != request.ID.String() {
		return fmt.Errorf("request id mismatch: expected %s, got %s", request.ID, response.ID)
	}

	var note string
	switch response.Verdict {
	case "MATCH":
		note = "verifier: amount matched"
	case "MISMATCH":
		note = fmt.Sprintf("verifier: amount mismatch, receipt shows %s", response.AmountSeen)
	case "UNREADABLE":
		note = "verifier: receipt unreadable"
	default:
		zap.L().Warn("Unrecognized verdict received", zap.String("requestID", request.ID.String()), zap.String("verdict", response.Verdict))
		note = "verifier: no verdict"
	}

	if err := s.transactionRepo.SetNote(ctx, request.ID, note); err != nil {
		return fmt.Errorf("failed to store verifier note: %w", err)
	}
	zap.L().Info("Verifier note stored", zap.String("requestID", request.ID.String()), zap.String("note", note))
	return nil
}

func (s *Service) handleRateLimit(request domain.TransactionRequest, respHeaders http.Header, attempt int) error {
	retryAfterHeader := respHeaders.Get("Retry-After")
	retryAfter := retryInterval * time.Duration(attempt)

	if retryAfterHeader != "" {
		if seconds, err := strconv.Atoi(retryAfterHeader); err == nil {
			retryAfter = time.Duration(seconds) * time.Second
		}
	}
	zap.L().Warn(
		"Rate limit detected, retrying",
		zap.String("requestID", request.ID.String()),
		zap.Int("attempt", attempt),
		zap.Duration("retryAfter", retryAfter),
	)
	time.Sleep(retryAfter)
	return nil
}
