package auction

import (
	"context"
	"net/http"

	"github.com/rsvtravel/booking-engine/internal/domain/entity"
	errs "github.com/rsvtravel/booking-engine/internal/domain/error"
	coreport "github.com/rsvtravel/booking-engine/internal/domain/port/core"
)

// AuctionResponse represents the response after an auction operation
type AuctionResponse struct {
	Success      bool
	Auction      *entity.Auction
	Bid          *entity.AuctionBid
	Bids         []*entity.AuctionBid
	MinimumBid   int64
	ErrorMessage string
	ErrorCode    int
	StatusCode   int
}

// Service fronts the auction engine with response shaping
type Service struct {
	engine *Engine
	logger coreport.Logger
}

// NewAuctionService creates a new auction service
func NewAuctionService(engine *Engine, logger coreport.Logger) *Service {
	return &Service{
		engine: engine,
		logger: logger,
	}
}

// CreateAuction registers a new auction
func (s *Service) CreateAuction(ctx context.Context, req CreateAuctionRequest) (*AuctionResponse, error) {
	auction, err := s.engine.Create(ctx, req)
	if err != nil {
		return s.failure("Auction creation failed", err, map[string]any{
			"property_id": req.PropertyID,
			"host_id":     req.HostID,
		}), err
	}
	return &AuctionResponse{Success: true, Auction: auction, StatusCode: http.StatusCreated}, nil
}

// GetAuction retrieves an auction
func (s *Service) GetAuction(ctx context.Context, auctionID uint64) (*AuctionResponse, error) {
	auction, err := s.engine.Get(ctx, auctionID)
	if err != nil {
		return s.failure("Auction lookup failed", err, map[string]any{
			"auction_id": auctionID,
		}), err
	}
	return &AuctionResponse{Success: true, Auction: auction, StatusCode: http.StatusOK}, nil
}

// PlaceBid attempts to place a bid
func (s *Service) PlaceBid(ctx context.Context, req PlaceBidRequest) (*AuctionResponse, error) {
	result, err := s.engine.PlaceBid(ctx, req)
	if err != nil {
		resp := s.failure("Bid rejected", err, map[string]any{
			"auction_id":   req.AuctionID,
			"bidder_id":    req.BidderID,
			"amount_cents": req.AmountCents,
		})
		var tooLow *errs.BidTooLowError
		if errs.AsBidTooLowError(err, &tooLow) {
			resp.MinimumBid = tooLow.MinimumCents
		}
		return resp, err
	}
	return &AuctionResponse{
		Success:    true,
		Auction:    result.Auction,
		Bid:        result.Bid,
		StatusCode: http.StatusCreated,
	}, nil
}

// GetBids lists the bids on an auction
func (s *Service) GetBids(ctx context.Context, auctionID uint64, limit, offset int) (*AuctionResponse, error) {
	bids, err := s.engine.GetBids(ctx, auctionID, limit, offset)
	if err != nil {
		return s.failure("Bid listing failed", err, map[string]any{
			"auction_id": auctionID,
		}), err
	}
	return &AuctionResponse{Success: true, Bids: bids, StatusCode: http.StatusOK}, nil
}

func (s *Service) failure(message string, err error, fields map[string]any) *AuctionResponse {
	resp := &AuctionResponse{
		Success:      false,
		ErrorMessage: err.Error(),
		ErrorCode:    errs.ErrorCode(err),
		StatusCode:   statusCodeFor(err),
	}
	fields["error"] = err.Error()
	fields["status_code"] = resp.StatusCode
	s.logger.Error(message, fields)
	return resp
}

func statusCodeFor(err error) int {
	switch {
	case errs.IsValidationError(err):
		return http.StatusBadRequest
	case errs.IsBidTooLowError(err):
		return http.StatusUnprocessableEntity
	case errs.IsNotFoundError(err):
		return http.StatusNotFound
	case errs.IsAuctionNotActiveError(err), errs.IsInvalidStatusTransitionError(err):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
