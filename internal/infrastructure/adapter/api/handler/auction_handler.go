package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/rsvtravel/booking-engine/internal/domain/entity"
	domainerr "github.com/rsvtravel/booking-engine/internal/domain/error"
	coreport "github.com/rsvtravel/booking-engine/internal/domain/port/core"
	auctionUseCase "github.com/rsvtravel/booking-engine/internal/domain/usecase/auction"
	"github.com/rsvtravel/booking-engine/internal/infrastructure/adapter/api/dto"
)

// AuctionHandler handles auction-related HTTP requests
type AuctionHandler struct {
	auctionService *auctionUseCase.Service
	logger         coreport.Logger
}

// NewAuctionHandler creates a new auction handler instance
func NewAuctionHandler(auctionService *auctionUseCase.Service, logger coreport.Logger) *AuctionHandler {
	return &AuctionHandler{
		auctionService: auctionService,
		logger:         logger,
	}
}

// CreateAuction handles the POST /auctions endpoint
func (h *AuctionHandler) CreateAuction(c *gin.Context) {
	var req dto.CreateAuctionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error("Invalid auction request format", map[string]any{
			"error": err.Error(),
		})
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(domainerr.ErrInvalidRequest),
			Message: "Invalid request format: " + err.Error(),
		})
		return
	}

	result, err := h.auctionService.CreateAuction(c.Request.Context(), auctionUseCase.CreateAuctionRequest{
		PropertyID:        req.PropertyID,
		HostID:            req.HostID,
		CheckIn:           req.CheckIn,
		CheckOut:          req.CheckOut,
		StartPriceCents:   req.StartPriceCents,
		MinIncrementCents: req.MinIncrementCents,
		StartTime:         req.StartTime,
		EndTime:           req.EndTime,
		MaxGuests:         req.MaxGuests,
		Description:       req.Description,
	})
	if err != nil {
		c.JSON(result.StatusCode, dto.ErrorResponse{
			Code:    result.ErrorCode,
			Message: result.ErrorMessage,
		})
		return
	}

	c.JSON(result.StatusCode, dto.NewAuctionResponse(result.Auction))
}

// GetAuction handles the GET /auctions/:id endpoint
func (h *AuctionHandler) GetAuction(c *gin.Context) {
	auctionID, ok := h.pathID(c, "id")
	if !ok {
		return
	}

	result, err := h.auctionService.GetAuction(c.Request.Context(), auctionID)
	if err != nil {
		c.JSON(result.StatusCode, dto.ErrorResponse{
			Code:    result.ErrorCode,
			Message: result.ErrorMessage,
		})
		return
	}

	c.JSON(result.StatusCode, dto.NewAuctionResponse(result.Auction))
}

// PlaceBid handles the POST /auctions/:id/bids endpoint
func (h *AuctionHandler) PlaceBid(c *gin.Context) {
	auctionID, ok := h.pathID(c, "id")
	if !ok {
		return
	}

	var req dto.PlaceBidRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(domainerr.ErrInvalidRequest),
			Message: "Invalid request format: " + err.Error(),
		})
		return
	}

	result, err := h.auctionService.PlaceBid(c.Request.Context(), auctionUseCase.PlaceBidRequest{
		AuctionID:      auctionID,
		BidderID:       req.BidderID,
		AmountCents:    req.AmountCents,
		IsAutoBid:      req.IsAutoBid,
		MaxAmountCents: req.MaxAmountCents,
	})
	if err != nil {
		resp := dto.ErrorResponse{
			Code:    result.ErrorCode,
			Message: result.ErrorMessage,
		}
		if result.MinimumBid > 0 {
			resp.MinimumBid = entity.AmountInCentsToString(result.MinimumBid)
		}
		c.JSON(result.StatusCode, resp)
		return
	}

	c.JSON(result.StatusCode, gin.H{
		"bid":     dto.NewBidResponse(result.Bid),
		"auction": dto.NewAuctionResponse(result.Auction),
	})
}

// GetBids handles the GET /auctions/:id/bids endpoint
func (h *AuctionHandler) GetBids(c *gin.Context) {
	auctionID, ok := h.pathID(c, "id")
	if !ok {
		return
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	result, err := h.auctionService.GetBids(c.Request.Context(), auctionID, limit, offset)
	if err != nil {
		c.JSON(result.StatusCode, dto.ErrorResponse{
			Code:    result.ErrorCode,
			Message: result.ErrorMessage,
		})
		return
	}

	c.JSON(result.StatusCode, gin.H{
		"auctionId": auctionID,
		"bids":      dto.NewBidListResponse(result.Bids),
	})
}

func (h *AuctionHandler) pathID(c *gin.Context, name string) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(domainerr.ErrInvalidRequest),
			Message: "Invalid " + name + " path parameter",
		})
		return 0, false
	}
	return id, true
}
