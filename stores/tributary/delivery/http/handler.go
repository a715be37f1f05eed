package http

import (
	"math/big"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/tributary-xyz/goapi/base/ctx"
	"github.com/tributary-xyz/goapi/base/delivery"
	"github.com/tributary-xyz/goapi/domain"
	"github.com/tributary-xyz/goapi/domain/keys"
	"github.com/tributary-xyz/goapi/domain/tributary"
	"github.com/tributary-xyz/goapi/middleware"
)

type handler struct {
	tributary tributary.UseCase
}

func New(e *echo.Echo, tributaryUC tributary.UseCase) {
	h := &handler{tributaryUC}

	g := e.Group("/tributary/:chainId/:token", middleware.IsValidAddress("token"))

	g.GET("/quote/buy", h.getBuyQuote, middleware.RateLimit(120, time.Minute))

	g.GET("/quote/sell", h.getSellQuote, middleware.RateLimit(120, time.Minute))

	g.GET("/history", h.getPriceHistory, middleware.CacheHttp(keys.PfxPriceHistory, 1*time.Minute))

	g.GET("/floor-price", h.getFloorPrice, middleware.CacheHttp(keys.PfxFloorPrice, 30*time.Second))

	g.GET("/listings", h.getListings, middleware.CacheHttp(keys.PfxListings, 15*time.Second))
}

// insufficientLiquidityResp keeps the shortfall machine-readable so
// clients can re-quote at the available amount without parsing messages.
type insufficientLiquidityResp struct {
	Message   string `json:"message"`
	Requested string `json:"requested"`
	Available string `json:"available"`
}

func parseChainParams(c echo.Context) (domain.ChainId, domain.Address, error) {
	chainId, err := strconv.ParseInt(c.Param("chainId"), 10, 32)
	if err != nil {
		return 0, "", err
	}
	token := domain.Address(c.Param("token")).ToLower()
	if token.IsEmpty() {
		return 0, "", domain.ErrBadParamInput
	}
	return domain.ChainId(chainId), token, nil
}

func (h *handler) getBuyQuote(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	chainId, token, err := parseChainParams(c)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid params")
	}

	amount, err := domain.ParseBigInt(c.QueryParam("amount"))
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid amount")
	}

	quote, err := h.tributary.GetBuyQuote(ctx, chainId, token, amount)
	if err != nil {
		if lerr, ok := err.(*tributary.InsufficientLiquidityError); ok {
			return delivery.MakeJsonResp(c, http.StatusBadRequest, insufficientLiquidityResp{
				Message:   lerr.Error(),
				Requested: lerr.Requested.String(),
				Available: lerr.Available.String(),
			})
		}
		if err == domain.ErrInvalidAmount {
			return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
		}
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}

	return delivery.MakeJsonResp(c, http.StatusOK, quote)
}

func (h *handler) getSellQuote(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	chainId, token, err := parseChainParams(c)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid params")
	}

	amount, err := domain.ParseBigInt(c.QueryParam("amount"))
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid amount")
	}

	// price is optional, the quote anchors to the floor when absent
	var price *big.Int
	if p := c.QueryParam("price"); p != "" {
		price, err = domain.ParseBigInt(p)
		if err != nil {
			return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid price")
		}
	}

	quote, err := h.tributary.GetSellQuote(ctx, chainId, token, amount, price)
	if err != nil {
		if err == domain.ErrInvalidAmount || err == domain.ErrInvalidPrice {
			return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
		}
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}

	return delivery.MakeJsonResp(c, http.StatusOK, quote)
}

func (h *handler) getPriceHistory(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	chainId, token, err := parseChainParams(c)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid params")
	}

	period := tributary.Period(c.QueryParam("period"))
	if period == "" {
		period = tributary.Period24h
	}
	resolution := tributary.Resolution(c.QueryParam("resolution"))
	if resolution == "" {
		resolution = tributary.ResolutionHourly
	}

	points, err := h.tributary.GetPriceHistory(ctx, chainId, token, period, resolution)
	if err != nil {
		if err == domain.ErrInvalidPeriod || err == domain.ErrInvalidResolution {
			return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
		}
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}

	return delivery.MakeJsonResp(c, http.StatusOK, points)
}

func (h *handler) getFloorPrice(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	chainId, token, err := parseChainParams(c)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid params")
	}

	floor, err := h.tributary.GetFloorPrice(ctx, chainId, token)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}

	res := struct {
		FloorPrice string `json:"floorPrice"`
	}{
		FloorPrice: floor,
	}
	return delivery.MakeJsonResp(c, http.StatusOK, res)
}

func (h *handler) getListings(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	chainId, token, err := parseChainParams(c)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid params")
	}

	p := struct {
		Seller   *domain.Address `query:"seller"`
		IsActive *bool           `query:"isActive"`
		Offset   int32           `query:"offset"`
		Limit    int32           `query:"limit"`
	}{}

	if err := c.Bind(&p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid params")
	}

	opts := []tributary.ListingFindAllOptionsFunc{
		tributary.WithChainId(chainId),
		tributary.WithToken(token),
	}

	if p.Seller != nil {
		opts = append(opts, tributary.WithSeller(*p.Seller))
	}

	if p.IsActive != nil {
		opts = append(opts, tributary.WithIsActive(*p.IsActive))
	}

	if p.Offset != 0 || p.Limit != 0 {
		opts = append(opts, tributary.WithPagination(p.Offset, p.Limit))
	}

	listings, err := h.tributary.GetListings(ctx, opts...)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}

	return delivery.MakeJsonResp(c, http.StatusOK, listings)
}
