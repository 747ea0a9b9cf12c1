package rest

import (
	"net/http"
	"strings"

	"morpho/core"
	"morpho/handler/render"
	"morpho/handler/views"

	"github.com/go-chi/chi"
	"github.com/shopspring/decimal"
)

func allMarketsHandler(marketStr core.IMarketStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		markets, err := marketStr.All(r.Context())
		if err != nil {
			render.BadRequest(w, err)
			return
		}

		marketViews := make([]*views.Market, 0, len(markets))
		for _, m := range markets {
			marketViews = append(marketViews, views.NewMarket(m))
		}

		render.JSON(w, marketViews)
	}
}

func marketHandler(marketStr core.IMarketStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		symbol := strings.ToUpper(chi.URLParam(r, "symbol"))

		market, err := marketStr.Find(r.Context(), symbol)
		if err != nil {
			render.Code(w, core.ErrMarketNotFound)
			return
		}

		render.JSON(w, views.NewMarket(market))
	}
}

func marketPriceHandler(marketStr core.IMarketStore, priceSrv core.IPriceOracleService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		symbol := strings.ToUpper(chi.URLParam(r, "symbol"))

		market, err := marketStr.Find(ctx, symbol)
		if err != nil {
			render.Code(w, core.ErrMarketNotFound)
			return
		}

		price, err := priceSrv.ResolvePrice(ctx, market)
		if err != nil {
			render.Code(w, err)
			return
		}

		render.JSON(w, render.H{
			"symbol": market.Symbol,
			"oracle": market.Oracle,
			"price":  decimal.NewFromBigInt(price.Big(), -36),
			"raw":    price,
		})
	}
}
