package rest

import (
	"net/http"
	"strings"

	"morpho/core"
	"morpho/handler/render"
	"morpho/handler/views"

	"github.com/go-chi/chi"
)

func positionHandler(marketStr core.IMarketStore, positionStr core.IPositionStore, priceSrv core.IPriceOracleService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		user := chi.URLParam(r, "user")
		symbol := strings.ToUpper(chi.URLParam(r, "symbol"))

		market, err := marketStr.Find(ctx, symbol)
		if err != nil {
			render.Code(w, core.ErrMarketNotFound)
			return
		}

		position, err := positionStr.Find(ctx, user, symbol)
		if err != nil {
			render.Code(w, core.ErrPositionNotFound)
			return
		}

		price, err := priceSrv.ResolvePrice(ctx, market)
		if err != nil {
			render.Code(w, err)
			return
		}

		view, err := views.NewPosition(position, market, price)
		if err != nil {
			render.Code(w, err)
			return
		}

		render.JSON(w, view)
	}
}
