package rest

import (
	"errors"
	"net/http"

	"morpho/core"
	"morpho/handler/render"

	"github.com/go-chi/chi"
)

// Handle handle rest api request
func Handle(
	marketStore core.IMarketStore,
	positionStore core.IPositionStore,
	liquidationStore core.ILiquidationStore,
	priceService core.IPriceOracleService,
) http.Handler {
	router := chi.NewRouter()

	router.NotFound(func(w http.ResponseWriter, r *http.Request) {
		render.NotFoundRequest(w, errors.New("not found"))
	})

	router.Get("/markets", allMarketsHandler(marketStore))
	router.Get("/markets/{symbol}", marketHandler(marketStore))
	router.Get("/markets/{symbol}/price", marketPriceHandler(marketStore, priceService))
	router.Get("/positions/{user}/{symbol}", positionHandler(marketStore, positionStore, priceService))
	router.Get("/liquidations", liquidationsHandler(liquidationStore))

	return router
}
